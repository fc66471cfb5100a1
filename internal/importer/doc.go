// Package importer converts raw seed-catalog records into anatomical nodes.
//
// The seed format carries short identifiers such as LOB-PAR-SUP; the
// importer infers system, category, region, entity, and classification from
// the identifier's prefix using fixed lookup tables plus a handful of
// heuristics for cerebellar and ventricular structures. Unknown prefixes
// never fail a record; they degrade to the generic defaults. Only malformed
// JSON fails an import, and it fails it whole.
package importer
