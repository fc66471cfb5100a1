// Package service provides application-level services over the anatomical
// graph and the review scheduler.
//
// CatalogService owns the graph store, snapshot persistence, the catalog
// importer, and relation inference, and implements the startup contract:
// load the persisted snapshot if one exists, otherwise import the seed
// catalog, infer relations, and persist the result. StudyService wraps the
// single shared review scheduler and resolves its code-based answers back
// to catalog nodes.
//
// All mutating operations are serialized behind each service's mutex so
// concurrent callers observe consistent state. Both services announce
// changes through an events.EventEmitter.
package service
