// Package codes generates and parses the hierarchical string codes that
// identify anatomical nodes and relations.
//
// Node codes have the form NA-{system}-{category}-{region}-{entity}-{seq}
// with the sequence zero-padded to three digits. Relation codes have the
// form RE-{type}-{originCode}-{destCode}-{seq}; because the embedded node
// codes themselves contain dashes, relation parsing works right to left and
// is ambiguous when an endpoint code ends in a numeric-looking segment. That
// fragility is inherited from the external data contract and is pinned by
// tests rather than papered over; all parsing is isolated here so no other
// package touches raw code strings.
package codes
