// Package inference derives typed relations between catalog nodes from
// their descriptive text.
//
// The approach is a deliberate heuristic, not semantic understanding: a
// relation is proposed whenever one node's text mentions another node's
// name, and its type is chosen by scanning for a type keyword adjacent to
// the mention. The scan visits every ordered pair of nodes, which is O(n²)
// in catalog size and acceptable only for catalogs up to the low thousands
// of structures. The type classifier sits behind an interface so it can be
// replaced without touching the graph store.
package inference
