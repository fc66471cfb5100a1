// Package memory provides the in-memory implementation of the knowledge
// graph store. The whole catalog lives in two maps keyed by code, sized for
// a few hundred to a few thousand structures; every query is a linear scan
// plus a sort, which is the documented algorithmic budget of the system.
package memory
