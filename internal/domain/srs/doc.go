// Package srs implements the spaced-repetition scheduler that decides when
// each anatomical structure should be studied next. It keeps a per-node
// review history and a calendar-day session log, computes review intervals
// from self-assessed difficulty, and orders material by a priority score
// where overdue structures always outrank everything not yet due.
//
// The package depends only on plain node codes; it has no knowledge of the
// catalog repository.
package srs
