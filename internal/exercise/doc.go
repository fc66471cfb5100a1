// Package exercise generates self-contained study exercises from catalog
// nodes: multiple-choice quizzes and name-to-function matching boards.
// Generation is pure and deterministic given a seeded random source; the
// answer-checking helpers report the difficulty outcome that callers feed
// back into the review scheduler.
package exercise
