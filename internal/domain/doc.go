// Package domain contains the core business entities, value objects, and
// domain logic of the anatomical catalog: nodes, typed relations between
// them, and the review vocabulary used by the study scheduler. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
