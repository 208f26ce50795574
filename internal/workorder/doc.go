// Package workorder defines the work-order record model, the synthetic
// data generator, and the pure filter engine.
//
// Records are immutable for the lifetime of a session: they are loaded
// (or generated) once and filtering only selects subsets, never mutates.
// Both filters are plain linear scans designed to run over tens of
// thousands of records per call; every call scans the full base set, so
// relaxing a filter never re-excludes records a previous narrower pass
// dropped.
package workorder
