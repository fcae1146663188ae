// Package database assembles, serializes and persists the reflection
// condition database.
//
// The Builder accumulates setting records under their canonical group
// number; a finalized Database is immutable and sorted ascending by number.
// Serialization uses an ordered canonical JSON encoder so repeated runs on
// identical input produce byte-identical output.
package database
