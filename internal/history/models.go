package history

import "time"

const SchemaVersion = 1

// Snapshot is one analysis run's headline numbers, persisted so repeated
// runs over the same tree can be compared over time.
type Snapshot struct {
	RunID           string    `json:"run_id"`
	SchemaVersion   int       `json:"schema_version"`
	Timestamp       time.Time `json:"timestamp"`
	Root            string    `json:"root"`
	FileCount       int       `json:"file_count"`
	EdgeCount       int       `json:"edge_count"`
	ComponentCount  int       `json:"component_count"`
	CycleCount      int       `json:"cycle_count"`
	UnresolvedCount int       `json:"unresolved_count"`
	AmbiguousCount  int       `json:"ambiguous_count"`
	UnreadableCount int       `json:"unreadable_count"`
	MaxFanIn        int       `json:"max_fan_in"`
	MaxImpact       int       `json:"max_impact"`
}
