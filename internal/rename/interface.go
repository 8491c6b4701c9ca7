package rename

import (
	"smartrename/internal/config"
	"smartrename/pkg/types"
)

// Renamer is the engine API front ends drive. It allows swapping the planner
// in tests.
type Renamer interface {
	// SetConfig applies configuration such as extra extensions
	SetConfig(cfg *config.Config)

	// Scan binds a directory and lists its regular files in sorted order
	Scan(directory string) []string

	// LastScanError explains an empty scan result, if it was a failure
	LastScanError() error

	// ApplyTypeFilter recomputes the filtered list from the last scan
	ApplyTypeFilter(categories types.CategorySet)

	// ApplyNameFilter narrows the filtered list by glob pattern
	ApplyNameFilter(pattern string) error

	// Filtered returns the files that will be planned
	Filtered() []string

	// GeneratePlan computes the rename plan for the filtered files
	GeneratePlan(policy types.NamingPolicy) ([]types.RenamePair, error)

	// Preview scans, filters, validates and plans in one step
	Preview(req PlanRequest) ([]types.RenamePair, error)

	// Execute applies a subset of a plan
	Execute(subset []types.RenamePair) types.Outcome

	// Directory returns the bound directory
	Directory() string
}

// Ensure Planner implements the Renamer interface
var _ Renamer = (*Planner)(nil)
