package rename

import (
	"strings"

	"smartrename/internal/errors"
	"smartrename/pkg/types"
)

// PlanRequest is what a front end collects before asking for a preview.
type PlanRequest struct {
	Directory  string
	Policy     types.NamingPolicy
	Categories types.CategorySet
	Match      string // optional glob on file names
	FileCount  int    // files left after filtering; filled in by Preview
}

// Validate rejects a request that cannot produce a useful plan. Checks run in
// the order a user fills in the form: directory, file types, files, prefix.
func (r PlanRequest) Validate() error {
	if r.Directory == "" {
		return errors.NewValidationError(errors.NoDirectory, "no directory selected")
	}
	if r.Categories.Empty() {
		return errors.NewValidationError(errors.NoCategories, "no file type selected")
	}
	if r.FileCount == 0 {
		return errors.NewValidationError(errors.NoFiles, "no files to rename")
	}
	if strings.TrimSpace(r.Policy.Prefix) == "" {
		return errors.NewValidationError(errors.EmptyPrefix, "prefix must not be empty")
	}
	if strings.ContainsAny(r.Policy.Prefix, `/\`) {
		return errors.NewValidationError(errors.InvalidPrefix, "prefix must not contain path separators")
	}
	return nil
}

// ValidateSelection rejects an empty execution subset.
func ValidateSelection(subset []types.RenamePair) error {
	if len(subset) == 0 {
		return errors.NewValidationError(errors.NoSelection, "no files selected")
	}
	return nil
}
