package rename

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"smartrename/internal/errors"
	"smartrename/pkg/types"
)

// PlanFile is a saved preview. Users may delete entries before executing it,
// which is how a subset is selected from the command line.
type PlanFile struct {
	Directory string             `yaml:"directory"`
	Session   string             `yaml:"session,omitempty"`
	Policy    types.NamingPolicy `yaml:"policy"`
	Renames   []types.RenamePair `yaml:"renames"`
}

// SavePlanFile writes pf as YAML, creating parent directories.
func SavePlanFile(path string, pf PlanFile) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create plan directory")
	}
	data, err := yaml.Marshal(pf)
	if err != nil {
		return errors.Wrap(err, "failed to marshal plan")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write plan file %s", path)
	}
	return nil
}

// LoadPlanFile reads a saved plan. Because the file may have been edited, it
// re-checks that proposed names are still pairwise distinct and that no
// source appears twice.
func LoadPlanFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("plan file not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("failed to read plan file", path, errors.FileAccessDenied, err)
	}

	var pf PlanFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.NewFileError("failed to parse plan file", path, errors.InvalidPath, err)
	}
	if pf.Directory == "" {
		return nil, errors.NewValidationError(errors.NoDirectory, "plan file has no directory")
	}

	sources := make(map[string]bool, len(pf.Renames))
	targets := make(map[string]bool, len(pf.Renames))
	for _, pair := range pf.Renames {
		if sources[pair.Current] {
			return nil, errors.Newf("plan file lists %s more than once", pair.Current)
		}
		if targets[pair.Proposed] {
			return nil, errors.Newf("plan file proposes %s more than once", pair.Proposed)
		}
		sources[pair.Current] = true
		targets[pair.Proposed] = true
	}
	return &pf, nil
}
