package rename

import (
	"os"
	"path/filepath"

	"smartrename/internal/errors"
	"smartrename/internal/log"
	"smartrename/pkg/types"
)

// Execute renames each pair of subset inside the bound directory and returns
// aggregate counts. Pairs whose names are equal are skipped and counted as
// neither success nor error. A missing source, an existing destination or a
// failed rename is logged and counted as an error; the batch always runs to
// the end. After any rename attempt the scanned file list is stale and the
// directory must be scanned again before planning.
func (p *Planner) Execute(subset []types.RenamePair) types.Outcome {
	var outcome types.Outcome
	if p.directory == "" {
		log.Warn("Execute called before a directory was scanned")
		return outcome
	}

	logger := p.logger()
	attempted := false
	for _, pair := range subset {
		if pair.IsIdentity() {
			logger.Debugf("Name unchanged, skipping: %s", pair.Current)
			continue
		}
		attempted = true

		if err := p.renameOne(pair); err != nil {
			outcome.Errors++
			log.LogWithError(err).With(log.F("session", p.session)).Errorf("Error renaming %s", pair.Current)
			continue
		}
		outcome.Success++
		logger.Debugf("Renamed %s -> %s", pair.Current, pair.Proposed)
	}

	if attempted {
		p.state = Executed
	}
	logger.Infof("Rename finished: %s", outcome)
	return outcome
}

func (p *Planner) renameOne(pair types.RenamePair) error {
	for _, name := range []string{pair.Current, pair.Proposed} {
		if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
			return errors.NewFileError("not a plain file name", name, errors.InvalidPath, nil)
		}
	}

	src := filepath.Join(p.directory, pair.Current)
	dest := filepath.Join(p.directory, pair.Proposed)

	srcInfo, err := p.fs.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("source file no longer exists", src, errors.FileNotFound, err)
		}
		return errors.NewFileError("cannot access source file", src, errors.FileAccessDenied, err)
	}

	// Never clobber. A destination that is the source itself is a case-only
	// rename on a case-insensitive filesystem.
	if destInfo, err := p.fs.Stat(dest); err == nil && !os.SameFile(srcInfo, destInfo) {
		return errors.NewFileError("destination already exists", dest, errors.DestinationExists, nil)
	}

	if err := p.fs.Rename(src, dest); err != nil {
		return errors.NewFileError("rename failed", src, errors.FileOperationFailed, err)
	}
	return nil
}
