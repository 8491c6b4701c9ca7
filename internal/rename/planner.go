// Package rename plans and applies batch renames inside a single directory.
//
// A Planner walks through one session per directory:
//
//	Unscanned -> Scanned -> Filtered -> Planned -> Executed -> (Scan) Scanned
//
// Scanning, planning and execution run synchronously on the caller's
// goroutine. The Planner holds no locks and assumes nothing else modifies the
// directory between Scan and Execute; the only guard against an external
// change is the per-file existence check in Execute. On shared or networked
// filesystems that assumption may not hold.
package rename

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"smartrename/internal/classify"
	"smartrename/internal/config"
	"smartrename/internal/errors"
	"smartrename/internal/log"
	"smartrename/pkg/types"
)

// State is the position of a Planner in its session.
type State int

const (
	Unscanned State = iota
	Scanned
	Filtered
	Planned
	Executed
)

func (s State) String() string {
	return [...]string{"unscanned", "scanned", "filtered", "planned", "executed"}[s]
}

// Planning errors. They block the whole operation; nothing is renamed.
var (
	ErrNotScanned       = errors.NewKind(errors.InvalidState, "no directory has been scanned")
	ErrFilterNotApplied = errors.NewKind(errors.InvalidState, "type filter has not been applied since the last scan")
	ErrStaleSnapshot    = errors.NewKind(errors.InvalidState, "file list is stale after renaming; rescan the directory")
)

// Planner owns the scanned file list of one directory and turns it into a
// rename plan.
type Planner struct {
	fs         afero.Fs
	classifier *classify.Classifier

	directory  string
	session    string
	files      []string
	filtered   []string
	categories types.CategorySet
	matcher    *nameMatcher
	plan       []types.RenamePair
	state      State
	scanErr    error
}

// New creates a Planner on the operating system filesystem.
func New() *Planner {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a Planner on the given filesystem.
func NewWithFs(fs afero.Fs) *Planner {
	return &Planner{
		fs:         fs,
		classifier: classify.Default(),
		state:      Unscanned,
	}
}

// NewWithConfig creates a Planner on the operating system filesystem using
// the extension overrides from cfg.
func NewWithConfig(cfg *config.Config) *Planner {
	p := New()
	p.SetConfig(cfg)
	return p
}

// SetConfig applies the extension overrides from cfg to the classifier.
func (p *Planner) SetConfig(cfg *config.Config) {
	if cfg == nil {
		p.classifier = classify.Default()
		return
	}
	p.classifier = classify.New(cfg.ExtraExtensions())
}

// Classifier returns the classifier used for type filtering.
func (p *Planner) Classifier() *classify.Classifier {
	return p.classifier
}

// State returns the session state.
func (p *Planner) State() State {
	return p.state
}

// Directory returns the bound directory, or "" before the first scan.
func (p *Planner) Directory() string {
	return p.directory
}

// Session returns the identifier of the current scan, used to correlate log lines.
func (p *Planner) Session() string {
	return p.session
}

// Files returns the full scanned file list.
func (p *Planner) Files() []string {
	return append([]string(nil), p.files...)
}

// Filtered returns the file list after the type and name filters.
func (p *Planner) Filtered() []string {
	return append([]string(nil), p.filtered...)
}

// LastPlan returns the most recently generated plan.
func (p *Planner) LastPlan() []types.RenamePair {
	return append([]types.RenamePair(nil), p.plan...)
}

// LastScanError returns why the last scan came back empty, or nil if it
// succeeded. Scan itself never fails, so this is the only way to tell an
// unreadable directory from an empty one.
func (p *Planner) LastScanError() error {
	return p.scanErr
}

func (p *Planner) logger() *log.Logger {
	return log.LogWithFields(log.F("session", p.session), log.F("directory", p.directory))
}

// Scan binds the planner to directory and lists the regular files directly
// inside it, sorted by name. Subdirectories are skipped and symlinks count
// when they point at a regular file. Any I/O failure yields an empty list.
// Filters and plans from a previous scan are discarded.
func (p *Planner) Scan(directory string) []string {
	p.directory = directory
	p.session = uuid.NewString()
	p.categories = nil
	p.filtered = nil
	p.plan = nil
	p.state = Scanned

	files, err := p.scan(directory)
	p.scanErr = err
	if err != nil {
		p.logger().Warnf("Scan failed: %v", err)
		p.files = []string{}
		return []string{}
	}
	p.files = files
	p.logger().Debugf("Scanned %d files", len(files))
	return p.Files()
}

func (p *Planner) scan(directory string) ([]string, error) {
	if directory == "" {
		return nil, errors.NewValidationError(errors.NoDirectory, "no directory selected")
	}
	entries, err := afero.ReadDir(p.fs, directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("directory not found", directory, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("failed to read directory", directory, errors.FileAccessDenied, err)
	}

	files := []string{}
	for _, entry := range entries {
		mode := entry.Mode()
		if mode&os.ModeSymlink != 0 {
			target, err := p.fs.Stat(filepath.Join(directory, entry.Name()))
			if err != nil {
				continue
			}
			mode = target.Mode()
		}
		if mode.IsRegular() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ApplyTypeFilter recomputes the filtered list from the full scan. An empty
// set filters out every file. It must be called again after every scan.
func (p *Planner) ApplyTypeFilter(categories types.CategorySet) {
	p.categories = types.NewCategorySet(categories.Sorted()...)
	p.refilter()
}

// ApplyNameFilter narrows the filtered list to names matching a glob
// pattern, case-insensitively. An empty pattern removes the name filter.
func (p *Planner) ApplyNameFilter(pattern string) error {
	matcher, err := newNameMatcher(pattern)
	if err != nil {
		return err
	}
	p.matcher = matcher
	if p.categories != nil {
		p.refilter()
	}
	return nil
}

func (p *Planner) refilter() {
	if p.state == Unscanned {
		p.filtered = []string{}
		return
	}
	filtered := p.classifier.FilterByType(p.files, p.categories)
	if p.matcher != nil {
		filtered = p.matcher.filter(filtered)
	}
	p.filtered = filtered
	p.plan = nil
	if p.state != Executed {
		p.state = Filtered
	}
	p.logger().Debugf("Filter %s kept %d of %d files", p.categories, len(p.filtered), len(p.files))
}

// GeneratePlan plans new names for the filtered files in sorted order. A new
// plan replaces the previous one.
func (p *Planner) GeneratePlan(policy types.NamingPolicy) ([]types.RenamePair, error) {
	switch p.state {
	case Unscanned:
		return nil, ErrNotScanned
	case Scanned:
		return nil, ErrFilterNotApplied
	case Executed:
		return nil, ErrStaleSnapshot
	}

	p.plan = Plan(p.filtered, policy)
	p.state = Planned
	p.logger().Debugf("Planned %d renames", len(p.plan))
	return p.LastPlan(), nil
}

// Preview runs scan, filter, validation and planning in one call. Spaces
// around the prefix are trimmed before it is used.
func (p *Planner) Preview(req PlanRequest) ([]types.RenamePair, error) {
	req.Policy.Prefix = strings.TrimSpace(req.Policy.Prefix)
	if req.Directory == "" {
		return nil, errors.NewValidationError(errors.NoDirectory, "no directory selected")
	}
	p.Scan(req.Directory)
	if err := p.ApplyNameFilter(req.Match); err != nil {
		return nil, err
	}
	p.ApplyTypeFilter(req.Categories)

	req.FileCount = len(p.filtered)
	if err := req.Validate(); err != nil {
		if errors.ReasonOf(err) == errors.NoFiles && p.scanErr != nil {
			return nil, p.scanErr
		}
		return nil, err
	}
	return p.GeneratePlan(req.Policy)
}
