// Package analysis gathers per-file detail for listings: size, category and
// the MIME type sniffed from the file's content.
package analysis

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"smartrename/internal/classify"
	"smartrename/internal/config"
	serr "smartrename/internal/errors"
	log "smartrename/internal/log"
	"smartrename/pkg/types"
)

// sniffLimit bounds how much of each file is read for content detection.
const sniffLimit = 3072

// Engine handles file analysis and content detection
type Engine struct {
	fs         afero.Fs
	classifier *classify.Classifier
}

// New creates an analysis engine on the operating system filesystem
func New() *Engine {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates an analysis engine on the given filesystem
func NewWithFs(fs afero.Fs) *Engine {
	return &Engine{fs: fs, classifier: classify.Default()}
}

// NewWithConfig creates an analysis engine using extension overrides from cfg
func NewWithConfig(cfg *config.Config) *Engine {
	engine := New()
	engine.SetConfig(cfg)
	return engine
}

// SetConfig applies extension overrides to the classifier
func (e *Engine) SetConfig(cfg *config.Config) {
	if cfg == nil {
		e.classifier = classify.Default()
		return
	}
	e.classifier = classify.New(cfg.ExtraExtensions())
}

// Inspect returns size, category and content type of a single file.
// Category comes from the extension only; the content type is informational.
func (e *Engine) Inspect(path string) (*types.FileInfo, error) {
	info, err := e.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to stat file", path, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to stat file", path, serr.FileAccessDenied, err)
	}
	if info.IsDir() {
		return nil, serr.NewFileError("not a regular file", path, serr.InvalidPath, nil)
	}

	contentType, err := e.detect(path)
	if err != nil {
		return nil, err
	}

	return &types.FileInfo{
		Path:        path,
		Category:    e.classifier.Classify(filepath.Base(path)),
		ContentType: contentType,
		Size:        info.Size(),
	}, nil
}

func (e *Engine) detect(path string) (string, error) {
	file, err := e.fs.Open(path)
	if err != nil {
		return "", serr.NewFileError("failed to open file", path, serr.FileAccessDenied, err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(io.LimitReader(file, sniffLimit))
	if err != nil {
		return "", serr.NewFileError("failed to read file", path, serr.FileOperationFailed, err)
	}

	return mtype.String(), nil
}

// InspectDirectory inspects the regular files directly inside dir, sorted by
// name. Files that cannot be read are logged and skipped.
func (e *Engine) InspectDirectory(dir string) ([]*types.FileInfo, error) {
	logger := log.LogWithFields(log.F("directory", dir))

	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serr.NewFileError("failed to read directory", dir, serr.FileNotFound, err)
		}
		return nil, serr.NewFileError("failed to read directory", dir, serr.FileAccessDenied, err)
	}

	results := []*types.FileInfo{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileInfo, err := e.Inspect(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.LogWithError(err).Debug("Skipping file")
			continue
		}
		results = append(results, fileInfo)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Name() < results[j].Name() })
	logger.Debugf("Inspected %d files", len(results))
	return results, nil
}

// Summary counts inspected files per category
func Summary(files []*types.FileInfo) map[types.Category]int {
	counts := make(map[types.Category]int, len(types.AllCategories))
	for _, f := range files {
		counts[f.Category]++
	}
	return counts
}
