// Package classify maps filenames to coarse file categories using static
// extension tables.
package classify

import (
	"strings"

	"smartrename/pkg/types"
)

var (
	imageExtensions = []string{
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif",
		".webp", ".svg", ".ico", ".heic", ".heif", ".raw", ".cr2",
		".nef", ".orf", ".sr2", ".psd", ".ai", ".eps",
	}
	videoExtensions = []string{
		".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
		".m4v", ".mpg", ".mpeg", ".3gp", ".ogv", ".ts", ".mts",
		".m2ts", ".vob", ".asf", ".rm", ".rmvb", ".divx", ".xvid",
	}
	documentExtensions = []string{
		".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
		".txt", ".rtf", ".odt", ".ods", ".odp", ".csv", ".md",
		".html", ".htm", ".xml", ".json", ".yaml", ".yml", ".ini",
		".cfg", ".conf", ".log", ".tex", ".latex",
	}
)

// Classifier holds the extension tables. The zero value classifies
// everything as Other; use New or Default.
type Classifier struct {
	tables map[string]types.Category
}

var defaultClassifier = New(nil)

// Default returns the classifier built from the built-in tables.
func Default() *Classifier {
	return defaultClassifier
}

// New builds a classifier from the built-in tables plus extra extensions per
// category. Extra entries may be given with or without the leading dot and
// override the built-in mapping for that extension.
func New(extra map[types.Category][]string) *Classifier {
	c := &Classifier{tables: make(map[string]types.Category)}
	c.add(types.Image, imageExtensions)
	c.add(types.Video, videoExtensions)
	c.add(types.Document, documentExtensions)
	for _, category := range types.AllCategories {
		c.add(category, extra[category])
	}
	return c
}

func (c *Classifier) add(category types.Category, exts []string) {
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.tables[ext] = category
	}
}

// Classify returns the category of filename based on its extension,
// compared case-insensitively.
func (c *Classifier) Classify(filename string) types.Category {
	_, suffix := types.SplitName(filename)
	if suffix == "" {
		return types.Other
	}
	if category, ok := c.tables[strings.ToLower(suffix)]; ok {
		return category
	}
	return types.Other
}

// FilterByType returns the files whose category is selected, preserving
// input order. An empty selection returns no files.
func (c *Classifier) FilterByType(files []string, selected types.CategorySet) []string {
	filtered := []string{}
	if selected.Empty() {
		return filtered
	}
	for _, file := range files {
		if selected.Has(c.Classify(file)) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// Extensions lists the extensions mapped to category, unordered.
func (c *Classifier) Extensions(category types.Category) []string {
	var exts []string
	for ext, cat := range c.tables {
		if cat == category {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Classify uses the built-in tables.
func Classify(filename string) types.Category {
	return defaultClassifier.Classify(filename)
}

// FilterByType uses the built-in tables.
func FilterByType(files []string, selected types.CategorySet) []string {
	return defaultClassifier.FilterByType(files, selected)
}
