package types

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// FileInfo is the detailed view of a scanned file
type FileInfo struct {
	Path        string   `json:"path"`
	Category    Category `json:"category"`
	ContentType string   `json:"type"`
	Size        int64    `json:"size"`
}

// Name returns the base name of the file
func (f *FileInfo) Name() string {
	return filepath.Base(f.Path)
}

// HumanSize returns the size formatted for display (e.g. "1.2 MB")
func (f *FileInfo) HumanSize() string {
	return humanize.Bytes(uint64(f.Size))
}

// ToJSON converts FileInfo to JSON string
func (f *FileInfo) ToJSON() string {
	jsonBytes, _ := json.Marshal(f)
	return string(jsonBytes)
}

// String returns a human-readable representation
func (f *FileInfo) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", f.Name()))
	sb.WriteString(fmt.Sprintf("Category: %s\n", f.Category))
	sb.WriteString(fmt.Sprintf("Type: %s\n", f.ContentType))
	sb.WriteString(fmt.Sprintf("Size: %s\n", f.HumanSize()))
	return sb.String()
}

// IsSymlink checks if the file is a symbolic link
func (f *FileInfo) IsSymlink() bool {
	info, err := os.Lstat(f.Path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}
