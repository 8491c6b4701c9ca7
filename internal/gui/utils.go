//go:build !nogui

package gui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"gopkg.in/yaml.v3"

	"smartrename/internal/config"
)

// parseImportedConfig parses an imported YAML configuration over the defaults
func parseImportedConfig(reader fyne.URIReadCloser) (*config.Config, error) {
	switch ext := strings.ToLower(filepath.Ext(reader.URI().Name())); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
	return decodeConfig(reader)
}

func decodeConfig(r io.Reader) (*config.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	cfg := config.New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// exportConfig writes the configuration as YAML
func exportConfig(cfg *config.Config, w io.Writer) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error encoding to YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	return nil
}
