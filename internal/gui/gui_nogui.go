//go:build nogui

package gui

import (
	"fmt"

	"smartrename/internal/config"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(cfg *config.Config, configPath string) error {
	return fmt.Errorf("GUI not available in this build, use the tui command instead")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
