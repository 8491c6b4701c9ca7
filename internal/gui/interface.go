//go:build !nogui

package gui

import (
	"smartrename/internal/config"
	"smartrename/internal/rename"
)

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}

// Ensure App implements the Interface
var _ Interface = (*App)(nil)

// Factory creates GUI instances
type Factory struct {
	config     *config.Config
	configPath string
}

// NewFactory creates a new GUI factory
func NewFactory(cfg *config.Config, configPath string) *Factory {
	return &Factory{
		config:     cfg,
		configPath: configPath,
	}
}

// Create returns a new GUI instance backed by the current renamer factory
func (f *Factory) Create() (Interface, error) {
	app := NewApp(f.config, rename.CurrentRenamerFactory())
	app.SetConfigPath(f.configPath)
	return app, nil
}

// StartGUI opens the desktop window and blocks until it is closed
func StartGUI(cfg *config.Config, configPath string) error {
	app, err := NewFactory(cfg, configPath).Create()
	if err != nil {
		return err
	}
	app.Run()
	return nil
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return true
}
