//go:build !nogui

// Package gui is the desktop front end. Build with -tags nogui to leave it out.
package gui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"smartrename/internal/config"
	"smartrename/internal/log"
	"smartrename/internal/rename"
	"smartrename/internal/watch"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	configPath string
	renamer    rename.Renamer

	form   *renameForm
	status *widget.Label

	watchMu sync.Mutex
	watcher *watch.Watcher
	own     *watch.Suppressor
}

// NewApp creates the GUI application on the default fyne driver
func NewApp(cfg *config.Config, renamer rename.Renamer) *App {
	return NewAppWith(app.NewWithID("io.github.smartrename"), cfg, renamer)
}

// NewAppWith creates the GUI application on an existing fyne app, such as a test app
func NewAppWith(fyneApp fyne.App, cfg *config.Config, renamer rename.Renamer) *App {
	if cfg == nil {
		cfg = config.New()
	}
	if renamer == nil {
		renamer = rename.CurrentRenamerFactory()
	}
	renamer.SetConfig(cfg)

	a := &App{
		fyneApp:    fyneApp,
		cfg:        cfg,
		renamer:    renamer,
		status:     widget.NewLabel("Choose a folder to begin"),
		mainWindow: fyneApp.NewWindow("smartrename"),
		own:        watch.NewSuppressor(0),
	}
	a.setupMainWindow()
	return a
}

// SetConfigPath sets where Save Settings writes the configuration
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// GetMainWindow returns the main window
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Run shows the main window and blocks until it is closed
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
	a.stopWatching()
}

func (a *App) setupMainWindow() {
	a.form = a.newRenameForm()

	tabs := container.NewAppTabs(
		container.NewTabItem("Rename", a.form.content()),
		container.NewTabItem("Settings", a.createSettingsTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	a.mainWindow.SetContent(container.NewBorder(nil, a.status, nil, nil, tabs))
	a.mainWindow.Resize(fyne.NewSize(900, 640))
	a.mainWindow.SetOnClosed(a.stopWatching)
}

// SetStatus replaces the status bar text
func (a *App) SetStatus(text string) {
	a.status.SetText(text)
}

// Status returns the status bar text
func (a *App) Status() string {
	return a.status.Text
}

// ShowError shows an error dialog and logs the error
func (a *App) ShowError(title string, err error) {
	log.LogWithError(err).Error(title)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.mainWindow)
}

// ShowInfo shows an information dialog
func (a *App) ShowInfo(message string) {
	dialog.ShowInformation("smartrename", message, a.mainWindow)
}

// watchDirectory replaces the current watch with one on dir. Changes mark the preview stale.
func (a *App) watchDirectory(dir string) error {
	a.stopWatching()

	w, err := watch.New(dir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	a.watchMu.Lock()
	a.watcher = w
	a.watchMu.Unlock()

	go func() {
		for change := range w.Changes() {
			a.handleChange(change)
		}
	}()
	return nil
}

// handleChange marks the preview stale unless the batch only reports our own renames
func (a *App) handleChange(change watch.Change) {
	if a.own.Ignore(change) {
		log.Debugf("Ignoring %d entries changed by our own rename", len(change.Names))
		return
	}
	a.form.markStale(len(change.Names))
}

func (a *App) stopWatching() {
	a.watchMu.Lock()
	w := a.watcher
	a.watcher = nil
	a.watchMu.Unlock()
	if w != nil {
		w.Stop()
	}
}

func (a *App) saveConfig() {
	path := a.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			a.ShowError("Failed to locate config file", err)
			return
		}
	}
	if err := config.SaveConfig(a.cfg, path); err != nil {
		a.ShowError("Failed to save settings", err)
		return
	}
	log.Infof("Settings saved to %s", path)
}
