//go:build !nogui

package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// createSettingsTab creates the settings tab
func (a *App) createSettingsTab() fyne.CanvasObject {
	// --- General Settings ---
	confirmCheck := widget.NewCheck("Ask Before Renaming", func(value bool) {
		a.cfg.Settings.Confirm = value
	})
	confirmCheck.SetChecked(a.cfg.Settings.Confirm)

	logLevelLabel := widget.NewLabel("Log Level:")
	logLevelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(value string) {
		a.cfg.Settings.LogLevel = value
	})
	logLevelSelect.SetSelected(a.cfg.Settings.LogLevel)

	defaultDirLabel := widget.NewLabel("Default Folder:")
	defaultDirEntry := widget.NewEntry()
	defaultDirEntry.SetText(a.cfg.Directories.Default)
	defaultDirEntry.OnChanged = func(text string) {
		a.cfg.Directories.Default = text
	}

	generalSettingsCard := widget.NewCard("General Settings", "", container.NewVBox(
		confirmCheck,
		container.NewHBox(logLevelLabel, logLevelSelect),
		container.NewBorder(nil, nil, defaultDirLabel, nil, defaultDirEntry),
	))

	// --- Naming defaults ---
	useCurrentButton := widget.NewButton("Use Current Form as Defaults", func() {
		a.storeFormDefaults()
		a.ShowInfo("Naming defaults updated, press Save Settings to keep them")
	})
	namingCard := widget.NewCard("Naming Defaults", "Prefix, numbering, file types and match pattern", useCurrentButton)

	// --- Import/Export Settings ---
	importButton := widget.NewButton("Import Configuration...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			newCfg, err := parseImportedConfig(reader)
			if err != nil {
				a.ShowError("Import Failed", err)
				return
			}

			*a.cfg = *newCfg
			a.renamer.SetConfig(a.cfg)

			confirmCheck.SetChecked(a.cfg.Settings.Confirm)
			logLevelSelect.SetSelected(a.cfg.Settings.LogLevel)
			defaultDirEntry.SetText(a.cfg.Directories.Default)

			a.saveConfig()
			a.ShowInfo("Configuration imported successfully")
		}, a.mainWindow)
	})

	exportButton := widget.NewButton("Export Configuration...", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()

			if err := exportConfig(a.cfg, writer); err != nil {
				a.ShowError("Export Failed", err)
				return
			}
			a.ShowInfo("Configuration exported successfully")
		}, a.mainWindow)
	})

	importExportCard := widget.NewCard("Import/Export", "", container.NewHBox(
		importButton,
		exportButton,
	))

	saveSettingsButton := widget.NewButton("Save Settings", func() {
		a.saveConfig()
		a.ShowInfo("Settings saved successfully")
	})

	return container.NewVBox(
		generalSettingsCard,
		namingCard,
		importExportCard,
		saveSettingsButton,
	)
}

// storeFormDefaults copies the Rename tab's inputs into the configuration defaults
func (a *App) storeFormDefaults() {
	f := a.form
	a.cfg.Defaults.Prefix = f.prefixEntry.Text
	a.cfg.Defaults.UseSequential = f.sequential.Checked
	a.cfg.Defaults.StartNumber = f.startEntry.Text
	a.cfg.Defaults.DigitPadding = f.paddingEntry.Text
	a.cfg.Defaults.Types = append([]string(nil), f.typesGroup.Selected...)
	a.cfg.Defaults.Match = f.matchEntry.Text
	a.cfg.Directories.Default = f.dirEntry.Text
}
