//go:build !nogui

package gui

import (
	"fmt"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"smartrename/internal/errors"
	"smartrename/internal/log"
	"smartrename/internal/rename"
	"smartrename/pkg/types"
)

// renameForm holds the widgets of the Rename tab and the preview they produced
type renameForm struct {
	app *App

	dirEntry     *widget.Entry
	prefixEntry  *widget.Entry
	sequential   *widget.Check
	startEntry   *widget.Entry
	paddingEntry *widget.Entry
	typesGroup   *widget.CheckGroup
	matchEntry   *widget.Entry
	watchCheck   *widget.Check
	list         *widget.List

	plan     []types.RenamePair
	selected map[string]bool

	staleMu sync.Mutex
	stale   bool
}

func (a *App) newRenameForm() *renameForm {
	f := &renameForm{app: a, selected: map[string]bool{}}
	defaults := a.cfg.Defaults
	policy := a.cfg.Policy()

	f.dirEntry = widget.NewEntry()
	f.dirEntry.SetPlaceHolder("Folder to rename files in")
	f.dirEntry.SetText(a.cfg.Directories.Default)

	f.prefixEntry = widget.NewEntry()
	f.prefixEntry.SetPlaceHolder("Prefix, e.g. img_")
	f.prefixEntry.SetText(defaults.Prefix)

	f.startEntry = widget.NewEntry()
	f.startEntry.SetText(fmt.Sprint(policy.StartNumber))
	f.paddingEntry = widget.NewEntry()
	f.paddingEntry.SetText(fmt.Sprint(policy.DigitPadding))

	f.sequential = widget.NewCheck("Sequential numbering", func(on bool) {
		f.setNumberingEnabled(on)
	})
	f.sequential.SetChecked(policy.UseSequential)
	f.setNumberingEnabled(policy.UseSequential)

	f.typesGroup = widget.NewCheckGroup(types.AllCategorySet().Names(), nil)
	f.typesGroup.Horizontal = true
	if categories, err := a.cfg.Categories(); err == nil {
		f.typesGroup.SetSelected(categories.Names())
	}

	f.matchEntry = widget.NewEntry()
	f.matchEntry.SetPlaceHolder("Optional name pattern, e.g. IMG_*")
	f.matchEntry.SetText(defaults.Match)

	f.watchCheck = widget.NewCheck("Watch folder for changes", f.setWatching)

	f.list = widget.NewList(
		func() int {
			return len(f.plan)
		},
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewCheck("", nil), widget.NewLabel("Template"))
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			row := o.(*fyne.Container)
			check := row.Objects[0].(*widget.Check)
			label := row.Objects[1].(*widget.Label)
			pair := f.plan[id]

			check.OnChanged = nil
			check.SetChecked(f.selected[pair.Current])
			check.OnChanged = func(on bool) {
				f.setSelected(pair.Current, on)
			}
			label.SetText(pair.String())
		},
	)

	return f
}

func (f *renameForm) content() fyne.CanvasObject {
	browse := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			f.dirEntry.SetText(uri.Path())
			f.preview()
		}, f.app.mainWindow)
	})

	form := widget.NewForm(
		widget.NewFormItem("Folder", container.NewBorder(nil, nil, nil, browse, f.dirEntry)),
		widget.NewFormItem("Prefix", f.prefixEntry),
		widget.NewFormItem("", f.sequential),
		widget.NewFormItem("Start number", f.startEntry),
		widget.NewFormItem("Digits", f.paddingEntry),
		widget.NewFormItem("File types", f.typesGroup),
		widget.NewFormItem("Match", f.matchEntry),
		widget.NewFormItem("", f.watchCheck),
	)

	actions := container.NewHBox(
		widget.NewButton("Preview", f.preview),
		widget.NewButton("Select All", func() { f.setAllSelected(true) }),
		widget.NewButton("Deselect All", func() { f.setAllSelected(false) }),
		widget.NewButton("Rename Selected", f.renameSelected),
	)

	return container.NewBorder(
		container.NewVBox(form, actions),
		nil, nil, nil,
		container.NewScroll(f.list),
	)
}

func (f *renameForm) setNumberingEnabled(on bool) {
	if on {
		f.startEntry.Enable()
		f.paddingEntry.Enable()
		return
	}
	f.startEntry.Disable()
	f.paddingEntry.Disable()
}

// request collects the form into a plan request. Bad numbers fall back to the defaults.
func (f *renameForm) request() (rename.PlanRequest, error) {
	categories, err := types.ParseCategories(f.typesGroup.Selected)
	if err != nil {
		return rename.PlanRequest{}, err
	}
	return rename.PlanRequest{
		Directory: strings.TrimSpace(f.dirEntry.Text),
		Policy: types.NamingPolicy{
			Prefix:        strings.TrimSpace(f.prefixEntry.Text),
			UseSequential: f.sequential.Checked,
			StartNumber:   types.ParseStartNumber(f.startEntry.Text),
			DigitPadding:  types.ParseDigitPadding(f.paddingEntry.Text),
		},
		Categories: categories,
		Match:      strings.TrimSpace(f.matchEntry.Text),
	}, nil
}

// preview rescans the folder and shows the new plan with every row selected
func (f *renameForm) preview() {
	f.setStale(false)
	req, err := f.request()
	if err == nil {
		f.plan, err = f.app.renamer.Preview(req)
	}
	f.selected = make(map[string]bool, len(f.plan))
	if err != nil {
		f.plan = nil
		f.list.Refresh()
		f.app.SetStatus(err.Error())
		if !errors.IsValidation(err) {
			log.LogWithError(err).Warn("Preview failed")
		}
		return
	}

	for _, pair := range f.plan {
		f.selected[pair.Current] = true
	}
	f.list.Refresh()
	f.app.SetStatus(fmt.Sprintf("%d files planned", len(f.plan)))

	if f.watchCheck.Checked {
		f.setWatching(true)
	}
}

func (f *renameForm) setSelected(name string, on bool) {
	f.selected[name] = on
	f.app.SetStatus(fmt.Sprintf("%d of %d selected", len(f.selection()), len(f.plan)))
}

func (f *renameForm) setAllSelected(on bool) {
	for _, pair := range f.plan {
		f.selected[pair.Current] = on
	}
	f.list.Refresh()
	f.app.SetStatus(fmt.Sprintf("%d of %d selected", len(f.selection()), len(f.plan)))
}

func (f *renameForm) selection() []types.RenamePair {
	names := make([]string, 0, len(f.selected))
	for name, on := range f.selected {
		if on {
			names = append(names, name)
		}
	}
	return rename.Select(f.plan, names)
}

func (f *renameForm) renameSelected() {
	if f.isStale() {
		f.app.SetStatus("The folder changed since the preview, press Preview first")
		return
	}
	subset := f.selection()
	if err := rename.ValidateSelection(subset); err != nil {
		f.app.SetStatus(err.Error())
		return
	}

	if !f.app.cfg.Settings.Confirm {
		f.execute(subset)
		return
	}
	msg := fmt.Sprintf("Rename %d files in %s?", len(subset), f.app.renamer.Directory())
	dialog.ShowConfirm("Rename files", msg, func(ok bool) {
		if ok {
			f.execute(subset)
		}
	}, f.app.mainWindow)
}

func (f *renameForm) execute(subset []types.RenamePair) {
	f.app.own.Expect(subset)
	outcome := f.app.renamer.Execute(subset)
	f.app.own.Settle()
	f.preview()
	f.app.SetStatus(outcome.String())
	if outcome.HasErrors() {
		f.app.ShowInfo(fmt.Sprintf("%s. Some files could not be renamed, see the log for details.", outcome))
	}
}

func (f *renameForm) setWatching(on bool) {
	if !on {
		f.app.stopWatching()
		return
	}
	dir := strings.TrimSpace(f.dirEntry.Text)
	if err := f.app.watchDirectory(dir); err != nil {
		f.app.SetStatus(fmt.Sprintf("Cannot watch %s: %v", dir, err))
	}
}

func (f *renameForm) markStale(changed int) {
	f.setStale(true)
	f.app.SetStatus(fmt.Sprintf("%d entries changed in the folder, press Preview to rescan", changed))
}

func (f *renameForm) setStale(stale bool) {
	f.staleMu.Lock()
	defer f.staleMu.Unlock()
	f.stale = stale
}

func (f *renameForm) isStale() bool {
	f.staleMu.Lock()
	defer f.staleMu.Unlock()
	return f.stale
}
