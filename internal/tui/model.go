// Package tui is the terminal front end: a preview of the planned renames
// with per-row selection, confirmation and execution.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"smartrename/internal/analysis"
	"smartrename/internal/errors"
	"smartrename/internal/log"
	"smartrename/internal/rename"
	"smartrename/internal/tui/components"
	"smartrename/internal/watch"
	"smartrename/pkg/types"
)

// Mode is what the keyboard currently drives
type Mode int

const (
	Browse Mode = iota
	Confirm
	Running
)

// Messages
type (
	executedMsg struct {
		outcome types.Outcome
	}
	changeMsg watch.Change
)

// Option configures a Model
type Option func(*Model)

// WithRenamer replaces the planner, mainly for tests
func WithRenamer(r rename.Renamer) Option {
	return func(m *Model) {
		m.renamer = r
	}
}

// WithInspector sets the engine used for the detail line
func WithInspector(e *analysis.Engine) Option {
	return func(m *Model) {
		m.inspector = e
	}
}

// WithChanges subscribes the model to directory change batches
func WithChanges(ch <-chan watch.Change) Option {
	return func(m *Model) {
		m.changes = ch
	}
}

type Model struct {
	renamer   rename.Renamer
	inspector *analysis.Engine
	request   rename.PlanRequest
	changes   <-chan watch.Change
	own       *watch.Suppressor

	// Preview state
	plan     []types.RenamePair
	selected map[string]bool
	cursor   int
	stale    bool
	err      error
	outcome  *types.Outcome
	detail   string

	mode     Mode
	keys     KeyMap
	help     help.Model
	status   *components.StatusBar
	height   int
	quitting bool
}

// New creates a model previewing req. Nothing is scanned until Init.
func New(req rename.PlanRequest, opts ...Option) *Model {
	m := &Model{
		request:  req,
		selected: make(map[string]bool),
		mode:     Browse,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		status:   components.NewStatusBar(),
		own:      watch.NewSuppressor(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.renamer == nil {
		m.renamer = rename.CurrentRenamerFactory()
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	m.Refresh()
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		change, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg(change)
	}
}

// Refresh rescans the directory and rebuilds the preview. Every row starts selected.
func (m *Model) Refresh() {
	plan, err := m.renamer.Preview(m.request)
	m.plan = plan
	m.err = err
	m.stale = false
	m.selected = make(map[string]bool, len(plan))
	for _, pair := range plan {
		m.selected[pair.Current] = true
	}
	if m.cursor >= len(plan) {
		m.cursor = max(len(plan)-1, 0)
	}
	m.updateDetail()

	if err != nil {
		if errors.IsValidation(err) {
			m.status.SetWarning(err.Error())
		} else {
			m.status.SetError(err.Error())
		}
		return
	}
	m.status.SetText(fmt.Sprintf("%d files planned", len(plan)))
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case executedMsg:
		m.status.SetLoading(false)
		m.mode = Browse
		outcome := msg.outcome
		m.Refresh()
		m.outcome = &outcome
		if outcome.HasErrors() {
			m.status.SetWarning(fmt.Sprintf("%s, see log for details", outcome))
		} else {
			m.status.SetSuccess(outcome.String())
		}
		return m, nil

	case changeMsg:
		if m.own.Ignore(watch.Change(msg)) {
			log.Debugf("Ignoring %d entries changed by our own rename", len(msg.Names))
			return m, m.waitForChange()
		}
		if m.mode != Running {
			m.stale = true
			m.status.SetWarning(fmt.Sprintf("%d entries changed on disk, press r to rescan", len(msg.Names)))
		}
		return m, m.waitForChange()
	}

	return m, m.status.Update(msg)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case Confirm:
		return m.handleConfirmKeys(msg)
	case Running:
		// Input is ignored until the batch finishes
		return m, nil
	default:
		return m.handleBrowseKeys(msg)
	}
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.GotoTop):
		m.moveCursor(-len(m.plan))
	case key.Matches(msg, m.keys.GotoEnd):
		m.moveCursor(len(m.plan))
	case key.Matches(msg, m.keys.Toggle):
		if len(m.plan) > 0 {
			name := m.plan[m.cursor].Current
			m.selected[name] = !m.selected[name]
		}
	case key.Matches(msg, m.keys.SelectAll):
		for _, pair := range m.plan {
			m.selected[pair.Current] = true
		}
	case key.Matches(msg, m.keys.SelectNone):
		m.selected = make(map[string]bool, len(m.plan))
	case key.Matches(msg, m.keys.Rescan):
		m.outcome = nil
		m.Refresh()
	case key.Matches(msg, m.keys.Rename):
		m.requestConfirm()
	}
	return m, nil
}

func (m *Model) requestConfirm() {
	if m.stale {
		m.status.SetWarning("Preview is out of date, press r to rescan first")
		return
	}
	if err := rename.ValidateSelection(m.Selection()); err != nil {
		m.status.SetWarning(err.Error())
		return
	}
	m.mode = Confirm
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		subset := m.Selection()
		m.mode = Running
		log.LogWithFields(log.F("directory", m.request.Directory), log.F("count", len(subset))).Info("Renaming selected files")
		m.status.SetText(fmt.Sprintf("Renaming %d files", len(subset)))
		renamer, own := m.renamer, m.own
		own.Expect(subset)
		run := func() tea.Msg {
			outcome := renamer.Execute(subset)
			own.Settle()
			return executedMsg{outcome: outcome}
		}
		return m, tea.Batch(run, m.status.SetLoading(true))
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Quit):
		m.mode = Browse
		m.status.SetText("Rename cancelled")
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.plan) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.plan)-1)
	m.updateDetail()
}

func (m *Model) pageSize() int {
	if m.height <= 0 {
		return 10
	}
	return max(m.height-12, 1)
}

func (m *Model) updateDetail() {
	m.detail = ""
	if m.inspector == nil || len(m.plan) == 0 {
		return
	}
	info, err := m.inspector.Inspect(filepath.Join(m.request.Directory, m.plan[m.cursor].Current))
	if err != nil {
		return
	}
	m.detail = fmt.Sprintf("%s  %s  %s", info.Category, info.ContentType, info.HumanSize())
}

// Selection returns the selected part of the plan in plan order
func (m *Model) Selection() []types.RenamePair {
	names := make([]string, 0, len(m.selected))
	for name, on := range m.selected {
		if on {
			names = append(names, name)
		}
	}
	return rename.Select(m.plan, names)
}

// Getters
func (m *Model) Plan() []types.RenamePair {
	return m.plan
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) IsSelected(name string) bool {
	return m.selected[name]
}

func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) Stale() bool {
	return m.stale
}

func (m *Model) Err() error {
	return m.err
}

// Outcome returns the counts of the last batch, or nil before any rename
func (m *Model) Outcome() *types.Outcome {
	return m.outcome
}

// StatusText returns the status line without styling
func (m *Model) StatusText() string {
	return m.status.Text()
}
