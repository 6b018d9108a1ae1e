// Package tui implements the terminal host application around the editor
// bridge: an editor pane fed by the bridge, an output pane for run results,
// and a status bar with a transient success indicator.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BlockstreamResearch/simplicity-webide/internal/config"
	"github.com/BlockstreamResearch/simplicity-webide/internal/editor"
	"github.com/BlockstreamResearch/simplicity-webide/internal/errors"
	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/form"
	"github.com/BlockstreamResearch/simplicity-webide/internal/logging"
	"github.com/BlockstreamResearch/simplicity-webide/internal/runner"
	"github.com/BlockstreamResearch/simplicity-webide/internal/sched"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/editorview"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/keymap"
	"github.com/BlockstreamResearch/simplicity-webide/internal/tui/styles"
)

// fieldID is the host form field the editor mirrors into.
const fieldID = "program-input-field"

// flash is the transient run indicator state.
type flash int

const (
	flashNone flash = iota
	flashOK
	flashFail
)

// Model is the bubbletea host application.
type Model struct {
	cfg    *config.Config
	theme  styles.Theme
	logger *logging.Logger

	bus    *event.Bus
	doc    *form.Document
	field  *form.Field
	queue  *sched.Queue
	bridge *editor.Bridge
	runner runner.Runner

	// view is the concrete widget model, registered by the factory when
	// the bridge constructs it. nil while the bridge is uninitialized.
	view *editorview.Model

	// events carries bus events into the update loop.
	events chan tea.Msg

	width   int
	height  int
	running bool
	flash   flash
	debug   string
	errOut  string
	status  string
}

// New wires the host application: form document, bridge, widget factory,
// runner and bus. The editor is initialized immediately with the given
// initial program text.
func New(cfg *config.Config, bus *event.Bus, logger *logging.Logger, initial string) (*Model, error) {
	theme, err := styles.Resolve(cfg.Editor.Theme, cfg.Paths.ThemeDir)
	if err != nil {
		return nil, errors.NewEditorError("resolving theme", err)
	}

	m := &Model{
		cfg:    cfg,
		theme:  theme,
		logger: logger.WithComponent("tui"),
		bus:    bus,
		doc:    form.NewDocument(),
		queue:  sched.NewQueue(),
		events: make(chan tea.Msg, 64),
	}
	m.field = m.doc.Register(fieldID)
	m.runner = runner.NewCheckRunner(bus, logger)

	factory := editorview.Factory(theme, keymap.Default(), func(v *editorview.Model) {
		m.view = v
	})
	m.bridge = editor.New(m.doc, factory, bus, m.queue,
		editor.WithConfig(widgetConfig(cfg)),
		editor.WithLogger(logger),
	)

	if ok := m.bridge.Init(fieldID, initial); !ok {
		return nil, errors.NewEditorError("initializing editor", errors.ErrWidgetConstruction).WithFieldID(fieldID)
	}

	// Forward bus traffic into the update loop. The subscription stays
	// for the life of the program.
	bus.SubscribeAll(func(e event.Event) {
		select {
		case m.events <- busMsg{event: e}:
		default:
			m.logger.Warn("event channel full, dropping event", "type", e.EventType())
		}
	})

	return m, nil
}

// widgetConfig maps the application configuration onto widget construction
// options.
func widgetConfig(cfg *config.Config) editor.Config {
	return editor.Config{
		SyntaxMode:        cfg.Editor.SyntaxMode,
		Theme:             cfg.Editor.Theme,
		ShowLineNumbers:   cfg.Editor.LineNumbers,
		MatchBrackets:     cfg.Editor.MatchBrackets,
		AutoCloseBrackets: cfg.Editor.AutoCloseBrackets,
		IndentUnit:        cfg.Editor.TabWidth,
		IndentWithTabs:    cfg.Editor.IndentWithTabs,
		LineWrapping:      cfg.Editor.LineWrapping,
	}
}

// Bridge exposes the bridge for host-side callers (the CLI layer).
func (m *Model) Bridge() *editor.Bridge { return m.bridge }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.bridge.Focus()
	return m.waitForEvent()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.bridge.Refresh()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.view != nil {
			cmds = append(cmds, m.view.Update(msg))
		}

	case busMsg:
		cmds = append(cmds, m.handleEvent(msg.event), m.waitForEvent())

	case runErrMsg:
		m.running = false
		m.errOut = msg.err.Error()
		m.flash = flashFail
		cmds = append(cmds, m.flashClearCmd())

	case clearFlashMsg:
		m.flash = flashNone
	}

	// End of the update cycle: run work the bridge deferred.
	m.queue.Flush()

	return m, tea.Batch(cmds...)
}

// handleEvent reacts to one application event inside the update loop.
func (m *Model) handleEvent(e event.Event) tea.Cmd {
	switch e := e.(type) {
	case event.RunRequestedEvent:
		if m.running {
			m.status = "run already in progress"
			return nil
		}
		text, ok := m.bridge.Value()
		if !ok {
			return nil
		}
		m.running = true
		m.status = "running..."
		return m.runCmd(text)

	case event.RunFinishedEvent:
		m.running = false
		m.debug = e.Debug
		m.errOut = e.Err
		m.status = ""
		if e.Success {
			m.flash = flashOK
		} else {
			m.flash = flashFail
		}
		return m.flashClearCmd()

	case event.ConfigReloadedEvent:
		m.status = "configuration reloaded"

	}
	return nil
}

// runCmd executes the program off the update loop. The outcome arrives as a
// run.finished bus event; only infrastructure errors surface directly.
func (m *Model) runCmd(source string) tea.Cmd {
	timeout := time.Duration(m.cfg.Runner.TimeoutMs) * time.Millisecond
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if _, err := m.runner.Run(ctx, source); err != nil {
			return runErrMsg{err: err}
		}
		return nil
	}
}

// flashClearCmd schedules clearing the run indicator.
func (m *Model) flashClearCmd() tea.Cmd {
	d := time.Duration(m.cfg.Runner.FlashMs) * time.Millisecond
	if d <= 0 {
		d = 500 * time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearFlashMsg{}
	})
}

// waitForEvent blocks on the bus channel until the next event.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// layout distributes the terminal space between the panes.
func (m *Model) layout() {
	if m.view == nil || m.width == 0 {
		return
	}
	editorHeight := m.height * 2 / 3
	if editorHeight < 3 {
		editorHeight = 3
	}
	m.view.SetSize(m.width-4, editorHeight)
}
