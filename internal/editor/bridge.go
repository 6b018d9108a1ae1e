package editor

import (
	"fmt"
	"sync"

	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/form"
	"github.com/BlockstreamResearch/simplicity-webide/internal/logging"
	"github.com/BlockstreamResearch/simplicity-webide/internal/sched"
)

// Bridge binds one text-editing widget to one host form field.
//
// The zero state is uninitialized: Value reports absence and the other
// delegating operations are silent no-ops. A successful Init makes the
// bridge ready; calling Init again replaces the widget, releasing the
// previous handle's hooks first. Close returns the bridge to the
// uninitialized state.
type Bridge struct {
	doc       *form.Document
	factory   WidgetFactory
	bus       *event.Bus
	scheduler sched.Scheduler
	logger    *logging.Logger
	widgetCfg Config

	mu      sync.Mutex
	widget  Widget
	fieldID string
}

// New creates a Bridge over the given document.
//
// All collaborators must be non-nil. Passing nil panics early to surface
// wiring bugs immediately.
func New(doc *form.Document, factory WidgetFactory, bus *event.Bus, scheduler sched.Scheduler, opts ...Option) *Bridge {
	if doc == nil {
		panic("editor: form.Document must not be nil")
	}
	if factory == nil {
		panic("editor: WidgetFactory must not be nil")
	}
	if bus == nil {
		panic("editor: event.Bus must not be nil")
	}
	if scheduler == nil {
		panic("editor: sched.Scheduler must not be nil")
	}

	cfg := &config{
		widgetConfig: DefaultConfig(),
		logger:       logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NopLogger()
	}

	return &Bridge{
		doc:       doc,
		factory:   factory,
		bus:       bus,
		scheduler: scheduler,
		logger:    cfg.logger.WithComponent("bridge"),
		widgetCfg: cfg.widgetConfig,
	}
}

// Init binds a widget to the form field with the given ID, seeding it with
// initialValue when non-empty. It returns false, without constructing a
// widget, when the field does not exist; any error or panic during widget
// construction is logged and also converted to a false return. On success
// the previous widget handle, if any, is released first.
func (b *Bridge) Init(fieldID, initialValue string) bool {
	field, ok := b.doc.Lookup(fieldID)
	if !ok {
		b.logger.Warn("host form field not found", "field_id", fieldID)
		return false
	}

	widget, err := b.construct(initialValue)
	if err != nil {
		b.logger.Error("widget construction failed", "field_id", fieldID, "error", err)
		return false
	}

	widget.SetOnChange(func(text string) {
		field.Set(text)
		b.bus.Publish(event.NewContentChangedEvent(fieldID, text))
	})
	widget.SetOnRun(func() {
		b.bus.Publish(event.NewRunRequestedEvent())
	})

	b.mu.Lock()
	old := b.widget
	b.widget = widget
	b.fieldID = fieldID
	b.mu.Unlock()

	if old != nil {
		release(old)
	}

	b.bus.Publish(event.NewEditorReadyEvent(fieldID))
	b.logger.Info("editor initialized", "field_id", fieldID, "seeded", initialValue != "")
	return true
}

// construct runs the widget factory, converting panics into errors so a
// misbehaving widget implementation cannot take down the host.
func (b *Bridge) construct(initial string) (w Widget, err error) {
	defer func() {
		if r := recover(); r != nil {
			w = nil
			err = fmt.Errorf("widget factory panicked: %v", r)
		}
	}()

	w, err = b.factory(b.widgetCfg, initial)
	if err == nil && w == nil {
		err = fmt.Errorf("widget factory returned no widget")
	}
	return w, err
}

// Value returns the widget's current text. ok is false while uninitialized.
func (b *Bridge) Value() (text string, ok bool) {
	w := b.current()
	if w == nil {
		return "", false
	}
	return w.Value(), true
}

// SetValue replaces the widget's content; an empty string clears it.
// No-op while uninitialized.
func (b *Bridge) SetValue(text string) {
	if w := b.current(); w != nil {
		w.SetValue(text)
	}
}

// Refresh schedules a widget layout refresh for after the current update
// cycle. Widgets hidden when content changed need this once they become
// visible again. No-op while uninitialized.
func (b *Bridge) Refresh() {
	w := b.current()
	if w == nil {
		return
	}
	b.scheduler.Defer(w.Refresh)
}

// Focus moves input focus to the widget. No-op while uninitialized.
func (b *Bridge) Focus() {
	if w := b.current(); w != nil {
		w.Focus()
	}
}

// Instance exposes the raw widget handle for advanced host-side use.
// It deliberately breaks encapsulation as an escape hatch; ok is false
// while uninitialized.
func (b *Bridge) Instance() (w Widget, ok bool) {
	w = b.current()
	return w, w != nil
}

// FieldID returns the ID of the bound host form field, or "" while
// uninitialized.
func (b *Bridge) FieldID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.fieldID
}

// Close releases the widget handle and its hooks, returning the bridge to
// the uninitialized state. Safe to call repeatedly.
func (b *Bridge) Close() {
	b.mu.Lock()
	old := b.widget
	fieldID := b.fieldID
	b.widget = nil
	b.fieldID = ""
	b.mu.Unlock()

	if old != nil {
		release(old)
		b.logger.Info("editor closed", "field_id", fieldID)
	}
}

// current returns the live widget handle, or nil while uninitialized.
func (b *Bridge) current() Widget {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.widget
}

// release detaches both hooks so edits on a replaced widget no longer reach
// the form field or the bus.
func release(w Widget) {
	w.SetOnChange(nil)
	w.SetOnRun(nil)
}
