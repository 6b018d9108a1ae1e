// Package internal contains integration tests that verify the editor bridge,
// form registry, event bus, scheduler, and runner work together correctly.
package internal

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/BlockstreamResearch/simplicity-webide/internal/editor"
	"github.com/BlockstreamResearch/simplicity-webide/internal/event"
	"github.com/BlockstreamResearch/simplicity-webide/internal/form"
	"github.com/BlockstreamResearch/simplicity-webide/internal/runner"
	"github.com/BlockstreamResearch/simplicity-webide/internal/sched"
)

// stubWidget is a minimal editor.Widget used to drive the bridge without a
// terminal. Edits made through edit() flow through the change hook exactly
// like keystrokes in the real textarea-backed widget.
type stubWidget struct {
	text      string
	refreshed int
	focused   bool
	onChange  func(string)
	onRun     func()
}

func (w *stubWidget) Value() string { return w.text }

func (w *stubWidget) SetValue(text string) {
	changed := w.text != text
	w.text = text
	if changed && w.onChange != nil {
		w.onChange(text)
	}
}

func (w *stubWidget) Focus()   { w.focused = true }
func (w *stubWidget) Refresh() { w.refreshed++ }

func (w *stubWidget) SetOnChange(fn func(string)) { w.onChange = fn }
func (w *stubWidget) SetOnRun(fn func())          { w.onRun = fn }

// edit simulates the user typing: the widget mutates its own content and
// reports the new value through the change hook.
func (w *stubWidget) edit(text string) {
	w.text = text
	if w.onChange != nil {
		w.onChange(text)
	}
}

// pressRun simulates the user pressing the run key binding.
func (w *stubWidget) pressRun() {
	if w.onRun != nil {
		w.onRun()
	}
}

// TestBridgeFormBusIntegration wires a bridge, form document, and event bus
// together and verifies that widget edits propagate to the backing field and
// onto the bus, the way the TUI composes these pieces.
func TestBridgeFormBusIntegration(t *testing.T) {
	doc := form.NewDocument()
	field := doc.Register("program-input-field")

	bus := event.NewBus()
	queue := sched.NewQueue()

	var widget *stubWidget
	factory := func(cfg editor.Config, initial string) (editor.Widget, error) {
		widget = &stubWidget{text: initial}
		return widget, nil
	}

	var mu sync.Mutex
	var published []event.Event
	bus.SubscribeAll(func(e event.Event) {
		mu.Lock()
		published = append(published, e)
		mu.Unlock()
	})

	bridge := editor.New(doc, factory, bus, queue)
	if !bridge.Init("program-input-field", "initial program") {
		t.Fatal("Init should succeed for a registered field")
	}

	// The widget is seeded without notifying field listeners.
	if widget.text != "initial program" {
		t.Errorf("Widget should be seeded with the initial value, got %q", widget.text)
	}
	if field.Value() != "" {
		t.Errorf("Seeding must not write the field, got %q", field.Value())
	}

	bridge.Focus()
	if !widget.focused {
		t.Error("Focus should reach the widget")
	}

	// An edit in the widget reaches the backing field and the bus.
	widget.edit("word jet_one")

	if field.Value() != "word jet_one" {
		t.Errorf("Field value = %q, want %q", field.Value(), "word jet_one")
	}

	mu.Lock()
	types := eventTypes(published)
	mu.Unlock()

	if !containsType(types, event.TypeEditorReady) {
		t.Errorf("Expected %s on the bus, got %v", event.TypeEditorReady, types)
	}
	if !containsType(types, event.TypeContentChanged) {
		t.Errorf("Expected %s on the bus, got %v", event.TypeContentChanged, types)
	}

	// Run requests forward through the bridge onto the bus.
	widget.pressRun()

	mu.Lock()
	types = eventTypes(published)
	mu.Unlock()

	if !containsType(types, event.TypeRunRequested) {
		t.Errorf("Expected %s on the bus, got %v", event.TypeRunRequested, types)
	}
}

// TestBridgeRunnerRoundTrip drives the full edit-then-run cycle: a widget
// edit lands in the field, a run request triggers the runner against the
// field content, and the outcome is published on the bus.
func TestBridgeRunnerRoundTrip(t *testing.T) {
	doc := form.NewDocument()
	doc.Register("program-input-field")

	bus := event.NewBus()
	queue := sched.NewQueue()

	var widget *stubWidget
	factory := func(cfg editor.Config, initial string) (editor.Widget, error) {
		widget = &stubWidget{text: initial}
		return widget, nil
	}

	check := runner.NewCheckRunner(bus, nil)

	var mu sync.Mutex
	var results []event.Event
	bus.Subscribe(event.TypeRunFinished, func(e event.Event) {
		mu.Lock()
		results = append(results, e)
		mu.Unlock()
	})

	bridge := editor.New(doc, factory, bus, queue)
	if !bridge.Init("program-input-field", "") {
		t.Fatal("Init should succeed")
	}

	// Wire run requests to the runner the way the TUI model does,
	// sourcing the program text from the backing field.
	bus.Subscribe(event.TypeRunRequested, func(e event.Event) {
		source, ok := bridge.Value()
		if !ok {
			t.Error("Bridge should report a value while initialized")
			return
		}
		if _, err := check.Run(context.Background(), source); err != nil {
			t.Errorf("Run failed: %v", err)
		}
	})

	widget.edit("main := comp\n\tword_one\n\tunit")
	widget.pressRun()

	mu.Lock()
	defer mu.Unlock()

	if len(results) != 1 {
		t.Fatalf("Expected 1 run result, got %d", len(results))
	}

	finished, ok := results[0].(event.RunFinishedEvent)
	if !ok {
		t.Fatalf("Expected event.RunFinishedEvent, got %T", results[0])
	}
	if !finished.Success {
		t.Errorf("Expected run to succeed, got error %q", finished.Err)
	}
	if !strings.Contains(finished.Debug, "3 lines") {
		t.Errorf("Debug output should mention line count, got %q", finished.Debug)
	}
}

// TestBridgeRunnerFailurePath verifies that an unbalanced program produces a
// failed run event carrying a diagnostic.
func TestBridgeRunnerFailurePath(t *testing.T) {
	bus := event.NewBus()
	check := runner.NewCheckRunner(bus, nil)

	var mu sync.Mutex
	var finished *event.RunFinishedEvent
	bus.Subscribe(event.TypeRunFinished, func(e event.Event) {
		if fe, ok := e.(event.RunFinishedEvent); ok {
			mu.Lock()
			finished = &fe
			mu.Unlock()
		}
	})

	result, err := check.Run(context.Background(), "main := comp (pair unit")
	if err != nil {
		t.Fatalf("Run returned transport error: %v", err)
	}
	if result.Success {
		t.Error("Unbalanced brackets should fail the check")
	}

	mu.Lock()
	defer mu.Unlock()

	if finished == nil {
		t.Fatal("Expected a run.finished event")
	}
	if finished.Success {
		t.Error("run.finished should report failure")
	}
	if finished.Err == "" {
		t.Error("run.finished should carry a diagnostic")
	}
}

// TestDeferredRefreshFlush verifies the scheduler contract the TUI relies
// on: Refresh is deferred until the queue is flushed at the end of the
// update cycle, then runs exactly once.
func TestDeferredRefreshFlush(t *testing.T) {
	doc := form.NewDocument()
	doc.Register("program-input-field")

	queue := sched.NewQueue()

	var widget *stubWidget
	factory := func(cfg editor.Config, initial string) (editor.Widget, error) {
		widget = &stubWidget{text: initial}
		return widget, nil
	}

	bridge := editor.New(doc, factory, event.NewBus(), queue)
	if !bridge.Init("program-input-field", "") {
		t.Fatal("Init should succeed")
	}

	bridge.Refresh()
	bridge.Refresh()

	if widget.refreshed != 0 {
		t.Errorf("Refresh should be deferred, widget saw %d", widget.refreshed)
	}

	queue.Flush()

	if widget.refreshed != 2 {
		t.Errorf("Expected 2 refreshes after flush, got %d", widget.refreshed)
	}
}

// TestReInitDetachesOldWidget verifies that re-initializing the bridge onto
// another field releases the previous widget: its hooks are detached so
// stale edits no longer reach the form or the bus.
func TestReInitDetachesOldWidget(t *testing.T) {
	doc := form.NewDocument()
	first := doc.Register("first")
	first.Set("one")
	second := doc.Register("second")
	second.Set("two")

	bus := event.NewBus()

	var widgets []*stubWidget
	factory := func(cfg editor.Config, initial string) (editor.Widget, error) {
		w := &stubWidget{text: initial}
		widgets = append(widgets, w)
		return w, nil
	}

	bridge := editor.New(doc, factory, bus, sched.Immediate{})
	if !bridge.Init("first", "one") {
		t.Fatal("First Init should succeed")
	}
	if !bridge.Init("second", "two") {
		t.Fatal("Second Init should succeed")
	}

	if len(widgets) != 2 {
		t.Fatalf("Expected 2 widgets constructed, got %d", len(widgets))
	}

	// Edits through the released widget must not leak into either field.
	widgets[0].edit("stale")

	if first.Value() != "one" {
		t.Errorf("First field should be untouched, got %q", first.Value())
	}
	if second.Value() != "two" {
		t.Errorf("Second field should be untouched, got %q", second.Value())
	}

	// The live widget still syncs to its field.
	widgets[1].edit("fresh")
	if second.Value() != "fresh" {
		t.Errorf("Second field = %q, want %q", second.Value(), "fresh")
	}
}

// TestConcurrentFieldUpdates verifies that concurrent Set calls on a field
// are safe and every change notification is delivered.
func TestConcurrentFieldUpdates(t *testing.T) {
	field := form.NewField("concurrent")

	var mu sync.Mutex
	var notified int
	field.Subscribe(func(change form.Change) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	const writers = 50
	for i := 0; i < writers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			field.Set("value-" + string(rune('a'+i%26)) + strings.Repeat("x", i))
		}()
	}
	wg.Wait()

	mu.Lock()
	count := notified
	mu.Unlock()

	// Set notifies on every call, so every write is observed.
	if count != writers {
		t.Errorf("Expected %d notifications, got %d", writers, count)
	}
}

// TestRunnerContextCancellation verifies the runner honors an already
// canceled context instead of publishing a result.
func TestRunnerContextCancellation(t *testing.T) {
	bus := event.NewBus()
	check := runner.NewCheckRunner(bus, nil)

	var mu sync.Mutex
	var finished int
	bus.Subscribe(event.TypeRunFinished, func(e event.Event) {
		mu.Lock()
		finished++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := check.Run(ctx, "main := unit")
	if err == nil {
		t.Error("Expected error from canceled context")
	}

	mu.Lock()
	defer mu.Unlock()
	if finished != 0 {
		t.Errorf("Canceled run should not publish run.finished, got %d", finished)
	}
}

// TestEventTimestamps verifies events created across the stack carry
// timestamps from the moment of construction.
func TestEventTimestamps(t *testing.T) {
	before := time.Now()

	events := []event.Event{
		event.NewRunRequestedEvent(),
		event.NewContentChangedEvent("program-input-field", "text"),
		event.NewEditorReadyEvent("program-input-field"),
		event.NewRunStartedEvent("main := unit"),
		event.NewRunFinishedEvent(true, "debug", ""),
		event.NewConfigReloadedEvent("/tmp/config.yaml"),
	}

	after := time.Now()

	for i, e := range events {
		if e.EventType() == "" {
			t.Errorf("Event %d has empty type", i)
		}
		ts := e.Timestamp()
		if ts.Before(before) || ts.After(after) {
			t.Errorf("Event %d timestamp %v not in range [%v, %v]", i, ts, before, after)
		}
	}
}

func eventTypes(events []event.Event) []string {
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.EventType()
	}
	return types
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
