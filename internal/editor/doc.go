// Package editor provides the bridge between a pre-built text-editing widget
// and the host application.
//
// A Bridge owns at most one live widget handle. Init binds a widget to a
// named host form field: every widget edit is copied into the field (which
// notifies its subscribers) and published on the event bus, and the run key
// chord inside the widget is translated into an application-wide run-request
// event. Value, SetValue, Refresh and Focus delegate to the widget and are
// silent no-ops while the bridge is uninitialized.
//
// The Bridge uses narrow interfaces ([Widget], [WidgetFactory]) so the
// concrete widget implementation stays encapsulated; tests substitute fakes.
// Bridges are plain caller-owned values — several can coexist, each bound to
// its own field.
//
// Lifecycle:
//
//	b := editor.New(doc, factory, bus, queue)
//	ok := b.Init("program-input-field", initialText)
//	// ... edits flow into the field and onto the bus ...
//	b.Close() // detaches the change listener and drops the handle
package editor
