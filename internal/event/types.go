package event

import "time"

// Event type identifiers published on the bus.
// Convention: "category.action".
const (
	TypeRunRequested   = "editor.run_requested"
	TypeContentChanged = "editor.content_changed"
	TypeEditorReady    = "editor.initialized"
	TypeRunStarted     = "run.started"
	TypeRunFinished    = "run.finished"
	TypeConfigReloaded = "config.reloaded"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// RunRequestedEvent is emitted when the user presses the run key combination
// in the editor (Ctrl+Enter). It carries no payload: consumers read the
// current program text from the bridge or the host form.
type RunRequestedEvent struct {
	baseEvent
}

// NewRunRequestedEvent creates a RunRequestedEvent.
func NewRunRequestedEvent() RunRequestedEvent {
	return RunRequestedEvent{baseEvent: newBaseEvent(TypeRunRequested)}
}

// ContentChangedEvent is emitted on every editor edit, after the host form
// field has been updated with the new text.
type ContentChangedEvent struct {
	baseEvent
	FieldID string // ID of the host form field mirroring the editor
	Text    string // Full editor text after the edit
}

// NewContentChangedEvent creates a ContentChangedEvent.
func NewContentChangedEvent(fieldID, text string) ContentChangedEvent {
	return ContentChangedEvent{
		baseEvent: newBaseEvent(TypeContentChanged),
		FieldID:   fieldID,
		Text:      text,
	}
}

// EditorReadyEvent is emitted once the bridge has successfully constructed
// a widget and bound it to a host form field.
type EditorReadyEvent struct {
	baseEvent
	FieldID string // ID of the bound host form field
}

// NewEditorReadyEvent creates an EditorReadyEvent.
func NewEditorReadyEvent(fieldID string) EditorReadyEvent {
	return EditorReadyEvent{
		baseEvent: newBaseEvent(TypeEditorReady),
		FieldID:   fieldID,
	}
}

// RunStartedEvent is emitted by the runner when a program run begins.
type RunStartedEvent struct {
	baseEvent
	Source string // Program text being run
}

// NewRunStartedEvent creates a RunStartedEvent.
func NewRunStartedEvent(source string) RunStartedEvent {
	return RunStartedEvent{
		baseEvent: newBaseEvent(TypeRunStarted),
		Source:    source,
	}
}

// RunFinishedEvent is emitted by the runner when a program run completes,
// successfully or not.
type RunFinishedEvent struct {
	baseEvent
	Success bool   // Whether the run succeeded
	Debug   string // Debug output collected during the run
	Err     string // Error output; empty on success
}

// NewRunFinishedEvent creates a RunFinishedEvent.
func NewRunFinishedEvent(success bool, debugOut, errOut string) RunFinishedEvent {
	return RunFinishedEvent{
		baseEvent: newBaseEvent(TypeRunFinished),
		Success:   success,
		Debug:     debugOut,
		Err:       errOut,
	}
}

// ConfigReloadedEvent is emitted when the config file changes on disk and
// has been re-read.
type ConfigReloadedEvent struct {
	baseEvent
	Path string // Path of the config file that changed
}

// NewConfigReloadedEvent creates a ConfigReloadedEvent.
func NewConfigReloadedEvent(path string) ConfigReloadedEvent {
	return ConfigReloadedEvent{
		baseEvent: newBaseEvent(TypeConfigReloaded),
		Path:      path,
	}
}
