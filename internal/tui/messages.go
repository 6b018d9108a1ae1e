package tui

import "github.com/BlockstreamResearch/simplicity-webide/internal/event"

// busMsg delivers an application event from the bus into the update loop.
type busMsg struct {
	event event.Event
}

// clearFlashMsg clears the transient run success/failure indicator.
type clearFlashMsg struct{}

// runErrMsg reports an infrastructure failure from the run command, such as
// a timeout. Ordinary program failures arrive as run.finished events.
type runErrMsg struct {
	err error
}
