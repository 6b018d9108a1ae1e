// Package form models the host application's form surface: a document of
// named fields whose values non-editor-aware code can read and observe.
//
// The editor bridge mirrors widget content into one of these fields on every
// edit, so form submission and any reactive layer see text changes without
// polling the widget. Change propagation is an explicit subscription
// interface rather than a framework-specific notification mechanism.
package form
