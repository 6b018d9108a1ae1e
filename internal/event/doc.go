// Package event defines the application event bus and event types for the
// web IDE. Events decouple the editor bridge from the host application: the
// bridge publishes notifications (run requested, content changed) without
// knowing who consumes them, and the host wires runners and UI updates by
// subscribing.
package event
