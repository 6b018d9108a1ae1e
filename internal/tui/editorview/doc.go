// Package editorview adapts the bubbles textarea widget to the editor.Widget
// interface the bridge delegates to.
//
// The textarea brings its own editing key handling, cursor movement and
// rendering; this package layers the IDE's bindings on top (indent, dedent,
// run chord, bracket auto-close) and reports content changes through the
// single change hook the bridge installs.
package editorview
