// Package output renders command results and errors for the pathlist CLI.
//
// Human-facing messages are styled with lipgloss. Results can be emitted as
// plain text or encoded as JSON or YAML for scripting.
package output
