// Package messages is the leveled logging subsystem used by the serptools
// readers.
//
// Import path: github.com/serptools/serptools/messages
//
// Messages are routed through a process-wide registry of [Handler] values.
// The default registry holds a single [SlogHandler] writing to stderr at
// info level; handlers can be added and removed at runtime, which is how
// the logtest package swaps in its capturing handler during tests.
//
// Emit with the leveled package functions, optionally attaching slog-style
// alternating key/value pairs:
//
//	messages.Warn("unexpected record", "name", name, "line", lineNo)
//
// [CaptureHandler] stores messages by severity level instead of emitting
// them; it exists for the logtest harness but can be used directly wherever
// captured output needs inspecting.
//
// The registry guards its handler list with a mutex, but attach/detach style
// swaps span several calls and must not run concurrently; run tests that
// capture logs sequentially.
package messages
