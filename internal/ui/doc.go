// Package ui contains the Bubble Tea program for the URL opener popup: a
// single screen with a URL field, a parse-mode toggle, the segment row, the
// language toggles, and the open-all button.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, resizes, host lookup results, dispatcher events).
//   - Key presses go to the focused area (internal/ui/input.go). tab and
//     shift+tab move focus; ctrl+o confirms from anywhere.
//
// State ownership:
//   - URL, mode, chosen segment, and enabled codes live in session.Session;
//     the UI never keeps its own copy and re-reads derived values on render.
//   - Cursor, viewport, and fuzzy filter of the segment row and language list
//     live in internal/ui/state.Level.
//
// Host interactions:
//   - The active tab and persisted selection lookups run once as tea.Cmd
//     values issued by Init through the internal/ui/command bus.
//   - Writes and tab opens are queued on host.Dispatcher by the session; the
//     model waits on the dispatcher's event channel to surface failures.
package ui
