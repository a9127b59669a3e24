// Package ui contains the Bubble Tea program that renders a navigation widget
// as a terminal side panel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, mouse clicks, window
//     resizes, markup reloads).
//   - Key and mouse handlers translate input into nav.Event values and hand
//     them to the bound nav.Widget. Enter on a branch produces a keyboard
//     activation followed by the link's own activation; space and clicks on
//     the row body produce a plain activation.
//   - The Model is itself a nav.Sink: expansion changes rebuild the visible
//     rows from the widget's reachable nodes, so the cursor only ever moves
//     through the current tab order.
//
// State ownership:
//   - Selection and expansion live in the nav.Widget; the Model never mutates
//     them directly.
//   - Cursor, viewport, and the jump query live in internal/ui/state.Panel.
//   - Widgets are created and released through a nav.Registry, which is how a
//     markup reload swaps the widget while restoring its in-session state.
package ui
