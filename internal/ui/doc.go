// Package ui provides the LazyFloat terminal interface on top of Bubble Tea.
//
// # Architecture Overview
//
// Bubble Tea owns the loop: it calls View to draw a frame, blocks for the
// next message and hands it to Update. Model wraps a state.App value and is
// the only thing that changes it, so there is a single writer.
//
// # Event Flow
//
//  1. Key presses are mapped to state.Event values by keyMap.Event
//  2. state.Apply returns the next App and an optional Effect
//  3. EffectLogAction starts a login command on its own goroutine, bounded
//     by Options.LoginTimeout and the program context
//  4. The result comes back as a logActionMsg and becomes a notice in the
//     actions panel, or stops the program when ExitOnLoginError is set
//  5. Once App.Exit is set Update returns tea.Quit, View draws nothing and
//     any in-flight login is cancelled
//
// Window-size messages update the drawing area. Mouse, focus and paste
// messages are ignored.
//
// # Layout
//
// layout.Calculate splits the screen into the menu, a two column gap and
// the actions panel, with a one row footer showing the counter and key hints.
//
// # Key Bindings
//
//   - q or Ctrl+C: Quit
//   - Left/Right: Decrement/increment the counter
//   - L: Login
//   - Tab: Switch the focused panel
//
// Every other key is a no-op.
package ui
