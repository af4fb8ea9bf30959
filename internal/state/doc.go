// Package state holds the application state machine for LazyFloat.
//
// # Overview
//
// The whole UI is driven by one small value, App, which records the counter,
// which panel has focus and whether the user asked to exit. Input is reduced
// to logical events (Quit, NavigateLeft, ...) before it reaches this package,
// so nothing here knows about key codes or terminals.
//
// # Transitions
//
// Apply is a pure function:
//
//	next, effect := state.Apply(current, event)
//
//	Event          Change                      Effect
//	Quit           Exit = true                 none
//	NavigateLeft   Counter - 1                 none
//	NavigateRight  Counter + 1                 none
//	LogAction      none                        EffectLogAction
//	CycleFocus     Menu <-> Actions            none
//	anything else  none                        none
//
// Once Exit is set the state is final: Apply returns it unchanged with no
// effect for every event.
//
// # Effects
//
// Apply never performs I/O. Side effects are described by the returned
// Effect and executed by the caller. The ui package turns EffectLogAction
// into a background command.
//
// # Counter
//
// The counter is a signed 64-bit integer with no clamping. Decrementing from
// zero yields -1 rather than wrapping around an unsigned range.
//
// # Ownership
//
// App is a plain value. The ui model owns the only copy and replaces it with
// the result of Apply from inside Bubble Tea's Update, so there is exactly one
// writer and no locking.
package state
