package state

// Focus identifies the panel that currently has keyboard focus.
type Focus int

const (
	FocusMenu Focus = iota
	FocusActions
)

func (f Focus) String() string {
	switch f {
	case FocusMenu:
		return "Menu"
	case FocusActions:
		return "Actions"
	default:
		return "Unknown"
	}
}

// Next returns the other panel. There are exactly two, so this is a toggle.
func (f Focus) Next() Focus {
	if f == FocusActions {
		return FocusMenu
	}
	return FocusActions
}

// Event is a logical input action, decoupled from raw key codes.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventNavigateLeft
	EventNavigateRight
	EventLogAction
	EventCycleFocus
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "Quit"
	case EventNavigateLeft:
		return "NavigateLeft"
	case EventNavigateRight:
		return "NavigateRight"
	case EventLogAction:
		return "LogAction"
	case EventCycleFocus:
		return "CycleFocus"
	default:
		return "None"
	}
}

// Effect describes work the caller must perform after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectLogAction
)

// App is the complete application state. The zero value is the initial
// state: counter 0, menu focused, not exiting.
type App struct {
	Counter int64
	Focus   Focus
	Exit    bool
}

// New returns the initial state.
func New() App {
	return App{}
}

// Focused reports whether f is the focused panel.
func (a App) Focused(f Focus) bool {
	return a.Focus == f
}

// Apply returns the state that results from handling ev, plus any side
// effect the caller must run. It never mutates its argument.
func Apply(a App, ev Event) (App, Effect) {
	if a.Exit {
		return a, EffectNone
	}

	switch ev {
	case EventQuit:
		a.Exit = true
	case EventNavigateLeft:
		a.Counter--
	case EventNavigateRight:
		a.Counter++
	case EventCycleFocus:
		a.Focus = a.Focus.Next()
	case EventLogAction:
		return a, EffectLogAction
	}
	return a, EffectNone
}

// ApplyAll folds events over a, discarding effects. Handy for replaying input.
func ApplyAll(a App, events ...Event) App {
	for _, ev := range events {
		a, _ = Apply(a, ev)
	}
	return a
}
