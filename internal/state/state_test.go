package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_InitialState(t *testing.T) {
	a := New()
	require.Equal(t, int64(0), a.Counter)
	require.Equal(t, FocusMenu, a.Focus)
	require.False(t, a.Exit)
	require.Equal(t, App{}, a)
}

func TestApply_TransitionTable(t *testing.T) {
	start := App{Counter: 5, Focus: FocusMenu}

	tests := []struct {
		name   string
		event  Event
		want   App
		effect Effect
	}{
		{"quit", EventQuit, App{Counter: 5, Focus: FocusMenu, Exit: true}, EffectNone},
		{"left", EventNavigateLeft, App{Counter: 4, Focus: FocusMenu}, EffectNone},
		{"right", EventNavigateRight, App{Counter: 6, Focus: FocusMenu}, EffectNone},
		{"log action", EventLogAction, start, EffectLogAction},
		{"cycle focus", EventCycleFocus, App{Counter: 5, Focus: FocusActions}, EffectNone},
		{"none", EventNone, start, EffectNone},
		{"unknown", Event(99), start, EffectNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effect := Apply(start, tt.event)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.effect, effect)
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	a := App{Counter: 1}
	_, _ = Apply(a, EventNavigateRight)
	require.Equal(t, int64(1), a.Counter)
}

func TestApply_CounterAccumulates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 50; round++ {
		a := New()
		var rights, lefts int64
		n := rng.Intn(200)
		for i := 0; i < n; i++ {
			if rng.Intn(2) == 0 {
				a, _ = Apply(a, EventNavigateLeft)
				lefts++
			} else {
				a, _ = Apply(a, EventNavigateRight)
				rights++
			}
		}
		require.Equal(t, rights-lefts, a.Counter)
	}
}

func TestApply_CounterGoesNegativeWithoutClamping(t *testing.T) {
	a := ApplyAll(New(), EventNavigateLeft, EventNavigateLeft, EventNavigateLeft)
	require.Equal(t, int64(-3), a.Counter)
}

func TestApply_CycleFocusIsInvolution(t *testing.T) {
	for _, f := range []Focus{FocusMenu, FocusActions} {
		a := App{Focus: f}
		once, _ := Apply(a, EventCycleFocus)
		require.NotEqual(t, f, once.Focus)
		twice, _ := Apply(once, EventCycleFocus)
		require.Equal(t, f, twice.Focus)
	}
}

func TestApply_ExactlyOnePanelFocused(t *testing.T) {
	events := []Event{EventCycleFocus, EventNavigateLeft, EventCycleFocus, EventLogAction, EventCycleFocus}
	a := New()
	for _, ev := range events {
		a, _ = Apply(a, ev)
		menu := a.Focused(FocusMenu)
		actions := a.Focused(FocusActions)
		require.True(t, menu != actions, "focus = %v", a.Focus)
	}
}

func TestApply_QuitIsAbsorbing(t *testing.T) {
	a := ApplyAll(App{Counter: 2, Focus: FocusActions}, EventQuit)
	require.True(t, a.Exit)

	for _, ev := range []Event{EventNavigateLeft, EventNavigateRight, EventCycleFocus, EventLogAction, EventQuit, EventNone} {
		next, effect := Apply(a, ev)
		require.Equal(t, a, next, "event %v changed a final state", ev)
		require.Equal(t, EffectNone, effect, "event %v produced an effect after exit", ev)
	}
}

func TestScenarios(t *testing.T) {
	t.Run("navigate right three times", func(t *testing.T) {
		a := ApplyAll(New(), EventNavigateRight, EventNavigateRight, EventNavigateRight)
		require.Equal(t, App{Counter: 3, Focus: FocusMenu}, a)
	})
	t.Run("cycle focus", func(t *testing.T) {
		a := ApplyAll(New(), EventCycleFocus)
		require.Equal(t, FocusActions, a.Focus)
	})
	t.Run("quit keeps counter", func(t *testing.T) {
		a := ApplyAll(App{Counter: 5, Focus: FocusActions}, EventQuit)
		require.Equal(t, App{Counter: 5, Focus: FocusActions, Exit: true}, a)
	})
	t.Run("unmapped event", func(t *testing.T) {
		a := ApplyAll(New(), EventNone)
		require.Equal(t, New(), a)
	})
}

func TestFocusAndEventStrings(t *testing.T) {
	require.Equal(t, "Menu", FocusMenu.String())
	require.Equal(t, "Actions", FocusActions.String())
	require.Equal(t, "Unknown", Focus(7).String())
	require.Equal(t, "LogAction", EventLogAction.String())
	require.Equal(t, "None", Event(42).String())
}
