package system

import (
	"testing"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/event"

	"github.com/stretchr/testify/assert"
)

func TestStateStartsWithUpgradeSelection(t *testing.T) {
	s := NewStateSystem(event.NewDispatcher())
	assert.Equal(t, component.PhaseUpgradeSelection, s.Current())
	assert.False(t, s.TogglePause(), "no pause outside of combat")
	assert.False(t, s.NewGameAvailable())
}

func TestStatePause(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.GamePauseToggled, rec)
	s := NewStateSystem(d)
	s.SwitchToPlaying()

	assert.True(t, s.TogglePause())
	assert.True(t, s.Paused())
	assert.True(t, s.TogglePause())
	assert.False(t, s.Paused())
	assert.Len(t, rec.events, 2)

	s.TogglePause()
	s.SwitchToUpgradeSelection()
	assert.False(t, s.Paused())
}

func TestStateGameOverTimeline(t *testing.T) {
	d := event.NewDispatcher()
	s := NewStateSystem(d)
	s.SwitchToPlaying()

	d.Dispatch(event.Event{Type: event.PlayerDied})
	assert.Equal(t, component.PhaseGameOver, s.Current())
	assert.Equal(t, 0.0, s.GameOverProgress())

	s.Update(config.GameOverAnimTime / 2)
	assert.InDelta(t, 0.5, s.GameOverProgress(), 1e-9)

	s.Update(config.GameOverAnimTime)
	assert.Equal(t, 1.0, s.GameOverProgress())
	assert.False(t, s.NewGameAvailable())

	// повторная смерть не перезапускает таймер
	s.SwitchToGameOver()
	s.Update(config.NewGameDelay)
	assert.True(t, s.NewGameAvailable())
}

func TestStateWonOnEvent(t *testing.T) {
	d := event.NewDispatcher()
	s := NewStateSystem(d)
	s.SwitchToPlaying()

	d.Dispatch(event.Event{Type: event.GameWon})

	assert.Equal(t, component.PhaseWon, s.Current())
	assert.True(t, s.NewGameAvailable())
	assert.Equal(t, "won", s.Current().String())
}
