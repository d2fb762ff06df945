// internal/system/state.go
package system

import (
	"log"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/event"
)

// StateSystem хранит фазу игры и переключает её по событиям.
type StateSystem struct {
	eventDispatcher *event.Dispatcher
	phase           component.GamePhase
	paused          bool
	gameOver        component.GameOverState
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		eventDispatcher: eventDispatcher,
		phase:           component.PhaseUpgradeSelection,
	}
	eventDispatcher.SubscribeAll(ss, event.PlayerDied, event.GameWon)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		s.SwitchToGameOver()
	case event.GameWon:
		s.SwitchToWon()
	}
}

// Update тикает таймеры экрана поражения.
func (s *StateSystem) Update(deltaTime float64) {
	if s.phase == component.PhaseGameOver {
		s.gameOver.Timer += deltaTime
	}
}

func (s *StateSystem) Current() component.GamePhase {
	return s.phase
}

func (s *StateSystem) SwitchToPlaying() {
	s.phase = component.PhasePlaying
}

func (s *StateSystem) SwitchToUpgradeSelection() {
	s.phase = component.PhaseUpgradeSelection
	s.paused = false
}

func (s *StateSystem) SwitchToGameOver() {
	if s.phase == component.PhaseGameOver {
		return
	}
	s.phase = component.PhaseGameOver
	s.paused = false
	s.gameOver = component.GameOverState{}
	log.Println("Game over")
}

func (s *StateSystem) SwitchToWon() {
	s.phase = component.PhaseWon
	s.paused = false
	log.Println("All waves cleared, game won")
}

// TogglePause переключает паузу. Пауза возможна только во время боя.
func (s *StateSystem) TogglePause() bool {
	if s.phase != component.PhasePlaying {
		return false
	}
	s.paused = !s.paused
	s.eventDispatcher.Dispatch(event.Event{Type: event.GamePauseToggled, Data: s.paused})
	return true
}

func (s *StateSystem) Paused() bool {
	return s.paused
}

// GameOverProgress — доля анимации надписи поражения в [0, 1].
func (s *StateSystem) GameOverProgress() float64 {
	if s.phase != component.PhaseGameOver {
		return 0
	}
	p := s.gameOver.Timer / config.GameOverAnimTime
	if p > 1 {
		return 1
	}
	return p
}

// NewGameAvailable — можно ли начать новую игру (после анимации и задержки, или после победы).
func (s *StateSystem) NewGameAvailable() bool {
	switch s.phase {
	case component.PhaseWon:
		return true
	case component.PhaseGameOver:
		return s.gameOver.Timer >= config.GameOverAnimTime+config.NewGameDelay
	}
	return false
}
