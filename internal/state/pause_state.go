// internal/state/pause_state.go
package state

import (
	"go-terra/internal/input"
	"go-terra/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует поверх замороженной игры. Тики при этом продолжают идти
// в забег пустым вводом, чтобы запись не теряла кадров и заставка волны доигрывалась.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.hud.Pause.IsClicked(x, y)
	}

	s.previousState.step(deltaTime, input.Snapshot{Pause: unpause})
	if !s.previousState.game.StateSystem.Paused() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	res := s.previousState.res
	ui.DrawPaused(screen, res.TitleFace(), res.RegularFace())
}

func (s *PauseState) Exit() {}

// SaveRecording сохраняет запись забега под паузой.
func (s *PauseState) SaveRecording() {
	s.previousState.SaveRecording()
}
