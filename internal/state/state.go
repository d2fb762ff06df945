// internal/state/state.go
package state

import (
	"go-terra/internal/assets"
	"go-terra/internal/config"
	"go-terra/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current — активное состояние, nil до первого SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Resources — общее для всех состояний: каталог определений и шрифты.
type Resources struct {
	Catalog *defs.Catalog
	Fonts   *assets.FontManager
}

func (r *Resources) face(size float64) font.Face {
	if r.Fonts == nil {
		return nil
	}
	return r.Fonts.Face(size)
}

func (r *Resources) SmallFace() font.Face   { return r.face(config.FontSizeSmall) }
func (r *Resources) RegularFace() font.Face { return r.face(config.FontSizeRegular) }
func (r *Resources) TitleFace() font.Face   { return r.face(config.FontSizeTitle) }
