// internal/state/menu_state.go
package state

import (
	"log"

	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — выбор стартового оружия перед забегом.
type MenuState struct {
	sm      *StateMachine
	res     *Resources
	opts    GameOptions
	melee   *ui.Button
	ranged  *ui.Button
	cursorX int
	cursorY int
}

// NewMenuState создаёт меню. Weapon в opts игнорируется, его выбирает игрок.
func NewMenuState(sm *StateMachine, res *Resources, opts GameOptions) *MenuState {
	cx, cy := float32(config.ScreenWidth)/2, float32(config.ScreenHeight)/2
	return &MenuState{
		sm:     sm,
		res:    res,
		opts:   opts,
		melee:  ui.NewCenteredButton(cx, cy, "[1] Sword", res.RegularFace()),
		ranged: ui.NewCenteredButton(cx, cy+config.ButtonHeight+16, "[2] Pistol", res.RegularFace()),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	m.cursorX, m.cursorY = ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1) || clicked && m.melee.Contains(m.cursorX, m.cursorY):
		m.start(defs.WeaponMelee)
	case inpututil.IsKeyJustPressed(ebiten.Key2) || clicked && m.ranged.Contains(m.cursorX, m.cursorY):
		m.start(defs.WeaponRanged)
	}
}

func (m *MenuState) start(kind defs.WeaponKind) {
	opts := m.opts
	opts.Weapon = defs.StarterWeaponID(string(kind))
	gs, err := NewGameState(m.sm, m.res, opts)
	if err != nil {
		log.Printf("ERROR: failed to start game: %v", err)
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOutlined(screen, config.MenuTitle, m.res.TitleFace(), config.ScreenWidth/2, config.ScreenHeight/3, 2, config.WaveTextColor, config.TextDarkColor)
	ui.DrawCentered(screen, "Choose your weapon", m.res.RegularFace(), config.ScreenWidth/2, config.ScreenHeight/2-config.ButtonHeight, config.TextLightColor)
	m.melee.Draw(screen, m.cursorX, m.cursorY)
	m.ranged.Draw(screen, m.cursorX, m.cursorY)
}

func (m *MenuState) Exit() {}
