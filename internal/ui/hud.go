// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-terra/internal/config"
	"go-terra/internal/entity"
	"go-terra/internal/weapon"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDState — всё, что HUD показывает за кадр.
type HUDState struct {
	Player   *entity.Player
	Wave     int
	LastWave int
	Kills    int
	Paused   bool
}

// HUD собирает индикаторы игрока и волны.
type HUD struct {
	health   *StatBar
	mana     *StatBar
	level    *PlayerLevelIndicator
	wave     *WaveIndicator
	cooldown *CooldownIndicator
	Pause    *PauseButton
	face     font.Face
}

func NewHUD(face font.Face) *HUD {
	m := float32(config.HUDMargin)
	return &HUD{
		health:   NewStatBar(m, m, "HP", config.HealthBarColor),
		mana:     NewStatBar(m, m+config.BarHeight+6, "MP", config.ManaBarColor),
		level:    NewPlayerLevelIndicator(m, m+2*(config.BarHeight+6)),
		wave:     NewWaveIndicator(config.ScreenWidth/2, config.HUDMargin+32),
		cooldown: NewCooldownIndicator(m+config.CooldownDotSize*2, config.ScreenHeight-m-config.CooldownDotSize*2, config.CooldownDotSize*2),
		Pause:    NewPauseButton(config.ScreenWidth-m-12, m+12, 10, config.ButtonColor, config.WinTextColor),
		face:     face,
	}
}

func (h *HUD) Update(deltaTime float64, s HUDState) {
	h.Pause.Update(deltaTime)
	h.Pause.SetPaused(s.Paused)
	if s.Player != nil && s.Player.ActiveWeapon != nil {
		h.cooldown.Update(deltaTime, s.Player.ActiveWeapon.CooldownFraction())
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState, waveFace font.Face) {
	p := s.Player
	if p == nil {
		return
	}
	h.health.Draw(screen, p.Health.Value, p.Health.Max, h.face)
	h.mana.Draw(screen, p.Mana.Value, p.Mana.Max, h.face)
	h.level.Draw(screen, p.Level, p.CurrentXP, p.XPToNextLevel, s.LastWave, h.face)
	h.wave.Draw(screen, s.Wave, s.LastWave, waveFace)
	h.Pause.Draw(screen)

	if w := p.ActiveWeapon; w != nil {
		ready := config.ProjectileColor
		if gun, ok := w.(*weapon.Ranged); ok && !p.CanAfford(gun.ManaCost) {
			ready = config.HealthBarColor // не хватает маны на выстрел
		}
		h.cooldown.Draw(screen, w.CooldownFraction(), ready, config.CardColor)
		if h.face != nil {
			x := int(h.cooldown.X+h.cooldown.Radius) + config.HUDTextOffset*2
			text.Draw(screen, w.ID(), h.face, x, int(h.cooldown.Y)+4, config.TextLightColor)
		}
	}
	if h.face != nil {
		kills := fmt.Sprintf("Kills: %d", s.Kills)
		w := text.BoundString(h.face, kills).Dx()
		text.Draw(screen, kills, h.face, config.ScreenWidth-config.HUDMargin-w, config.ScreenHeight-config.HUDMargin, config.TextLightColor)
	}
}

// DrawIntro рисует заставку волны.
func (h *HUD) DrawIntro(screen *ebiten.Image, wave, lastWave int, alpha float64, face font.Face) {
	h.wave.DrawIntro(screen, wave, lastWave, alpha, face)
}
