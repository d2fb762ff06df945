// internal/ui/overlay.go
package ui

import (
	"fmt"

	"go-terra/internal/config"
	"go-terra/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// DrawPaused рисует экран паузы поверх игры.
func DrawPaused(screen *ebiten.Image, title, hint font.Face) {
	DrawOverlay(screen, config.OverlayColor)
	DrawCentered(screen, "PAUSED", title, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	DrawCentered(screen, "P / Esc to resume", hint, config.ScreenWidth/2, config.ScreenHeight/2+40, config.TextLightColor)
}

// DrawGameOver проявляет надпись за progress в [0, 1].
func DrawGameOver(screen *ebiten.Image, progress float64, canRestart bool, wave, kills int, title, hint font.Face) {
	DrawOverlay(screen, render.WithAlpha(config.OverlayColor, progress))
	c := render.WithAlpha(config.GameOverTextColor, progress)
	// надпись опускается сверху к центру
	y := int(float64(config.ScreenHeight/2) * (0.5 + 0.5*progress))
	DrawCentered(screen, "GAME OVER", title, config.ScreenWidth/2, y, c)
	if progress < 1 {
		return
	}
	DrawCentered(screen, fmt.Sprintf("Wave %s, %d kills", toRoman(wave), kills), hint, config.ScreenWidth/2, y+40, config.TextLightColor)
	if canRestart {
		DrawCentered(screen, "Press Enter for a new game", hint, config.ScreenWidth/2, y+70, config.TextLightColor)
	}
}

// DrawWon рисует экран победы.
func DrawWon(screen *ebiten.Image, kills int, title, hint font.Face) {
	DrawOverlay(screen, config.OverlayColor)
	DrawOutlined(screen, "VICTORY", title, config.ScreenWidth/2, config.ScreenHeight/2, 2, config.WinTextColor, config.TextDarkColor)
	DrawCentered(screen, fmt.Sprintf("%d kills", kills), hint, config.ScreenWidth/2, config.ScreenHeight/2+40, config.TextLightColor)
	DrawCentered(screen, "Press Enter for a new game", hint, config.ScreenWidth/2, config.ScreenHeight/2+70, config.TextLightColor)
}
