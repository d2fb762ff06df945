// internal/ui/button.go
package ui

import (
	"image/color"

	"go-terra/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.RGBA
	BgColor             color.RGBA
	HoverColor          color.RGBA
	Face                font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, text string, face font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       text,
		TextColor:  config.TextDarkColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Face:       face,
	}
}

// NewCenteredButton создает кнопку стандартного размера с центром в (cx, cy).
func NewCenteredButton(cx, cy float32, text string, face font.Face) *Button {
	w, h := float32(config.ButtonWidth), float32(config.ButtonHeight)
	return NewButton(cx-w/2, cy-h/2, w, h, text, face)
}

// Contains проверяет, находится ли точка внутри кнопки.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.Width && fy >= b.Y && fy < b.Y+b.Height
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	bgColor := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bgColor = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, config.StrokeWidth, config.BarBorderColor, false)

	if b.Face == nil {
		return
	}
	// базовая линия примерно по центру высоты строки
	ascent := b.Face.Metrics().Ascent.Ceil()
	DrawCentered(screen, b.Text, b.Face, int(b.X+b.Width/2), int(b.Y+b.Height/2)+ascent/2-1, b.TextColor)
}
