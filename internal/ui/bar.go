// internal/ui/bar.go
package ui

import (
	"fmt"
	"image/color"

	"go-terra/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatBar — полоска значения (здоровье, мана) с подписью "HP 40/100".
type StatBar struct {
	X, Y          float32
	Width, Height float32
	Label         string
	Fill          color.RGBA
}

func NewStatBar(x, y float32, label string, fill color.RGBA) *StatBar {
	return &StatBar{
		X:      x,
		Y:      y,
		Width:  config.BarWidth,
		Height: config.BarHeight,
		Label:  label,
		Fill:   fill,
	}
}

// Draw рисует полоску. value обрезается в [0, maxValue].
func (b *StatBar) Draw(screen *ebiten.Image, value, maxValue float64, face font.Face) {
	ratio := 0.0
	if maxValue > 0 {
		ratio = value / maxValue
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, borderWidth, borderColor, false)
	fillWidth := (b.Width - borderWidth*2) * float32(ratio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, b.X+borderWidth, b.Y+borderWidth, fillWidth, b.Height-borderWidth*2, b.Fill, false)
	}

	if face != nil {
		label := fmt.Sprintf("%s %d/%d", b.Label, int(value), int(maxValue))
		text.Draw(screen, label, face, int(b.X+b.Width)+config.HUDTextOffset*2, int(b.Y+b.Height)-2, config.TextLightColor)
	}
}
