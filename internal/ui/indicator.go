// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"go-terra/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CooldownIndicator — круг перезарядки оружия: сектор убывает по мере готовности,
// в момент готовности круг коротко "пульсирует".
type CooldownIndicator struct {
	X, Y   float32
	Radius float32
	pulse  float64
	wasCD  bool
}

func NewCooldownIndicator(x, y, radius float32) *CooldownIndicator {
	return &CooldownIndicator{X: x, Y: y, Radius: radius}
}

// Update продвигает пульсацию. fraction — доля оставшейся перезарядки в [0, 1].
func (i *CooldownIndicator) Update(deltaTime, fraction float64) {
	if i.wasCD && fraction <= 0 {
		i.pulse = 0
	}
	i.wasCD = fraction > 0
	i.pulse += deltaTime
}

// Draw отрисовывает индикатор.
func (i *CooldownIndicator) Draw(screen *ebiten.Image, fraction float64, ready, blocked color.RGBA) {
	scale := 1.0 + 0.3*math.Exp(-i.pulse*8)
	r := i.Radius * float32(scale)

	if fraction <= 0 {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, ready, true)
	} else {
		vector.DrawFilledCircle(screen, i.X, i.Y, r, blocked, true)
		// оставшаяся часть перезарядки, от верхней точки по часовой стрелке
		var path vector.Path
		start := float32(-math.Pi / 2)
		path.MoveTo(i.X, i.Y)
		path.Arc(i.X, i.Y, r, start, start+float32(2*math.Pi*fraction), vector.Clockwise)
		path.Close()
		fillPath(screen, &path, config.OverlayColor)
	}
	vector.StrokeCircle(screen, i.X, i.Y, r, borderWidth, borderColor, true)
}
