// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы: две полосы, на паузе треугольник.
type PauseButton struct {
	X, Y       float32
	Size       float32
	IsPaused   bool
	PauseColor color.RGBA
	PlayColor  color.RGBA
	sinceClick float64
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		sinceClick: math.Inf(1),
	}
}

// Update продвигает анимацию нажатия.
func (b *PauseButton) Update(deltaTime float64) {
	b.sinceClick += deltaTime
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	scale := 1.0 + 0.3*math.Exp(-b.sinceClick*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size*0.8, b.Y-size)
		path.LineTo(b.X-size*0.8, b.Y+size)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// две полосы (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, borderWidth, borderColor, true)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, borderWidth, borderColor, true)
}

// IsClicked — попадает ли точка в круг кнопки.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*4
}

// SetPaused синхронизирует иконку с состоянием игры.
func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.sinceClick = 0
	}
	b.IsPaused = paused
}
