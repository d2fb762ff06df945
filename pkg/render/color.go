// pkg/render/color.go
package render

import (
	"image/color"

	"go-terra/internal/config"
	"go-terra/internal/utils"
)

// WorldColors holds the colors needed to render the arena and its entities.
type WorldColors struct {
	BackgroundColor  color.RGBA
	GridColor        color.RGBA
	PlayerColor      color.RGBA
	ProjectileColor  color.RGBA
	MeleeArcColor    color.RGBA
	EnemyWindupColor color.RGBA
	HealthBarColor   color.RGBA
	OutlineColor     color.RGBA
	StrokeWidth      float32
}

// DefaultWorldColors builds the palette from config.
func DefaultWorldColors() WorldColors {
	return WorldColors{
		BackgroundColor:  config.BackgroundColor,
		GridColor:        config.GridColor,
		PlayerColor:      config.PlayerColor,
		ProjectileColor:  config.ProjectileColor,
		MeleeArcColor:    config.MeleeArcColor,
		EnemyWindupColor: config.EnemyWindupColor,
		HealthBarColor:   config.HealthBarColor,
		OutlineColor:     config.BarBorderColor,
		StrokeWidth:      float32(config.StrokeWidth),
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales all channels, keeping the color premultiplied.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// LerpColor blends a into b by t in [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
