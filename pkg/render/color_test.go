package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarkenColor(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 0, 200}, DarkenColor(color.RGBA{100, 200, 1, 200}))
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, color.RGBA{100, 50, 25, 127}, WithAlpha(c, 0.5))
	assert.Equal(t, color.RGBA{}, WithAlpha(c, -1))
	assert.Equal(t, c, WithAlpha(c, 3))
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, a, LerpColor(a, b, 0))
	assert.Equal(t, b, LerpColor(a, b, 1))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, LerpColor(a, b, 0.5))
	assert.Equal(t, b, LerpColor(a, b, 2))
}
