// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-terra/internal/config"
	"go-terra/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами
// и заставку "Wave N" в начале волны.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	LastWaveColor    color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveTextColor,
		LastWaveColor:    config.GameOverTextColor,
		OutlineColor:     color.White,
		OutlineThickness: 2,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) colorFor(wave, lastWave int) color.RGBA {
	if wave == lastWave {
		return i.LastWaveColor // последняя волна красная
	}
	return i.Color
}

// Draw отрисовывает номер волны в углу экрана.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, lastWave int, face font.Face) {
	if wave <= 0 {
		return
	}
	DrawOutlined(screen, toRoman(wave), face, i.X, i.Y, i.OutlineThickness, i.colorFor(wave, lastWave), i.OutlineColor)
}

// DrawIntro рисует заставку волны по центру экрана с прозрачностью alpha.
func (i *WaveIndicator) DrawIntro(screen *ebiten.Image, wave, lastWave int, alpha float64, face font.Face) {
	if wave <= 0 || alpha <= 0 {
		return
	}
	label := fmt.Sprintf("Wave %s", toRoman(wave))
	if wave == lastWave {
		label = "Final Wave"
	}
	c := render.WithAlpha(i.colorFor(wave, lastWave), alpha)
	outline := render.WithAlpha(color.RGBA{255, 255, 255, 255}, alpha)
	DrawOutlined(screen, label, face, config.ScreenWidth/2, config.ScreenHeight/3, i.OutlineThickness, c, outline)
}
