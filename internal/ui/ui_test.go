package ui

import (
	"testing"

	"go-terra/internal/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		1:    "I",
		4:    "IV",
		5:    "V",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for n, want := range tests {
		assert.Equal(t, want, toRoman(n), "toRoman(%d)", n)
	}
}

func TestUpgradeCardsHitTest(t *testing.T) {
	c := NewUpgradeCards(nil, nil)
	y := int(cardY()) + 10

	for i := 0; i < 3; i++ {
		x := int(cardX(i, 3)) + 5
		assert.Equal(t, i, c.HitTest(x, y, 3))
	}
	// промежуток между карточками
	gapX := int(cardX(0, 3)+config.UpgradeCardW) + config.UpgradeCardGap/2
	assert.Equal(t, -1, c.HitTest(gapX, y, 3))
	assert.Equal(t, -1, c.HitTest(int(cardX(1, 3))+5, 0, 3))
	assert.Equal(t, -1, c.HitTest(config.ScreenWidth/2, y, 0))
}

func TestCardsAreCentered(t *testing.T) {
	left := cardX(0, 3)
	right := cardX(2, 3) + config.UpgradeCardW
	assert.InDelta(t, float32(config.ScreenWidth)-right, left, 0.5)
}

func TestButtonContains(t *testing.T) {
	b := NewCenteredButton(100, 100, "Start", nil)
	assert.True(t, b.Contains(100, 100))
	assert.True(t, b.Contains(int(b.X), int(b.Y)))
	assert.False(t, b.Contains(int(b.X+b.Width), 100))
	assert.False(t, b.Contains(100, int(b.Y)-1))
}

func TestPauseButtonIsClicked(t *testing.T) {
	b := NewPauseButton(50, 50, 10, config.ButtonColor, config.WinTextColor)
	assert.True(t, b.IsClicked(55, 55))
	assert.False(t, b.IsClicked(80, 50))
}

func TestWrapWords(t *testing.T) {
	face := basicfont.Face7x13
	lines := wrapWords("Increase maximum health by twenty percent", face, 7*16+3)
	assert.Equal(t, []string{"Increase maximum", "health by twenty", "percent"}, lines)
	assert.Empty(t, wrapWords("", face, 100))
	assert.Equal(t, []string{"one", "two"}, wrapWords("one\ntwo", face, 1000))
}
