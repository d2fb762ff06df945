// internal/ui/upgrade_cards.go
package ui

import (
	"fmt"

	"go-terra/internal/config"
	"go-terra/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// UpgradeCards раскладывает карточки улучшений в ряд по центру экрана.
type UpgradeCards struct {
	TitleFace font.Face
	BodyFace  font.Face
}

func NewUpgradeCards(titleFace, bodyFace font.Face) *UpgradeCards {
	return &UpgradeCards{TitleFace: titleFace, BodyFace: bodyFace}
}

// cardX — левый край карточки index из count.
func cardX(index, count int) float32 {
	total := float32(count)*config.UpgradeCardW + float32(count-1)*config.UpgradeCardGap
	left := (float32(config.ScreenWidth) - total) / 2
	return left + float32(index)*(config.UpgradeCardW+config.UpgradeCardGap)
}

func cardY() float32 {
	return (float32(config.ScreenHeight) - config.UpgradeCardH) / 2
}

// HitTest возвращает индекс карточки под точкой или -1.
func (c *UpgradeCards) HitTest(x, y, count int) int {
	fx, fy := float32(x), float32(y)
	top := cardY()
	if fy < top || fy >= top+config.UpgradeCardH {
		return -1
	}
	for i := 0; i < count; i++ {
		left := cardX(i, count)
		if fx >= left && fx < left+config.UpgradeCardW {
			return i
		}
	}
	return -1
}

// Draw рисует предложенные улучшения. Номер над карточкой — клавиша выбора.
func (c *UpgradeCards) Draw(screen *ebiten.Image, offered []defs.UpgradeDefinition, cursorX, cursorY int) {
	hover := c.HitTest(cursorX, cursorY, len(offered))
	top := cardY()

	DrawCentered(screen, "Choose an upgrade", c.TitleFace, config.ScreenWidth/2, int(top)-48, config.TextLightColor)

	for i, def := range offered {
		left := cardX(i, len(offered))
		bg := config.CardColor
		if i == hover {
			bg = config.CardHoverColor
		}
		vector.DrawFilledRect(screen, left, top, config.UpgradeCardW, config.UpgradeCardH, bg, false)
		vector.StrokeRect(screen, left, top, config.UpgradeCardW, config.UpgradeCardH, config.StrokeWidth, config.BarBorderColor, false)

		cx := int(left + config.UpgradeCardW/2)
		DrawCentered(screen, fmt.Sprintf("[%d]", i+1), c.BodyFace, cx, int(top)-8, config.TextLightColor)
		DrawCentered(screen, def.Title, c.TitleFace, cx, int(top)+32, config.TextLightColor)

		if c.BodyFace == nil {
			continue
		}
		lineHeight := c.BodyFace.Metrics().Height.Ceil()
		y := int(top) + 64
		for _, line := range wrapWords(def.Description, c.BodyFace, config.UpgradeCardW-24) {
			text.Draw(screen, line, c.BodyFace, int(left)+12, y, config.TextLightColor)
			y += lineHeight
		}
	}
}
