// internal/ui/player_level_indicator.go
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

// PlayerLevelIndicator отображает уровень и опыт игрока.
// Квадраты под полосой опыта — пройденные волны из maxWaves.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth      = config.BarWidth
	xpBarHeight     = 12
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

var (
	xpBarColorFill = config.XPBarColor
	borderColor    = color.White
)

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level int, currentXP float64, xpToNext, maxWaves int, face font.Face) {
	// 1. Обводка полосы опыта
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	// 2. Заполненная часть
	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = currentXP / float64(xpToNext)
	}
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}
	if face != nil {
		label := fmt.Sprintf("Lv %d  %d/%d", level, int(currentXP), xpToNext)
		text.Draw(screen, label, face, int(i.X+xpBarWidth)+config.HUDTextOffset*2, int(i.Y+xpBarHeight)-2, config.TextLightColor)
	}

	// 3. Прямоугольники волн: волна N пройдена, когда уровень стал больше N
	rectY := i.Y + xpBarHeight + 10
	for j := 0; j < maxWaves; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level-1 {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, xpBarColorFill, true)
		}
	}
}
