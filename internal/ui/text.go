// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered рисует строку с центром по X в cx и базовой линией в y.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	if face == nil || s == "" {
		return
	}
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}

// DrawOutlined рисует строку с обводкой толщиной thickness пикселей.
func DrawOutlined(screen *ebiten.Image, s string, face font.Face, cx, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, face, cx+dx, y+dy, outline)
		}
	}
	DrawCentered(screen, s, face, cx, y, clr)
}

// wrapWords разбивает текст на строки не длиннее maxWidth пикселей.
func wrapWords(s string, face font.Face, maxWidth int) []string {
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if word == "" {
			return
		}
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && text.BoundString(face, candidate).Dx() > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
		word = ""
	}
	for _, r := range s {
		if r == ' ' || r == '\n' {
			flush()
			if r == '\n' && line != "" {
				lines = append(lines, line)
				line = ""
			}
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
