// internal/state/input.go
package state

import (
	"go-terra/internal/component"
	"go-terra/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var choiceKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// devices — сырое состояние клавиатуры и мыши за тик.
type devices struct {
	Up, Down, Left, Right bool
	Fire                  bool
	PausePressed          bool
	Clicked               bool
	ChoiceKey             int // 1..N, 0 — не нажата
	CursorX, CursorY      int
}

func pollDevices() devices {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	d := devices{
		Up:           pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:         pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:         pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:        pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Fire:         ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || pressed(ebiten.KeySpace),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Clicked:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	for i, k := range choiceKeys {
		if inpututil.IsKeyJustPressed(k) {
			d.ChoiceKey = i + 1
			break
		}
	}
	d.CursorX, d.CursorY = ebiten.CursorPosition()
	return d
}

// hitTargets — куда пришёлся клик на экране.
type hitTargets struct {
	PauseButton bool
	Card        int // индекс карточки или -1
}

// snapshot переводит состояние устройств в ввод симуляции.
// Клик по кнопке паузы не считается выстрелом.
func (d devices) snapshot(cam input.Camera, phase component.GamePhase, hits hitTargets) input.Snapshot {
	var in input.Snapshot
	if phase == component.PhaseUpgradeSelection {
		switch {
		case d.ChoiceKey > 0:
			in.Choice = d.ChoiceKey
		case d.Clicked && hits.Card >= 0:
			in.Choice = hits.Card + 1
		}
		return in
	}

	if d.Up {
		in.MoveY--
	}
	if d.Down {
		in.MoveY++
	}
	if d.Left {
		in.MoveX--
	}
	if d.Right {
		in.MoveX++
	}
	clickedPause := d.Clicked && hits.PauseButton
	in.Pause = d.PausePressed || clickedPause
	in.Attack = d.Fire && !clickedPause
	return in.WithTarget(cam.ScreenToWorld(float64(d.CursorX), float64(d.CursorY)))
}
