package state

import (
	"testing"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/input"
	"go-terra/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, "enter "+s.name) }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, "update "+s.name) }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, "exit "+s.name) }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(config.FixedDeltaTime) // без состояния ничего не происходит

	menu := &recordingState{name: "menu", log: &log}
	game := &recordingState{name: "game", log: &log}
	sm.SetState(menu)
	sm.Update(config.FixedDeltaTime)
	sm.SetState(game)
	sm.Update(config.FixedDeltaTime)

	assert.Equal(t, []string{"enter menu", "update menu", "exit menu", "enter game", "update game"}, log)
	assert.Same(t, game, sm.Current())
}

func TestDevicesSnapshotPlaying(t *testing.T) {
	cam := input.NewCamera(config.ScreenWidth, config.ScreenHeight).Follow(vec.New(100, 50))
	d := devices{
		Up:      true,
		Left:    true,
		Right:   true,
		Fire:    true,
		CursorX: config.ScreenWidth/2 + 30,
		CursorY: config.ScreenHeight / 2,
	}
	in := d.snapshot(cam, component.PhasePlaying, hitTargets{Card: -1})

	assert.Equal(t, 0.0, in.MoveX, "left and right cancel out")
	assert.Equal(t, -1.0, in.MoveY)
	assert.True(t, in.Attack)
	assert.False(t, in.Pause)
	assert.Equal(t, vec.New(130, 50), in.Target())
	assert.Zero(t, in.Choice)
}

func TestDevicesSnapshotPauseClickIsNotAShot(t *testing.T) {
	cam := input.NewCamera(config.ScreenWidth, config.ScreenHeight)
	d := devices{Fire: true, Clicked: true}

	in := d.snapshot(cam, component.PhasePlaying, hitTargets{PauseButton: true, Card: -1})
	assert.True(t, in.Pause)
	assert.False(t, in.Attack)

	in = devices{PausePressed: true}.snapshot(cam, component.PhasePlaying, hitTargets{Card: -1})
	assert.True(t, in.Pause)
}

func TestDevicesSnapshotUpgradeSelection(t *testing.T) {
	cam := input.NewCamera(config.ScreenWidth, config.ScreenHeight)

	in := devices{ChoiceKey: 3, Down: true, Fire: true}.snapshot(cam, component.PhaseUpgradeSelection, hitTargets{Card: -1})
	assert.Equal(t, input.Snapshot{Choice: 3}, in, "only the choice matters while choosing")

	in = devices{Clicked: true}.snapshot(cam, component.PhaseUpgradeSelection, hitTargets{Card: 1})
	assert.Equal(t, 2, in.Choice)

	in = devices{Clicked: true}.snapshot(cam, component.PhaseUpgradeSelection, hitTargets{Card: -1})
	assert.Zero(t, in.Choice)
}
