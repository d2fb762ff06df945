// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"go-terra/internal/app"
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/input"
	"go-terra/internal/replay"
	"go-terra/internal/ui"
	"go-terra/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameOptions — параметры запуска игрового состояния.
type GameOptions struct {
	Seed       int64
	Weapon     string
	EnemyID    string
	RecordPath string            // пусто — не записывать
	Replay     *replay.Recording // не nil — проигрывание записи вместо живого ввода
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	res      *Resources
	opts     GameOptions
	game     *app.Game
	renderer *render.WorldRenderer
	hud      *ui.HUD
	cards    *ui.UpgradeCards
	cam      input.Camera
	recorder *replay.Recorder
	player   *replay.Player
	cursorX  int
	cursorY  int
}

func NewGameState(sm *StateMachine, res *Resources, opts GameOptions) (*GameState, error) {
	var (
		g   *app.Game
		err error
	)
	if opts.Replay != nil {
		g, err = replay.NewGame(opts.Replay, res.Catalog)
	} else {
		g, err = app.NewGame(app.Options{Seed: opts.Seed, Weapon: opts.Weapon, EnemyID: opts.EnemyID, Catalog: res.Catalog})
	}
	if err != nil {
		return nil, err
	}

	gs := &GameState{
		sm:       sm,
		res:      res,
		opts:     opts,
		renderer: render.NewWorldRenderer(render.DefaultWorldColors(), res.Catalog),
		hud:      ui.NewHUD(res.SmallFace()),
		cards:    ui.NewUpgradeCards(res.RegularFace(), res.SmallFace()),
		cam:      input.NewCamera(config.ScreenWidth, config.ScreenHeight),
	}
	if opts.Replay != nil {
		gs.player = replay.NewPlayer(opts.Replay)
	}
	gs.setGame(g)
	return gs, nil
}

func (g *GameState) setGame(game *app.Game) {
	g.game = game
	g.cam = g.cam.Follow(game.Player().Position())
	if g.player == nil && g.opts.RecordPath != "" {
		g.recorder = replay.ForGame(game, config.FixedDeltaTime)
	}
}

// Game — текущий забег.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.player != nil {
		g.updateReplay()
		return
	}

	phase := g.game.Phase()
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.canRestart(phase) {
		g.restart()
		return
	}

	d := pollDevices()
	g.cursorX, g.cursorY = d.CursorX, d.CursorY
	hits := hitTargets{
		PauseButton: g.hud.Pause.IsClicked(d.CursorX, d.CursorY),
		Card:        g.cards.HitTest(d.CursorX, d.CursorY, len(g.game.WaveSystem.Offered())),
	}
	g.step(deltaTime, d.snapshot(g.cam, phase, hits))

	if g.game.StateSystem.Paused() {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

// step продвигает забег на один тик и пишет ввод в запись.
func (g *GameState) step(deltaTime float64, in input.Snapshot) {
	if g.recorder != nil {
		g.recorder.Record(in)
	}
	g.game.Update(deltaTime, in)
	g.cam = g.cam.Follow(g.game.Player().Position())
	g.hud.Update(deltaTime, g.hudState())
}

func (g *GameState) updateReplay() {
	in, ok := g.player.Next()
	if !ok {
		return
	}
	g.game.Update(g.opts.Replay.DeltaTime, in)
	g.cam = g.cam.Follow(g.game.Player().Position())
	g.hud.Update(g.opts.Replay.DeltaTime, g.hudState())
}

func (g *GameState) canRestart(phase component.GamePhase) bool {
	switch phase {
	case component.PhaseWon:
		return true
	case component.PhaseGameOver:
		return g.game.StateSystem.NewGameAvailable()
	}
	return false
}

func (g *GameState) restart() {
	g.SaveRecording()
	fresh, err := g.game.Restart(0)
	if err != nil {
		log.Printf("ERROR: failed to restart: %v", err)
		return
	}
	g.setGame(fresh)
}

// SaveRecording сбрасывает запись текущего забега на диск, если она включена.
func (g *GameState) SaveRecording() {
	if g.recorder == nil || g.recorder.Len() == 0 {
		return
	}
	if err := replay.Save(g.opts.RecordPath, g.recorder.Recording()); err != nil {
		log.Printf("ERROR: %v", err)
	}
}

func (g *GameState) hudState() ui.HUDState {
	return ui.HUDState{
		Player:   g.game.Player(),
		Wave:     g.game.WaveSystem.CurrentWave,
		LastWave: g.game.Spawner.MaxLevel(),
		Kills:    g.game.PlayerSystem.Kills,
		Paused:   g.game.StateSystem.Paused(),
	}
}

// offeredDefinitions — определения предложенных улучшений в порядке карточек.
func (g *GameState) offeredDefinitions() []defs.UpgradeDefinition {
	ids := g.game.WaveSystem.Offered()
	out := make([]defs.UpgradeDefinition, 0, len(ids))
	for _, id := range ids {
		def, err := g.res.Catalog.Get(id)
		if err != nil {
			log.Printf("WARNING: offered upgrade %s: %v", id, err)
			continue
		}
		out = append(out, def)
	}
	return out
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.World, g.cam)

	s := g.hudState()
	phase := g.game.Phase()
	if phase != component.PhaseUpgradeSelection {
		g.hud.Draw(screen, s, g.res.RegularFace())
	}
	if g.game.WaveSystem.Intro.Active() {
		g.hud.DrawIntro(screen, g.game.WaveSystem.Intro.Wave, s.LastWave, g.game.WaveSystem.IntroAlpha(), g.res.TitleFace())
	}

	switch phase {
	case component.PhaseUpgradeSelection:
		ui.DrawOverlay(screen, config.OverlayColor)
		g.cards.Draw(screen, g.offeredDefinitions(), g.cursorX, g.cursorY)
	case component.PhaseGameOver:
		ui.DrawGameOver(screen, g.game.StateSystem.GameOverProgress(), g.game.StateSystem.NewGameAvailable() && g.player == nil,
			s.Wave, s.Kills, g.res.TitleFace(), g.res.RegularFace())
	case component.PhaseWon:
		ui.DrawWon(screen, s.Kills, g.res.TitleFace(), g.res.RegularFace())
	}

	if g.player != nil {
		label := fmt.Sprintf("REPLAY %s  %3.0f%%", g.opts.Replay.RunID[:8], g.player.Progress()*100)
		if g.player.Done() {
			label = "REPLAY finished"
		}
		ui.DrawCentered(screen, label, g.res.SmallFace(), config.ScreenWidth/2, config.ScreenHeight-config.HUDMargin, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
