// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-terra/internal/assets"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/replay"
	"go-terra/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppGame — обёртка над машиной состояний для ebiten. Шаг симуляции фиксирован,
// частоту задаёт ebiten.SetTPS.
type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(config.FixedDeltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type recordingSaver interface {
	SaveRecording()
}

func main() {
	var (
		weaponFlag = flag.String("weapon", "", "starting weapon: melee or ranged; empty opens the menu")
		seed       = flag.Int64("seed", 0, "RNG seed, 0 for random")
		enemyID    = flag.String("enemy", "", "enemy id spawned by the arena")
		dataDir    = flag.String("data", "", "directory with weapons.yaml, enemies.yaml and upgrades.yaml")
		fontPath   = flag.String("font", "", "TTF font, empty for the embedded one")
		recordPath = flag.String("record", "", "write the run's input to this file")
		replayPath = flag.String("replay", "", "play back a recorded run")
		pprofAddr  = flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	)
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog, err := loadCatalog(*dataDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	fonts, err := assets.NewFontManager(*fontPath)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer fonts.Close()

	res := &state.Resources{Catalog: catalog, Fonts: fonts}
	opts := state.GameOptions{Seed: *seed, EnemyID: *enemyID, RecordPath: *recordPath}
	if *replayPath != "" {
		rec, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = rec
		opts.RecordPath = ""
	}

	sm := state.NewStateMachine()
	if *weaponFlag == "" && opts.Replay == nil {
		sm.SetState(state.NewMenuState(sm, res, opts))
	} else {
		opts.Weapon = defs.StarterWeaponID(*weaponFlag)
		gs, err := state.NewGameState(sm, res, opts)
		if err != nil {
			log.Fatalf("Failed to start game: %v", err)
		}
		sm.SetState(gs)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)
	runErr := ebiten.RunGame(&AppGame{stateMachine: sm})
	if saver, ok := sm.Current().(recordingSaver); ok {
		saver.SaveRecording()
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

func loadCatalog(dir string) (*defs.Catalog, error) {
	if dir == "" {
		return defs.LoadDefault()
	}
	return defs.LoadDir(dir)
}
