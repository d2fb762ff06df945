// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/event"
	"go-terra/internal/input"
	"go-terra/internal/system"
	"go-terra/internal/utils"
	"go-terra/internal/weapon"
	"go-terra/pkg/vec"
)

// Options — параметры нового забега.
type Options struct {
	Seed    int64  // 0 — случайный сид
	Weapon  string // ID стартового оружия
	EnemyID string // пусто — враг по умолчанию
	Catalog *defs.Catalog
}

// Game holds the whole simulation of one run and advances it with a fixed step.
type Game struct {
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Catalog          *defs.Catalog
	Spawner          *system.Spawner
	PlayerSystem     *system.PlayerSystem
	EnemySystem      *system.EnemySystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem
	WaveSystem       *system.WaveSystem

	weaponID string
	enemyID  string
	frame    uint64
}

// NewGame собирает мир и системы. Неизвестное оружие или враг — ошибка конфигурации.
func NewGame(opts Options) (*Game, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("new game: catalog is required")
	}
	enemyID := opts.EnemyID
	if enemyID == "" {
		enemyID = config.DefaultEnemyID
	}
	enemyDef, err := opts.Catalog.Enemy(enemyID)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	rng := utils.NewPRNGService(opts.Seed)
	world := entity.NewWorld(rng)
	player := entity.NewPlayer(world.NewEntity(), vec.Zero)
	world.SetPlayer(player)
	if err := weapon.Equip(player, opts.Catalog, opts.Weapon); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	eventDispatcher := event.NewDispatcher()
	spawner, err := system.NewSpawner(world, enemyDef, eventDispatcher)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{
		World:            world,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Catalog:          opts.Catalog,
		Spawner:          spawner,
		PlayerSystem:     system.NewPlayerSystem(world, eventDispatcher),
		EnemySystem:      system.NewEnemySystem(world),
		ProjectileSystem: system.NewProjectileSystem(world),
		StateSystem:      system.NewStateSystem(eventDispatcher),
		weaponID:         opts.Weapon,
		enemyID:          enemyID,
	}
	g.WaveSystem = system.NewWaveSystem(world, spawner, g.StateSystem, opts.Catalog, eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.PlayerLeveledUp,
		event.PlayerDied,
		event.WaveEnded,
		event.UpgradesOffered,
		event.GameWon,
	)

	g.WaveSystem.Begin()
	log.Printf("New game: seed=%d weapon=%s enemy=%s", rng.Seed(), opts.Weapon, enemyID)
	return g, nil
}

// Seed — сид генератора, нужен для реплея.
func (g *Game) Seed() int64 { return g.Rng.Seed() }

// WeaponID — стартовое оружие забега.
func (g *Game) WeaponID() string { return g.weaponID }

// EnemyID — враг, которого выпускает спаунер.
func (g *Game) EnemyID() string { return g.enemyID }

// Frame — число обработанных кадров.
func (g *Game) Frame() uint64 { return g.frame }

func (g *Game) Player() *entity.Player { return g.World.Player() }

func (g *Game) Phase() component.GamePhase { return g.StateSystem.Current() }

// Update продвигает симуляцию на один шаг deltaTime с заданным вводом.
func (g *Game) Update(deltaTime float64, in input.Snapshot) {
	g.frame++
	g.World.SetTarget(in.Target())

	switch g.StateSystem.Current() {
	case component.PhaseGameOver:
		// игрок доигрывает анимацию смерти
		g.PlayerSystem.Update(deltaTime, in)
		g.StateSystem.Update(deltaTime)
		return
	case component.PhaseWon:
		return
	case component.PhaseUpgradeSelection:
		if in.Choice > 0 {
			if err := g.WaveSystem.ChooseUpgrade(in.Choice - 1); err != nil {
				log.Printf("Upgrade choice ignored: %v", err)
			}
		}
		return
	}

	if in.Pause {
		g.StateSystem.TogglePause()
	}
	g.WaveSystem.UpdateIntro(deltaTime)
	if g.StateSystem.Paused() {
		return
	}

	g.World.GameTime += deltaTime
	g.Spawner.Update(deltaTime)
	g.PlayerSystem.Update(deltaTime, in)
	if g.Player().Dying {
		return
	}
	g.EnemySystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.World.PruneEnemies()
	g.World.CompactProjectiles()
	g.WaveSystem.CheckWaveEnd()
}

// ChooseUpgrade выбирает карточку улучшения по индексу (для UI).
func (g *Game) ChooseUpgrade(index int) error {
	return g.WaveSystem.ChooseUpgrade(index)
}

// Restart создаёт новый забег с тем же оружием и каталогом.
func (g *Game) Restart(seed int64) (*Game, error) {
	return NewGame(Options{Seed: seed, Weapon: g.weaponID, EnemyID: g.enemyID, Catalog: g.Catalog})
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerLeveledUp:
		log.Printf("Player reached level %v", e.Data)
	case event.PlayerDied:
		log.Printf("Player died on wave %d after %d kills", l.game.WaveSystem.CurrentWave, l.game.PlayerSystem.Kills)
	case event.WaveEnded:
		log.Printf("Wave %v cleared, spawner level %d", e.Data, l.game.Spawner.Level)
	case event.UpgradesOffered:
		log.Printf("Upgrades offered: %v", e.Data)
	case event.GameWon:
		log.Printf("Victory after %d kills", l.game.PlayerSystem.Kills)
	}
}
