// internal/system/spawner.go
package system

import (
	"fmt"
	"log"
	"math"

	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/event"
	"go-terra/pkg/vec"
)

// Spawner создаёт врагов по таймеру на кольце вокруг игрока.
// Уровень врагов растёт с каждой волной, после MaxLevel спаунер выключается навсегда.
type Spawner struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	enemyDef        defs.EnemyDefinition
	strategy        MovementStrategy

	SpawnTimer float64
	Level      int
	active     bool
}

func NewSpawner(world *entity.World, enemyDef defs.EnemyDefinition, eventDispatcher *event.Dispatcher) (*Spawner, error) {
	strategy, err := StrategyFor(enemyDef.Behavior)
	if err != nil {
		return nil, fmt.Errorf("failed to create spawner for %q: %w", enemyDef.ID, err)
	}
	return &Spawner{
		world:           world,
		eventDispatcher: eventDispatcher,
		enemyDef:        enemyDef,
		strategy:        strategy,
		SpawnTimer:      config.SpawnInterval,
		Level:           1,
		active:          true,
	}, nil
}

// Active — спаунер ещё не исчерпал уровни.
func (s *Spawner) Active() bool {
	return s.active
}

// MaxLevel — последний уровень врагов.
func (s *Spawner) MaxLevel() int {
	return s.enemyDef.MaxLevel
}

func (s *Spawner) Update(deltaTime float64) {
	if !s.active {
		return
	}
	s.SpawnTimer -= deltaTime
	if s.SpawnTimer <= 0 {
		s.SpawnTimer = config.SpawnInterval
		s.spawnEnemy()
	}
}

// CalculateStats возвращает hp и урон врага для уровня.
func (s *Spawner) CalculateStats(level int) (hp, damage int) {
	return s.enemyDef.StatsForLevel(level)
}

// NextWave повышает уровень врагов. Выход за MaxLevel выключает спаунер.
func (s *Spawner) NextWave() {
	s.Level++
	if s.Level > s.enemyDef.MaxLevel {
		s.active = false
		log.Printf("Spawner exhausted after level %d", s.enemyDef.MaxLevel)
	}
}

func (s *Spawner) spawnEnemy() *entity.Enemy {
	player := s.world.Player()
	if player == nil {
		return nil
	}
	rng := s.world.Rand()
	angle := rng.Uniform(0, 2*math.Pi)
	radius := rng.Uniform(config.SpawnRadiusMin, config.SpawnRadiusMax)
	pos := player.Position().Add(vec.FromAngle(angle).Scale(radius))

	e := entity.NewEnemy(s.world.NewEntity(), s.enemyDef, s.Level, pos, player)
	e.Strategy = s.strategy
	e.OnDeath = func(dead *entity.Enemy) {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: dead})
	}
	s.world.AddEnemy(e)
	return e
}
