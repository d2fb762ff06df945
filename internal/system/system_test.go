package system

import (
	"testing"

	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/event"
	"go-terra/internal/utils"
	"go-terra/internal/weapon"
	"go-terra/pkg/vec"

	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

type fixture struct {
	catalog    *defs.Catalog
	world      *entity.World
	player     *entity.Player
	dispatcher *event.Dispatcher
	slime      defs.EnemyDefinition
}

func newFixture(t *testing.T, weaponID string) *fixture {
	t.Helper()
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	slime, err := catalog.Enemy("slime")
	require.NoError(t, err)

	world := entity.NewWorld(utils.NewPRNGService(2024))
	player := entity.NewPlayer(world.NewEntity(), vec.Zero)
	world.SetPlayer(player)
	if weaponID != "" {
		require.NoError(t, weapon.Equip(player, catalog, weaponID))
	}
	return &fixture{
		catalog:    catalog,
		world:      world,
		player:     player,
		dispatcher: event.NewDispatcher(),
		slime:      slime,
	}
}

// enemyAt добавляет слайма первого уровня с готовой атакой.
func (f *fixture) enemyAt(pos vec.Vec2) *entity.Enemy {
	e := entity.NewEnemy(f.world.NewEntity(), f.slime, 1, pos, f.player)
	e.Attack.CooldownTimer = 0
	f.world.AddEnemy(e)
	return e
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
