package system

import (
	"math"
	"testing"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/event"
	"go-terra/internal/input"
	"go-terra/pkg/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerDiagonalMoveIsNormalized(t *testing.T) {
	f := newFixture(t, "")
	s := NewPlayerSystem(f.world, f.dispatcher)

	s.Update(0.1, input.Snapshot{MoveX: 1, MoveY: 1})

	assert.InDelta(t, config.PlayerSpeed*0.1, f.player.Position().Len(), 1e-9)
	assert.InDelta(t, 1/math.Sqrt2, f.player.LastDirection.X, 1e-9)
	assert.Equal(t, component.AnimMove, f.player.Anim.State)
}

func TestPlayerIdleDamping(t *testing.T) {
	f := newFixture(t, "")
	s := NewPlayerSystem(f.world, f.dispatcher)

	s.Update(dt, input.Snapshot{MoveX: -1})
	require.InDelta(t, -config.PlayerSpeed, f.player.Vel.X, 1e-9)
	assert.True(t, f.player.Anim.FacingLeft)

	s.Update(dt, input.Snapshot{})
	assert.InDelta(t, -config.PlayerSpeed*config.IdleDampingFactor, f.player.Vel.X, 1e-9)
	assert.Equal(t, component.AnimIdle, f.player.Anim.State)
	assert.True(t, f.player.Anim.FacingLeft, "facing kept while idle")

	for i := 0; i < 30; i++ {
		s.Update(dt, input.Snapshot{})
	}
	assert.Equal(t, vec.Zero, f.player.Vel)
}

func TestPlayerRecoveryHalvesSpeed(t *testing.T) {
	f := newFixture(t, "")
	s := NewPlayerSystem(f.world, f.dispatcher)
	f.player.KnockbackRecovery = 0.2

	s.Update(0.1, input.Snapshot{MoveX: 1})

	assert.InDelta(t, config.PlayerSpeed*config.RecoverySpeedFactor*0.1, f.player.Position().X, 1e-9)
}

func TestPlayerAttackFiresAtTarget(t *testing.T) {
	f := newFixture(t, "pistol")
	s := NewPlayerSystem(f.world, f.dispatcher)

	s.Update(dt, input.Snapshot{Attack: true, TargetX: 0, TargetY: 300})

	require.Len(t, f.world.Projectiles(), 1)
	assert.Greater(t, f.world.Projectiles()[0].Vel.Y, 0.0)
}

func TestPlayerKnockbackSuspendsInputButNotWeapon(t *testing.T) {
	f := newFixture(t, "pistol")
	s := NewPlayerSystem(f.world, f.dispatcher)
	gun := f.player.ActiveWeapon
	require.True(t, gun.Attack(vec.New(100, 0), f.world))
	before := gun.CooldownFraction()

	f.player.ApplyKnockback(vec.New(0, 1), 1, 0)
	s.Update(0.1, input.Snapshot{MoveX: 1, Attack: true, TargetX: 100})

	assert.InDelta(t, 0, f.player.Position().X, 1e-9, "input ignored")
	assert.InDelta(t, 10, f.player.Position().Y, 1e-9)
	assert.Less(t, gun.CooldownFraction(), before)
	assert.Len(t, f.world.Projectiles(), 1, "no attack while knocked back")
}

func TestPlayerStunFreezesMovement(t *testing.T) {
	f := newFixture(t, "")
	s := NewPlayerSystem(f.world, f.dispatcher)
	f.player.Stun = 0.05

	s.Update(dt, input.Snapshot{MoveX: 1})

	assert.Equal(t, vec.Zero, f.player.Position())
	assert.InDelta(t, 0.05-dt, f.player.Stun, 1e-12)
}

func TestPlayerProgressEvents(t *testing.T) {
	f := newFixture(t, "")
	rec := &recorder{}
	f.dispatcher.SubscribeAll(rec, event.PlayerLeveledUp, event.PlayerDied)
	s := NewPlayerSystem(f.world, f.dispatcher)

	f.player.GainXP(250)
	s.Update(dt, input.Snapshot{})
	s.Update(dt, input.Snapshot{})
	require.Len(t, rec.events, 1)
	assert.Equal(t, 3, rec.events[0].Data)

	f.player.TakeDamage(1000)
	s.Update(dt, input.Snapshot{MoveX: 1})
	s.Update(dt, input.Snapshot{MoveX: 1})

	assert.Equal(t, []event.EventType{event.PlayerLeveledUp, event.PlayerDied}, rec.types())
	assert.Equal(t, vec.Zero, f.player.Position(), "dead players do not move")
	assert.InDelta(t, 2*dt, f.player.DeathTimer, 1e-12)
}

func TestPlayerSystemCountsKills(t *testing.T) {
	f := newFixture(t, "")
	s := NewPlayerSystem(f.world, f.dispatcher)

	f.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled})
	f.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled})

	assert.Equal(t, 2, s.Kills)
}
