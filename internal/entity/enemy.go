// internal/entity/enemy.go
package entity

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/types"
	"go-terra/pkg/vec"
)

// Enemy — враг. Смерть проходит две стадии: Dying сразу при нулевом здоровье
// и ShouldBeRemoved после задержки на анимацию.
type Enemy struct {
	component.Body
	component.StatusTimers

	ID     types.EntityID
	DefID  string
	Level  int
	Health component.Health
	Attack component.EnemyAttack
	Speed  float64

	XPReward   float64
	ManaReward float64

	Alive           bool
	Dying           bool
	ShouldBeRemoved bool
	DeathTimer      float64

	Anim          component.Animation
	LastDirection vec.Vec2
	Target        Target
	Strategy      MovementStrategy

	// OnDeath вызывается один раз в момент смерти (после выдачи награды).
	OnDeath func(e *Enemy)
}

// NewEnemy создаёт врага по определению с уже посчитанными для уровня hp и уроном.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, level int, pos vec.Vec2, target Target) *Enemy {
	hp, damage := def.StatsForLevel(level)
	size := def.Visuals.Size
	if size <= 0 {
		size = config.PlayerSize
	}
	e := &Enemy{
		Body:  component.NewBody(pos, size),
		ID:    id,
		DefID: def.ID,
		Level: level,
		Health: component.Health{
			Value: float64(hp),
			Max:   float64(hp),
		},
		Attack: component.EnemyAttack{
			Damage:        float64(damage),
			Range:         def.AttackRange,
			Cooldown:      def.AttackCooldown,
			CooldownTimer: def.InitialAttackDelay,
			Windup:        def.AttackWindup,
		},
		Speed:         def.Speed,
		XPReward:      def.XPReward,
		ManaReward:    def.ManaReward,
		Alive:         true,
		LastDirection: vec.UnitX,
		Target:        target,
	}
	e.Anim.Set(component.AnimMove, config.EnemyMoveFrameDur)
	return e
}

// IsDying — враг умирает или уже мёртв.
func (e *Enemy) IsDying() bool {
	return e.Dying
}

// TakeDamage наносит урон. По мёртвому врагу ничего не происходит.
func (e *Enemy) TakeDamage(amount float64) {
	if !e.Alive {
		return
	}
	if e.Health.Damage(amount) {
		e.Alive = false
		e.die()
	}
}

// ApplyKnockback отбрасывает врага. Оглушение берётся как максимум с текущим.
func (e *Enemy) ApplyKnockback(direction vec.Vec2, strength, stun float64) {
	if !e.Alive {
		return
	}
	applyKnockback(&e.StatusTimers, direction, e.LastDirection, strength, stun)
}

// StartWindup начинает замах атаки.
func (e *Enemy) StartWindup() {
	if e.Attack.IsAttacking {
		return
	}
	e.Attack.IsAttacking = true
	e.Attack.WindupTimer = e.Attack.Windup
	e.Vel = vec.Zero
	e.Anim.Set(component.AnimWindup, e.Attack.Windup)
}

func (e *Enemy) die() {
	e.Dying = true
	e.DeathTimer = 0
	e.Vel = vec.Zero
	e.Attack.IsAttacking = false
	e.Anim.Set(component.AnimDeath, config.EnemyDeathFrameDur)

	if e.Target != nil && !e.Target.IsDying() {
		e.Target.GainXP(e.XPReward * e.Target.XPGainMultiplier())
		e.Target.RestoreMana(e.ManaReward)
	}
	if e.OnDeath != nil {
		e.OnDeath(e)
	}
}
