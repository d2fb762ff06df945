// internal/system/enemy.go
package system

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/entity"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"
)

// EnemySystem обновляет врагов: отброс, смерть, замах, перезарядка и поведение.
type EnemySystem struct {
	world *entity.World
}

func NewEnemySystem(world *entity.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Update(deltaTime float64) {
	for _, e := range s.world.Enemies() {
		s.updateEnemy(e, deltaTime)
	}
}

func (s *EnemySystem) updateEnemy(e *entity.Enemy, dt float64) {
	if entity.StepKnockback(&e.Body, &e.StatusTimers, dt) {
		return
	}

	if e.Dying {
		e.DeathTimer += dt
		e.Anim.Advance(dt, config.EnemyDeathFrames, false)
		if e.DeathTimer >= config.EnemyRemovalDelay {
			e.ShouldBeRemoved = true
		}
		return
	}

	if e.Attack.IsAttacking {
		e.Vel = vec.Zero
		if tickStun(&e.StatusTimers, dt) {
			return // оглушение замораживает замах
		}
		e.Attack.WindupTimer -= dt
		if e.Attack.WindupTimer <= 0 {
			s.resolveAttack(e)
		}
		return
	}

	e.Attack.CooldownTimer = utils.TickDown(e.Attack.CooldownTimer, dt)

	if e.Target != nil {
		brain := e.Strategy
		if brain == nil {
			brain = ChaseBrain{}
		}
		brain.Update(e, e.Target, dt)
	}
	e.Anim.Advance(dt, 0, true)
}

// resolveAttack завершает замах: попадание проверяется по расстоянию
// в момент окончания замаха, перезарядка стартует в любом случае.
func (s *EnemySystem) resolveAttack(e *entity.Enemy) {
	e.Attack.IsAttacking = false
	e.Attack.WindupTimer = 0
	if e.Target != nil && e.Position().DistanceTo(e.Target.Position()) < e.Attack.Range {
		e.Target.TakeDamage(e.Attack.Damage)
	}
	e.Attack.CooldownTimer = e.Attack.Cooldown
	e.Anim.Set(component.AnimAttack, config.EnemyMoveFrameDur)
}
