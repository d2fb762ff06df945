// internal/system/ai.go
package system

import (
	"fmt"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/entity"
	"go-terra/pkg/vec"
)

type MovementStrategy = entity.MovementStrategy

// ChaseBrain преследует цель и начинает замах вплотную.
// Порядок проверок: оглушение, восстановление после отброса,
// ожидание перезарядки в радиусе атаки, начало замаха, движение.
type ChaseBrain struct{}

func (ChaseBrain) Update(e *entity.Enemy, target entity.Target, dt float64) {
	if tickStun(&e.StatusTimers, dt) {
		return
	}

	toTarget := target.Position().Sub(e.Position())
	distance := toTarget.Len()
	triggerRange := config.AttackTriggerFactor * e.Attack.Range

	if tickRecovery(&e.StatusTimers, dt) {
		if distance < triggerRange {
			e.Vel = vec.Zero
			return
		}
		moveToward(e, toTarget, e.Speed*config.RecoverySpeedFactor, dt)
		return
	}

	if e.Attack.CooldownTimer > 0 && distance < e.Attack.Range {
		e.Vel = vec.Zero
		e.Anim.Set(component.AnimIdle, config.EnemyMoveFrameDur)
		return
	}

	if distance < triggerRange && e.Attack.CooldownReady() && !e.Attack.IsAttacking {
		e.StartWindup()
		return
	}

	moveToward(e, toTarget, e.Speed, dt)
}

func moveToward(e *entity.Enemy, toTarget vec.Vec2, speed, dt float64) {
	dir := toTarget.Normalize()
	if dir.IsZero() {
		e.Vel = vec.Zero
		return
	}
	e.Vel = dir.Scale(speed)
	e.LastDirection = dir
	e.Anim.FacingLeft = dir.X < 0
	e.Anim.Set(component.AnimMove, config.EnemyMoveFrameDur)
	e.Integrate(dt)
}

var strategies = map[string]MovementStrategy{
	"":      ChaseBrain{},
	"chase": ChaseBrain{},
}

// StrategyFor возвращает поведение по имени из определения врага.
func StrategyFor(behavior string) (MovementStrategy, error) {
	s, ok := strategies[behavior]
	if !ok {
		return nil, fmt.Errorf("unknown enemy behavior %q", behavior)
	}
	return s, nil
}
