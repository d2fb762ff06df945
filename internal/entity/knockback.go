// internal/entity/knockback.go
package entity

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/pkg/vec"
)

// pushDirection нормализует направление отброса.
// Для нулевого вектора берётся последнее направление движения, затем ось X.
func pushDirection(direction, lastDirection vec.Vec2) vec.Vec2 {
	if d := direction.Normalize(); !d.IsZero() {
		return d
	}
	if d := lastDirection.Normalize(); !d.IsZero() {
		return d
	}
	return vec.UnitX
}

// applyKnockback — единая формула: скорость = сила * KnockbackSpeedFactor.
func applyKnockback(timers *component.StatusTimers, direction, lastDirection vec.Vec2, strength, stun float64) {
	push := pushDirection(direction, lastDirection)
	timers.Apply(
		push.Scale(strength*config.KnockbackSpeedFactor),
		config.KnockbackDuration,
		stun,
		config.KnockbackDuration+config.KnockbackRecoveryPad,
	)
}

// StepKnockback смещает тело по скорости отброса и уменьшает таймер.
// Возвращает true, если отброс был активен в этом тике.
func StepKnockback(body *component.Body, timers *component.StatusTimers, dt float64) bool {
	if !timers.InKnockback() {
		return false
	}
	body.Move(timers.KnockbackVelocity.Scale(dt))
	timers.Knockback -= dt
	if timers.Knockback <= 0 {
		timers.Knockback = 0
		timers.KnockbackVelocity = vec.Zero
	}
	return true
}
