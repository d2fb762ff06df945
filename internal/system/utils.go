// internal/system/utils.go
package system

import (
	"go-terra/internal/entity"
	"go-terra/pkg/vec"
)

// ApplyHit наносит урон, а затем отбрасывает цель.
// Если урон убил цель, отброс уже ничего не делает.
func ApplyHit(target entity.DamageSink, damage float64, direction vec.Vec2, strength, stun float64) {
	target.TakeDamage(damage)
	target.ApplyKnockback(direction, strength, stun)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
