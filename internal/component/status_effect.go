// internal/component/status_effect.go
package component

import "go-terra/pkg/vec"

// StatusTimers — оглушение и отброс.
// Пока Knockback > 0, обычное движение отключено и тело смещается на KnockbackVelocity.
// Пока Stun > 0 (после окончания отброса) сущность стоит на месте.
// KnockbackRecovery > 0 заставляет двигаться на половинной скорости.
type StatusTimers struct {
	Stun              float64
	Knockback         float64
	KnockbackVelocity vec.Vec2
	KnockbackRecovery float64
}

// Apply запускает отброс. Оглушение и восстановление никогда не укорачиваются.
func (s *StatusTimers) Apply(velocity vec.Vec2, duration, stun, recovery float64) {
	s.KnockbackVelocity = velocity
	s.Knockback = duration
	if stun > s.Stun {
		s.Stun = stun
	}
	if recovery > s.KnockbackRecovery {
		s.KnockbackRecovery = recovery
	}
}

// InKnockback — активен ли отброс.
func (s *StatusTimers) InKnockback() bool { return s.Knockback > 0 }

func (s *StatusTimers) Stunned() bool { return s.Stun > 0 }

func (s *StatusTimers) Recovering() bool { return s.KnockbackRecovery > 0 }
