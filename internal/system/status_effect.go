// internal/system/status_effect.go
package system

import (
	"go-terra/internal/component"
	"go-terra/internal/utils"
)

// tickStun уменьшает оглушение. Возвращает true, если сущность была оглушена в этом тике.
func tickStun(timers *component.StatusTimers, deltaTime float64) bool {
	if !timers.Stunned() {
		return false
	}
	timers.Stun = utils.TickDown(timers.Stun, deltaTime)
	return true
}

// tickRecovery уменьшает таймер восстановления после отброса.
// Возвращает true, если восстановление было активно в этом тике.
func tickRecovery(timers *component.StatusTimers, deltaTime float64) bool {
	if !timers.Recovering() {
		return false
	}
	timers.KnockbackRecovery = utils.TickDown(timers.KnockbackRecovery, deltaTime)
	return true
}
