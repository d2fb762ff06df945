// internal/component/combat.go
package component

// Health — здоровье в диапазоне [0, Max].
type Health struct {
	Value float64
	Max   float64
}

// Damage уменьшает здоровье, не опуская ниже нуля. Возвращает true, если здоровье кончилось.
func (h *Health) Damage(amount float64) bool {
	h.Value -= amount
	if h.Value <= 0 {
		h.Value = 0
		return true
	}
	return false
}

func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// EnemyAttack — таймеры атаки врага: замах и перезарядка.
type EnemyAttack struct {
	Damage        float64
	Range         float64
	Cooldown      float64
	CooldownTimer float64
	Windup        float64
	WindupTimer   float64
	IsAttacking   bool
}

// CooldownReady — можно ли начинать новую атаку.
func (a *EnemyAttack) CooldownReady() bool {
	return a.CooldownTimer <= 0
}
