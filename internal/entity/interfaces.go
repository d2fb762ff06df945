// internal/entity/interfaces.go
package entity

import (
	"go-terra/internal/defs"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"
)

// DamageSink — всё, что может получать урон и отброс.
// На мёртвых и умирающих сущностях оба вызова ничего не делают.
type DamageSink interface {
	TakeDamage(amount float64)
	ApplyKnockback(direction vec.Vec2, strength, stun float64)
}

// Target — цель врага: её позиция, урон по ней и награда за убийство.
type Target interface {
	DamageSink
	Position() vec.Vec2
	IsDying() bool
	XPGainMultiplier() float64
	GainXP(amount float64) bool
	RestoreMana(amount float64)
}

// MovementStrategy — поведение врага вне отброса, смерти и замаха.
type MovementStrategy interface {
	Update(e *Enemy, target Target, dt float64)
}

// Weapon — оружие игрока. Ближний и дальний бой реализуют один контракт.
type Weapon interface {
	ID() string
	Kind() defs.WeaponKind
	// Attack пытается начать атаку в сторону мировой точки target.
	// Возвращает false, если атака заблокирована (перезарядка, нет маны, идёт взмах).
	Attack(target vec.Vec2, world WorldState) bool
	Update(dt float64, world WorldState)
	// CooldownFraction — доля оставшейся перезарядки в [0, 1].
	CooldownFraction() float64
	// ApplyUpgrade умножает стат оружия. Неподходящие статы игнорируются.
	ApplyUpgrade(stat defs.StatName, multiplier float64)
}

// WorldState — то, что системы и оружие видят из мира.
type WorldState interface {
	Player() *Player
	Enemies() []*Enemy
	Projectiles() []*Projectile
	AddProjectile(p *Projectile)
	TargetWorldPosition() vec.Vec2
	Rand() *utils.PRNGService
}
