// internal/weapon/ranged.go
package weapon

import (
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"
)

// Ranged — оружие дальнего боя, выпускает по одному снаряду за выстрел.
type Ranged struct {
	id    string
	owner *entity.Player

	Damage             float64
	Cooldown           float64
	CooldownTimer      float64
	Repulsion          float64
	ProjectileSpeed    float64
	AccuracyDegrees    float64
	ManaCost           float64
	ProjectileLifetime float64
	StunDuration       float64
	Offset             [2]float64
}

func newRanged(def defs.WeaponDefinition, owner *entity.Player) *Ranged {
	r := def.Ranged
	return &Ranged{
		id:                 def.ID,
		owner:              owner,
		Damage:             def.Damage,
		Cooldown:           def.Cooldown,
		Repulsion:          def.Repulsion,
		ProjectileSpeed:    r.ProjectileSpeed,
		AccuracyDegrees:    r.AccuracyDegrees,
		ManaCost:           r.ManaCost,
		ProjectileLifetime: r.ProjectileLifetime,
		StunDuration:       r.StunDuration,
		Offset:             def.Offset,
	}
}

func (w *Ranged) ID() string { return w.id }

func (w *Ranged) Kind() defs.WeaponKind { return defs.WeaponRanged }

// Attack стреляет в сторону target. Если маны не хватает, выстрел
// отменяется и перезарядка не начинается.
func (w *Ranged) Attack(target vec.Vec2, world entity.WorldState) bool {
	if w.CooldownTimer > 0 {
		return false
	}
	if w.ManaCost > 0 && !w.owner.ConsumeMana(w.ManaCost) {
		return false
	}

	origin := w.owner.Position()
	dir := target.Sub(origin).Normalize()
	if dir.IsZero() {
		dir = w.owner.LastDirection.Normalize()
	}
	if dir.IsZero() {
		dir = vec.UnitX
	}
	spread := (world.Rand().Float64() - 0.5) * w.AccuracyDegrees
	dir = dir.Rotate(spread)

	muzzle := origin.Add(w.owner.WeaponOffset(w.Offset))
	// идентификатор выдаёт мир при добавлении
	proj := entity.NewProjectile(0, muzzle, dir, w.ProjectileSpeed, w.Damage, w.Repulsion, w.StunDuration, w.ProjectileLifetime)
	world.AddProjectile(proj)

	w.CooldownTimer = w.Cooldown
	return true
}

func (w *Ranged) Update(dt float64, world entity.WorldState) {
	w.CooldownTimer = utils.TickDown(w.CooldownTimer, dt)
}

func (w *Ranged) CooldownFraction() float64 {
	if w.Cooldown <= 0 {
		return 0
	}
	return utils.Clamp(w.CooldownTimer/w.Cooldown, 0, 1)
}

func (w *Ranged) ApplyUpgrade(stat defs.StatName, multiplier float64) {
	switch stat {
	case defs.StatDamage:
		w.Damage *= multiplier
	case defs.StatAttackCooldown:
		w.Cooldown *= multiplier
	}
}
