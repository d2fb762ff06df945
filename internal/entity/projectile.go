// internal/entity/projectile.go
package entity

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/types"
	"go-terra/pkg/vec"
)

// Projectile — снаряд. Исчезает при первом попадании или по истечении времени жизни.
type Projectile struct {
	component.Body

	ID        types.EntityID
	Damage    float64
	Knockback float64
	Stun      float64
	Lifetime  float64
	Dead      bool
}

// NewProjectile создаёт снаряд, летящий в направлении direction со скоростью speed.
func NewProjectile(id types.EntityID, pos, direction vec.Vec2, speed, damage, knockback, stun, lifetime float64) *Projectile {
	p := &Projectile{
		Body:      component.NewBody(pos, config.ProjectileSize),
		ID:        id,
		Damage:    damage,
		Knockback: knockback,
		Stun:      stun,
		Lifetime:  lifetime,
	}
	p.Vel = direction.Normalize().Scale(speed)
	return p
}
