// internal/system/projectile.go
package system

import (
	"go-terra/internal/entity"
)

// ProjectileSystem двигает снаряды и обрабатывает попадания.
// Столкновение проверяется до движения, по позиции с прошлого тика.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	enemies := s.world.Enemies()
	for _, p := range s.world.Projectiles() {
		if p.Dead {
			continue
		}
		if target := firstHit(p, enemies); target != nil {
			ApplyHit(target, p.Damage, p.Vel, p.Knockback, p.Stun)
			p.Dead = true
			continue
		}
		p.Integrate(deltaTime)
		p.Lifetime -= deltaTime
		if p.Lifetime <= 0 {
			p.Dead = true
		}
	}
}

// firstHit — первый живой враг в порядке списка, с которым пересекается снаряд.
func firstHit(p *entity.Projectile, enemies []*entity.Enemy) *entity.Enemy {
	box := p.Box()
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		if box.Intersects(e.Box()) {
			return e
		}
	}
	return nil
}
