// internal/entity/ecs.go
package entity

import (
	"go-terra/internal/types"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"
)

// World хранит все сущности забега. Удаление двухфазное: системы помечают,
// а Compact/PruneEnemies убирают помеченное один раз за кадр.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	target      vec.Vec2
	rng         *utils.PRNGService
}

func NewWorld(rng *utils.PRNGService) *World {
	return &World{
		NextID: 1,
		rng:    rng,
	}
}

// NewEntity выдаёт следующий идентификатор.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) Player() *Player { return w.player }

func (w *World) SetPlayer(p *Player) { w.player = p }

func (w *World) Enemies() []*Enemy { return w.enemies }

func (w *World) AddEnemy(e *Enemy) { w.enemies = append(w.enemies, e) }

func (w *World) Projectiles() []*Projectile { return w.projectiles }

// AddProjectile добавляет снаряд, выдавая ему идентификатор, если его ещё нет.
func (w *World) AddProjectile(p *Projectile) {
	if p.ID == 0 {
		p.ID = w.NewEntity()
	}
	w.projectiles = append(w.projectiles, p)
}

// TargetWorldPosition — точка прицеливания в мировых координатах из последнего ввода.
func (w *World) TargetWorldPosition() vec.Vec2 { return w.target }

func (w *World) SetTarget(p vec.Vec2) { w.target = p }

func (w *World) Rand() *utils.PRNGService { return w.rng }

// PruneEnemies удаляет врагов, у которых закончилась задержка после смерти.
func (w *World) PruneEnemies() int {
	kept := w.enemies[:0]
	removed := 0
	for _, e := range w.enemies {
		if e.ShouldBeRemoved {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clearTail(w.enemies, len(kept))
	w.enemies = kept
	return removed
}

// PurgeLivingEnemies убирает всех врагов, кроме уже умирающих (конец волны).
func (w *World) PurgeLivingEnemies() int {
	kept := w.enemies[:0]
	removed := 0
	for _, e := range w.enemies {
		if !e.Dying {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clearTail(w.enemies, len(kept))
	w.enemies = kept
	return removed
}

// CompactProjectiles удаляет мёртвые снаряды.
func (w *World) CompactProjectiles() int {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.Dead {
			kept = append(kept, p)
		}
	}
	removed := len(w.projectiles) - len(kept)
	for i := len(kept); i < len(w.projectiles); i++ {
		w.projectiles[i] = nil
	}
	w.projectiles = kept
	return removed
}

func clearTail(s []*Enemy, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
