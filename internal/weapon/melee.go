// internal/weapon/melee.go
package weapon

import (
	"math"

	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/types"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"
)

// Melee — оружие ближнего боя: взмах по дуге перед игроком.
// Каждый враг получает не больше одного удара за взмах.
type Melee struct {
	id    string
	owner *entity.Player

	Damage        float64
	Cooldown      float64
	CooldownTimer float64
	Repulsion     float64
	Range         float64
	ArcDegrees    float64
	FrameCount    int
	FrameDuration float64
	HitFrames     int
	HitStun       float64
	Offset        [2]float64

	Attacking       bool
	FrameIndex      int
	frameTimer      float64
	AttackDirection vec.Vec2
	hitThisSwing    map[types.EntityID]struct{}
}

func newMelee(def defs.WeaponDefinition, owner *entity.Player) *Melee {
	m := def.Melee
	hitFrames := m.HitFrames
	if hitFrames <= 0 {
		hitFrames = config.MeleeHitFrames
	}
	hitStun := m.HitStun
	if hitStun <= 0 {
		hitStun = config.MeleeHitStun
	}
	return &Melee{
		id:            def.ID,
		owner:         owner,
		Damage:        def.Damage,
		Cooldown:      def.Cooldown,
		Repulsion:     def.Repulsion,
		Range:         m.Range,
		ArcDegrees:    m.ArcDegrees,
		FrameCount:    m.FrameCount,
		FrameDuration: m.FrameDuration,
		HitFrames:     hitFrames,
		HitStun:       hitStun,
		Offset:        def.Offset,
		hitThisSwing:  make(map[types.EntityID]struct{}),
	}
}

func (w *Melee) ID() string { return w.id }

func (w *Melee) Kind() defs.WeaponKind { return defs.WeaponMelee }

// Attack начинает взмах, если он не идёт и перезарядка закончилась.
// Направление фиксируется на весь взмах, перезарядка стартует сразу.
func (w *Melee) Attack(target vec.Vec2, world entity.WorldState) bool {
	if w.Attacking || w.CooldownTimer > 0 {
		return false
	}
	dir := target.Sub(w.owner.Position()).Normalize()
	if dir.IsZero() {
		dir = w.owner.LastDirection.Normalize()
	}
	if dir.IsZero() {
		dir = vec.UnitX
	}
	w.AttackDirection = dir
	w.Attacking = true
	w.FrameIndex = 0
	w.frameTimer = 0
	for id := range w.hitThisSwing {
		delete(w.hitThisSwing, id)
	}
	w.CooldownTimer = w.Cooldown
	return true
}

// Update тикает перезарядку, проверяет попадания в окне удара и двигает анимацию взмаха.
func (w *Melee) Update(dt float64, world entity.WorldState) {
	w.CooldownTimer = utils.TickDown(w.CooldownTimer, dt)
	if !w.Attacking {
		return
	}
	if w.FrameIndex < w.HitFrames {
		w.resolveHits(world.Enemies())
	}
	w.frameTimer += dt
	for w.frameTimer >= w.FrameDuration {
		w.frameTimer -= w.FrameDuration
		w.FrameIndex++
	}
	if w.FrameIndex >= w.FrameCount {
		w.Attacking = false
		w.FrameIndex = 0
		w.frameTimer = 0
	}
}

func (w *Melee) resolveHits(enemies []*entity.Enemy) {
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		if _, done := w.hitThisSwing[e.ID]; done {
			continue
		}
		if !w.InArc(e.Position()) {
			continue
		}
		e.TakeDamage(w.Damage)
		e.ApplyKnockback(e.Position().Sub(w.owner.Position()), w.Repulsion, w.HitStun)
		w.hitThisSwing[e.ID] = struct{}{}
	}
}

// InArc — попадает ли точка в сектор текущего взмаха: ближе Range и не дальше ArcDegrees/2 от направления удара.
func (w *Melee) InArc(p vec.Vec2) bool {
	v := p.Sub(w.owner.Position())
	if v.Len() >= w.Range {
		return false
	}
	return math.Abs(utils.NormalizeAngle(w.AttackDirection.AngleTo(v))) <= w.ArcDegrees/2
}

func (w *Melee) CooldownFraction() float64 {
	if w.Cooldown <= 0 {
		return 0
	}
	return utils.Clamp(w.CooldownTimer/w.Cooldown, 0, 1)
}

func (w *Melee) ApplyUpgrade(stat defs.StatName, multiplier float64) {
	switch stat {
	case defs.StatDamage:
		w.Damage *= multiplier
	case defs.StatAttackCooldown:
		w.Cooldown *= multiplier
	}
}
