// internal/entity/player.go
package entity

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/types"
	"go-terra/pkg/vec"
)

// Player — персонаж игрока.
type Player struct {
	component.Body
	component.StatusTimers
	component.PlayerStateComponent

	ID     types.EntityID
	Health component.Health
	Mana   component.Mana
	Speed  float64

	ActiveWeapon  Weapon
	LastDirection vec.Vec2 // направление взгляда
	Dying         bool
	DeathTimer    float64
	Anim          component.Animation
}

// NewPlayer создаёт игрока с базовыми характеристиками в точке pos.
func NewPlayer(id types.EntityID, pos vec.Vec2) *Player {
	p := &Player{
		Body: component.NewBody(pos, config.PlayerSize),
		PlayerStateComponent: component.PlayerStateComponent{
			Level:         1,
			XPToNextLevel: config.InitialXPToNext,
			XPMultiplier:  1.0,
		},
		ID:            id,
		Health:        component.Health{Value: config.PlayerBaseHP, Max: config.PlayerBaseHP},
		Mana:          component.Mana{Value: config.PlayerBaseMana, Max: config.PlayerBaseMana},
		Speed:         config.PlayerSpeed,
		LastDirection: vec.UnitX,
	}
	p.Anim.Set(component.AnimIdle, config.PlayerMoveFrameDur)
	return p
}

func (p *Player) IsDying() bool {
	return p.Dying
}

// XPGainMultiplier — множитель получаемого опыта.
func (p *Player) XPGainMultiplier() float64 {
	return p.XPMultiplier
}

// GainXP начисляет опыт и повышает уровень столько раз, сколько нужно.
// Умирающий игрок опыт не получает. Возвращает true, если уровень вырос.
func (p *Player) GainXP(amount float64) bool {
	if p.Dying {
		return false
	}
	p.CurrentXP += amount
	leveledUp := false
	for p.CurrentXP >= float64(p.XPToNextLevel) {
		p.levelUp()
		leveledUp = true
	}
	return leveledUp
}

func (p *Player) levelUp() {
	p.CurrentXP -= float64(p.XPToNextLevel)
	p.Level++
	p.XPToNextLevel = int(float64(p.XPToNextLevel) * config.XPGrowthFactor)
}

// ConsumeMana списывает ману, если её хватает.
func (p *Player) ConsumeMana(amount float64) bool {
	if p.Mana.Value < amount {
		return false
	}
	p.Mana.Value -= amount
	return true
}

// CanAfford — хватает ли маны без списания.
func (p *Player) CanAfford(amount float64) bool {
	return p.Mana.Value >= amount
}

// RestoreMana добавляет ману, не превышая максимум.
func (p *Player) RestoreMana(amount float64) {
	p.Mana.Value += amount
	if p.Mana.Value > p.Mana.Max {
		p.Mana.Value = p.Mana.Max
	}
}

// RestoreAll восстанавливает здоровье и ману до максимума (между волнами).
func (p *Player) RestoreAll() {
	p.Health.Value = p.Health.Max
	p.Mana.Value = p.Mana.Max
}

// TakeDamage наносит урон. При нулевом здоровье начинается необратимая смерть.
func (p *Player) TakeDamage(amount float64) {
	if p.Dying || p.Health.Value <= 0 {
		return
	}
	if p.Health.Damage(amount) {
		p.Dying = true
		p.DeathTimer = 0
		p.Vel = vec.Zero
		p.Anim.Set(component.AnimDeath, config.PlayerDeathFrameDur)
	}
}

// ApplyKnockback отбрасывает игрока по той же формуле, что и врагов.
func (p *Player) ApplyKnockback(direction vec.Vec2, strength, stun float64) {
	if p.Dying {
		return
	}
	applyKnockback(&p.StatusTimers, direction, p.LastDirection, strength, stun)
}

// WeaponOffset — точка крепления оружия относительно центра игрока.
// По горизонтали зеркалится по направлению взгляда.
func (p *Player) WeaponOffset(offset [2]float64) vec.Vec2 {
	x := offset[0]
	if p.LastDirection.X < 0 {
		x = -x
	}
	return vec.New(x, offset[1])
}
