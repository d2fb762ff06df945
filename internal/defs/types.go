// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
)

var (
	ErrUnknownWeapon       = errors.New("unknown weapon")
	ErrUnknownEnemy        = errors.New("unknown enemy")
	ErrUnknownUpgrade      = errors.New("unknown upgrade")
	ErrUnknownStat         = errors.New("unknown upgrade stat")
	ErrInvalidDefinition   = errors.New("invalid definition")
	ErrDuplicateDefinition = errors.New("duplicate definition id")
)

// WeaponKind defines how a weapon resolves its attacks.
type WeaponKind string

const (
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

// StatName is a stat an upgrade can modify. Every value is a multiplier.
type StatName string

const (
	StatMaxHP          StatName = "max_hp_mult"
	StatMaxMana        StatName = "max_mana_mult"
	StatSpeed          StatName = "speed_mult"
	StatXPMultiplier   StatName = "xp_multiplier"
	StatDamage         StatName = "damage_mult"
	StatAttackCooldown StatName = "attack_cooldown_mult"
)

// knownStats — статы, которые умеет применять оркестратор волн.
var knownStats = map[StatName]bool{
	StatMaxHP:          true,
	StatMaxMana:        true,
	StatSpeed:          true,
	StatXPMultiplier:   true,
	StatDamage:         true,
	StatAttackCooldown: true,
}

// IsKnown reports whether the stat name can be applied.
func (s StatName) IsKnown() bool {
	return knownStats[s]
}

// IsWeaponStat reports whether the stat modifies the active weapon rather than the player.
func (s StatName) IsWeaponStat() bool {
	return s == StatDamage || s == StatAttackCooldown
}

// Visuals holds what the renderer needs to draw an entity without sprites.
type Visuals struct {
	Color color.RGBA `yaml:"-"`
	Hex   string     `yaml:"color"`
	Size  float64    `yaml:"size"`
}
