// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
// HP and damage grow per spawner level.
type EnemyDefinition struct {
	ID                     string  `yaml:"id"`
	Name                   string  `yaml:"name"`
	BaseHP                 int     `yaml:"base_hp"`
	BaseDamage             int     `yaml:"base_damage"`
	HPIncreasePerLevel     float64 `yaml:"hp_increase_per_level"`
	DamageIncreasePerLevel float64 `yaml:"damage_increase_per_level"`
	Speed                  float64 `yaml:"speed"`
	AttackRange            float64 `yaml:"attack_range"`
	AttackCooldown         float64 `yaml:"attack_cooldown"`
	AttackWindup           float64 `yaml:"attack_windup"`
	InitialAttackDelay     float64 `yaml:"initial_attack_delay"`
	XPReward               float64 `yaml:"xp_reward"`
	ManaReward             float64 `yaml:"mana_reward"`
	MaxLevel               int     `yaml:"max_level"`
	Behavior               string  `yaml:"behavior"`
	Visuals                Visuals `yaml:"visuals"`
}

// StatsForLevel returns HP and damage scaled for the spawner level.
// Level 1 (and below) uses the base values, higher levels are truncated to int.
func (d EnemyDefinition) StatsForLevel(level int) (hp, damage int) {
	if level <= 1 {
		return d.BaseHP, d.BaseDamage
	}
	steps := float64(level - 1)
	hp = int(float64(d.BaseHP) * (1 + d.HPIncreasePerLevel*steps))
	damage = int(float64(d.BaseDamage) * (1 + d.DamageIncreasePerLevel*steps))
	return hp, damage
}

func (d EnemyDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: enemy without id", ErrInvalidDefinition)
	}
	if d.BaseHP <= 0 {
		return fmt.Errorf("%w: enemy %q needs positive base hp", ErrInvalidDefinition, d.ID)
	}
	if d.MaxLevel <= 0 {
		return fmt.Errorf("%w: enemy %q needs positive max level", ErrInvalidDefinition, d.ID)
	}
	if d.AttackRange <= 0 || d.Speed < 0 {
		return fmt.Errorf("%w: enemy %q has invalid range or speed", ErrInvalidDefinition, d.ID)
	}
	return nil
}
