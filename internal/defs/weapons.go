// internal/defs/weapons.go
package defs

import "fmt"

// MeleeStats — параметры оружия ближнего боя.
type MeleeStats struct {
	Range         float64 `yaml:"range"`
	ArcDegrees    float64 `yaml:"arc_degrees"`
	FrameCount    int     `yaml:"frame_count"`
	FrameDuration float64 `yaml:"frame_duration"`
	HitFrames     int     `yaml:"hit_frames"`
	HitStun       float64 `yaml:"hit_stun"`
}

// RangedStats — параметры оружия дальнего боя.
type RangedStats struct {
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	AccuracyDegrees    float64 `yaml:"accuracy_degrees"`
	ManaCost           float64 `yaml:"mana_cost"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	StunDuration       float64 `yaml:"stun_duration"`
}

// WeaponDefinition holds the static data for a weapon. Exactly one of Melee or Ranged is set.
type WeaponDefinition struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Kind      WeaponKind   `yaml:"kind"`
	Damage    float64      `yaml:"damage"`
	Cooldown  float64      `yaml:"cooldown"`
	Repulsion float64      `yaml:"repulsion"`
	Offset    [2]float64   `yaml:"offset"`
	Melee     *MeleeStats  `yaml:"melee,omitempty"`
	Ranged    *RangedStats `yaml:"ranged,omitempty"`
}

func (d WeaponDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: weapon without id", ErrInvalidDefinition)
	}
	if d.Damage < 0 || d.Cooldown < 0 {
		return fmt.Errorf("%w: weapon %q has negative damage or cooldown", ErrInvalidDefinition, d.ID)
	}
	switch d.Kind {
	case WeaponMelee:
		if d.Melee == nil || d.Ranged != nil {
			return fmt.Errorf("%w: melee weapon %q must define only melee stats", ErrInvalidDefinition, d.ID)
		}
		if d.Melee.FrameCount <= 0 || d.Melee.FrameDuration <= 0 {
			return fmt.Errorf("%w: melee weapon %q needs positive frame count and duration", ErrInvalidDefinition, d.ID)
		}
		if d.Melee.ArcDegrees <= 0 || d.Melee.ArcDegrees > 360 {
			return fmt.Errorf("%w: melee weapon %q arc must be in (0, 360]", ErrInvalidDefinition, d.ID)
		}
	case WeaponRanged:
		if d.Ranged == nil || d.Melee != nil {
			return fmt.Errorf("%w: ranged weapon %q must define only ranged stats", ErrInvalidDefinition, d.ID)
		}
		if d.Ranged.ProjectileSpeed <= 0 || d.Ranged.ProjectileLifetime <= 0 {
			return fmt.Errorf("%w: ranged weapon %q needs positive projectile speed and lifetime", ErrInvalidDefinition, d.ID)
		}
	default:
		return fmt.Errorf("%w: weapon %q has unknown kind %q", ErrInvalidDefinition, d.ID, d.Kind)
	}
	return nil
}

// StarterWeaponID maps the weapon selection choice to the starting weapon.
// "melee" gives the sword, everything else gives the pistol.
func StarterWeaponID(choice string) string {
	if choice == string(WeaponMelee) {
		return "starter_sword"
	}
	return "pistol"
}
