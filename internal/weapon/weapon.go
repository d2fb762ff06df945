// internal/weapon/weapon.go
package weapon

import (
	"fmt"

	"go-terra/internal/defs"
	"go-terra/internal/entity"
)

// New создаёт оружие по определению. Статы копируются, поэтому улучшения
// не затрагивают сам каталог.
func New(def defs.WeaponDefinition, owner *entity.Player) (entity.Weapon, error) {
	switch def.Kind {
	case defs.WeaponMelee:
		if def.Melee == nil {
			return nil, fmt.Errorf("%w: melee weapon %q without melee stats", defs.ErrInvalidDefinition, def.ID)
		}
		return newMelee(def, owner), nil
	case defs.WeaponRanged:
		if def.Ranged == nil {
			return nil, fmt.Errorf("%w: ranged weapon %q without ranged stats", defs.ErrInvalidDefinition, def.ID)
		}
		return newRanged(def, owner), nil
	}
	return nil, fmt.Errorf("%w: weapon %q has unknown kind %q", defs.ErrInvalidDefinition, def.ID, def.Kind)
}

// Equip выдаёт игроку оружие из каталога. Неизвестный ID — ошибка конфигурации.
func Equip(player *entity.Player, catalog *defs.Catalog, id string) error {
	def, err := catalog.Weapon(id)
	if err != nil {
		return fmt.Errorf("failed to equip: %w", err)
	}
	w, err := New(def, player)
	if err != nil {
		return fmt.Errorf("failed to equip %q: %w", id, err)
	}
	player.ActiveWeapon = w
	return nil
}
