// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	weaponsFile  = "weapons.yaml"
	enemiesFile  = "enemies.yaml"
	upgradesFile = "upgrades.yaml"
)

// Catalog holds every weapon, enemy and upgrade definition, keyed by ID.
type Catalog struct {
	Weapons    map[string]WeaponDefinition
	Enemies    map[string]EnemyDefinition
	Upgrades   map[string]UpgradeDefinition
	upgradeIDs []string // порядок из файла
}

// LoadDefault loads the definitions shipped with the binary.
func LoadDefault() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads definitions from a directory on disk, e.g. for balancing without a rebuild.
func LoadDir(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads weapons, enemies and upgrades from fsys and validates them.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var weaponDefs []WeaponDefinition
	if err := readYAML(fsys, weaponsFile, &weaponDefs); err != nil {
		return nil, err
	}
	var enemyDefs []EnemyDefinition
	if err := readYAML(fsys, enemiesFile, &enemyDefs); err != nil {
		return nil, err
	}
	var upgradeDefs []UpgradeDefinition
	if err := readYAML(fsys, upgradesFile, &upgradeDefs); err != nil {
		return nil, err
	}

	c := &Catalog{
		Weapons:  make(map[string]WeaponDefinition, len(weaponDefs)),
		Enemies:  make(map[string]EnemyDefinition, len(enemyDefs)),
		Upgrades: make(map[string]UpgradeDefinition, len(upgradeDefs)),
	}
	for _, def := range weaponDefs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", weaponsFile, err)
		}
		if _, dup := c.Weapons[def.ID]; dup {
			return nil, fmt.Errorf("failed to load %s: %w: %q", weaponsFile, ErrDuplicateDefinition, def.ID)
		}
		c.Weapons[def.ID] = def
	}
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", enemiesFile, err)
		}
		if _, dup := c.Enemies[def.ID]; dup {
			return nil, fmt.Errorf("failed to load %s: %w: %q", enemiesFile, ErrDuplicateDefinition, def.ID)
		}
		rgba, err := parseHexColor(def.Visuals.Hex)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: enemy %q: %w", enemiesFile, def.ID, err)
		}
		def.Visuals.Color = rgba
		c.Enemies[def.ID] = def
	}
	for _, def := range upgradeDefs {
		if err := def.validate(); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", upgradesFile, err)
		}
		if _, dup := c.Upgrades[def.ID]; dup {
			return nil, fmt.Errorf("failed to load %s: %w: %q", upgradesFile, ErrDuplicateDefinition, def.ID)
		}
		c.Upgrades[def.ID] = def
		c.upgradeIDs = append(c.upgradeIDs, def.ID)
	}

	log.Printf("Loaded %d weapon, %d enemy and %d upgrade definitions", len(c.Weapons), len(c.Enemies), len(c.Upgrades))
	return c, nil
}

func readYAML(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Weapon returns the weapon definition or ErrUnknownWeapon.
func (c *Catalog) Weapon(id string) (WeaponDefinition, error) {
	def, ok := c.Weapons[id]
	if !ok {
		return WeaponDefinition{}, fmt.Errorf("%w: %q", ErrUnknownWeapon, id)
	}
	return def, nil
}

// Enemy returns the enemy definition or ErrUnknownEnemy.
func (c *Catalog) Enemy(id string) (EnemyDefinition, error) {
	def, ok := c.Enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return def, nil
}

// Get returns the upgrade definition or ErrUnknownUpgrade.
func (c *Catalog) Get(id string) (UpgradeDefinition, error) {
	def, ok := c.Upgrades[id]
	if !ok {
		return UpgradeDefinition{}, fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	return def, nil
}

// ListAllIDs returns upgrade IDs in file order.
func (c *Catalog) ListAllIDs() []string {
	ids := make([]string, len(c.upgradeIDs))
	copy(ids, c.upgradeIDs)
	return ids
}

// parseHexColor разбирает цвет вида "#RRGGBB" или "#RRGGBBAA".
func parseHexColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{255, 255, 255, 255}, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidDefinition, s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: bad color %q: %v", ErrInvalidDefinition, s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
