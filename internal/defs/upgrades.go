// internal/defs/upgrades.go
package defs

import (
	"fmt"
	"sort"
)

// UpgradeDefinition описывает одно улучшение, предлагаемое между волнами.
type UpgradeDefinition struct {
	ID          string               `yaml:"id"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description"`
	Stats       map[StatName]float64 `yaml:"stats"`
}

// SortedStats returns the stat names in a stable order so upgrades apply deterministically.
func (d UpgradeDefinition) SortedStats() []StatName {
	names := make([]StatName, 0, len(d.Stats))
	for name := range d.Stats {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (d UpgradeDefinition) validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: upgrade without id", ErrInvalidDefinition)
	}
	if len(d.Stats) == 0 {
		return fmt.Errorf("%w: upgrade %q changes nothing", ErrInvalidDefinition, d.ID)
	}
	for name, value := range d.Stats {
		if !name.IsKnown() {
			return fmt.Errorf("upgrade %q: %w %q", d.ID, ErrUnknownStat, name)
		}
		if value <= 0 {
			return fmt.Errorf("%w: upgrade %q stat %q must be a positive multiplier", ErrInvalidDefinition, d.ID, name)
		}
	}
	return nil
}

// UpgradeCatalog is what the wave orchestration needs from the upgrade list.
type UpgradeCatalog interface {
	Get(id string) (UpgradeDefinition, error)
	ListAllIDs() []string
}
