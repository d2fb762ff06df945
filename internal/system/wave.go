// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"log"

	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/event"
)

var (
	ErrNotSelectingUpgrade = errors.New("upgrade selection is not active")
	ErrInvalidUpgradeIndex = errors.New("invalid upgrade index")
)

// WaveSystem следит за концом волны, предлагает улучшения и запускает заставку следующей волны.
// Волна N заканчивается, когда уровень игрока становится больше N.
type WaveSystem struct {
	world           *entity.World
	spawner         *Spawner
	state           *StateSystem
	catalog         defs.UpgradeCatalog
	eventDispatcher *event.Dispatcher

	CurrentWave int
	Intro       component.WaveIntro
	offered     []string
}

func NewWaveSystem(world *entity.World, spawner *Spawner, state *StateSystem, catalog defs.UpgradeCatalog, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		spawner:         spawner,
		state:           state,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
	}
}

// Begin показывает первый выбор улучшений перед первой волной.
func (s *WaveSystem) Begin() {
	s.offerUpgrades()
}

// Offered — ID улучшений, предложенных сейчас.
func (s *WaveSystem) Offered() []string {
	return s.offered
}

// CheckWaveEnd вызывается раз в кадр после обновления всех сущностей.
func (s *WaveSystem) CheckWaveEnd() bool {
	if s.state.Current() != component.PhasePlaying {
		return false
	}
	player := s.world.Player()
	if player == nil || player.Dying {
		return false
	}
	if player.Level > s.CurrentWave && s.CurrentWave <= s.spawner.MaxLevel() {
		s.endWave()
		return true
	}
	return false
}

func (s *WaveSystem) endWave() {
	purged := s.world.PurgeLivingEnemies()
	log.Printf("Wave %d ended, removed %d enemies", s.CurrentWave, purged)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: s.CurrentWave})

	s.spawner.NextWave()
	if !s.spawner.Active() {
		s.Intro = component.WaveIntro{}
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
		return
	}
	s.world.Player().RestoreAll()
	s.offerUpgrades()
}

func (s *WaveSystem) offerUpgrades() {
	s.offered = s.world.Rand().Sample(s.catalog.ListAllIDs(), config.UpgradeChoices)
	if len(s.offered) == 0 {
		s.startNextWave()
		return
	}
	s.state.SwitchToUpgradeSelection()
	s.eventDispatcher.Dispatch(event.Event{Type: event.UpgradesOffered, Data: s.offered})
}

// ChooseUpgrade применяет улучшение с индексом index из предложенных и запускает следующую волну.
func (s *WaveSystem) ChooseUpgrade(index int) error {
	if s.state.Current() != component.PhaseUpgradeSelection {
		return ErrNotSelectingUpgrade
	}
	if index < 0 || index >= len(s.offered) {
		return fmt.Errorf("%w: %d of %d", ErrInvalidUpgradeIndex, index, len(s.offered))
	}
	def, err := s.catalog.Get(s.offered[index])
	if err != nil {
		return fmt.Errorf("failed to choose upgrade: %w", err)
	}
	ApplyUpgrade(s.world.Player(), def)
	s.offered = nil
	log.Printf("Upgrade %q applied", def.ID)
	s.eventDispatcher.Dispatch(event.Event{Type: event.UpgradeApplied, Data: def.ID})

	if s.spawner.Active() {
		s.startNextWave()
	}
	return nil
}

// ApplyUpgrade умножает статы игрока или его активного оружия.
// Увеличение максимума здоровья или маны сразу заполняет шкалу.
func ApplyUpgrade(p *entity.Player, def defs.UpgradeDefinition) {
	for _, stat := range def.SortedStats() {
		value := def.Stats[stat]
		switch stat {
		case defs.StatMaxHP:
			p.Health.Max *= value
			p.Health.Value = p.Health.Max
		case defs.StatMaxMana:
			p.Mana.Max *= value
			p.Mana.Value = p.Mana.Max
		case defs.StatSpeed:
			p.Speed *= value
		case defs.StatXPMultiplier:
			p.XPMultiplier *= value
		default:
			if stat.IsWeaponStat() && p.ActiveWeapon != nil {
				p.ActiveWeapon.ApplyUpgrade(stat, value)
			}
		}
	}
}

func (s *WaveSystem) startNextWave() {
	s.CurrentWave++
	s.Intro = component.WaveIntro{Stage: component.IntroFadeIn, Wave: s.CurrentWave}
	s.state.SwitchToPlaying()
	log.Printf("Wave %d started", s.CurrentWave)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.CurrentWave})
}

// UpdateIntro продвигает заставку волны: появление, показ, исчезновение.
func (s *WaveSystem) UpdateIntro(deltaTime float64) {
	if !s.Intro.Active() {
		return
	}
	s.Intro.Timer += deltaTime
	switch s.Intro.Stage {
	case component.IntroFadeIn:
		if s.Intro.Timer >= config.IntroFadeInTime {
			s.Intro.Stage = component.IntroHold
		}
	case component.IntroHold:
		if s.Intro.Timer >= config.IntroFadeInTime+config.IntroHoldTime {
			s.Intro.Stage = component.IntroFadeOut
		}
	case component.IntroFadeOut:
		if s.Intro.Timer >= config.IntroFadeInTime+config.IntroHoldTime+config.IntroFadeOutTime {
			s.Intro.Stage = component.IntroNone
		}
	}
}

// IntroAlpha — непрозрачность надписи заставки в [0, 1].
func (s *WaveSystem) IntroAlpha() float64 {
	t := s.Intro.Timer
	switch s.Intro.Stage {
	case component.IntroFadeIn:
		return clamp01(t / config.IntroFadeInTime)
	case component.IntroHold:
		return 1
	case component.IntroFadeOut:
		return clamp01(1 - (t-config.IntroFadeInTime-config.IntroHoldTime)/config.IntroFadeOutTime)
	}
	return 0
}
