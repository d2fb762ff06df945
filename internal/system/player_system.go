// internal/system/player_system.go
package system

import (
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/entity"
	"go-terra/internal/event"
	"go-terra/internal/input"
	"go-terra/pkg/vec"
)

// PlayerSystem переводит снимок ввода в движение и атаки игрока,
// а также следит за уровнем и убийствами.
type PlayerSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	lastLevel       int
	deathReported   bool
	Kills           int
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		lastLevel:       1,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.Kills++
	}
}

func (s *PlayerSystem) Update(deltaTime float64, in input.Snapshot) {
	p := s.world.Player()
	if p == nil {
		return
	}
	defer s.reportProgress(p)

	if p.Dying {
		p.Vel = vec.Zero
		p.DeathTimer += deltaTime
		p.Anim.Advance(deltaTime, config.PlayerDeathFrames, false)
		return
	}

	// отброс и оглушение отключают управление, но оружие продолжает тикать
	if entity.StepKnockback(&p.Body, &p.StatusTimers, deltaTime) {
		s.updateWeapon(p, deltaTime)
		return
	}
	if tickStun(&p.StatusTimers, deltaTime) {
		p.Vel = vec.Zero
		s.updateWeapon(p, deltaTime)
		return
	}

	s.move(p, in.Move(), deltaTime)
	s.updateWeapon(p, deltaTime)

	if in.Attack && p.ActiveWeapon != nil {
		p.ActiveWeapon.Attack(in.Target(), s.world)
	}
}

func (s *PlayerSystem) move(p *entity.Player, dir vec.Vec2, dt float64) {
	speed := p.Speed
	if tickRecovery(&p.StatusTimers, dt) {
		speed *= config.RecoverySpeedFactor
	}

	if dir.LenSq() > 0 {
		dir = dir.Normalize()
		p.LastDirection = dir
		p.Vel = dir.Scale(speed)
		p.Anim.Set(component.AnimMove, config.PlayerMoveFrameDur)
	} else {
		p.Vel = p.Vel.Scale(config.IdleDampingFactor)
		if p.Vel.LenSq() < config.IdleVelocityEpsSq {
			p.Vel = vec.Zero
		}
		p.Anim.Set(component.AnimIdle, config.PlayerMoveFrameDur)
	}
	if p.LastDirection.X != 0 {
		p.Anim.FacingLeft = p.LastDirection.X < 0
	}
	p.Integrate(dt)
	p.Anim.Advance(dt, 0, true)
}

func (s *PlayerSystem) updateWeapon(p *entity.Player, dt float64) {
	if p.ActiveWeapon != nil {
		p.ActiveWeapon.Update(dt, s.world)
	}
}

func (s *PlayerSystem) reportProgress(p *entity.Player) {
	if p.Level > s.lastLevel {
		s.lastLevel = p.Level
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerLeveledUp, Data: p.Level})
	}
	if p.Dying && !s.deathReported {
		s.deathReported = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}
