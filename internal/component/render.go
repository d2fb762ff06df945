// internal/component/render.go
package component

// AnimState — состояние анимации, которое ядро выставляет для рендерера
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimMove
	AnimWindup
	AnimAttack
	AnimDeath
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimMove:
		return "move"
	case AnimWindup:
		return "windup"
	case AnimAttack:
		return "attack"
	case AnimDeath:
		return "death"
	}
	return "unknown"
}

// Animation — счётчик кадров с фиксированной длительностью кадра.
type Animation struct {
	State         AnimState
	Frame         int
	Timer         float64
	FrameDuration float64
	FacingLeft    bool
}

// Set переключает состояние, сбрасывая кадр при смене.
func (a *Animation) Set(state AnimState, frameDuration float64) {
	if a.State == state {
		return
	}
	a.State = state
	a.Frame = 0
	a.Timer = 0
	a.FrameDuration = frameDuration
}

// Advance продвигает кадр. frameCount <= 0 значит бесконечный цикл без ограничения.
// Если loop == false, кадр останавливается на последнем.
func (a *Animation) Advance(dt float64, frameCount int, loop bool) {
	if a.FrameDuration <= 0 {
		return
	}
	a.Timer += dt
	for a.Timer >= a.FrameDuration {
		a.Timer -= a.FrameDuration
		a.Frame++
	}
	if frameCount > 0 && a.Frame >= frameCount {
		if loop {
			a.Frame %= frameCount
		} else {
			a.Frame = frameCount - 1
		}
	}
}
