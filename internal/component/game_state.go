// internal/component/game_state.go
package component

// GamePhase — фаза игры
type GamePhase int

const (
	PhaseUpgradeSelection GamePhase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWon
)

func (p GamePhase) String() string {
	switch p {
	case PhaseUpgradeSelection:
		return "upgrade_selection"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

// IntroStage — стадия анимации заставки волны
type IntroStage int

const (
	IntroNone IntroStage = iota
	IntroFadeIn
	IntroHold
	IntroFadeOut
)

// WaveIntro — заставка "Wave N". Симуляция во время заставки продолжается.
type WaveIntro struct {
	Stage IntroStage
	Timer float64
	Wave  int
}

// Active — показывается ли заставка.
func (w *WaveIntro) Active() bool { return w.Stage != IntroNone }

// GameOverState — таймеры экрана поражения.
type GameOverState struct {
	Timer float64
}
