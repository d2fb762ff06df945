// internal/input/snapshot.go
package input

import "go-terra/pkg/vec"

// Snapshot — ввод за один кадр. Ядро симуляции не опрашивает устройства само,
// поэтому тот же поток снимков воспроизводит тот же забег.
type Snapshot struct {
	MoveX   float64 `msgpack:"mx"`
	MoveY   float64 `msgpack:"my"`
	Attack  bool    `msgpack:"a"`
	TargetX float64 `msgpack:"tx"` // точка прицеливания в мировых координатах
	TargetY float64 `msgpack:"ty"`
	Pause   bool    `msgpack:"p"`
	// Choice — выбор карточки улучшения (1..N), 0 если не выбрано.
	Choice int `msgpack:"c,omitempty"`
}

// Move — направление движения (не нормализованное).
func (s Snapshot) Move() vec.Vec2 {
	return vec.New(s.MoveX, s.MoveY)
}

// Target — точка прицеливания.
func (s Snapshot) Target() vec.Vec2 {
	return vec.New(s.TargetX, s.TargetY)
}

// WithTarget возвращает копию снимка с новой точкой прицеливания.
func (s Snapshot) WithTarget(p vec.Vec2) Snapshot {
	s.TargetX, s.TargetY = p.X, p.Y
	return s
}
