// internal/component/movement.go
package component

import "go-terra/pkg/vec"

// Rect — ограничивающий прямоугольник, выровненный по осям
type Rect struct {
	Min, Max vec.Vec2
}

// RectAround строит прямоугольник с центром в точке.
func RectAround(center, size vec.Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Intersects — пересечение по открытым интервалам (касание не считается).
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

func (r Rect) Contains(p vec.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Body — позиция, скорость и хитбокс сущности.
// Позиция меняется только через SetPosition/Move, чтобы Box никогда не отставал.
type Body struct {
	pos  vec.Vec2
	Vel  vec.Vec2
	Size vec.Vec2
	box  Rect
}

func NewBody(pos vec.Vec2, size float64) Body {
	b := Body{Size: vec.New(size, size)}
	b.SetPosition(pos)
	return b
}

func (b *Body) Position() vec.Vec2 { return b.pos }
func (b *Body) Box() Rect          { return b.box }

func (b *Body) SetPosition(p vec.Vec2) {
	b.pos = p
	b.box = RectAround(p, b.Size)
}

// Move сдвигает тело на delta.
func (b *Body) Move(delta vec.Vec2) {
	b.SetPosition(b.pos.Add(delta))
}

// Integrate сдвигает тело на Vel*dt.
func (b *Body) Integrate(dt float64) {
	b.Move(b.Vel.Scale(dt))
}
