// pkg/vec/vec.go
package vec

import "math"

// Vec2 — двумерный вектор в мировых координатах (пиксели).
type Vec2 struct {
	X, Y float64
}

// Zero — нулевой вектор.
var Zero = Vec2{}

// UnitX — единичный вектор вдоль оси X.
var UnitX = Vec2{X: 1}

func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle строит единичный вектор по углу в радианах.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross возвращает z-компоненту векторного произведения.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate поворачивает вектор на угол в градусах (против часовой стрелки в математической системе координат).
func (v Vec2) Rotate(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// AngleTo возвращает знаковый угол в градусах от v к o в диапазоне (-180, 180].
// Если один из векторов нулевой, угол равен 0.
func (v Vec2) AngleTo(o Vec2) float64 {
	if v.IsZero() || o.IsZero() {
		return 0
	}
	return math.Atan2(v.Cross(o), v.Dot(o)) * 180 / math.Pi
}

// Angle — направление вектора в радианах.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Distance — расстояние между двумя точками.
func Distance(a, b Vec2) float64 {
	return a.DistanceTo(b)
}
