// internal/input/camera.go
package input

import "go-terra/pkg/vec"

// Camera держит игрока в центре экрана и переводит координаты экрана в мировые и обратно.
type Camera struct {
	Center        vec.Vec2
	Width, Height float64
}

func NewCamera(width, height int) Camera {
	return Camera{Width: float64(width), Height: float64(height)}
}

// Follow возвращает камеру, центрированную на p.
func (c Camera) Follow(p vec.Vec2) Camera {
	c.Center = p
	return c
}

func (c Camera) halfScreen() vec.Vec2 {
	return vec.New(c.Width/2, c.Height/2)
}

func (c Camera) ScreenToWorld(x, y float64) vec.Vec2 {
	return vec.New(x, y).Sub(c.halfScreen()).Add(c.Center)
}

func (c Camera) WorldToScreen(p vec.Vec2) (x, y float32) {
	s := p.Sub(c.Center).Add(c.halfScreen())
	return float32(s.X), float32(s.Y)
}

// Visible — попадает ли круг радиуса r в экран.
func (c Camera) Visible(p vec.Vec2, r float64) bool {
	d := p.Sub(c.Center)
	return d.X+r >= -c.Width/2 && d.X-r <= c.Width/2 &&
		d.Y+r >= -c.Height/2 && d.Y-r <= c.Height/2
}
