// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/input"
	"go-terra/internal/weapon"
	"go-terra/pkg/vec"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const gridSpacing = 64.0

// WorldRenderer рисует арену, врагов, снаряды и игрока относительно камеры.
type WorldRenderer struct {
	colors      WorldColors
	enemyColors map[string]color.RGBA
	fillImg     *ebiten.Image
	fillVs      []ebiten.Vertex
	fillIs      []uint16
}

func NewWorldRenderer(colors WorldColors, catalog *defs.Catalog) *WorldRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)

	enemyColors := make(map[string]color.RGBA)
	if catalog != nil {
		for id, def := range catalog.Enemies {
			enemyColors[id] = def.Visuals.Color
		}
	}
	return &WorldRenderer{
		colors:      colors,
		enemyColors: enemyColors,
		fillImg:     fillImg,
		fillVs:      make([]ebiten.Vertex, 0, 64),
		fillIs:      make([]uint16, 0, 96),
	}
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, world *entity.World, cam input.Camera) {
	screen.Fill(r.colors.BackgroundColor)
	r.drawGrid(screen, cam)

	// сначала трупы, чтобы живые враги были поверх
	for _, e := range world.Enemies() {
		if e.Dying {
			r.drawEnemy(screen, e, cam)
		}
	}
	for _, e := range world.Enemies() {
		if !e.Dying {
			r.drawEnemy(screen, e, cam)
		}
	}
	for _, p := range world.Projectiles() {
		if p.Dead || !cam.Visible(p.Position(), p.Size.X) {
			continue
		}
		x, y := cam.WorldToScreen(p.Position())
		vector.DrawFilledCircle(screen, x, y, float32(p.Size.X/2), r.colors.ProjectileColor, true)
	}
	if player := world.Player(); player != nil {
		r.drawPlayer(screen, player, cam)
	}
}

func (r *WorldRenderer) drawGrid(screen *ebiten.Image, cam input.Camera) {
	offX := math.Mod(cam.Width/2-cam.Center.X, gridSpacing)
	offY := math.Mod(cam.Height/2-cam.Center.Y, gridSpacing)
	for x := offX; x < cam.Width; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(cam.Height), 1, r.colors.GridColor, false)
	}
	for y := offY; y < cam.Height; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(cam.Width), float32(y), 1, r.colors.GridColor, false)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy, cam input.Camera) {
	if !cam.Visible(e.Position(), e.Size.X) {
		return
	}
	x, y := cam.WorldToScreen(e.Position())
	radius := float32(e.Size.X / 2)

	base, ok := r.enemyColors[e.DefID]
	if !ok {
		base = config.EnemyColor
	}
	fill := base
	switch {
	case e.Dying:
		fade := 1 - e.DeathTimer/config.EnemyRemovalDelay
		fill = WithAlpha(DarkenColor(base), fade)
		// сплющивается по кадрам анимации смерти
		radius *= 1 - float32(e.Anim.Frame)/float32(config.EnemyDeathFrames*2)
	case e.Attack.IsAttacking:
		progress := 1.0
		if e.Attack.Windup > 0 {
			progress = 1 - e.Attack.WindupTimer/e.Attack.Windup
		}
		fill = LerpColor(base, r.colors.EnemyWindupColor, progress)
	}
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)

	if e.Dying {
		return
	}
	if e.Stunned() || e.InKnockback() {
		vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, r.colors.OutlineColor, true)
	}
	if frac := e.Health.Fraction(); frac < 1 {
		w := float32(e.Size.X)
		top := y - radius - 8
		vector.DrawFilledRect(screen, x-w/2, top, w, 4, DarkenColor(r.colors.HealthBarColor), false)
		vector.DrawFilledRect(screen, x-w/2, top, w*float32(frac), 4, r.colors.HealthBarColor, false)
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p *entity.Player, cam input.Camera) {
	x, y := cam.WorldToScreen(p.Position())
	radius := float32(p.Size.X / 2)

	fill := r.colors.PlayerColor
	if p.Dying {
		fill = DarkenColor(fill)
		radius *= 1 - float32(p.Anim.Frame)/float32(config.PlayerDeathFrames*2)
	} else if p.Stunned() || p.InKnockback() {
		fill = LerpColor(fill, r.colors.OutlineColor, 0.5)
	}

	if sword, ok := p.ActiveWeapon.(*weapon.Melee); ok && sword.Attacking {
		r.drawMeleeArc(screen, x, y, sword)
	}

	vector.DrawFilledCircle(screen, x, y, radius, fill, true)
	vector.StrokeCircle(screen, x, y, radius, r.colors.StrokeWidth, r.colors.OutlineColor, true)

	if !p.Dying {
		// направление взгляда
		d := p.LastDirection.Normalize()
		if d.IsZero() {
			d = vec.UnitX
		}
		tip := d.Scale(float64(radius) + 6)
		vector.StrokeLine(screen, x, y, x+float32(tip.X), y+float32(tip.Y), r.colors.StrokeWidth, r.colors.OutlineColor, true)
	}
}

// drawMeleeArc рисует сектор удара, угасающий к концу взмаха.
func (r *WorldRenderer) drawMeleeArc(screen *ebiten.Image, x, y float32, sword *weapon.Melee) {
	center := sword.AttackDirection.Angle()
	half := sword.ArcDegrees / 2 * math.Pi / 180
	radius := float32(sword.Range)

	path := vector.Path{}
	path.MoveTo(x, y)
	for i := 0; i <= config.MeleeArcSegments; i++ {
		a := center - half + 2*half*float64(i)/config.MeleeArcSegments
		path.LineTo(x+radius*float32(math.Cos(a)), y+radius*float32(math.Sin(a)))
	}
	path.Close()

	fill := r.colors.MeleeArcColor
	if sword.FrameCount > 0 {
		fill = WithAlpha(fill, 1-float64(sword.FrameIndex)/float64(sword.FrameCount))
	}

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 1
		r.fillVs[i].SrcY = 1
		r.fillVs[i].ColorR = float32(fill.R) / 255
		r.fillVs[i].ColorG = float32(fill.G) / 255
		r.fillVs[i].ColorB = float32(fill.B) / 255
		r.fillVs[i].ColorA = float32(fill.A) / 255
	}
	screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
