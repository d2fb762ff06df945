package weapon

import (
	"math"
	"testing"

	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/entity"
	"go-terra/internal/utils"
	"go-terra/pkg/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func testCatalog(t *testing.T) *defs.Catalog {
	t.Helper()
	c, err := defs.LoadDefault()
	require.NoError(t, err)
	return c
}

func newTestWorld(t *testing.T, weaponID string) (*entity.World, *entity.Player) {
	t.Helper()
	w := entity.NewWorld(utils.NewPRNGService(12345))
	p := entity.NewPlayer(w.NewEntity(), vec.Zero)
	w.SetPlayer(p)
	require.NoError(t, Equip(p, testCatalog(t), weaponID))
	return w, p
}

func addEnemy(t *testing.T, w *entity.World, pos vec.Vec2, hp float64) *entity.Enemy {
	t.Helper()
	def, err := testCatalog(t).Enemy("slime")
	require.NoError(t, err)
	e := entity.NewEnemy(w.NewEntity(), def, 1, pos, w.Player())
	e.Health.Value, e.Health.Max = hp, hp
	w.AddEnemy(e)
	return e
}

func TestEquipUnknownWeapon(t *testing.T) {
	p := entity.NewPlayer(1, vec.Zero)
	err := Equip(p, testCatalog(t), "bazooka")
	assert.ErrorIs(t, err, defs.ErrUnknownWeapon)
	assert.Nil(t, p.ActiveWeapon)
}

func TestNewRejectsMismatchedKind(t *testing.T) {
	_, err := New(defs.WeaponDefinition{ID: "x", Kind: defs.WeaponMelee}, entity.NewPlayer(1, vec.Zero))
	assert.ErrorIs(t, err, defs.ErrInvalidDefinition)
	_, err = New(defs.WeaponDefinition{ID: "x", Kind: "laser"}, entity.NewPlayer(1, vec.Zero))
	assert.ErrorIs(t, err, defs.ErrInvalidDefinition)
}

func TestMeleeSingleHitPerSwing(t *testing.T) {
	w, p := newTestWorld(t, "starter_sword")
	e := addEnemy(t, w, vec.New(30, 0), 1000)
	sword := p.ActiveWeapon.(*Melee)

	require.True(t, sword.Attack(vec.New(100, 0), w))
	// весь взмах: 6 кадров по 0.1с
	for i := 0; i < 60; i++ {
		sword.Update(dt, w)
		// враг остаётся в дуге, даже если его отбросило
		e.SetPosition(vec.New(30, 0))
	}

	assert.False(t, sword.Attacking)
	assert.Equal(t, 950.0, e.Health.Value, "exactly one hit per swing")
}

func TestMeleeArcAndRange(t *testing.T) {
	tests := []struct {
		name string
		pos  vec.Vec2
		hit  bool
	}{
		{"straight ahead", vec.New(40, 0), true},
		{"inside arc edge", vec.New(40, 0).Rotate(59), true},
		{"outside arc", vec.New(40, 0).Rotate(61), false},
		{"behind", vec.New(-40, 0), false},
		{"out of range", vec.New(50, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, p := newTestWorld(t, "starter_sword")
			e := addEnemy(t, w, tt.pos, 1000)
			sword := p.ActiveWeapon.(*Melee)

			require.True(t, sword.Attack(vec.New(100, 0), w))
			sword.Update(dt, w)

			if tt.hit {
				assert.Equal(t, 950.0, e.Health.Value)
				assert.True(t, e.InKnockback())
				assert.InDelta(t, config.MeleeHitStun, e.Stun, 1e-9)
			} else {
				assert.Equal(t, 1000.0, e.Health.Value)
			}
		})
	}
}

func TestMeleeInArcMatchesHitTest(t *testing.T) {
	_, p := newTestWorld(t, "starter_sword")
	sword := p.ActiveWeapon.(*Melee)
	sword.AttackDirection = vec.New(0, 1)

	assert.True(t, sword.InArc(vec.New(0, 40)))
	assert.True(t, sword.InArc(vec.New(0, 40).Rotate(-59)))
	assert.False(t, sword.InArc(vec.New(0, 40).Rotate(61)))
	assert.False(t, sword.InArc(vec.New(0, -40)))
	assert.False(t, sword.InArc(vec.New(0, 50)), "range is exclusive")

	p.SetPosition(vec.New(100, 100))
	assert.True(t, sword.InArc(vec.New(100, 130)), "measured from the owner")
	assert.False(t, sword.InArc(vec.New(0, 40)))
}

func TestMeleeHitWindowIsFirstFrames(t *testing.T) {
	w, p := newTestWorld(t, "starter_sword")
	sword := p.ActiveWeapon.(*Melee)
	require.True(t, sword.Attack(vec.New(100, 0), w))

	// пропускаем окно удара (3 кадра по 0.1с)
	for sword.FrameIndex < sword.HitFrames {
		sword.Update(dt, w)
	}
	e := addEnemy(t, w, vec.New(30, 0), 1000)
	for sword.Attacking {
		sword.Update(dt, w)
	}
	assert.Equal(t, 1000.0, e.Health.Value)
}

func TestMeleeDirectionFrozenDuringSwing(t *testing.T) {
	w, p := newTestWorld(t, "starter_sword")
	sword := p.ActiveWeapon.(*Melee)
	require.True(t, sword.Attack(vec.New(100, 0), w))
	sword.Update(dt, w)

	assert.False(t, sword.Attack(vec.New(-100, 0), w))
	assert.Equal(t, vec.UnitX, sword.AttackDirection)
}

func TestMeleeZeroTargetUsesFacing(t *testing.T) {
	w, p := newTestWorld(t, "starter_sword")
	p.LastDirection = vec.New(0, 1)
	sword := p.ActiveWeapon.(*Melee)
	require.True(t, sword.Attack(p.Position(), w))
	assert.Equal(t, vec.New(0, 1), sword.AttackDirection)
}

func TestMeleeCooldownMonotonic(t *testing.T) {
	w, p := newTestWorld(t, "starter_sword")
	sword := p.ActiveWeapon.(*Melee)
	require.True(t, sword.Attack(vec.New(100, 0), w))
	assert.Equal(t, sword.Cooldown, sword.CooldownTimer)

	prev := sword.CooldownTimer
	attacks := 0
	for i := 0; i < 120; i++ {
		sword.Update(dt, w)
		assert.LessOrEqual(t, sword.CooldownTimer, prev)
		assert.GreaterOrEqual(t, sword.CooldownTimer, 0.0)
		prev = sword.CooldownTimer
		if sword.CooldownTimer > 0 && sword.Attack(vec.New(100, 0), w) {
			attacks++
		}
	}
	assert.Zero(t, attacks, "no attack starts while cooldown is running")
	assert.True(t, sword.Attack(vec.New(100, 0), w))
}

func TestRangedSpawnsProjectileAtMuzzle(t *testing.T) {
	w, p := newTestWorld(t, "pistol")
	gun := p.ActiveWeapon.(*Ranged)
	mana := p.Mana.Value

	require.True(t, gun.Attack(vec.New(500, 0), w))

	require.Len(t, w.Projectiles(), 1)
	proj := w.Projectiles()[0]
	assert.NotZero(t, proj.ID)
	assert.Equal(t, vec.New(15, 10), proj.Position())
	assert.InDelta(t, gun.ProjectileSpeed, proj.Vel.Len(), 1e-9)
	assert.Equal(t, mana-gun.ManaCost, p.Mana.Value)
	assert.Equal(t, gun.Cooldown, gun.CooldownTimer)

	assert.False(t, gun.Attack(vec.New(500, 0), w), "blocked by cooldown")
	assert.Len(t, w.Projectiles(), 1)
}

func TestRangedSpreadWithinAccuracy(t *testing.T) {
	w, p := newTestWorld(t, "pistol")
	gun := p.ActiveWeapon.(*Ranged)
	gun.ManaCost = 0

	for i := 0; i < 50; i++ {
		gun.CooldownTimer = 0
		require.True(t, gun.Attack(vec.New(1000, 0), w))
	}
	for _, proj := range w.Projectiles() {
		angle := vec.UnitX.AngleTo(proj.Vel)
		assert.LessOrEqual(t, math.Abs(angle), gun.AccuracyDegrees/2)
	}
}

func TestRangedManaBlockDoesNotStartCooldown(t *testing.T) {
	w, p := newTestWorld(t, "pistol")
	gun := p.ActiveWeapon.(*Ranged)
	p.Mana.Value = gun.ManaCost - 1

	assert.False(t, gun.Attack(vec.New(100, 0), w))
	assert.Empty(t, w.Projectiles())
	assert.Equal(t, 0.0, gun.CooldownTimer)
	assert.Equal(t, gun.ManaCost-1, p.Mana.Value)
}

func TestRifleNeedsNoMana(t *testing.T) {
	w, p := newTestWorld(t, "rifle")
	p.Mana.Value = 0
	assert.True(t, p.ActiveWeapon.Attack(vec.New(100, 0), w))
	assert.Len(t, w.Projectiles(), 1)
}

func TestApplyUpgrade(t *testing.T) {
	_, p := newTestWorld(t, "starter_sword")
	sword := p.ActiveWeapon.(*Melee)
	sword.ApplyUpgrade(defs.StatDamage, 1.1)
	sword.ApplyUpgrade(defs.StatAttackCooldown, 0.95)
	sword.ApplyUpgrade(defs.StatSpeed, 10)

	assert.InDelta(t, 55, sword.Damage, 1e-9)
	assert.InDelta(t, 0.95, sword.Cooldown, 1e-9)

	def, err := testCatalog(t).Weapon("starter_sword")
	require.NoError(t, err)
	assert.Equal(t, 50.0, def.Damage, "catalog is not mutated")
}

func TestCooldownFraction(t *testing.T) {
	w, p := newTestWorld(t, "rifle")
	gun := p.ActiveWeapon
	assert.Equal(t, 0.0, gun.CooldownFraction())
	require.True(t, gun.Attack(vec.New(100, 0), w))
	assert.Equal(t, 1.0, gun.CooldownFraction())
}
