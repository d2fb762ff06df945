package defs

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWeapons = `
- id: sword
  kind: melee
  damage: 10
  cooldown: 1
  melee: {range: 50, arc_degrees: 90, frame_count: 4, frame_duration: 0.1, hit_frames: 2}
`

const testEnemies = `
- id: blob
  base_hp: 10
  base_damage: 1
  speed: 50
  attack_range: 20
  max_level: 2
`

func testFS(upgrades string) fstest.MapFS {
	return fstest.MapFS{
		weaponsFile:  {Data: []byte(testWeapons)},
		enemiesFile:  {Data: []byte(testEnemies)},
		upgradesFile: {Data: []byte(upgrades)},
	}
}

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	sword, err := c.Weapon("starter_sword")
	require.NoError(t, err)
	assert.Equal(t, WeaponMelee, sword.Kind)
	require.NotNil(t, sword.Melee)
	assert.Equal(t, 120.0, sword.Melee.ArcDegrees)
	assert.Equal(t, [2]float64{20, 10}, sword.Offset)

	pistol, err := c.Weapon("pistol")
	require.NoError(t, err)
	require.NotNil(t, pistol.Ranged)
	assert.Equal(t, 5.0, pistol.Ranged.ManaCost)

	slime, err := c.Enemy("slime")
	require.NoError(t, err)
	assert.Equal(t, 5, slime.MaxLevel)
	assert.Equal(t, uint8(0x5a), slime.Visuals.Color.R)

	assert.Equal(t, []string{
		"hp_boost_1", "damage_boost_1", "speed_boost_1",
		"xp_gain_boost_1", "attack_speed_boost_1", "max_mana_boost_1",
	}, c.ListAllIDs())

	up, err := c.Get("attack_speed_boost_1")
	require.NoError(t, err)
	assert.Equal(t, 0.95, up.Stats[StatAttackCooldown])
}

func TestUnknownIDs(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	_, err = c.Weapon("bazooka")
	assert.ErrorIs(t, err, ErrUnknownWeapon)
	_, err = c.Enemy("dragon")
	assert.ErrorIs(t, err, ErrUnknownEnemy)
	_, err = c.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownUpgrade)
}

func TestUnknownStatFailsLoad(t *testing.T) {
	_, err := LoadFS(testFS(`
- id: bad
  stats:
    luck_mult: 2
`))
	assert.ErrorIs(t, err, ErrUnknownStat)
}

func TestInvalidDefinitions(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "melee without stats",
			fs: fstest.MapFS{
				weaponsFile:  {Data: []byte("- {id: x, kind: melee, damage: 1, cooldown: 1}")},
				enemiesFile:  {Data: []byte(testEnemies)},
				upgradesFile: {Data: []byte("[]")},
			},
		},
		{
			name: "unknown weapon kind",
			fs: fstest.MapFS{
				weaponsFile:  {Data: []byte("- {id: x, kind: magic, damage: 1, cooldown: 1}")},
				enemiesFile:  {Data: []byte(testEnemies)},
				upgradesFile: {Data: []byte("[]")},
			},
		},
		{
			name: "duplicate upgrade",
			fs:   testFS("- {id: a, stats: {speed_mult: 1.1}}\n- {id: a, stats: {speed_mult: 1.2}}"),
		},
		{
			name: "non-positive multiplier",
			fs:   testFS("- {id: a, stats: {speed_mult: 0}}"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fs)
			assert.Error(t, err)
		})
	}
}

func TestMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}

func TestStatsForLevel(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)
	slime, err := c.Enemy("slime")
	require.NoError(t, err)

	tests := []struct {
		level      int
		hp, damage int
	}{
		{1, 50, 5},
		{2, 60, 5},
		{3, 70, 6},
		{5, 90, 7},
	}
	for _, tt := range tests {
		hp, dmg := slime.StatsForLevel(tt.level)
		assert.Equal(t, tt.hp, hp, "hp at level %d", tt.level)
		assert.Equal(t, tt.damage, dmg, "damage at level %d", tt.level)
	}
}

func TestStarterWeaponID(t *testing.T) {
	assert.Equal(t, "starter_sword", StarterWeaponID("melee"))
	assert.Equal(t, "pistol", StarterWeaponID("ranged"))
	assert.Equal(t, "pistol", StarterWeaponID("anything"))
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x10), c.R)
	assert.Equal(t, uint8(0x40), c.A)

	_, err = parseHexColor("#zz")
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}
