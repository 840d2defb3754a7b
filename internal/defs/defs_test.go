package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-adventurer/internal/types"
)

func TestDefaultCampaign(t *testing.T) {
	c, err := DefaultCampaign()
	require.NoError(t, err)
	require.Len(t, c.Levels, 7)

	tutorial := c.Levels[0]
	assert.Equal(t, "Tutorial", tutorial.Name)
	assert.Len(t, tutorial.Platforms, 5)
	assert.Len(t, tutorial.Tips, 5, "levels inherit campaign tips")
	require.Len(t, tutorial.Monsters, 1)
	assert.Equal(t, types.MonsterSkeleton, tutorial.Monsters[0].Species)
	assert.Zero(t, tutorial.Monsters[0].AttackPower)
	assert.Equal(t, 10, tutorial.Monsters[0].Hitpoints)

	assert.Len(t, c.Levels[2].Platforms, 4, "aliases expand")
	assert.Equal(t, types.RangedHomingArrow, c.Levels[6].Monsters[0].RangedAttack)
	assert.Equal(t, types.AttackRanged, c.Levels[6].Monsters[0].AttackMode())

	require.NotNil(t, c.TestLevel)
	require.Len(t, c.TestLevel.Powerups, 2)
	item := c.TestLevel.Powerups[1].Item.NewItem()
	require.NotNil(t, item.Weapon)
	assert.Equal(t, types.WeaponDagger, item.Weapon.WeaponType)
	assert.Equal(t, 25.0, item.Weapon.AttackPower)
	assert.EqualValues(t, 50_000_000, item.Weapon.AttackCooldown)
}

func TestMonsterTemplates(t *testing.T) {
	goblin, err := NewMonster(types.MonsterGoblin)
	require.NoError(t, err)
	assert.Equal(t, 15, goblin.Hitpoints)
	assert.Equal(t, 0.45, goblin.SpeedX)
	assert.True(t, goblin.CanBeJumpedOn())
	assert.Equal(t, types.AttackMelee, goblin.AttackMode())

	skeleton, err := NewMonster(types.MonsterSkeleton)
	require.NoError(t, err)
	assert.False(t, skeleton.CanBeJumpedOn())

	_, err = NewMonster("dragon")
	assert.ErrorIs(t, err, ErrUnknownMonster)
}

func TestMonsterSpecOverrides(t *testing.T) {
	hp := 99
	smart := types.IntelligenceSmart
	m, err := MonsterSpec{Type: types.MonsterArcher, Hitpoints: &hp, Intelligence: &smart}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 99, m.Hitpoints)
	assert.Equal(t, types.IntelligenceSmart, m.Intelligence)
	assert.Equal(t, 15.0, m.AttackPower, "untouched fields keep template values")

	again, err := NewMonster(types.MonsterArcher)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Hitpoints, "resolving does not modify the library")
}

func TestPlatformPhysics(t *testing.T) {
	tests := []struct {
		style    types.PlatformStyle
		friction float64
		speed    float64
	}{
		{types.StyleDirt, 1, 1},
		{types.StyleGrass, 1, 1},
		{types.StyleIce, 0.2, 0.8},
		{types.StyleGlue, 2, 0.1},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			f, s, err := PlatformTemplate{Style: tt.style}.Physics()
			require.NoError(t, err)
			assert.Equal(t, tt.friction, f)
			assert.Equal(t, tt.speed, s)
		})
	}

	override := 1.5
	f, s, err := PlatformTemplate{Style: types.StyleIce, SpeedMultiplier: &override}.Physics()
	require.NoError(t, err)
	assert.Equal(t, 0.2, f)
	assert.Equal(t, 1.5, s)

	_, _, err = PlatformTemplate{Style: "lava"}.Physics()
	assert.True(t, errors.Is(err, ErrUnknownStyle))
}

func TestParseCampaignErrors(t *testing.T) {
	_, err := ParseCampaign([]byte("levels: []"), FormatYAML)
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = ParseCampaign([]byte(`{"levels":[{"name":"x","platforms":[{"style":"dirt","width":1,"height":1}],"monsters":[{"type":"dragon"}]}]}`), FormatJSON)
	assert.ErrorIs(t, err, ErrUnknownMonster)

	_, err = ParseCampaign([]byte("levels: [{name: x, monsters: []}]"), FormatYAML)
	assert.Error(t, err)

	_, err = ParseCampaign([]byte("levels: ["), FormatYAML)
	assert.Error(t, err)
}

func TestLoadCampaignJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	data := `{
		"levels": [{
			"name": "Arena",
			"level": 1,
			"tips": ["Fight"],
			"platforms": [{"style": "stone", "x": 0, "y": 0.9, "width": 1, "height": 0.1}],
			"monsters": [{"type": "orc"}, {"type": "goblin", "deals_contact_damage": true}],
			"level_size": {"width": 2, "height": 0.5}
		}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadCampaign(path)
	require.NoError(t, err)
	require.Len(t, c.Levels, 1)
	l := c.Levels[0]
	assert.Equal(t, []string{"Fight"}, l.Tips)
	require.Len(t, l.Monsters, 2)
	assert.Equal(t, types.MonsterOrc, l.Monsters[0].Species)
	assert.True(t, l.Monsters[1].DealsContactDamage)
	assert.Equal(t, SizeFactors{Width: 2, Height: 1}, l.SizeFactors(), "factors below one are raised")

	_, err = LoadCampaign(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCampaignLevelIsACopy(t *testing.T) {
	c, err := DefaultCampaign()
	require.NoError(t, err)

	l, ok := c.Level(1)
	require.True(t, ok)
	l.Monsters[0].X = 0.7
	l.Platforms[0].Style = types.StyleIce
	assert.Zero(t, c.Levels[1].Monsters[0].X)
	assert.Equal(t, types.StyleDirt, c.Levels[1].Platforms[0].Style)

	_, ok = c.Level(len(c.Levels))
	assert.False(t, ok)
}
