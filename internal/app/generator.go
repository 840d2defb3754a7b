package app

import (
	"fmt"
	"math"
	"strings"

	"go-adventurer/internal/component"
	"go-adventurer/internal/defs"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

const (
	generatedPlatformHeight = 0.02
	generatedLevelSize      = 2.0
	maxPlacementAttempts    = 50
)

// difficulty — параметры генерации, растущие с номером уровня
type difficulty struct {
	factor    float64
	minWidth  float64
	maxWidth  float64
	minCount  int
	maxCount  int
	minGap    float64
	maxHeight float64
	iceChance float64
}

func newDifficulty(level int) difficulty {
	n := float64(level)
	factor := math.Min(1+n*0.1, 2.5)
	return difficulty{
		factor:    factor,
		minWidth:  math.Max(0.05, 0.1/factor),
		maxWidth:  math.Max(0.15, 0.3/factor),
		minCount:  5 + level/3,
		maxCount:  10 + level/2,
		minGap:    0.1 * factor,
		maxHeight: 0.8 + n*0.02,
		iceChance: math.Min(0.1*n, 0.5),
	}
}

// levelGenerator строит случайный уровень, проверяя достижимость каждой новой платформы
type levelGenerator struct {
	level    int
	d        difficulty
	rng      utils.Random
	gravity  float64
	speedX   float64
	safeJump float64
}

// GenerateLevel создаёт уровень с номером level: платформы, монстры и подсказки.
// Сложность растёт с номером и упирается в 2.5x.
func GenerateLevel(level int, viewport geom.Size, adventurer *component.Creature, rng utils.Random) defs.Level {
	d := newDifficulty(level)
	maxJumpHeight := viewport.Width / 3 / adventurer.Gravity
	gen := &levelGenerator{
		level:    level,
		d:        d,
		rng:      rng,
		gravity:  adventurer.Gravity,
		speedX:   adventurer.MaxSpeedX,
		safeJump: maxJumpHeight * (0.7 / d.factor),
	}

	platforms := gen.platforms()
	monsters := gen.monsters(platforms)

	return defs.Level{
		Name:      fmt.Sprintf("Level %d", level),
		Number:    level,
		Tips:      gen.tips(platforms, monsters),
		Monsters:  monsters,
		Platforms: platforms,
		InitialAdventurerPosition: &defs.Point{
			X: platforms[0].X + platforms[0].Width*0.5,
			Y: platforms[0].Y - 0.1,
		},
		Size: &defs.SizeFactors{Width: generatedLevelSize, Height: generatedLevelSize},
	}
}

// jumpPossible — грубая оценка прыжка между платформами в долях уровня
func (g *levelGenerator) jumpPossible(from, to defs.PlatformTemplate) bool {
	heightDiff := (to.Y - from.Y) * generatedLevelSize
	horizontal := math.Abs((to.X - from.X) * generatedLevelSize)
	if heightDiff > g.safeJump {
		return false
	}
	timeToPeak := math.Sqrt(2 * math.Abs(heightDiff) / g.gravity)
	return horizontal <= g.speedX*timeToPeak*2
}

func (g *levelGenerator) style() types.PlatformStyle {
	choice := utils.ChooseWeighted(g.rng, []utils.WeightedEntry{
		{ID: string(types.StyleIce), Weight: g.d.iceChance},
		{ID: string(types.StyleDirt), Weight: math.Max(0, 0.6-g.d.iceChance)},
		{ID: string(types.StyleGrass), Weight: 0.4},
	})
	return types.PlatformStyle(choice)
}

func (g *levelGenerator) platforms() []defs.PlatformTemplate {
	platforms := []defs.PlatformTemplate{{Style: types.StyleGrass, Width: 1, Height: 0.5, X: 0, Y: 1}}

	count := g.d.minCount + int(g.rng.Float64()*float64(g.d.maxCount-g.d.minCount))
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			candidate := g.candidate()
			if g.fits(platforms, candidate) {
				platforms = append(platforms, candidate)
				break
			}
		}
	}
	return platforms
}

func (g *levelGenerator) candidate() defs.PlatformTemplate {
	style := g.style()
	friction, speedMultiplier := 1.0, 1.0
	switch style {
	case types.StyleIce:
		friction, speedMultiplier = 0.2, 1.5
	case types.StyleDirt:
		friction = 1.2
	}
	return defs.PlatformTemplate{
		Style:           style,
		Width:           g.d.minWidth + g.rng.Float64()*(g.d.maxWidth-g.d.minWidth),
		Height:          generatedPlatformHeight,
		X:               g.rng.Float64() * (1 - g.d.minWidth),
		Y:               0.2 + g.rng.Float64()*g.d.maxHeight,
		Friction:        &friction,
		SpeedMultiplier: &speedMultiplier,
	}
}

// fits — кандидат не слишком близко к остальным и хоть одна платформа связана с ним прыжком
func (g *levelGenerator) fits(platforms []defs.PlatformTemplate, candidate defs.PlatformTemplate) bool {
	reachable := false
	for _, p := range platforms {
		if math.Abs(p.X-candidate.X) < g.d.minGap && math.Abs(p.Y-candidate.Y) < g.d.minGap {
			return false
		}
		if g.jumpPossible(p, candidate) || g.jumpPossible(candidate, p) {
			reachable = true
		}
	}
	return reachable
}

func (g *levelGenerator) monsters(platforms []defs.PlatformTemplate) []defs.MonsterTemplate {
	count := min(len(platforms)-1, 3+g.level/2)

	species := []types.MonsterType{types.MonsterGoblin}
	if g.level >= 3 {
		species = append(species, types.MonsterOrc)
	}
	if g.level >= 5 {
		species = append(species, types.MonsterArcher)
	}
	if g.level >= 7 {
		species = append(species, types.MonsterTroll)
	}

	n := float64(g.level)
	monsters := make([]defs.MonsterTemplate, 0, max(0, count))
	for i := 0; i < count; i++ {
		platform := platforms[1+utils.Pick(g.rng, len(platforms)-1)]
		kind := species[utils.Pick(g.rng, len(species))]

		m, err := defs.NewMonster(kind)
		if err != nil {
			continue
		}
		size, lift, speedY := 1.0, 0.1, 0.0
		if kind == types.MonsterTroll {
			size, lift, speedY = 1.5, 0.15, 0.3
		}
		m.Name = fmt.Sprintf("%s %d", strings.ToUpper(string(kind[:1]))+string(kind[1:]), i+1)
		m.Hitpoints = 50 + g.level*15
		m.Armor = math.Min(0.8, 0.2+n*0.05)
		m.AttackPower = 10 + n*3
		m.AttackCooldownMs = max(1000-g.level*50, 500)
		m.AttackDurationMs = 500
		m.Width, m.Height = size, size
		m.X = platform.X + platform.Width*0.5
		m.Y = platform.Y - lift
		m.SpeedX = 0.5 * g.d.factor
		m.SpeedY = speedY
		m.Movement = types.MovementWalking
		m.Intelligence = types.IntelligenceDumb
		m.DirectionX = types.DirectionRight
		if g.rng.Float64() > 0.5 {
			m.DirectionX = types.DirectionLeft
		}
		monsters = append(monsters, m)
	}
	return monsters
}

func (g *levelGenerator) tips(platforms []defs.PlatformTemplate, monsters []defs.MonsterTemplate) []string {
	tips := []string{"Use platforms to reach higher areas"}
	if g.level >= 3 {
		tips = append(tips, "Watch out for stronger monsters!")
	}
	for _, p := range platforms {
		if p.Style == types.StyleIce {
			tips = append(tips, "Ice platforms are slippery!")
			break
		}
	}
	for _, m := range monsters {
		if m.Species == types.MonsterTroll {
			tips = append(tips, "Trolls are tough, but slow!")
			break
		}
	}
	return tips
}
