package app

import (
	"fmt"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/defs"
	"go-adventurer/internal/event"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/system"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

// initLevel перестраивает мир под g.Level: размер, платформы, дверь, монстры,
// бонусы и стартовая позиция игрока. Игрок переносится между уровнями.
func (g *Game) initLevel() {
	world := g.ECS.World
	vp := world.ViewportSize()
	factors := g.Level.SizeFactors()

	world.GameSize = geom.Size{Width: vp.Width * factors.Width, Height: vp.Height * factors.Height}
	world.Viewport.X, world.Viewport.Y = 0, 0
	if pos := g.Level.InitialViewportPosition; pos != nil {
		world.Viewport.X = vp.Width * pos.X
		world.Viewport.Y = vp.Height * pos.Y
	}

	g.ECS.ClearLevel()

	platforms := g.addPlatforms()
	g.DoorID = g.placeDoor(platforms)
	g.addMonsters()
	g.addPowerups()
	g.placeAdventurer()

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.LevelStarted,
		Data: event.LevelData{Index: g.LevelIndex, Name: g.Level.Name},
	})
}

func (g *Game) addPlatforms() []types.EntityID {
	size := g.ECS.World.GameSize
	ids := make([]types.EntityID, 0, len(g.Level.Platforms))
	for _, t := range g.Level.Platforms {
		friction, speedMultiplier, err := t.Physics()
		if err != nil {
			// Кампании проверяются при загрузке, сюда доходят только сгенерированные уровни
			friction, speedMultiplier = 1, 1
		}
		label := t.Label
		if g.ECS.World.Debug && label == "" {
			label = fmt.Sprintf("%g, %g", t.X, t.Y)
		}
		ids = append(ids, g.ECS.AddPlatform(component.Body{
			X:      size.Width * t.X,
			Y:      size.Height * t.Y,
			Width:  size.Width * t.Width,
			Height: size.Height * t.Height,
		}, component.Platform{
			Style:           t.Style,
			Friction:        friction,
			SpeedMultiplier: speedMultiplier,
			Label:           label,
		}))
	}
	return ids
}

// placeDoor ставит дверь 2x2 в случайное место случайной платформы
func (g *Game) placeDoor(platforms []types.EntityID) types.EntityID {
	i := utils.Pick(g.Rng, len(platforms))
	if i < 0 {
		return types.NoEntity
	}
	unit := physics.BaseUnitSize(g.ECS.World.ViewportSize())
	size := unit * config.DoorSizeUnits
	platform := g.ECS.Bodies[platforms[i]]

	randomX := g.Rng.Float64() * (platform.Width - size)
	id := g.ECS.NewEntity()
	g.ECS.Bodies[id] = &component.Body{
		X:      platform.X + randomX,
		Y:      platform.Y - size,
		Width:  size,
		Height: size,
	}
	g.ECS.Doors[id] = &component.Door{Name: fmt.Sprintf("Level %d door", g.LevelIndex)}
	return id
}

// PlaceMonsters ставит шаблоны на случайные платформы: x — случайная точка платформы,
// низ монстра на её верхней грани. Координаты в долях размера уровня.
func PlaceMonsters(monsters []defs.MonsterTemplate, platforms []defs.PlatformTemplate, gameSize, viewport geom.Size, rng utils.Random) []defs.MonsterTemplate {
	unit := physics.BaseUnitSize(viewport)
	placed := make([]defs.MonsterTemplate, 0, len(monsters))
	for _, m := range monsters {
		i := utils.Pick(rng, len(platforms))
		if i < 0 {
			break
		}
		platform := platforms[i]
		height := unit * m.Height / gameSize.Height
		randomX := rng.Float64() * platform.Width

		m.X = platform.X + randomX
		m.DirectionX = types.DirectionRight
		if randomX > 0.5 {
			m.DirectionX = types.DirectionLeft
		}
		m.Y = platform.Y - height
		placed = append(placed, m)
	}
	return placed
}

func (g *Game) addMonsters() {
	world := g.ECS.World
	vp := world.ViewportSize()
	unit := physics.BaseUnitSize(vp)
	unitSpeed := physics.BaseUnitSpeed(vp)

	for _, m := range PlaceMonsters(g.Level.Monsters, g.Level.Platforms, world.GameSize, vp, g.Rng) {
		id := g.ECS.AddCreature(component.Body{
			X:      world.GameSize.Width * m.X,
			Y:      world.GameSize.Height * m.Y,
			Width:  unit * m.Width,
			Height: unit * m.Height,
		}, &component.Creature{
			Name:               m.Name,
			MaxSpeedX:          unitSpeed * m.SpeedX,
			SpeedY:             unitSpeed * m.SpeedY,
			AccelerationFactor: 1,
			Gravity:            physics.BaseGravity(vp),
			DirectionX:         m.DirectionX,
			LastDirection:      types.DirectionNone,
			DirectionY:         types.DirectionYNone,
			Movement:           m.Movement,
			Hitpoints:          m.Hitpoints,
			MaxHitpoints:       m.Hitpoints,
			Armor:              m.Armor,
			AttackPower:        m.AttackPower,
			AttackCooldown:     m.AttackCooldown(),
			AttackDuration:     m.AttackDuration(),
			MaxJumpCount:       config.MaxJumpCount,
			LastAction:         world.Now,
			DealsContactDamage: m.DealsContactDamage,
		})

		tier := config.ThinkingTiers[string(m.Intelligence)]
		rangedAttack := m.RangedAttack
		if rangedAttack == "" {
			rangedAttack = types.RangedArrow
		}
		g.ECS.Monsters[id] = &component.Monster{
			Species:               m.Species,
			Intelligence:          m.Intelligence,
			AttackMode:            m.AttackMode(),
			RangedAttack:          rangedAttack,
			CanBeJumpedOn:         m.CanBeJumpedOn(),
			LastThinkingBreak:     world.Now,
			ThinkingBreakInterval: tier.Interval,
			ThinkingBreakDuration: tier.Duration,
		}
	}
}

func (g *Game) addPowerups() {
	size := g.ECS.World.GameSize
	unit := physics.BaseUnitSize(g.ECS.World.ViewportSize())
	for _, t := range g.Level.Powerups {
		p := &component.Powerup{
			Name:          t.Name,
			Kind:          t.Kind,
			HealingAmount: t.HealingAmount,
		}
		if t.Item != nil {
			p.Item = t.Item.NewItem()
		}
		system.AddPowerup(g.ECS, component.Body{
			X:      size.Width * t.X,
			Y:      size.Height * t.Y,
			Width:  unit * t.Width,
			Height: unit * t.Height,
		}, p)
	}
}

// placeAdventurer переносит игрока на стартовую точку уровня, если она задана
func (g *Game) placeAdventurer() {
	id, c, ok := g.ECS.Adventurer()
	if !ok {
		return
	}
	c.Platform, c.LastPlatform = types.NoEntity, types.NoEntity
	pos := g.Level.InitialAdventurerPosition
	if pos == nil {
		return
	}
	body := g.ECS.Bodies[id]
	body.X = g.ECS.World.GameSize.Width * pos.X
	body.Y = g.ECS.World.GameSize.Height * pos.Y
	c.SpeedY = 0
	c.DirectionY = types.DirectionYNone
	c.SetDirectionX(types.DirectionNone)
}

// followAdventurer держит игрока в центральной половине экрана, не выходя за границы уровня
func (g *Game) followAdventurer() {
	id, _, ok := g.ECS.Adventurer()
	if !ok {
		return
	}
	world := g.ECS.World
	pos := ViewportPosition(g.ECS.Bodies[id].Rect(), world.Viewport, world.GameSize)
	world.Viewport.X, world.Viewport.Y = pos.X, pos.Y
}

// ViewportPosition — новое положение камеры для игрока в adventurer
func ViewportPosition(adventurer, viewport geom.Rect, gameSize geom.Size) geom.Point {
	marginX := viewport.Width * config.ViewportMargin
	marginY := viewport.Height * config.ViewportMargin

	relativeX := adventurer.X - viewport.X
	relativeY := adventurer.Y - viewport.Y
	x, y := viewport.X, viewport.Y

	if relativeX < marginX {
		x = adventurer.X - marginX
	} else if relativeX > viewport.Width-marginX {
		x = adventurer.X - (viewport.Width - marginX)
	}
	if relativeY < marginY {
		y = adventurer.Y - marginY
	} else if relativeY > viewport.Height-marginY {
		y = adventurer.Y - (viewport.Height - marginY)
	}

	return geom.Point{
		X: min(max(0, x), gameSize.Width-viewport.Width),
		Y: min(max(0, y), gameSize.Height-viewport.Height),
	}
}
