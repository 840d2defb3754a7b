// internal/app/game.go
package app

import (
	"log"
	"time"

	"go-adventurer/internal/config"
	"go-adventurer/internal/defs"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/system"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

// Pauser — часы, которые умеют останавливать время
type Pauser interface {
	Pause()
	Resume()
}

// Game holds the main game state and drives one simulation tick per host frame.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	PhysicsSystem    *system.PhysicsSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	AISystem         *system.AISystem
	PlayerSystem     *system.PlayerSystem
	PowerupSystem    *system.PowerupSystem
	TextSystem       *system.TextSystem
	Rng              utils.Random
	Clock            utils.Clock
	Campaign         *defs.Campaign
	Settings         config.Settings

	// Состояние уровня
	LevelIndex int
	Level      *defs.Level
	DoorID     types.EntityID

	lastUpdate    time.Time
	maxTickFactor float64
}

// NewGame собирает системы и подписки. Уровень не загружается до Start.
func NewGame(settings config.Settings, campaign *defs.Campaign, clock utils.Clock, rng utils.Random, viewport geom.Size) *Game {
	ecs := entity.NewECS()
	ecs.World.Now = clock.Now()
	ecs.World.Viewport = geom.Rect{Width: viewport.Width, Height: viewport.Height}
	ecs.World.GameSize = viewport
	ecs.World.Debug = settings.Debug

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Clock:           clock,
		Campaign:        campaign,
		Settings:        settings,
		maxTickFactor:   settings.MaxTickFactor,
	}
	if g.maxTickFactor <= 0 {
		g.maxTickFactor = config.MaxTickFactor
	}
	g.PhysicsSystem = system.NewPhysicsSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, g.CombatSystem, g.PhysicsSystem)
	g.AISystem = system.NewAISystem(ecs, g.CombatSystem, g.PhysicsSystem, rng)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.CombatSystem, g.PhysicsSystem, rng)
	g.PowerupSystem = system.NewPowerupSystem(ecs, eventDispatcher, g.CombatSystem, g.PlayerSystem)
	g.TextSystem = system.NewTextSystem(ecs)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.GameOver, event.GameWon, event.LevelStarted)

	eventDispatcher.Subscribe(event.CreatureDied, g.PlayerSystem)

	return g
}

// Start создаёт игрока и загружает стартовый уровень. Игра начинается на паузе.
func (g *Game) Start() {
	g.ECS.World.Now = g.Clock.Now()
	g.ECS.World.GameOver = false
	g.ECS.World.GameWon = false
	if _, _, ok := g.ECS.Adventurer(); ok {
		g.ECS.RemoveEntity(g.ECS.World.AdventurerID)
	}
	g.PlayerSystem.SpawnAdventurer(g.adventurerStats())

	g.LevelIndex = max(0, g.Settings.Campaign.StartLevel)
	g.SetPaused(true)
	if !g.loadLevel() {
		g.win()
	}
}

func (g *Game) adventurerStats() system.AdventurerStats {
	p := g.Settings.Player
	stats := system.DefaultAdventurerStats(types.AdventurerClass(p.Class))
	if stats.Class == "" {
		stats.Class = types.ClassRogue
	}
	if p.Hitpoints > 0 {
		stats.Hitpoints = p.Hitpoints
	}
	if p.AttackPower > 0 {
		stats.AttackPower = p.AttackPower
	}
	if p.AttackCooldown > 0 {
		stats.AttackCooldown = time.Duration(p.AttackCooldown) * time.Millisecond
	}
	if p.AttackDuration > 0 {
		stats.AttackDuration = time.Duration(p.AttackDuration) * time.Millisecond
	}
	return stats
}

// Update — один тик симуляции
func (g *Game) Update() {
	now := g.Clock.Now()
	world := g.ECS.World
	world.TickFactor = g.tickFactor(now)
	world.Now = now

	if !world.Paused {
		g.followAdventurer()
		if g.checkDoor() {
			g.lastUpdate = now
			return
		}

		g.ProjectileSystem.RemoveOutOfBounds()

		g.PlayerSystem.Update()
		g.AISystem.Update()
		g.ProjectileSystem.Update()
		g.PowerupSystem.Update()
		g.TextSystem.Update()
	}
	g.lastUpdate = now
}

// tickFactor — во сколько раз прошедшее время больше номинального тика
func (g *Game) tickFactor(now time.Time) float64 {
	if g.lastUpdate.IsZero() {
		return 1
	}
	factor := float64(now.Sub(g.lastUpdate)) / float64(config.NominalTickInterval)
	return utils.Clamp(factor, 0, g.maxTickFactor)
}

// checkDoor открывает дверь, когда живых монстров нет, и переводит на
// следующий уровень, если игрок в ней. Проверка входа идёт раз в десять миллисекунд.
func (g *Game) checkDoor() bool {
	door, ok := g.ECS.Doors[g.DoorID]
	if !ok {
		return false
	}
	for _, id := range g.ECS.MonsterIDs() {
		if g.ECS.IsCreatureAlive(id) {
			return false
		}
	}
	door.Open = true

	if g.ECS.World.Now.UnixMilli()%config.DoorCheckModulo != 0 {
		return false
	}
	advID, _, ok := g.ECS.Adventurer()
	if !ok {
		return false
	}
	hits := system.UnitCollisions(g.ECS, g.ECS.Bodies[advID].Hitbox(), []types.EntityID{g.DoorID})
	if len(hits) == 0 {
		return false
	}
	g.LevelUp()
	return true
}

// LevelUp переходит на следующий уровень или завершает игру победой
func (g *Game) LevelUp() {
	g.LevelIndex++
	if !g.loadLevel() {
		g.win()
		return
	}
	g.SetPaused(true)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.LevelUp,
		Data: event.LevelData{Index: g.LevelIndex, Name: g.Level.Name},
	})
}

func (g *Game) win() {
	g.SetPaused(false)
	g.ECS.World.GameWon = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon})
}

// levelAt возвращает уровень кампании, затем случайные уровни, затем ничего.
// В режиме отладки всегда тестовый уровень.
func (g *Game) levelAt(index int) (defs.Level, bool) {
	if g.Settings.Debug && g.Campaign.TestLevel != nil {
		return g.Campaign.TestLevel.Clone(), true
	}
	if l, ok := g.Campaign.Level(index); ok {
		return l, true
	}
	if index < len(g.Campaign.Levels)+g.Settings.Campaign.RandomLevels {
		_, adventurer, ok := g.ECS.Adventurer()
		if !ok {
			return defs.Level{}, false
		}
		return GenerateLevel(index, g.ECS.World.ViewportSize(), adventurer, g.Rng), true
	}
	return defs.Level{}, false
}

func (g *Game) loadLevel() bool {
	level, ok := g.levelAt(g.LevelIndex)
	if !ok {
		log.Printf("Game: no level to initialize at index %d", g.LevelIndex)
		return false
	}
	g.Level = &level
	g.initLevel()
	return true
}

// SetPaused останавливает и продолжает симуляцию вместе с игровым временем
func (g *Game) SetPaused(paused bool) {
	g.ECS.World.Paused = paused
	if p, ok := g.Clock.(Pauser); ok {
		if paused {
			p.Pause()
		} else {
			p.Resume()
		}
	}
}

// TogglePaused переключает паузу
func (g *Game) TogglePaused() {
	g.SetPaused(!g.ECS.World.Paused)
}

func (g *Game) IsPaused() bool {
	return g.ECS.World.Paused
}

// SetMouse переводит экранные координаты курсора в мировые
func (g *Game) SetMouse(screenX, screenY float64) {
	vp := g.ECS.World.Viewport
	g.ECS.World.Mouse = geom.Point{X: screenX + vp.X, Y: screenY + vp.Y}
}

// ToggleDebug включает отладочные подписи
func (g *Game) ToggleDebug() {
	g.ECS.World.Debug = !g.ECS.World.Debug
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.LevelStarted:
		if data, ok := e.Data.(event.LevelData); ok {
			log.Printf("Game: level %d %q started", data.Index, data.Name)
		}
	case event.GameOver:
		log.Printf("Game: adventurer died on level %d", l.game.LevelIndex)
	case event.GameWon:
		log.Printf("Game: campaign completed")
	}
}
