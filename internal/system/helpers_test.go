package system

import (
	"testing"
	"time"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

// При этом вьюпорте: unit = 100, unitSpeed = 30, projectileSpeed = 100, gravity = 15
var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testWorld struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	recorder    *eventRecorder
	combat      *CombatSystem
	physics     *PhysicsSystem
	projectiles *ProjectileSystem
	ai          *AISystem
	player      *PlayerSystem
	powerups    *PowerupSystem
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld(t *testing.T, rng utils.Random) *testWorld {
	t.Helper()
	ecs := entity.NewECS()
	ecs.World.Now = t0
	ecs.World.Viewport = geom.Rect{Width: 3000, Height: 1500}
	ecs.World.GameSize = geom.Size{Width: 3000, Height: 1500}

	d := event.NewDispatcher()
	rec := &eventRecorder{}
	for _, et := range []event.EventType{
		event.DamageTaken, event.DamageDodged, event.CreatureDied, event.ProjectileSpawned,
		event.BombDetonated, event.AmmoLooted, event.PowerupCollected, event.GameOver,
	} {
		d.Subscribe(et, rec)
	}

	combat := NewCombatSystem(ecs, d, rng)
	physics := NewPhysicsSystem(ecs)
	player := NewPlayerSystem(ecs, combat, physics, rng)
	d.Subscribe(event.CreatureDied, player)
	return &testWorld{
		ecs:         ecs,
		dispatcher:  d,
		recorder:    rec,
		combat:      combat,
		physics:     physics,
		projectiles: NewProjectileSystem(ecs, d, combat, physics),
		ai:          NewAISystem(ecs, combat, physics, rng),
		player:      player,
		powerups:    NewPowerupSystem(ecs, d, combat, player),
	}
}

func (w *testWorld) advance(d time.Duration) {
	w.ecs.World.Now = w.ecs.World.Now.Add(d)
}

func (w *testWorld) addCreature(x, y, width, height float64, hp int) types.EntityID {
	return w.ecs.AddCreature(component.Body{X: x, Y: y, Width: width, Height: height}, &component.Creature{
		Name:               "Dummy",
		MaxSpeedX:          30,
		AccelerationFactor: 1,
		Gravity:            15,
		DirectionX:         types.DirectionNone,
		LastDirection:      types.DirectionNone,
		DirectionY:         types.DirectionYNone,
		Movement:           types.MovementWalking,
		Hitpoints:          hp,
		MaxHitpoints:       hp,
		AttackPower:        10,
		AttackCooldown:     2000 * time.Millisecond,
		AttackDuration:     200 * time.Millisecond,
		MaxJumpCount:       config.MaxJumpCount,
	})
}

func (w *testWorld) addMonster(x, y float64, mode types.AttackMode, intelligence types.Intelligence) types.EntityID {
	id := w.addCreature(x, y, 100, 150, 15)
	tier := config.ThinkingTiers[string(intelligence)]
	w.ecs.Monsters[id] = &component.Monster{
		Species:               types.MonsterGoblin,
		Intelligence:          intelligence,
		AttackMode:            mode,
		RangedAttack:          types.RangedArrow,
		LastThinkingBreak:     w.ecs.World.Now,
		ThinkingBreakInterval: tier.Interval,
		ThinkingBreakDuration: tier.Duration,
	}
	return id
}

// addAdventurer — игрок без экипировки, только с тем, что нужно для боя
func (w *testWorld) addAdventurer(x, y float64, class types.AdventurerClass) types.EntityID {
	id := w.addCreature(x, y, 100, 150, 100)
	w.ecs.Adventurers[id] = &component.Adventurer{
		Class:            class,
		Equipment:        make(map[types.ItemSlot]*component.Item),
		Abilities:        make(map[types.AbilityName]*component.SpecialAbility),
		AllowedAmmoTypes: []types.ProjectileType{types.ProjectileArrow},
		MaxAmmo:          config.MaxAmmo,
		LastAmmoRecharge: w.ecs.World.Now,
	}
	w.ecs.World.AdventurerID = id
	return id
}

func (w *testWorld) addPlatform(x, y, width, height float64) types.EntityID {
	return w.ecs.AddPlatform(component.Body{X: x, Y: y, Width: width, Height: height}, component.Platform{
		Style:           types.StyleDirt,
		Friction:        1,
		SpeedMultiplier: 1,
	})
}

func (w *testWorld) addArrow(x, y, speedX, speedY float64) types.EntityID {
	return w.ecs.AddProjectile(component.Body{X: x, Y: y, Width: 100, Height: 28}, &component.Projectile{
		Kind:            component.KindBallistic,
		Type:            types.ProjectileArrow,
		ColorTheme:      types.ThemeRed,
		SpeedX:          speedX,
		SpeedY:          speedY,
		Gravity:         7.5,
		AttackPower:     10,
		Mass:            1,
		DespawnDuration: config.ProjectileDespawn,
	})
}

func floatingTexts(ecs *entity.ECS, id types.EntityID) []string {
	var texts []string
	for _, e := range ecs.FloatingTexts[id].Entries {
		texts = append(texts, e.Text)
	}
	return texts
}
