// internal/entity/ecs.go
package entity

import (
	"sort"
	"time"

	"go-adventurer/internal/component"
	"go-adventurer/internal/types"
	"go-adventurer/pkg/geom"
)

// World — общий контекст тика: время, масштаб шага, вьюпорт и размер мира.
type World struct {
	Now        time.Time
	TickFactor float64
	Viewport   geom.Rect // Положение камеры и размер экрана
	GameSize   geom.Size
	Mouse      geom.Point // В мировых координатах

	AdventurerID types.EntityID
	Paused       bool
	GameOver     bool
	GameWon      bool
	Debug        bool
}

// ViewportSize — размер экрана, от него считаются все базовые величины
func (w *World) ViewportSize() geom.Size {
	return geom.Size{Width: w.Viewport.Width, Height: w.Viewport.Height}
}

// ECS владеет всеми сущностями уровня. Ссылки между сущностями — только по EntityID.
type ECS struct {
	NextID        types.EntityID
	Bodies        map[types.EntityID]*component.Body
	Creatures     map[types.EntityID]*component.Creature
	Monsters      map[types.EntityID]*component.Monster
	Adventurers   map[types.EntityID]*component.Adventurer
	Projectiles   map[types.EntityID]*component.Projectile
	Platforms     map[types.EntityID]*component.Platform
	Doors         map[types.EntityID]*component.Door
	Powerups      map[types.EntityID]*component.Powerup
	FloatingTexts map[types.EntityID]*component.FloatingTexts
	World         *World
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Bodies:        make(map[types.EntityID]*component.Body),
		Creatures:     make(map[types.EntityID]*component.Creature),
		Monsters:      make(map[types.EntityID]*component.Monster),
		Adventurers:   make(map[types.EntityID]*component.Adventurer),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Platforms:     make(map[types.EntityID]*component.Platform),
		Doors:         make(map[types.EntityID]*component.Door),
		Powerups:      make(map[types.EntityID]*component.Powerup),
		FloatingTexts: make(map[types.EntityID]*component.FloatingTexts),
		World:         &World{TickFactor: 1},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Bodies, id)
	delete(ecs.Creatures, id)
	delete(ecs.Monsters, id)
	delete(ecs.Adventurers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Platforms, id)
	delete(ecs.Doors, id)
	delete(ecs.Powerups, id)
	delete(ecs.FloatingTexts, id)
}

// ClearLevel удаляет всё, кроме искателя приключений
func (ecs *ECS) ClearLevel() {
	for id := range ecs.Bodies {
		if id != ecs.World.AdventurerID {
			ecs.RemoveEntity(id)
		}
	}
}

// SortedIDs возвращает ключи в порядке создания сущностей
func SortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (ecs *ECS) CreatureIDs() []types.EntityID  { return SortedIDs(ecs.Creatures) }
func (ecs *ECS) MonsterIDs() []types.EntityID   { return SortedIDs(ecs.Monsters) }
func (ecs *ECS) ProjectileIDs() []types.EntityID { return SortedIDs(ecs.Projectiles) }
func (ecs *ECS) PlatformIDs() []types.EntityID  { return SortedIDs(ecs.Platforms) }
func (ecs *ECS) PowerupIDs() []types.EntityID   { return SortedIDs(ecs.Powerups) }
func (ecs *ECS) DoorIDs() []types.EntityID      { return SortedIDs(ecs.Doors) }

// Adventurer возвращает существо игрока, если оно есть
func (ecs *ECS) Adventurer() (types.EntityID, *component.Creature, bool) {
	id := ecs.World.AdventurerID
	c, ok := ecs.Creatures[id]
	if !ok || id == types.NoEntity {
		return types.NoEntity, nil, false
	}
	return id, c, true
}

// IsCreatureAlive — существо существует и живо
func (ecs *ECS) IsCreatureAlive(id types.EntityID) bool {
	c, ok := ecs.Creatures[id]
	return ok && c.IsAlive()
}

// AddPlatform создаёт платформу с телом
func (ecs *ECS) AddPlatform(body component.Body, p component.Platform) types.EntityID {
	id := ecs.NewEntity()
	ecs.Bodies[id] = &body
	ecs.Platforms[id] = &p
	return id
}

// AddCreature создаёт существо с телом и списком всплывающих надписей
func (ecs *ECS) AddCreature(body component.Body, c *component.Creature) types.EntityID {
	id := ecs.NewEntity()
	ecs.Bodies[id] = &body
	ecs.Creatures[id] = c
	ecs.FloatingTexts[id] = &component.FloatingTexts{}
	return id
}

// AddProjectile добавляет снаряд в игру
func (ecs *ECS) AddProjectile(body component.Body, p *component.Projectile) types.EntityID {
	id := ecs.NewEntity()
	ecs.Bodies[id] = &body
	ecs.Projectiles[id] = p
	return id
}
