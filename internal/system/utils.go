// internal/system/utils.go
package system

import (
	"math"

	"go-adventurer/internal/component"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

// UnitCollisions возвращает те из candidates, в прямоугольник которых попадает хотя бы один угол hitbox.
// Порядок candidates сохраняется.
func UnitCollisions(ecs *entity.ECS, hitbox geom.Hitbox, candidates []types.EntityID) []types.EntityID {
	var hits []types.EntityID
	for _, id := range candidates {
		body, ok := ecs.Bodies[id]
		if !ok {
			continue
		}
		if hitbox.AnyCornerIn(body.Rect()) {
			hits = append(hits, id)
		}
	}
	return hits
}

// ProjectileCollision находит первый снаряд из candidates, с которым столкнулся projectileID
func ProjectileCollision(ecs *entity.ECS, projectileID types.EntityID, candidates []types.EntityID) types.EntityID {
	body, ok := ecs.Bodies[projectileID]
	if !ok {
		return types.NoEntity
	}
	hitbox := body.Hitbox()
	for _, id := range candidates {
		if id == projectileID {
			continue
		}
		other, ok := ecs.Bodies[id]
		if !ok {
			continue
		}
		if geom.CornersOverlap(hitbox, other.Hitbox(), other.Size()) {
			return id
		}
	}
	return types.NoEntity
}

// TransferKineticEnergy обменивает скорости двух снарядов по каждой оси отдельно,
// только если по этой оси они летят навстречу. lossPercent — потеря энергии в процентах.
func TransferKineticEnergy(a, b *component.Projectile, lossPercent float64) {
	if utils.Sign(a.SpeedX) != utils.Sign(b.SpeedX) {
		a.SpeedX, b.SpeedX = exchangeSpeeds(a.SpeedX, b.SpeedX, a.Mass, b.Mass, lossPercent)
	}
	if utils.Sign(a.SpeedY) != utils.Sign(b.SpeedY) {
		a.SpeedY, b.SpeedY = exchangeSpeeds(a.SpeedY, b.SpeedY, a.Mass, b.Mass, lossPercent)
	}
}

func exchangeSpeeds(speedA, speedB, massA, massB, lossPercent float64) (float64, float64) {
	retention := (100 - utils.Clamp(lossPercent, 0, 100)) / 100
	return speedB * retention * (massB / massA), speedA * retention * (massA / massB)
}

// CreaturesWithinRadius — существа, центр которых ближе radius к точке
func CreaturesWithinRadius(ecs *entity.ECS, p geom.Point, radius float64, candidates []types.EntityID) []types.EntityID {
	var found []types.EntityID
	for _, id := range candidates {
		body, ok := ecs.Bodies[id]
		if !ok {
			continue
		}
		if geom.Distance(body.Center(), p) < radius {
			found = append(found, id)
		}
	}
	return found
}

// ClosestCreature — существо с ближайшим к точке центром
func ClosestCreature(ecs *entity.ECS, p geom.Point, candidates []types.EntityID) types.EntityID {
	closest := types.NoEntity
	best := math.Inf(1)
	for _, id := range candidates {
		body, ok := ecs.Bodies[id]
		if !ok {
			continue
		}
		if d := geom.Distance(body.Center(), p); d < best {
			closest, best = id, d
		}
	}
	return closest
}

// SamePlatform — стоят ли существа на одной платформе. Два существа без платформы не совпадают.
func SamePlatform(a, b *component.Creature, fallbackToLast bool) bool {
	pa, pb := a.PlatformID(fallbackToLast), b.PlatformID(fallbackToLast)
	if pa == types.NoEntity || pb == types.NoEntity {
		return false
	}
	return pa == pb
}

// CanDropToPlatform — может ли существо спрыгнуть со своей текущей платформы на target
func CanDropToPlatform(ecs *entity.ECS, creatureID, target types.EntityID) bool {
	c, body := ecs.Creatures[creatureID], ecs.Bodies[creatureID]
	if c == nil || body == nil {
		return false
	}
	current := c.PlatformID(false)
	if current == types.NoEntity || target == types.NoEntity || current == target {
		return false
	}
	cb, tb := ecs.Bodies[current], ecs.Bodies[target]
	if cb == nil || tb == nil {
		return false
	}
	return physics.CanDropToPlatform(body.Width, cb.Rect(), tb.Rect())
}

// LivingCreatures — живые существа в порядке создания
func LivingCreatures(ecs *entity.ECS) []types.EntityID {
	var alive []types.EntityID
	for _, id := range ecs.CreatureIDs() {
		if ecs.Creatures[id].IsAlive() {
			alive = append(alive, id)
		}
	}
	return alive
}
