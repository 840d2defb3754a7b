// internal/system/physics.go
package system

import (
	"math"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

// PhysicsSystem двигает существ: гравитация, приземление на платформы,
// горизонтальное ускорение и границы мира.
type PhysicsSystem struct {
	ecs *entity.ECS
}

func NewPhysicsSystem(ecs *entity.ECS) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs}
}

// PlatformUnder возвращает первую по порядку платформу, на которой стоит тело
func (s *PhysicsSystem) PlatformUnder(body *component.Body, speedY float64) types.EntityID {
	if speedY < 0 {
		return types.NoEntity
	}
	hitbox := body.Hitbox()
	for _, id := range s.ecs.PlatformIDs() {
		if physics.IsStandingOn(hitbox, speedY, s.ecs.Bodies[id].Rect()) {
			return id
		}
	}
	return types.NoEntity
}

// UpdateCreature — один физический шаг существа
func (s *PhysicsSystem) UpdateCreature(id types.EntityID) {
	s.ApplyGravity(id)
	s.ApplyMovement(id)
}

// ApplyGravity приземляет существо или интегрирует падение. Работает и для мёртвых.
func (s *PhysicsSystem) ApplyGravity(id types.EntityID) {
	c, body := s.ecs.Creatures[id], s.ecs.Bodies[id]
	if c == nil || body == nil {
		return
	}
	w := s.ecs.World
	vp := w.ViewportSize()

	platformID := s.PlatformUnder(body, c.SpeedY)
	c.SetPlatform(platformID)

	if platformID != types.NoEntity && c.SpeedY >= 0 {
		c.PerfectDoubleJump = false
		c.JumpCount = 0
		c.SpeedY = 0
		body.Y = s.ecs.Bodies[platformID].Y - body.Height
	} else if c.Movement != types.MovementClimbing && c.Movement != types.MovementFlying {
		oldSpeedY := c.SpeedY
		c.SpeedY = math.Min(c.SpeedY+c.Gravity*w.TickFactor, physics.TerminalVelocity(vp))
		body.Y += c.SpeedY * w.TickFactor

		// Вершина прыжка: цепной прыжок
		if utils.Sign(oldSpeedY) != utils.Sign(c.SpeedY) && c.JumpCount > 0 && c.PerfectDoubleJump {
			s.Jump(id, true)
		}
	}

	if body.Y < 0 {
		body.Y = 0
		c.SpeedY = 0
	}
	if body.Y+body.Height > w.GameSize.Height {
		body.Y = w.GameSize.Height - body.Height
		c.JumpCount = 0
	}
}

// ApplyMovement разгоняет существо по направлению намерения и сдвигает его
func (s *PhysicsSystem) ApplyMovement(id types.EntityID) {
	c, body := s.ecs.Creatures[id], s.ecs.Bodies[id]
	if c == nil || body == nil || c.IsDead() {
		return
	}
	w := s.ecs.World

	speedModifier, friction := 1.0, 1.0
	if p := s.ecs.Platforms[c.Platform]; p != nil {
		speedModifier = p.SpeedMultiplier
		friction = p.Friction
	}
	if c.Movement == types.MovementCrouching {
		speedModifier /= 2
	}

	step := c.MaxSpeedX * c.AccelerationFactor * w.TickFactor * config.AccelerationScale * friction
	acceleration := 0.0
	switch c.DirectionX {
	case types.DirectionRight:
		acceleration = step
	case types.DirectionLeft:
		acceleration = -step
	default:
		// Торможение против текущей скорости, без перелёта через ноль
		if c.SpeedX > 0 {
			acceleration = -step
		} else {
			acceleration = step
		}
		if c.SpeedX == 0 || math.Abs(c.SpeedX)-math.Abs(acceleration) <= 0 {
			acceleration = 0
			c.SpeedX = 0
		}
	}

	c.SpeedX = utils.Clamp(c.SpeedX+acceleration, -c.MaxSpeedX, c.MaxSpeedX)

	dx := c.SpeedX * w.TickFactor * speedModifier
	body.X += dx
	if math.Abs(dx) > 0 {
		c.SetLastAction(w.Now)
	}

	if body.X < 0 {
		body.X = 0
		c.SpeedX = math.Max(0, c.SpeedX)
	}
	if body.X+body.Width > w.GameSize.Width {
		body.X = w.GameSize.Width - body.Width
		c.SpeedX = math.Min(0, c.SpeedX)
	}
}

// Jump подбрасывает существо, если прыжки остались
func (s *PhysicsSystem) Jump(id types.EntityID, perfectDoubleJump bool) bool {
	c := s.ecs.Creatures[id]
	if c == nil || !c.CanJump() {
		return false
	}
	c.PerfectDoubleJump = perfectDoubleJump
	c.SpeedY = physics.BaseJumpSpeed(s.ecs.World.ViewportSize(), c.JumpCount)
	c.JumpCount++
	c.SetLastAction(s.ecs.World.Now)
	return true
}

// CanJumpToPlatform — достанет ли существо до платформы прыжком
func (s *PhysicsSystem) CanJumpToPlatform(id, platformID types.EntityID) bool {
	c, body, pb := s.ecs.Creatures[id], s.ecs.Bodies[id], s.ecs.Bodies[platformID]
	if c == nil || body == nil || pb == nil {
		return false
	}
	return physics.CanJumpToPlatform(physics.Jumper{
		Body:      body.Rect(),
		SpeedY:    c.SpeedY,
		MaxSpeedX: c.MaxSpeedX,
		Gravity:   c.Gravity,
		JumpCount: c.JumpCount,
		CanJump:   c.CanJump(),
	}, pb.Rect(), s.ecs.World.ViewportSize())
}
