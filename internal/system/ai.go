// internal/system/ai.go
package system

import (
	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

// rangedAttackFunc — алгоритм дальней атаки
type rangedAttackFunc func(ecs *entity.ECS, a RangedAttack) *Shot

// rangedAttacksByIntelligence — умные стреляют с упреждением
var rangedAttacksByIntelligence = map[types.Intelligence]rangedAttackFunc{
	types.IntelligenceDumb:   RangedAttackAimedAtCreature,
	types.IntelligenceNormal: RangedAttackAimedAtCreature,
	types.IntelligenceSmart:  RangedAttackWithMovementPrediction,
}

// AISystem принимает решения за монстров и двигает их
type AISystem struct {
	ecs           *entity.ECS
	combatSystem  *CombatSystem
	physicsSystem *PhysicsSystem
	rng           utils.Random
}

func NewAISystem(ecs *entity.ECS, combatSystem *CombatSystem, physicsSystem *PhysicsSystem, rng utils.Random) *AISystem {
	return &AISystem{
		ecs:           ecs,
		combatSystem:  combatSystem,
		physicsSystem: physicsSystem,
		rng:           rng,
	}
}

// Update — решение, затем физика, для каждого монстра
func (s *AISystem) Update() {
	for _, id := range s.ecs.MonsterIDs() {
		s.Think(id)
		s.physicsSystem.UpdateCreature(id)
	}
}

// Think — один цикл "перерыв на размышление → решение → действие"
func (s *AISystem) Think(id types.EntityID) {
	m, c := s.ecs.Monsters[id], s.ecs.Creatures[id]
	if m == nil || c == nil {
		return
	}
	if c.IsDead() {
		m.LockedTarget = types.NoEntity
		return
	}
	now := s.ecs.World.Now
	advID, adventurer, hasAdventurer := s.ecs.Adventurer()

	if m.LockedTarget != types.NoEntity && !s.ecs.IsCreatureAlive(m.LockedTarget) {
		m.LockedTarget = types.NoEntity
	}

	needsToThink := m.LockedTarget == types.NoEntity ||
		!SamePlatform(c, s.ecs.Creatures[m.LockedTarget], true)

	if needsToThink && m.IsThinking(now) {
		c.SetDirectionX(types.DirectionNone)
		c.DirectionY = types.DirectionYNone
	} else if needsToThink && m.IsDoneThinking(now) {
		m.LastThinkingBreak = now

		if m.AttackMode == types.AttackMelee && hasAdventurer && adventurer.IsAlive() &&
			(SamePlatform(c, adventurer, true) || CanDropToPlatform(s.ecs, id, adventurer.PlatformID(true))) {
			m.LockedTarget = advID
		} else {
			m.LockedTarget = types.NoEntity
			if c.DirectionX == types.DirectionNone {
				if s.rng.Float64() > 0.5 {
					c.SetDirectionX(types.DirectionLeft)
				} else {
					c.SetDirectionX(types.DirectionRight)
				}
			} else if s.rng.Float64() > 0.75 {
				c.ReverseDirectionX()
			}
		}
	}

	if m.IsThinking(now) {
		return
	}

	if c.CanAttack(now) && hasAdventurer && adventurer.IsAlive() {
		s.Attack(id, advID)
	}

	if !c.IsAttacking(now) {
		if c.DirectionX == types.DirectionNone {
			c.SetDirectionX(c.LastDirection)
		}
		s.setMovementDirection(id)
	}
}

// Attack бьёт вплотную или стреляет по цели. Дальняя атака ставит кулдаун даже без выстрела.
func (s *AISystem) Attack(id, target types.EntityID) {
	m, c := s.ecs.Monsters[id], s.ecs.Creatures[id]
	now := s.ecs.World.Now
	if !c.CanAttack(now) {
		return
	}

	switch m.AttackMode {
	case types.AttackMelee:
		if s.IsWithinMeleeRange(id, target) {
			s.combatSystem.TakeDamage(target, c.AttackPower)
			c.SetLastAttack(now)
		}
	case types.AttackRanged:
		attack := rangedAttacksByIntelligence[m.Intelligence]
		if m.RangedAttack == types.RangedHomingArrow {
			attack = HomingRangedAttack
		}
		if attack == nil {
			attack = RangedAttackAimedAtCreature
		}
		shot := attack(s.ecs, RangedAttack{
			Shooter:       id,
			Target:        CreatureTarget(target),
			ChargePercent: s.rng.Float64() * config.MonsterMaxCharge,
		})
		c.SetLastAttack(now)
		s.combatSystem.Spawn(shot)
	}
}

// IsWithinMeleeRange — на одной платформе и дотягивается на половину своей ширины.
// При успехе монстр поворачивается к цели.
func (s *AISystem) IsWithinMeleeRange(id, target types.EntityID) bool {
	c, t := s.ecs.Creatures[id], s.ecs.Creatures[target]
	body, tb := s.ecs.Bodies[id], s.ecs.Bodies[target]
	if c == nil || t == nil || !SamePlatform(c, t, false) {
		return false
	}

	reach := body.Width / 2
	canAttack := body.X-reach <= tb.X+tb.Width && body.X+body.Width+reach >= tb.X
	if canAttack {
		if tb.X > body.X {
			c.SetDirectionX(types.DirectionRight)
		} else {
			c.SetDirectionX(types.DirectionLeft)
		}
	}
	return canAttack
}

func (s *AISystem) moveTowardsTarget(c *component.Creature, body, target *component.Body) {
	switch {
	case body.X+body.Width < target.X:
		c.SetDirectionX(types.DirectionRight)
	case body.X > target.X+target.Width:
		c.SetDirectionX(types.DirectionLeft)
	default:
		c.SetDirectionX(types.DirectionNone)
	}
}

// setMovementDirection идёт за целью или патрулирует, разворачиваясь у края платформы
func (s *AISystem) setMovementDirection(id types.EntityID) {
	m, c, body := s.ecs.Monsters[id], s.ecs.Creatures[id], s.ecs.Bodies[id]
	now := s.ecs.World.Now
	if c.IsDead() || c.IsTemporaryInvincible(now) {
		c.SetDirectionX(types.DirectionNone)
		c.DirectionY = types.DirectionYNone
		return
	}

	locked := m.LockedTarget != types.NoEntity
	if locked {
		s.moveTowardsTarget(c, body, s.ecs.Bodies[m.LockedTarget])
		targetPlatform := s.ecs.Creatures[m.LockedTarget].PlatformID(true)
		if CanDropToPlatform(s.ecs, id, targetPlatform) {
			// Не мешаем спрыгнуть к цели
			return
		}
	}

	platform := s.ecs.Bodies[c.Platform]
	if c.Platform == types.NoEntity || platform == nil {
		return
	}
	if c.DirectionX == types.DirectionRight && body.X+body.Width >= platform.X+platform.Width {
		if locked {
			c.SetDirectionX(types.DirectionNone)
		} else {
			c.SetDirectionX(types.DirectionLeft)
		}
	} else if c.DirectionX == types.DirectionLeft && body.X <= platform.X {
		if locked {
			c.SetDirectionX(types.DirectionNone)
		} else {
			c.SetDirectionX(types.DirectionRight)
		}
	}
}
