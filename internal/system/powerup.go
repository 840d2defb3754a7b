// internal/system/powerup.go
package system

import (
	"fmt"
	"math"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
)

// PowerupSystem срабатывает бонусы, которых коснулся игрок, и покачивает остальные
type PowerupSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	playerSystem    *PlayerSystem
}

func NewPowerupSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, combatSystem *CombatSystem, playerSystem *PlayerSystem) *PowerupSystem {
	return &PowerupSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		combatSystem:    combatSystem,
		playerSystem:    playerSystem,
	}
}

// AddPowerup ставит бонус в мир
func AddPowerup(ecs *entity.ECS, body component.Body, p *component.Powerup) types.EntityID {
	id := ecs.NewEntity()
	p.BaseY = body.Y
	ecs.Bodies[id] = &body
	ecs.Powerups[id] = p
	return id
}

func (s *PowerupSystem) Update() {
	now := s.ecs.World.Now
	unit := physics.BaseUnitSize(s.ecs.World.ViewportSize())
	advID, _, hasAdventurer := s.ecs.Adventurer()

	for _, id := range s.ecs.PowerupIDs() {
		p, body := s.ecs.Powerups[id], s.ecs.Bodies[id]
		if p.IsActivated(now) {
			continue
		}
		if hasAdventurer && len(UnitCollisions(s.ecs, body.Hitbox(), []types.EntityID{advID})) > 0 {
			s.applyEffect(id, p, advID)
		}
		// Покачивание с периодом около шести секунд
		offset := math.Sin(float64(now.UnixMilli())/1000) * unit / 8
		body.Y = p.BaseY + offset
	}
}

// applyEffect применяет бонус. Лечение на полном здоровье не тратится.
func (s *PowerupSystem) applyEffect(id types.EntityID, p *component.Powerup, advID types.EntityID) bool {
	switch p.Kind {
	case types.PowerupHealing:
		if !s.combatSystem.Heal(advID, p.HealingAmount) {
			return false
		}
		s.combatSystem.AddFloatingText(advID, fmt.Sprintf("+%d HP", p.HealingAmount), config.DamageTextDuration, config.HealTextColor)
	case types.PowerupItem:
		if p.Item == nil || !s.playerSystem.AddItem(advID, p.Item) {
			return false
		}
		s.combatSystem.AddFloatingText(advID, "+"+p.Item.Name, config.DamageTextDuration, config.HealTextColor)
	default:
		return false
	}
	p.Activated = true
	p.ActivatedAt = s.ecs.World.Now
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerupCollected, Data: event.EntityData{ID: id}})
	}
	return true
}
