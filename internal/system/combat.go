// internal/system/combat.go
package system

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

// CombatSystem применяет урон и лечение и добавляет снаряды в игру
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             utils.Random
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng utils.Random) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// TakeDamage наносит урон с учётом брони. Неуязвимость здесь не проверяется:
// её учитывают только источники контактного урона.
// Возвращает false, если урон не принят (уворот разбойника).
func (s *CombatSystem) TakeDamage(id types.EntityID, damage float64) bool {
	c := s.ecs.Creatures[id]
	if c == nil {
		return false
	}
	now := s.ecs.World.Now

	if adv, ok := s.ecs.Adventurers[id]; ok && adv.Class == types.ClassRogue {
		if s.rng.Float64() < config.RogueDodgeChance {
			s.AddFloatingText(id, "Dodge!", config.DamageTextDuration, config.InfoTextColor)
			s.dispatch(event.DamageDodged, event.DamageData{Target: id})
			return false
		}
	}

	adjusted := int(math.Round(damage * (1 - c.Armor)))
	c.Hitpoints = max(0, c.Hitpoints-adjusted)

	s.AddFloatingText(id, fmt.Sprintf("-%d", adjusted), config.DamageTextDuration, config.DamageTextColor)

	if c.Hitpoints > 0 {
		c.TemporaryInvincibility = now.Add(config.InvincibilityDuration)
	} else if c.TimeOfDeath.IsZero() {
		c.TimeOfDeath = now
		s.dispatch(event.CreatureDied, event.EntityData{ID: id})
		if id == s.ecs.World.AdventurerID {
			s.ecs.World.GameOver = true
			s.dispatch(event.GameOver, event.EntityData{ID: id})
		}
	}
	c.SetLastAction(now)

	s.dispatch(event.DamageTaken, event.DamageData{Target: id, Amount: adjusted})
	return true
}

// Heal лечит, но не выше максимума. На полном здоровье ничего не делает и возвращает false.
func (s *CombatSystem) Heal(id types.EntityID, amount int) bool {
	c := s.ecs.Creatures[id]
	if c == nil || c.Hitpoints == c.MaxHitpoints {
		return false
	}
	c.Hitpoints = min(c.Hitpoints+amount, c.MaxHitpoints)
	c.SetLastAction(s.ecs.World.Now)
	return true
}

// AddFloatingText показывает надпись над сущностью
func (s *CombatSystem) AddFloatingText(id types.EntityID, text string, d time.Duration, c color.RGBA) {
	texts, ok := s.ecs.FloatingTexts[id]
	if !ok {
		return
	}
	texts.Add(text, d, c, s.ecs.World.Now)
}

// Spawn добавляет выпущенный снаряд в игру
func (s *CombatSystem) Spawn(shot *Shot) types.EntityID {
	if shot == nil {
		return types.NoEntity
	}
	id := s.ecs.AddProjectile(shot.Body, shot.Projectile)
	s.dispatch(event.ProjectileSpawned, event.EntityData{ID: id})
	return id
}

func (s *CombatSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}
