// internal/system/player_system.go
package system

import (
	"fmt"
	"math"
	"time"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

// PlayerSystem отвечает за искателя приключений: намерения ввода, стрельбу,
// способности, боезапас и контактный урон.
type PlayerSystem struct {
	ecs           *entity.ECS
	combatSystem  *CombatSystem
	physicsSystem *PhysicsSystem
	rng           utils.Random
	abilities     map[types.AbilityName]func(s *PlayerSystem, id types.EntityID) *Shot
}

func NewPlayerSystem(ecs *entity.ECS, combatSystem *CombatSystem, physicsSystem *PhysicsSystem, rng utils.Random) *PlayerSystem {
	return &PlayerSystem{
		ecs:           ecs,
		combatSystem:  combatSystem,
		physicsSystem: physicsSystem,
		rng:           rng,
		abilities: map[types.AbilityName]func(s *PlayerSystem, id types.EntityID) *Shot{
			types.AbilityGuidedArrow: (*PlayerSystem).fireHomingArrow,
			types.AbilityBomb:        (*PlayerSystem).throwBomb,
		},
	}
}

// AdventurerStats — стартовые характеристики игрока
type AdventurerStats struct {
	Class          types.AdventurerClass
	Hitpoints      int
	AttackPower    float64
	AttackCooldown time.Duration
	AttackDuration time.Duration
}

// DefaultAdventurerStats — 100 хитпоинтов, сила 10, кулдаун и анимация по 100 мс
func DefaultAdventurerStats(class types.AdventurerClass) AdventurerStats {
	return AdventurerStats{
		Class:          class,
		Hitpoints:      100,
		AttackPower:    10,
		AttackCooldown: 100 * time.Millisecond,
		AttackDuration: 100 * time.Millisecond,
	}
}

// NewAdventurer создаёт игрока с характеристиками по умолчанию
func (s *PlayerSystem) NewAdventurer(class types.AdventurerClass) types.EntityID {
	return s.SpawnAdventurer(DefaultAdventurerStats(class))
}

// SpawnAdventurer создаёт игрока с простым луком в руке и делает его текущим
func (s *PlayerSystem) SpawnAdventurer(stats AdventurerStats) types.EntityID {
	vp := s.ecs.World.ViewportSize()
	unit := physics.BaseUnitSize(vp)
	now := s.ecs.World.Now

	creature := &component.Creature{
		Name:               "Adventurer",
		MaxSpeedX:          physics.BaseUnitSpeed(vp),
		AccelerationFactor: 1,
		Gravity:            physics.BaseGravity(vp),
		DirectionX:         types.DirectionNone,
		LastDirection:      types.DirectionNone,
		DirectionY:         types.DirectionYNone,
		Movement:           types.MovementWalking,
		Hitpoints:          stats.Hitpoints,
		MaxHitpoints:       stats.Hitpoints,
		AttackPower:        stats.AttackPower,
		AttackCooldown:     stats.AttackCooldown,
		AttackDuration:     stats.AttackDuration,
		MaxJumpCount:       config.MaxJumpCount,
		LastAction:         now,
	}
	id := s.ecs.AddCreature(component.Body{Width: unit, Height: unit * 1.5}, creature)
	s.ecs.Adventurers[id] = &component.Adventurer{
		Class:     stats.Class,
		Equipment: make(map[types.ItemSlot]*component.Item),
		Abilities: map[types.AbilityName]*component.SpecialAbility{
			types.AbilityGuidedArrow: {Name: types.AbilityGuidedArrow, Cooldown: config.GuidedArrowCooldown},
			types.AbilityBomb:        {Name: types.AbilityBomb, Cooldown: config.BombCooldown},
		},
		AllowedAmmoTypes: []types.ProjectileType{types.ProjectileArrow, types.ProjectileKnife},
		MaxAmmo:          config.MaxAmmo,
		LastAmmoRecharge: now,
	}
	s.ecs.World.AdventurerID = id

	s.EquipItem(id, types.SlotMainHand, component.NewWeapon("Simple Bow", types.SlotMainHand, types.RarityCommon, component.Weapon{
		WeaponType:     types.WeaponBow,
		AttackPower:    creature.AttackPower,
		AttackCooldown: creature.AttackCooldown,
		AttackDuration: creature.AttackDuration,
	}))
	return id
}

// EquipItem надевает предмет в его слот. Оружие в основной руке задаёт характеристики
// атаки и допустимые снаряды, а колчан перезаполняется.
func (s *PlayerSystem) EquipItem(id types.EntityID, slot types.ItemSlot, item *component.Item) bool {
	adv, c := s.ecs.Adventurers[id], s.ecs.Creatures[id]
	if adv == nil || c == nil || item == nil || item.Slot != slot {
		return false
	}
	adv.Equipment[slot] = item
	if slot == types.SlotMainHand && item.Weapon != nil {
		c.AttackCooldown = item.Weapon.AttackCooldown
		c.AttackDuration = item.Weapon.AttackDuration
		c.AttackPower = item.Weapon.AttackPower
		adv.AllowedAmmoTypes = item.Weapon.AmmoTypes()
		s.ResetAmmo(id)
	}
	return true
}

// AddItem надевает предмет в пустой слот или кладёт в инвентарь
func (s *PlayerSystem) AddItem(id types.EntityID, item *component.Item) bool {
	adv := s.ecs.Adventurers[id]
	if adv == nil || item == nil {
		return false
	}
	if _, taken := adv.Equipment[item.Slot]; !taken {
		return s.EquipItem(id, item.Slot, item)
	}
	adv.Inventory = append(adv.Inventory, item)
	return true
}

// ResetAmmo заполняет колчан наполовину случайными допустимыми снарядами
func (s *PlayerSystem) ResetAmmo(id types.EntityID) {
	adv := s.ecs.Adventurers[id]
	if adv == nil {
		return
	}
	amount := int(math.Ceil(float64(adv.MaxAmmo) / 2))
	ammo := make([]component.Ammo, 0, amount)
	for i := 0; i < amount; i++ {
		if a, ok := s.randomAmmo(adv); ok {
			ammo = append(ammo, a)
		}
	}
	adv.Ammo = ammo
}

func (s *PlayerSystem) randomAmmo(adv *component.Adventurer) (component.Ammo, bool) {
	i := utils.Pick(s.rng, len(adv.AllowedAmmoTypes))
	if i < 0 {
		return component.Ammo{}, false
	}
	return component.Ammo{Type: adv.AllowedAmmoTypes[i], ColorTheme: types.ThemeGreen}, true
}

// CanAttack — есть снаряды и атака доступна. Пустой колчан показывает
// "Out of ammo!" до ближайшей перезарядки, но не дольше секунды.
func (s *PlayerSystem) CanAttack(id types.EntityID) bool {
	adv, c := s.ecs.Adventurers[id], s.ecs.Creatures[id]
	if adv == nil || c == nil {
		return false
	}
	now := s.ecs.World.Now
	if len(adv.Ammo) == 0 {
		untilRecharge := min(config.AmmoRechargeEvery-now.Sub(adv.LastAmmoRecharge), config.OutOfAmmoTextMax)
		s.combatSystem.AddFloatingText(id, "Out of ammo!", untilRecharge, config.InfoTextColor)
		return false
	}
	return c.CanAttack(now)
}

// ChargeRangedAttack начинает натягивать тетиву
func (s *PlayerSystem) ChargeRangedAttack(id types.EntityID) {
	c := s.ecs.Creatures[id]
	if c == nil || !s.CanAttack(id) {
		return
	}
	if c.AttackChargeStart.IsZero() {
		c.AttackChargeStart = s.ecs.World.Now
	}
}

// ChargePercent — доля заряда по времени удержания
func (s *PlayerSystem) ChargePercent(id types.EntityID) float64 {
	c := s.ecs.Creatures[id]
	if c == nil || c.AttackChargeStart.IsZero() {
		return 0
	}
	held := s.ecs.World.Now.Sub(c.AttackChargeStart)
	return utils.Clamp(float64(held-config.MinChargeTime)/float64(config.MaxChargeTime-config.MinChargeTime), 0, 1)
}

// RangedMouseAttack стреляет первым зарядом из колчана в сторону мыши
func (s *PlayerSystem) RangedMouseAttack(id types.EntityID) types.EntityID {
	if !s.CanAttack(id) {
		return types.NoEntity
	}
	adv, c := s.ecs.Adventurers[id], s.ecs.Creatures[id]
	now := s.ecs.World.Now

	charge := s.ChargePercent(id)
	ammo := adv.Ammo[0]
	adv.Ammo = adv.Ammo[1:]

	shot := ManualRangedAttack(s.ecs, RangedAttack{
		Shooter:        id,
		Target:         PointTarget(s.ecs.World.Mouse),
		ChargePercent:  charge,
		ProjectileType: ammo.Type,
		ColorTheme:     ammo.ColorTheme,
	})

	c.SetLastAttack(now)
	c.AttackChargeStart = time.Time{}

	return s.combatSystem.Spawn(shot)
}

// CanUseSpecialAbility — жив и способность откатилась
func (s *PlayerSystem) CanUseSpecialAbility(id types.EntityID, name types.AbilityName) bool {
	adv, c := s.ecs.Adventurers[id], s.ecs.Creatures[id]
	if adv == nil || c == nil || c.IsDead() {
		return false
	}
	return adv.CanUseAbility(name, s.ecs.World.Now)
}

// UseSpecialAbility запускает кулдаун и активирует способность
func (s *PlayerSystem) UseSpecialAbility(id types.EntityID, name types.AbilityName) types.EntityID {
	activate, ok := s.abilities[name]
	if !ok || !s.CanUseSpecialAbility(id, name) {
		return types.NoEntity
	}
	s.ecs.Adventurers[id].Abilities[name].LastUsed = s.ecs.World.Now
	return s.combatSystem.Spawn(activate(s, id))
}

// fireHomingArrow наводит стрелу на живого монстра, ближайшего к мыши
func (s *PlayerSystem) fireHomingArrow(id types.EntityID) *Shot {
	var candidates []types.EntityID
	for _, cid := range LivingCreatures(s.ecs) {
		if _, isAdventurer := s.ecs.Adventurers[cid]; !isAdventurer {
			candidates = append(candidates, cid)
		}
	}
	target := ClosestCreature(s.ecs, s.ecs.World.Mouse, candidates)
	if target == types.NoEntity {
		return nil
	}
	return HomingRangedAttack(s.ecs, RangedAttack{
		Shooter:       id,
		Target:        CreatureTarget(target),
		ChargePercent: 1,
		ColorTheme:    types.ThemeBlue,
	})
}

func (s *PlayerSystem) throwBomb(id types.EntityID) *Shot {
	power := s.ecs.Creatures[id].AttackPower * config.BombPowerMultiplier
	return ManualRangedAttack(s.ecs, RangedAttack{
		Shooter:             id,
		Target:              PointTarget(s.ecs.World.Mouse),
		ProjectileType:      types.ProjectileBomb,
		ColorTheme:          types.ThemeRed,
		AttackPowerOverride: &power,
	})
}

// SetMovementIntent переводит нажатые клавиши в направления
func (s *PlayerSystem) SetMovementIntent(id types.EntityID, left, right, up, down bool) {
	c := s.ecs.Creatures[id]
	if c == nil {
		return
	}
	switch {
	case left && !right:
		c.SetDirectionX(types.DirectionLeft)
	case right:
		c.SetDirectionX(types.DirectionRight)
	default:
		c.SetDirectionX(types.DirectionNone)
	}
	switch {
	case up && !down:
		c.DirectionY = types.DirectionUp
	case down:
		c.DirectionY = types.DirectionDown
	default:
		c.DirectionY = types.DirectionYNone
	}
}

// Jump — прыжок по команде игрока. Мёртвые не прыгают.
func (s *PlayerSystem) Jump(id types.EntityID, perfect bool) bool {
	c := s.ecs.Creatures[id]
	if c == nil || c.IsDead() {
		return false
	}
	return s.physicsSystem.Jump(id, perfect)
}

// ToggleCrouch переключает приседание
func (s *PlayerSystem) ToggleCrouch(id types.EntityID) {
	if c := s.ecs.Creatures[id]; c != nil {
		c.ToggleCrouch(s.ecs.World.Now)
	}
}

// Update — контактный урон, пополнение колчана и физика игрока
func (s *PlayerSystem) Update() {
	id, c, ok := s.ecs.Adventurer()
	if !ok {
		return
	}
	adv := s.ecs.Adventurers[id]
	now := s.ecs.World.Now

	var others []types.EntityID
	for _, cid := range s.ecs.CreatureIDs() {
		if cid != id {
			others = append(others, cid)
		}
	}
	for _, cid := range UnitCollisions(s.ecs, s.ecs.Bodies[id].Hitbox(), others) {
		if c.IsTemporaryInvincible(now) {
			break
		}
		if other := s.ecs.Creatures[cid]; other.DealsContactDamage {
			s.combatSystem.TakeDamage(id, other.AttackPower)
		}
	}

	if adv != nil && adv.LastAmmoRecharge.Before(now.Add(-config.AmmoRechargeEvery)) {
		adv.LastAmmoRecharge = now
		if len(adv.Ammo) < config.AmmoRechargeBelow {
			if a, ok := s.randomAmmo(adv); ok {
				adv.Ammo = append(adv.Ammo, a)
			}
		}
	}

	s.physicsSystem.UpdateCreature(id)
}

// OnEvent считает убитых игроком монстров
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.CreatureDied {
		return
	}
	data, ok := e.Data.(event.EntityData)
	if !ok {
		return
	}
	advID, _, found := s.ecs.Adventurer()
	if !found || data.ID == advID {
		return
	}
	if _, isMonster := s.ecs.Monsters[data.ID]; isMonster {
		s.ecs.Adventurers[advID].Kills++
	}
}

// HitpointsText — подпись для полоски здоровья
func HitpointsText(c *component.Creature) string {
	return fmt.Sprintf("%d/%d", c.Hitpoints, c.MaxHitpoints)
}
