// internal/component/player.go
package component

import (
	"time"

	"go-adventurer/internal/types"
)

// Ammo — один заряд в колчане
type Ammo struct {
	Type       types.ProjectileType
	ColorTheme types.ColorTheme
}

// SpecialAbility — особая способность с собственным кулдауном
type SpecialAbility struct {
	Name     types.AbilityName
	Cooldown time.Duration
	LastUsed time.Time
}

// Adventurer хранит информацию, специфичную для игрока:
// класс, экипировку, боезапас и особые способности.
type Adventurer struct {
	Class            types.AdventurerClass
	Equipment        map[types.ItemSlot]*Item
	Inventory        []*Item
	Abilities        map[types.AbilityName]*SpecialAbility
	Ammo             []Ammo // Очередь: стреляем первым зарядом
	AllowedAmmoTypes []types.ProjectileType
	MaxAmmo          int
	LastAmmoRecharge time.Time
	Kills            int // Убитые монстры за игру
}

// HasAllowedAmmo — подходит ли тип снаряда к текущему оружию
func (a *Adventurer) HasAllowedAmmo(t types.ProjectileType) bool {
	for _, allowed := range a.AllowedAmmoTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// AddAmmo кладёт заряд в колчан, если есть место и тип подходит к оружию
func (a *Adventurer) AddAmmo(ammo Ammo) bool {
	if len(a.Ammo) >= a.MaxAmmo || !a.HasAllowedAmmo(ammo.Type) {
		return false
	}
	a.Ammo = append(a.Ammo, ammo)
	return true
}

// CanUseAbility — способность есть и её кулдаун прошёл
func (a *Adventurer) CanUseAbility(name types.AbilityName, now time.Time) bool {
	ability, ok := a.Abilities[name]
	return ok && ability.LastUsed.Before(now.Add(-ability.Cooldown))
}

// AbilityCooldown — остаток кулдауна способности
func (a *Adventurer) AbilityCooldown(name types.AbilityName, now time.Time) Cooldown {
	ability, ok := a.Abilities[name]
	if !ok {
		return Cooldown{}
	}
	return NewCooldown(ability.LastUsed, ability.Cooldown, now)
}
