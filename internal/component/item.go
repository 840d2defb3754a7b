package component

import (
	"time"

	"github.com/google/uuid"

	"go-adventurer/internal/types"
)

// Item — предмет экипировки или инвентаря
type Item struct {
	ID       string
	Name     string
	ItemType types.ItemType
	Slot     types.ItemSlot
	Rarity   types.ItemRarity
	Weapon   *Weapon // Только для оружия
}

// Weapon — параметры оружия, копируются в существо при экипировке в основную руку
type Weapon struct {
	WeaponType     types.WeaponType
	AttackPower    float64
	AttackCooldown time.Duration
	AttackDuration time.Duration
}

// NewItem создаёт предмет с уникальным ID
func NewItem(name string, itemType types.ItemType, slot types.ItemSlot, rarity types.ItemRarity) *Item {
	return &Item{
		ID:       uuid.NewString(),
		Name:     name,
		ItemType: itemType,
		Slot:     slot,
		Rarity:   rarity,
	}
}

// NewWeapon создаёт оружие
func NewWeapon(name string, slot types.ItemSlot, rarity types.ItemRarity, w Weapon) *Item {
	item := NewItem(name, types.ItemWeapon, slot, rarity)
	item.Weapon = &w
	return item
}

// AmmoTypes — какие снаряды разрешает оружие
func (w *Weapon) AmmoTypes() []types.ProjectileType {
	var allowed []types.ProjectileType
	switch w.WeaponType {
	case types.WeaponBow:
		allowed = append(allowed, types.ProjectileArrow)
	case types.WeaponDagger:
		allowed = append(allowed, types.ProjectileKnife)
	}
	return allowed
}
