// internal/defs/types.go
package defs

import (
	"errors"
	"time"

	"go-adventurer/internal/component"
	"go-adventurer/internal/types"
)

var (
	// ErrNoLevels is returned when a campaign file contains no levels.
	ErrNoLevels = errors.New("campaign has no levels")
	// ErrUnknownMonster is returned for a monster type without a template.
	ErrUnknownMonster = errors.New("unknown monster type")
	// ErrUnknownStyle is returned for a platform style without defaults.
	ErrUnknownStyle = errors.New("unknown platform style")
)

// Point is a position given as fractions of the level size.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// SizeFactors scales the level relative to the viewport. Values below 1 are raised to 1.
type SizeFactors struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// PlatformTemplate describes a platform in fractions of the level size.
// Y is the top of the platform, 0 is the top of the level and 1 the bottom.
type PlatformTemplate struct {
	Style           types.PlatformStyle `json:"style" yaml:"style"`
	X               float64             `json:"x" yaml:"x"`
	Y               float64             `json:"y" yaml:"y"`
	Width           float64             `json:"width" yaml:"width"`
	Height          float64             `json:"height" yaml:"height"`
	Friction        *float64            `json:"friction,omitempty" yaml:"friction,omitempty"`
	SpeedMultiplier *float64            `json:"speed_multiplier,omitempty" yaml:"speed_multiplier,omitempty"`
	Label           string              `json:"label,omitempty" yaml:"label,omitempty"`
}

// MonsterTemplate holds the static data for a monster.
// Width and Height are in base units, SpeedX and SpeedY are multiples of the base unit speed.
// X and Y are fractions of the level size and are set when the monster is placed.
type MonsterTemplate struct {
	Name               string                    `json:"name" yaml:"name"`
	Species            types.MonsterType         `json:"monster" yaml:"monster"`
	Hitpoints          int                       `json:"hitpoints" yaml:"hitpoints"`
	Armor              float64                   `json:"armor" yaml:"armor"`
	AttackPower        float64                   `json:"attack_power" yaml:"attack_power"`
	AttackCooldownMs   int                       `json:"attack_cooldown_ms" yaml:"attack_cooldown_ms"`
	AttackDurationMs   int                       `json:"attack_duration_ms" yaml:"attack_duration_ms"`
	Width              float64                   `json:"width" yaml:"width"`
	Height             float64                   `json:"height" yaml:"height"`
	X                  float64                   `json:"x" yaml:"x"`
	Y                  float64                   `json:"y" yaml:"y"`
	SpeedX             float64                   `json:"speed_x" yaml:"speed_x"`
	SpeedY             float64                   `json:"speed_y" yaml:"speed_y"`
	Movement           types.MovementType        `json:"movement" yaml:"movement"`
	DirectionX         types.Direction           `json:"direction_x" yaml:"direction_x"`
	Intelligence       types.Intelligence        `json:"intelligence" yaml:"intelligence"`
	RangedAttack       types.MonsterRangedAttack `json:"ranged_attack,omitempty" yaml:"ranged_attack,omitempty"`
	DealsContactDamage bool                      `json:"deals_contact_damage,omitempty" yaml:"deals_contact_damage,omitempty"`
}

func (m MonsterTemplate) AttackCooldown() time.Duration {
	return time.Duration(m.AttackCooldownMs) * time.Millisecond
}

func (m MonsterTemplate) AttackDuration() time.Duration {
	return time.Duration(m.AttackDurationMs) * time.Millisecond
}

// AttackMode is derived from the species: only archers shoot.
func (m MonsterTemplate) AttackMode() types.AttackMode {
	if m.Species == types.MonsterArcher {
		return types.AttackRanged
	}
	return types.AttackMelee
}

// CanBeJumpedOn reports whether the adventurer can stand on this species.
func (m MonsterTemplate) CanBeJumpedOn() bool {
	return m.Species == types.MonsterGoblin || m.Species == types.MonsterArcher
}

// MonsterSpec is a monster entry in a level file: a template type plus optional overrides.
type MonsterSpec struct {
	Type               types.MonsterType          `json:"type" yaml:"type"`
	Name               *string                    `json:"name,omitempty" yaml:"name,omitempty"`
	Hitpoints          *int                       `json:"hitpoints,omitempty" yaml:"hitpoints,omitempty"`
	Armor              *float64                   `json:"armor,omitempty" yaml:"armor,omitempty"`
	AttackPower        *float64                   `json:"attack_power,omitempty" yaml:"attack_power,omitempty"`
	SpeedX             *float64                   `json:"speed_x,omitempty" yaml:"speed_x,omitempty"`
	Intelligence       *types.Intelligence        `json:"intelligence,omitempty" yaml:"intelligence,omitempty"`
	RangedAttack       *types.MonsterRangedAttack `json:"ranged_attack,omitempty" yaml:"ranged_attack,omitempty"`
	DealsContactDamage *bool                      `json:"deals_contact_damage,omitempty" yaml:"deals_contact_damage,omitempty"`
}

// ItemTemplate describes an item granted by a powerup.
type ItemTemplate struct {
	Name   string           `json:"name" yaml:"name"`
	Type   types.ItemType   `json:"type" yaml:"type"`
	Slot   types.ItemSlot   `json:"slot" yaml:"slot"`
	Rarity types.ItemRarity `json:"rarity" yaml:"rarity"`
	Weapon *WeaponTemplate  `json:"weapon,omitempty" yaml:"weapon,omitempty"`
}

// WeaponTemplate holds the weapon part of an item.
type WeaponTemplate struct {
	Type             types.WeaponType `json:"type" yaml:"type"`
	AttackPower      float64          `json:"attack_power" yaml:"attack_power"`
	AttackCooldownMs int              `json:"attack_cooldown_ms" yaml:"attack_cooldown_ms"`
	AttackDurationMs int              `json:"attack_duration_ms" yaml:"attack_duration_ms"`
}

// NewItem creates a fresh item instance with its own ID.
func (t ItemTemplate) NewItem() *component.Item {
	if t.Weapon != nil {
		return component.NewWeapon(t.Name, t.Slot, t.Rarity, component.Weapon{
			WeaponType:     t.Weapon.Type,
			AttackPower:    t.Weapon.AttackPower,
			AttackCooldown: time.Duration(t.Weapon.AttackCooldownMs) * time.Millisecond,
			AttackDuration: time.Duration(t.Weapon.AttackDurationMs) * time.Millisecond,
		})
	}
	itemType := t.Type
	if itemType == "" {
		itemType = types.ItemMisc
	}
	return component.NewItem(t.Name, itemType, t.Slot, t.Rarity)
}

// PowerupTemplate places a powerup. X and Y are fractions of the level size,
// Width and Height are in base units.
type PowerupTemplate struct {
	Name          string            `json:"name" yaml:"name"`
	Kind          types.PowerupKind `json:"kind" yaml:"kind"`
	HealingAmount int               `json:"healing_amount,omitempty" yaml:"healing_amount,omitempty"`
	Item          *ItemTemplate     `json:"item,omitempty" yaml:"item,omitempty"`
	X             float64           `json:"x" yaml:"x"`
	Y             float64           `json:"y" yaml:"y"`
	Width         float64           `json:"width" yaml:"width"`
	Height        float64           `json:"height" yaml:"height"`
}

// Level holds all the static data for one level.
type Level struct {
	Name   string   `json:"name" yaml:"name"`
	Number int      `json:"level" yaml:"level"`
	Tips   []string `json:"tips,omitempty" yaml:"tips,omitempty"`

	MonsterSpecs []MonsterSpec     `json:"monsters" yaml:"monsters"`
	Monsters     []MonsterTemplate `json:"-" yaml:"-"` // Filled from MonsterSpecs on load

	Platforms                 []PlatformTemplate `json:"platforms" yaml:"platforms"`
	InitialAdventurerPosition *Point             `json:"initial_adventurer_position,omitempty" yaml:"initial_adventurer_position,omitempty"`
	InitialViewportPosition   *Point             `json:"initial_viewport_position,omitempty" yaml:"initial_viewport_position,omitempty"`
	Size                      *SizeFactors       `json:"level_size,omitempty" yaml:"level_size,omitempty"`
	Powerups                  []PowerupTemplate  `json:"powerups,omitempty" yaml:"powerups,omitempty"`
}

// SizeFactors returns the level size factors, defaulting to one screen.
func (l *Level) SizeFactors() SizeFactors {
	f := SizeFactors{Width: 1, Height: 1}
	if l.Size != nil {
		f.Width = max(1, l.Size.Width)
		f.Height = max(1, l.Size.Height)
	}
	return f
}

// Campaign is an ordered list of levels plus an optional debug level.
type Campaign struct {
	Tips      []string `json:"tips,omitempty" yaml:"tips,omitempty"` // Shared by levels without their own
	Levels    []Level  `json:"levels" yaml:"levels"`
	TestLevel *Level   `json:"test_level,omitempty" yaml:"test_level,omitempty"`
}
