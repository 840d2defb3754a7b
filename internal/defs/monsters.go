// internal/defs/monsters.go
package defs

import (
	"fmt"

	"go-adventurer/internal/types"
)

// MonsterLibrary holds the base template for every monster type, keyed by type.
var MonsterLibrary = map[types.MonsterType]MonsterTemplate{
	types.MonsterGoblin: {
		Name:             "Goblin",
		Species:          types.MonsterGoblin,
		Hitpoints:        15,
		AttackPower:      5,
		AttackCooldownMs: 2000,
		AttackDurationMs: 200,
		Width:            1,
		Height:           1.5,
		SpeedX:           0.45,
		Movement:         types.MovementWalking,
		DirectionX:       types.DirectionLeft,
		Intelligence:     types.IntelligenceDumb,
	},
	types.MonsterSkeleton: {
		Name:             "Skeleton",
		Species:          types.MonsterSkeleton,
		Hitpoints:        10,
		AttackPower:      5,
		AttackCooldownMs: 2000,
		AttackDurationMs: 200,
		Width:            1,
		Height:           1.5,
		SpeedX:           0.25,
		Movement:         types.MovementWalking,
		DirectionX:       types.DirectionLeft,
		Intelligence:     types.IntelligenceDumb,
	},
	types.MonsterArcher: {
		Name:             "Archer",
		Species:          types.MonsterArcher,
		Hitpoints:        10,
		AttackPower:      15,
		AttackCooldownMs: 2000,
		AttackDurationMs: 200,
		Width:            1,
		Height:           1.5,
		SpeedX:           0.25,
		Movement:         types.MovementWalking,
		DirectionX:       types.DirectionLeft,
		Intelligence:     types.IntelligenceDumb,
		RangedAttack:     types.RangedArrow,
	},
	types.MonsterOrc: {
		Name:             "Orc",
		Species:          types.MonsterOrc,
		Hitpoints:        30,
		AttackPower:      10,
		AttackCooldownMs: 1500,
		AttackDurationMs: 300,
		Width:            1,
		Height:           1.5,
		SpeedX:           0.35,
		Movement:         types.MovementWalking,
		DirectionX:       types.DirectionLeft,
		Intelligence:     types.IntelligenceNormal,
	},
	types.MonsterTroll: {
		Name:             "Troll",
		Species:          types.MonsterTroll,
		Hitpoints:        60,
		Armor:            0.2,
		AttackPower:      20,
		AttackCooldownMs: 2500,
		AttackDurationMs: 500,
		Width:            1.5,
		Height:           1.5,
		SpeedX:           0.2,
		Movement:         types.MovementWalking,
		DirectionX:       types.DirectionLeft,
		Intelligence:     types.IntelligenceDumb,
	},
}

// NewMonster returns a copy of the base template for t.
func NewMonster(t types.MonsterType) (MonsterTemplate, error) {
	m, ok := MonsterLibrary[t]
	if !ok {
		return MonsterTemplate{}, fmt.Errorf("%w: %q", ErrUnknownMonster, t)
	}
	if m.RangedAttack == "" {
		m.RangedAttack = types.RangedArrow
	}
	return m, nil
}

// Resolve applies the overrides of the spec on top of its base template.
func (s MonsterSpec) Resolve() (MonsterTemplate, error) {
	m, err := NewMonster(s.Type)
	if err != nil {
		return MonsterTemplate{}, err
	}
	if s.Name != nil {
		m.Name = *s.Name
	}
	if s.Hitpoints != nil {
		m.Hitpoints = *s.Hitpoints
	}
	if s.Armor != nil {
		m.Armor = *s.Armor
	}
	if s.AttackPower != nil {
		m.AttackPower = *s.AttackPower
	}
	if s.SpeedX != nil {
		m.SpeedX = *s.SpeedX
	}
	if s.Intelligence != nil {
		m.Intelligence = *s.Intelligence
	}
	if s.RangedAttack != nil {
		m.RangedAttack = *s.RangedAttack
	}
	if s.DealsContactDamage != nil {
		m.DealsContactDamage = *s.DealsContactDamage
	}
	return m, nil
}
