// internal/defs/platforms.go
package defs

import (
	"fmt"

	"go-adventurer/internal/types"
)

// StyleDefaults holds the physics a platform style has unless the level overrides it.
type StyleDefaults struct {
	Friction        float64
	SpeedMultiplier float64
}

var styleDefaults = map[types.PlatformStyle]StyleDefaults{
	types.StyleDirt:  {Friction: 1, SpeedMultiplier: 1},
	types.StyleStone: {Friction: 1, SpeedMultiplier: 1},
	types.StyleWood:  {Friction: 1, SpeedMultiplier: 1},
	types.StyleGrass: {Friction: 1, SpeedMultiplier: 1},
	types.StyleIce:   {Friction: 0.2, SpeedMultiplier: 0.8},
	types.StyleGlue:  {Friction: 2, SpeedMultiplier: 0.1},
}

// DefaultsForStyle returns the friction and speed multiplier of a style.
func DefaultsForStyle(style types.PlatformStyle) (StyleDefaults, error) {
	d, ok := styleDefaults[style]
	if !ok {
		return StyleDefaults{}, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return d, nil
}

// Physics returns the effective friction and speed multiplier of the platform.
func (p PlatformTemplate) Physics() (friction, speedMultiplier float64, err error) {
	d, err := DefaultsForStyle(p.Style)
	if err != nil {
		return 0, 0, err
	}
	friction, speedMultiplier = d.Friction, d.SpeedMultiplier
	if p.Friction != nil {
		friction = *p.Friction
	}
	if p.SpeedMultiplier != nil {
		speedMultiplier = *p.SpeedMultiplier
	}
	return friction, speedMultiplier, nil
}
