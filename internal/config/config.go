// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1680
	ScreenHeight = 720
	AspectRatio  = 21.0 / 9.0

	// Номинальный интервал тика: физика откалибрована под 30 Гц
	NominalTickInterval = time.Second / 30
	MaxTickFactor       = 7.5

	// Доли размера вьюпорта
	UnitSizeDivisor        = 30.0  // baseUnitSize = width / 30
	ProjectileSpeedDivisor = 30.0  // baseProjectileSpeed = width / 30
	UnitSpeedDivisor       = 100.0 // baseUnitSpeed = width / 100
	GravityDivisor         = 100.0 // baseGravity = height / 100
	TerminalVelocityDiv    = 10.0  // terminal = height / 10
	JumpSpeedDivisor       = 15.0  // baseJump = -height / 15
	JumpIndexCap           = 5
	MaxJumpCount           = 2
	JumpReachMargin        = 1.2

	AccelerationScale = 1.0 / 5.0
	LandingTolerance  = 10.0

	InvincibilityDuration = 2000 * time.Millisecond
	DamageTextDuration    = 1000 * time.Millisecond

	ProjectileDespawn      = 10000 * time.Millisecond
	ProjectileWidthPx      = 64.0
	ProjectileHeightPx     = 18.0
	ProjectileSpriteBase   = 64.0
	MaxSpeedYFactor        = 1.25
	PredictionIterations   = 3
	EnergyLossPercent      = 30.0
	SpentProjectileDivisor = 10.0

	HomingAgility          = 0.1
	HomingAcceleration     = 2500 * time.Millisecond
	HomingMinSpeedShare    = 0.15
	HomingDisableDuration  = 1500 * time.Millisecond
	HomingImpactDuration   = 250 * time.Millisecond
	BombMass               = 5.0
	BombExplosionSize      = 2.0
	BombDetonationDuration = 250 * time.Millisecond

	MaxAmmo             = 5
	AmmoRechargeEvery   = 3000 * time.Millisecond
	AmmoRechargeBelow   = 3
	OutOfAmmoTextMax    = 1000 * time.Millisecond
	MinChargeTime       = 1 * time.Millisecond
	MaxChargeTime       = 1500 * time.Millisecond
	RogueDodgeChance    = 0.5
	GuidedArrowCooldown = 10000 * time.Millisecond
	BombCooldown        = 15000 * time.Millisecond
	BombPowerMultiplier = 3.0
	MonsterMaxCharge    = 0.5

	DoorSizeUnits   = 2.0
	DoorCheckModulo = 10
	ViewportMargin  = 0.5
)

// ThinkingTier — интервал и длительность паузы на размышление монстра
type ThinkingTier struct {
	Interval time.Duration
	Duration time.Duration
}

// ThinkingTiers по уровню интеллекта: умные монстры перепланируют чаще
var ThinkingTiers = map[string]ThinkingTier{
	"dumb":   {Interval: 5000 * time.Millisecond, Duration: 1000 * time.Millisecond},
	"normal": {Interval: 3000 * time.Millisecond, Duration: 500 * time.Millisecond},
	"smart":  {Interval: 1000 * time.Millisecond, Duration: 250 * time.Millisecond},
}

var (
	BackgroundColor   = color.RGBA{135, 206, 235, 255}
	AdventurerColor   = color.RGBA{40, 40, 160, 255}
	MonsterColor      = color.RGBA{60, 140, 60, 255}
	LockedColor       = color.RGBA{200, 60, 60, 255}
	DoorClosedColor   = color.RGBA{139, 69, 19, 255}
	DoorOpenColor     = color.RGBA{255, 215, 0, 255}
	PowerupColor      = color.RGBA{230, 30, 90, 255}
	HealthBarColor    = color.RGBA{220, 20, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	ExplosionColor    = color.RGBA{255, 0, 0, 160}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	DamageTextColor   = color.RGBA{220, 20, 20, 255}
	HealTextColor     = color.RGBA{30, 160, 60, 255}
	InfoTextColor     = color.RGBA{255, 255, 255, 255}
	PlatformColors    = map[string]color.RGBA{
		"dirt":  {0x69, 0x3B, 0x29, 255},
		"stone": {0x7B, 0x7B, 0x7B, 255},
		"wood":  {0x8B, 0x45, 0x13, 255},
		"grass": {0x2D, 0x7A, 0x3D, 255},
		"ice":   {0xAE, 0xE5, 0xFF, 255},
		"glue":  {0xFF, 0xD7, 0x00, 255},
	}
	ThemeColors = map[string]color.RGBA{
		"red":   {200, 30, 30, 255},
		"blue":  {30, 60, 200, 255},
		"green": {30, 160, 60, 255},
	}
)
