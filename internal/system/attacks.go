// internal/system/attacks.go
package system

import (
	"log"
	"math"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/pkg/geom"
)

// Target — цель дальней атаки: либо существо, либо точка
type Target struct {
	Creature types.EntityID
	Point    *geom.Point
}

// CreatureTarget целится в существо
func CreatureTarget(id types.EntityID) Target {
	return Target{Creature: id}
}

// PointTarget целится в точку
func PointTarget(p geom.Point) Target {
	return Target{Point: &p}
}

// RangedAttack — параметры выстрела
type RangedAttack struct {
	Shooter             types.EntityID
	Target              Target
	ChargePercent       float64 // 0..1
	ProjectileType      types.ProjectileType
	ColorTheme          types.ColorTheme
	AttackPowerOverride *float64
}

// Shot — снаряд, ещё не добавленный в игру
type Shot struct {
	Body       component.Body
	Projectile *component.Projectile
}

// ManualRangedAttack стреляет прямо в точку из центра стрелка.
// Для цели-существа атака не выполняется.
func ManualRangedAttack(ecs *entity.ECS, a RangedAttack) *Shot {
	if a.Target.Point == nil {
		log.Printf("ManualRangedAttack: target is not a point (shooter %d)", a.Shooter)
		return nil
	}
	body := ecs.Bodies[a.Shooter]
	shooter := ecs.Creatures[a.Shooter]
	if body == nil || shooter == nil {
		return nil
	}
	vp := ecs.World.ViewportSize()
	size := projectileSize(vp)
	center := body.Center()
	target := *a.Target.Point

	angle := math.Atan2(target.Y-center.Y, target.X-center.X)
	base := physics.BaseProjectileSpeed(vp)
	speed := base + base*a.ChargePercent

	power := shooter.AttackPower
	if a.AttackPowerOverride != nil {
		power = *a.AttackPowerOverride
	}

	projectileType := a.ProjectileType
	if projectileType == "" {
		projectileType = types.ProjectileArrow
	}

	return newShot(ecs, shotParams{
		shooter:     a.Shooter,
		body:        component.Body{X: center.X - size.Width/2, Y: center.Y - size.Height/2, Width: size.Width, Height: size.Height},
		speedX:      speed * math.Cos(angle),
		speedY:      speed * math.Sin(angle),
		gravity:     physics.BaseGravity(vp) / 2,
		attackPower: power + power*a.ChargePercent,
		kind:        projectileType,
		theme:       themeOrDefault(a.ColorTheme, types.ThemeRed),
	})
}

// RangedAttackAimedAtCreature решает баллистическую задачу для текущего центра цели.
// Если нужна слишком большая вертикальная скорость, выстрела нет.
func RangedAttackAimedAtCreature(ecs *entity.ECS, a RangedAttack) *Shot {
	if a.Target.Creature == types.NoEntity {
		log.Printf("RangedAttackAimedAtCreature: target is not a creature (shooter %d)", a.Shooter)
		return nil
	}
	body, shooter := ecs.Bodies[a.Shooter], ecs.Creatures[a.Shooter]
	targetBody := ecs.Bodies[a.Target.Creature]
	if body == nil || shooter == nil || targetBody == nil {
		return nil
	}
	vp := ecs.World.ViewportSize()
	base := physics.BaseProjectileSpeed(vp)
	maxSpeed := base + base*a.ChargePercent
	gravity := physics.BaseGravity(vp) / 2

	selfCenter := body.Center()
	targetCenter := targetBody.Center()
	dx := targetCenter.X - selfCenter.X
	dy := targetCenter.Y - selfCenter.Y

	speedX := math.Cos(math.Atan2(dy, dx)) * maxSpeed
	speedY, ok := solveLaunchSpeedY(dx, dy, speedX, gravity, maxSpeed)
	if !ok {
		return nil
	}

	projectileType := a.ProjectileType
	if projectileType == "" {
		projectileType = types.ProjectileArrow
	}
	size := projectileSize(vp)

	return newShot(ecs, shotParams{
		shooter:     a.Shooter,
		body:        component.Body{X: selfCenter.X, Y: body.Y, Width: size.Width, Height: size.Height},
		speedX:      speedX,
		speedY:      speedY,
		gravity:     gravity,
		attackPower: shooter.AttackPower,
		kind:        projectileType,
		theme:       themeOrDefault(a.ColorTheme, types.ThemeRed),
		target:      a.Target.Creature,
		maxSpeed:    maxSpeed,
	})
}

// RangedAttackWithMovementPrediction упреждает цель: за несколько итераций уточняет,
// где окажется её центр к моменту попадания, и стреляет туда. Всегда стрела.
func RangedAttackWithMovementPrediction(ecs *entity.ECS, a RangedAttack) *Shot {
	if a.Target.Creature == types.NoEntity {
		log.Printf("RangedAttackWithMovementPrediction: target is not a creature (shooter %d)", a.Shooter)
		return nil
	}
	body, shooter := ecs.Bodies[a.Shooter], ecs.Creatures[a.Shooter]
	targetBody, target := ecs.Bodies[a.Target.Creature], ecs.Creatures[a.Target.Creature]
	if body == nil || shooter == nil || targetBody == nil || target == nil {
		return nil
	}
	vp := ecs.World.ViewportSize()
	base := physics.BaseProjectileSpeed(vp)
	maxSpeed := base + base*a.ChargePercent
	gravity := physics.BaseGravity(vp) / 2

	selfCenter := body.Center()
	targetCenter := targetBody.Center()
	targetGravity := target.EffectiveGravity()

	predictY := func(t float64) float64 {
		return targetCenter.Y + target.SpeedY*t + 0.5*targetGravity*t*t
	}

	dx := targetCenter.X - selfCenter.X
	dy := targetCenter.Y - selfCenter.Y
	predictionTime := math.Hypot(dx, dy) / maxSpeed

	for i := 0; i < config.PredictionIterations; i++ {
		dx = targetCenter.X + target.SpeedX*predictionTime - selfCenter.X
		dy = predictY(predictionTime) - selfCenter.Y
		speedX := math.Cos(math.Atan2(dy, dx)) * maxSpeed
		predictionTime = math.Abs(dx) / math.Abs(speedX)
	}

	speedX := math.Cos(math.Atan2(dy, dx)) * maxSpeed
	timeToTarget := math.Abs(dx) / math.Abs(speedX)
	dy = predictY(timeToTarget) - selfCenter.Y

	speedY, ok := solveLaunchSpeedY(dx, dy, speedX, gravity, maxSpeed)
	if !ok {
		return nil
	}
	size := projectileSize(vp)

	return newShot(ecs, shotParams{
		shooter:     a.Shooter,
		body:        component.Body{X: selfCenter.X, Y: body.Y, Width: size.Width, Height: size.Height},
		speedX:      speedX,
		speedY:      speedY,
		gravity:     gravity,
		attackPower: shooter.AttackPower,
		kind:        types.ProjectileArrow,
		theme:       themeOrDefault(a.ColorTheme, types.ThemeRed),
	})
}

// HomingRangedAttack — прицельный выстрел самонаводящимся снарядом
func HomingRangedAttack(ecs *entity.ECS, a RangedAttack) *Shot {
	a.ProjectileType = types.ProjectileHoming
	return RangedAttackAimedAtCreature(ecs, a)
}

// solveLaunchSpeedY находит начальную вертикальную скорость из y = vy·t + ½·g·t², t = |dx|/|vx|.
// Слишком крутая (быстрая вниз) траектория отклоняется.
func solveLaunchSpeedY(dx, dy, speedX, gravity, maxSpeed float64) (float64, bool) {
	t := math.Abs(dx) / math.Abs(speedX)
	if t == 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, false
	}
	speedY := (dy - 0.5*gravity*t*t) / t
	if speedY > maxSpeed*config.MaxSpeedYFactor {
		return 0, false
	}
	return speedY, true
}

func projectileSize(vp geom.Size) geom.Size {
	scale := physics.BaseUnitSize(vp) / config.ProjectileSpriteBase
	return geom.Size{Width: config.ProjectileWidthPx * scale, Height: config.ProjectileHeightPx * scale}
}

func themeOrDefault(t, def types.ColorTheme) types.ColorTheme {
	if t == "" {
		return def
	}
	return t
}

type shotParams struct {
	shooter     types.EntityID
	body        component.Body
	speedX      float64
	speedY      float64
	gravity     float64
	attackPower float64
	kind        types.ProjectileType
	theme       types.ColorTheme
	target      types.EntityID // Только для самонаведения
	maxSpeed    float64
}

// newShot собирает снаряд нужного варианта
func newShot(ecs *entity.ECS, p shotParams) *Shot {
	proj := &component.Projectile{
		Kind:            component.KindBallistic,
		Type:            p.kind,
		ColorTheme:      p.theme,
		CreatedBy:       p.shooter,
		SpeedX:          p.speedX,
		SpeedY:          p.speedY,
		Gravity:         p.gravity,
		AttackPower:     p.attackPower,
		Mass:            1,
		DespawnDuration: config.ProjectileDespawn,
	}
	body := p.body

	switch p.kind {
	case types.ProjectileHoming:
		if p.target == types.NoEntity {
			break
		}
		proj.Kind = component.KindHoming
		proj.Homing = &component.Homing{
			Target:           p.target,
			MaxSpeed:         p.maxSpeed,
			Agility:          config.HomingAgility,
			CreatedAt:        ecs.World.Now,
			AccelerationTime: config.HomingAcceleration,
		}
	case types.ProjectileBomb:
		unit := physics.BaseUnitSize(ecs.World.ViewportSize())
		proj.Kind = component.KindBomb
		proj.Mass = config.BombMass
		proj.Bomb = &component.Bomb{
			ExplosionSize:      config.BombExplosionSize,
			DetonationDuration: config.BombDetonationDuration,
		}
		body.Width, body.Height = unit/2, unit/2
	}

	return &Shot{Body: body, Projectile: proj}
}
