// Package physics содержит чистые функции кинематики. Все базовые величины
// выводятся из размера вьюпорта, поэтому игра одинаково ведёт себя на любом экране.
package physics

import (
	"math"

	"go-adventurer/internal/config"
	"go-adventurer/pkg/geom"
)

// BaseUnitSize — размер базовой клетки (ширина игрока)
func BaseUnitSize(viewport geom.Size) float64 {
	return viewport.Width / config.UnitSizeDivisor
}

// BaseUnitSpeed — базовая горизонтальная скорость существ
func BaseUnitSpeed(viewport geom.Size) float64 {
	return viewport.Width / config.UnitSpeedDivisor
}

// BaseProjectileSpeed — скорость снаряда без заряда
func BaseProjectileSpeed(viewport geom.Size) float64 {
	return viewport.Width / config.ProjectileSpeedDivisor
}

// BaseGravity — ускорение свободного падения за номинальный тик
func BaseGravity(viewport geom.Size) float64 {
	return viewport.Height / config.GravityDivisor
}

// TerminalVelocity — предел скорости падения (только вниз)
func TerminalVelocity(viewport geom.Size) float64 {
	return viewport.Height / config.TerminalVelocityDiv
}

// BaseJumpSpeed — импульс прыжка с номером jumpCount. Отрицательный, то есть вверх;
// каждый следующий прыжок слабее на десятую часть, начиная с пятого — одинаково.
func BaseJumpSpeed(viewport geom.Size, jumpCount int) float64 {
	base := -viewport.Height / config.JumpSpeedDivisor
	increment := base / 10
	return base + float64(min(config.JumpIndexCap, jumpCount))*increment
}

// PeakHeight — высота подъёма с начальной скоростью v при гравитации g: v·t + ½·g·t², t = |v/g|
func PeakHeight(v, g float64) float64 {
	t := math.Abs(v / g)
	return v*t + 0.5*g*t*t
}

// MaxJumpReach возвращает предельную высоту при оставшихся прыжках:
// два прыжка складываются, иначе считается только первый импульс.
func MaxJumpReach(viewport geom.Size, gravity float64, jumpCount int) float64 {
	if config.MaxJumpCount-jumpCount == 2 {
		return math.Abs(PeakHeight(BaseJumpSpeed(viewport, 0), gravity)) +
			math.Abs(PeakHeight(BaseJumpSpeed(viewport, 1), gravity))
	}
	return math.Abs(PeakHeight(BaseJumpSpeed(viewport, 0), gravity))
}

// MaxJumpTime — время полёта одного прыжка туда и обратно
func MaxJumpTime(viewport geom.Size, gravity float64) float64 {
	return math.Abs(-viewport.Height/config.JumpSpeedDivisor/gravity) * 2
}

// Jumper — то, что нужно знать о прыгающем существе
type Jumper struct {
	Body      geom.Rect
	SpeedY    float64
	MaxSpeedX float64
	Gravity   float64
	JumpCount int
	CanJump   bool
}

// CanJumpToPlatform решает, достанет ли существо до платформы прыжком.
// Уже летящее вверх существо прыгать не начинает.
func CanJumpToPlatform(j Jumper, platform geom.Rect, viewport geom.Size) bool {
	if !j.CanJump || j.SpeedY < 0 {
		return false
	}

	heightDifference := j.Body.Y - platform.Y
	if heightDifference > MaxJumpReach(viewport, j.Gravity, j.JumpCount) {
		return false
	}

	centerX := j.Body.X + j.Body.Width/2
	horizontalDistance := math.Min(
		math.Abs(platform.X-centerX),
		math.Abs(platform.X+platform.Width-centerX),
	)
	timeToReach := math.Abs(horizontalDistance / j.MaxSpeedX)

	return timeToReach <= MaxJumpTime(viewport, j.Gravity)*config.JumpReachMargin
}

// CanDropToPlatform — можно ли спрыгнуть с current на более низкую target,
// шагнув за край на ширину существа.
func CanDropToPlatform(width float64, current, target geom.Rect) bool {
	if current.Y >= target.Y {
		return false
	}
	leftEdge := current.X - width
	rightEdge := current.X + current.Width + width
	within := func(x float64) bool {
		return x >= target.X && x <= target.X+target.Width
	}
	return within(leftEdge) || within(rightEdge)
}

// MaxJumpHeight численно интегрирует все оставшиеся прыжки с шагом 1/100 тика
// и возвращает высоту подъёма центра существа.
func MaxJumpHeight(viewport geom.Size, gravity float64, jumpCount int, height float64) float64 {
	const interval = 1.0 / 100
	jumpHeight := 0.0
	for jc := jumpCount; jc < config.MaxJumpCount; jc++ {
		speed := BaseJumpSpeed(viewport, jc)
		for speed < 0 {
			jumpHeight += -speed * interval
			speed += gravity * interval
		}
	}
	return jumpHeight - height/2
}

// LandingTolerance — насколько глубоко нижний угол может уйти под верх платформы
func LandingTolerance(speedY float64) float64 {
	return math.Max(config.LandingTolerance, speedY)
}

// IsStandingOn — стоит ли хитбокс на платформе при вертикальной скорости speedY.
// Движущееся вверх не приземляется.
func IsStandingOn(h geom.Hitbox, speedY float64, platform geom.Rect) bool {
	if speedY < 0 {
		return false
	}
	lowest := h.Lowest()
	if lowest.Y < platform.Y || lowest.Y > platform.Y+LandingTolerance(speedY) {
		return false
	}
	return h.BottomRight.X >= platform.X && h.BottomLeft.X <= platform.X+platform.Width
}
