package component

import (
	"time"

	"go-adventurer/internal/types"
)

// Creature — живое существо: искатель приключений или монстр
type Creature struct {
	Name string

	MaxSpeedX          float64
	SpeedX             float64
	SpeedY             float64 // Отрицательная — вверх
	AccelerationFactor float64
	Gravity            float64

	DirectionX    types.Direction
	DirectionY    types.DirectionY
	LastDirection types.Direction // Направление до последней смены
	Movement      types.MovementType

	Hitpoints    int
	MaxHitpoints int
	Armor        float64 // 0..1, доля поглощаемого урона

	AttackPower       float64
	AttackCooldown    time.Duration
	AttackDuration    time.Duration
	LastAttack        time.Time
	AttackChargeStart time.Time // Нулевое значение — заряд не начат

	JumpCount         int
	MaxJumpCount      int
	PerfectDoubleJump bool

	TemporaryInvincibility time.Time // Неуязвим до этого момента
	TimeOfDeath            time.Time // Выставляется один раз
	LastAction             time.Time

	Platform     types.EntityID // Платформа под ногами (не владеет)
	LastPlatform types.EntityID // Последняя ненулевая платформа

	DealsContactDamage bool
}

// IsDead — хитпоинты закончились
func (c *Creature) IsDead() bool {
	return c.Hitpoints <= 0
}

// IsAlive — хитпоинты остались
func (c *Creature) IsAlive() bool {
	return c.Hitpoints > 0
}

// IsTemporaryInvincible — действует ли окно неуязвимости
func (c *Creature) IsTemporaryInvincible(now time.Time) bool {
	return c.TemporaryInvincibility.After(now)
}

// IsAttacking — идёт ли анимация атаки
func (c *Creature) IsAttacking(now time.Time) bool {
	return now.Sub(c.LastAttack) < c.AttackDuration
}

// CanAttack — не мёртв, не в анимации и кулдаун прошёл
func (c *Creature) CanAttack(now time.Time) bool {
	if c.IsAttacking(now) || c.IsDead() {
		return false
	}
	return now.Sub(c.LastAttack) > c.AttackCooldown
}

// SetLastAttack отмечает момент атаки
func (c *Creature) SetLastAttack(t time.Time) {
	c.LastAttack = t
	c.SetLastAction(t)
}

// SetLastAction двигает отметку последнего действия только вперёд
func (c *Creature) SetLastAction(t time.Time) {
	if t.After(c.LastAction) {
		c.LastAction = t
	}
}

// Cooldown — оставшееся время перезарядки
type Cooldown struct {
	Remaining  time.Duration
	Total      time.Duration
	Percentage float64
}

// RemainingAttackCooldown возвращает остаток кулдауна атаки
func (c *Creature) RemainingAttackCooldown(now time.Time) Cooldown {
	return NewCooldown(c.LastAttack, c.AttackCooldown, now)
}

// NewCooldown считает остаток для таймера, запущенного в last
func NewCooldown(last time.Time, total time.Duration, now time.Time) Cooldown {
	remaining := last.Add(total).Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	cd := Cooldown{Remaining: remaining, Total: total}
	if total > 0 {
		cd.Percentage = float64(remaining) / float64(total)
	}
	return cd
}

// SetDirectionX меняет направление и запоминает предыдущее
func (c *Creature) SetDirectionX(d types.Direction) {
	if c.DirectionX == d {
		return
	}
	c.LastDirection = c.DirectionX
	c.DirectionX = d
}

// ReverseDirectionX разворачивает существо, "none" остаётся "none"
func (c *Creature) ReverseDirectionX() {
	switch c.DirectionX {
	case types.DirectionLeft:
		c.DirectionX = types.DirectionRight
	case types.DirectionRight:
		c.DirectionX = types.DirectionLeft
	}
}

// SetPlatform запоминает текущую платформу, сохраняя предыдущую ненулевую
func (c *Creature) SetPlatform(id types.EntityID) {
	if c.Platform != types.NoEntity {
		c.LastPlatform = c.Platform
	}
	c.Platform = id
}

// PlatformID возвращает текущую платформу, при fallback — последнюю известную
func (c *Creature) PlatformID(fallbackToLast bool) types.EntityID {
	if fallbackToLast && c.Platform == types.NoEntity {
		return c.LastPlatform
	}
	return c.Platform
}

// CanJump — остались ли прыжки
func (c *Creature) CanJump() bool {
	return c.JumpCount < c.MaxJumpCount
}

// IsJumping — движется вверх
func (c *Creature) IsJumping() bool {
	return c.SpeedY < 0
}

// IsFalling — движется вниз
func (c *Creature) IsFalling() bool {
	return c.SpeedY > 0
}

// EffectiveGravity — на платформе гравитация не действует
func (c *Creature) EffectiveGravity() float64 {
	if c.Platform != types.NoEntity {
		return 0
	}
	return c.Gravity
}

// ToggleCrouch переключает приседание
func (c *Creature) ToggleCrouch(now time.Time) {
	if c.Movement == types.MovementCrouching {
		c.Movement = types.MovementWalking
	} else {
		c.Movement = types.MovementCrouching
	}
	c.SetLastAction(now)
}
