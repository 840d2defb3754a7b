package component

import (
	"time"

	"go-adventurer/internal/types"
)

// ProjectileKind выбирает поведение снаряда в таблице поведений ProjectileSystem
type ProjectileKind int

const (
	KindBallistic ProjectileKind = iota
	KindHoming
	KindBomb
)

// Projectile представляет летящий (или застрявший) снаряд.
type Projectile struct {
	Kind       ProjectileKind
	Type       types.ProjectileType
	ColorTheme types.ColorTheme
	CreatedBy  types.EntityID // Создатель не получает урон и может подобрать снаряд

	SpeedX      float64
	SpeedY      float64
	Gravity     float64
	AttackPower float64
	Mass        float64

	OutOfBounds      bool
	AttachedPlatform types.EntityID // Взаимоисключающие привязки
	AttachedCreature types.EntityID
	DespawnDuration  time.Duration
	DespawnTime      time.Time      // Нулевое значение — таймер не запущен
	MissedCreature   types.EntityID // Увернувшийся в этом полёте

	Homing *Homing // Только для KindHoming
	Bomb   *Bomb   // Только для KindBomb
}

// IsAttached — снаряд больше не летит свободно
func (p *Projectile) IsAttached() bool {
	return p.AttachedPlatform != types.NoEntity || p.AttachedCreature != types.NoEntity
}

// IsFree — летит свободно и ещё в игре
func (p *Projectile) IsFree() bool {
	return !p.IsAttached() && !p.OutOfBounds
}

// Homing — состояние самонаведения
type Homing struct {
	Target           types.EntityID
	MaxSpeed         float64
	Agility          float64
	CreatedAt        time.Time
	AccelerationTime time.Duration
	ImpactTime       time.Time // Нулевое значение — попадания ещё не было
	DisabledUntil    time.Time
}

// Bomb — состояние бомбы
type Bomb struct {
	ExplosionSize      float64 // Радиус в базовых единицах
	Detonated          time.Time
	DetonationDuration time.Duration
}
