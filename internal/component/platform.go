package component

import (
	"time"

	"go-adventurer/internal/types"
)

// Platform — неподвижная прямоугольная опора. Геометрия лежит в Body.
type Platform struct {
	Style           types.PlatformStyle
	Friction        float64 // Множитель ускорения
	SpeedMultiplier float64 // Множитель перемещения
	Label           string
}

// Door — выход с уровня, открывается когда живых монстров не осталось
type Door struct {
	Name string
	Open bool
}

// Powerup — бонус, срабатывает при касании игроком
type Powerup struct {
	Name          string
	Kind          types.PowerupKind
	HealingAmount int
	Item          *Item
	Duration      time.Duration // Ноль — мгновенный эффект
	Activated     bool
	ActivatedAt   time.Time
	BaseY         float64 // Y без покачивания
}

// IsActivated — эффект уже применён и ещё действует
func (p *Powerup) IsActivated(now time.Time) bool {
	if !p.Activated || p.ActivatedAt.IsZero() {
		return false
	}
	return p.Duration == 0 || now.Sub(p.ActivatedAt) < p.Duration
}
