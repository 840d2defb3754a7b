// internal/event/types.go
package event

import "go-adventurer/internal/types"

const (
	DamageTaken       EventType = "DamageTaken"       // Существо получило урон
	DamageDodged      EventType = "DamageDodged"      // Урон отменён уворотом
	CreatureDied      EventType = "CreatureDied"      // Хитпоинты дошли до нуля
	ProjectileSpawned EventType = "ProjectileSpawned" // Снаряд добавлен в игру
	BombDetonated     EventType = "BombDetonated"     // Бомба взорвалась
	AmmoLooted        EventType = "AmmoLooted"        // Игрок подобрал снаряд
	PowerupCollected  EventType = "PowerupCollected"
	LevelStarted      EventType = "LevelStarted"
	LevelUp           EventType = "LevelUp" // Игрок вошёл в дверь
	GameWon           EventType = "GameWon"
	GameOver          EventType = "GameOver"
)

// DamageData — данные событий урона
type DamageData struct {
	Target types.EntityID
	Amount int
}

// EntityData — событие про одну сущность
type EntityData struct {
	ID types.EntityID
}

// LevelData — событие смены уровня
type LevelData struct {
	Index int
	Name  string
}
