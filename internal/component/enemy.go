package component

import (
	"time"

	"go-adventurer/internal/types"
)

// Monster представляет вражескую сущность и состояние её "мозга".
type Monster struct {
	Species       types.MonsterType
	Intelligence  types.Intelligence
	AttackMode    types.AttackMode
	RangedAttack  types.MonsterRangedAttack
	CanBeJumpedOn bool

	LastThinkingBreak     time.Time
	ThinkingBreakInterval time.Duration
	ThinkingBreakDuration time.Duration
	LockedTarget          types.EntityID // Цель погони (не владеет)
}

// IsThinking — монстр на паузе для размышлений
func (m *Monster) IsThinking(now time.Time) bool {
	return now.Sub(m.LastThinkingBreak) < m.ThinkingBreakDuration
}

// IsDoneThinking — пора пересмотреть решение
func (m *Monster) IsDoneThinking(now time.Time) bool {
	return now.Sub(m.LastThinkingBreak) > m.ThinkingBreakInterval
}
