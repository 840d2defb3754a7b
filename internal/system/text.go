// internal/system/text.go
package system

import "go-adventurer/internal/entity"

// TextSystem убирает истёкшие всплывающие надписи
type TextSystem struct {
	ecs *entity.ECS
}

func NewTextSystem(ecs *entity.ECS) *TextSystem {
	return &TextSystem{ecs: ecs}
}

func (s *TextSystem) Update() {
	for _, texts := range s.ecs.FloatingTexts {
		texts.Prune(s.ecs.World.Now)
	}
}
