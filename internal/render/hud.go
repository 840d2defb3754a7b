package render

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-adventurer/internal/config"
	"go-adventurer/internal/system"
	"go-adventurer/internal/types"
)

// HUD — то, что рисуется поверх мира и не берётся из ECS
type HUD struct {
	LevelName     string
	ChargePercent float64
}

var abilityOrder = []types.AbilityName{types.AbilityGuidedArrow, types.AbilityBomb}

// DrawHUD рисует здоровье, колчан, способности и итог игры
func (r *Renderer) DrawHUD(screen *ebiten.Image, hud HUD) {
	world := r.ecs.World
	id, c, ok := r.ecs.Adventurer()
	if !ok {
		return
	}
	adv := r.ecs.Adventurers[id]

	const barWidth = 200
	share := float32(c.Hitpoints) / float32(max(1, c.MaxHitpoints))
	vector.DrawFilledRect(screen, 10, 10, barWidth, 14, config.TextDarkColor, false)
	vector.DrawFilledRect(screen, 10, 10, barWidth*share, 14, config.HealthBarColor, false)
	text.Draw(screen, system.HitpointsText(c), r.face, 14, 21, config.TextLightColor)

	lines := []string{
		hud.LevelName,
		fmt.Sprintf("Ammo: %d/%d", len(adv.Ammo), adv.MaxAmmo),
		fmt.Sprintf("Kills: %d", adv.Kills),
	}
	for i, name := range abilityOrder {
		cd := adv.AbilityCooldown(name, world.Now)
		status := "ready"
		if cd.Remaining > 0 {
			status = fmt.Sprintf("%.1fs", cd.Remaining.Seconds())
		}
		lines = append(lines, fmt.Sprintf("[%d] %s: %s", i+1, name, status))
	}
	for i, line := range lines {
		text.Draw(screen, line, r.face, 10, 44+16*i, config.TextDarkColor)
	}

	if hud.ChargePercent > 0 {
		vector.DrawFilledRect(screen, 10, 130, float32(barWidth*hud.ChargePercent), 6, config.DoorOpenColor, false)
	}

	switch {
	case world.GameWon:
		r.DrawOverlay(screen, []string{"You won!", "Press R to play again"})
	case world.GameOver:
		r.DrawOverlay(screen, []string{"Game over", fmt.Sprintf("Kills: %d", adv.Kills), "Press R to restart"})
	}
}

// DrawOverlay затемняет экран и пишет строки по центру
func (r *Renderer) DrawOverlay(screen *ebiten.Image, lines []string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseOverlayColor, false)

	const lineHeight = 18
	top := b.Dy()/2 - len(lines)*lineHeight/2
	for i, line := range lines {
		bounds := text.BoundString(r.face, line)
		x := b.Dx()/2 - bounds.Dx()/2
		text.Draw(screen, line, r.face, x, top+i*lineHeight, config.TextLightColor)
	}
}

// TipsLines — экран между уровнями
func TipsLines(levelName string, tips []string) []string {
	lines := []string{strings.ToUpper(levelName), ""}
	lines = append(lines, tips...)
	return append(lines, "", "Press P or Enter to start")
}
