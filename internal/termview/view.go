// Package termview рисует ту же симуляцию символами в терминале.
// Одна клетка экрана покрывает прямоугольник вьюпорта, пропорционально размеру терминала.
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-adventurer/internal/entity"
	"go-adventurer/internal/system"
	"go-adventurer/internal/types"
	"go-adventurer/pkg/geom"
)

var (
	stylePlatform   = tcell.StyleDefault.Foreground(tcell.PaletteColor(51))
	styleDoorClosed = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDoorOpen   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePowerup    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAdventurer = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleMonster    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleDead       = tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleExplosion  = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
)

var monsterGlyphs = map[types.MonsterType]rune{
	types.MonsterGoblin:   'g',
	types.MonsterSkeleton: 's',
	types.MonsterArcher:   'a',
	types.MonsterOrc:      'o',
	types.MonsterTroll:    'T',
}

// View — отрисовка мира в tcell.Screen
type View struct {
	screen tcell.Screen
	ecs    *entity.ECS
}

func NewView(screen tcell.Screen, ecs *entity.ECS) *View {
	return &View{screen: screen, ecs: ecs}
}

// Scale — сколько клеток приходится на единицу мира по каждой оси
func (v *View) Scale() (float64, float64) {
	w, h := v.screen.Size()
	vp := v.ecs.World.Viewport
	if vp.Width == 0 || vp.Height == 0 {
		return 0, 0
	}
	return float64(w) / vp.Width, float64(h) / vp.Height
}

// CellToScreen переводит клетку терминала в пиксели вьюпорта
func (v *View) CellToScreen(col, row int) (float64, float64) {
	sx, sy := v.Scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// Draw рисует кадр: мир, затем строку состояния и надписи
func (v *View) Draw(levelName string) {
	v.screen.Clear()

	for _, id := range v.ecs.PlatformIDs() {
		v.fill(v.ecs.Bodies[id].Rect(), '=', stylePlatform)
	}
	for _, id := range v.ecs.DoorIDs() {
		glyph, style := '#', styleDoorClosed
		if v.ecs.Doors[id].Open {
			glyph, style = '[', styleDoorOpen
		}
		v.fill(v.ecs.Bodies[id].Rect(), glyph, style)
	}
	now := v.ecs.World.Now
	for _, id := range v.ecs.PowerupIDs() {
		if !v.ecs.Powerups[id].IsActivated(now) {
			v.fill(v.ecs.Bodies[id].Rect(), '+', stylePowerup)
		}
	}
	v.drawCreatures()
	v.drawProjectiles()
	v.drawHUD(levelName)

	v.screen.Show()
}

func (v *View) drawCreatures() {
	for _, id := range v.ecs.CreatureIDs() {
		c := v.ecs.Creatures[id]
		glyph, style := '@', styleAdventurer
		if m, ok := v.ecs.Monsters[id]; ok {
			glyph, style = 'm', styleMonster
			if g, known := monsterGlyphs[m.Species]; known {
				glyph = g
			}
		}
		if c.IsDead() {
			style = styleDead
		}
		v.fill(v.ecs.Bodies[id].Rect(), glyph, style)
	}
}

func (v *View) drawProjectiles() {
	now := v.ecs.World.Now
	for _, id := range v.ecs.ProjectileIDs() {
		p, body := v.ecs.Projectiles[id], v.ecs.Bodies[id]
		if p.OutOfBounds {
			continue
		}
		if p.Bomb != nil && !p.Bomb.Detonated.IsZero() {
			if now.Sub(p.Bomb.Detonated) < p.Bomb.DetonationDuration {
				v.fill(body.Rect(), '%', styleExplosion)
			}
			continue
		}
		glyph := '-'
		if math.Abs(p.SpeedY) > math.Abs(p.SpeedX) {
			glyph = '|'
		}
		if p.Bomb != nil {
			glyph = 'o'
		}
		col, row := v.toCell(body.Center())
		v.screen.SetContent(col, row, glyph, nil, styleProjectile)
	}
}

func (v *View) drawHUD(levelName string) {
	w, _ := v.screen.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}

	line := levelName
	if id, c, ok := v.ecs.Adventurer(); ok {
		adv := v.ecs.Adventurers[id]
		line = fmt.Sprintf("%s | %s | ammo %d/%d | kills %d", levelName, system.HitpointsText(c), len(adv.Ammo), adv.MaxAmmo, adv.Kills)
	}
	switch {
	case v.ecs.World.GameWon:
		line += " | YOU WON (r: restart)"
	case v.ecs.World.GameOver:
		line += " | GAME OVER (r: restart)"
	case v.ecs.World.Paused:
		line += " | paused (p: continue)"
	}
	v.text(0, 0, line, styleHUD)

	for _, id := range entity.SortedIDs(v.ecs.FloatingTexts) {
		body, ok := v.ecs.Bodies[id]
		if !ok {
			continue
		}
		col, row := v.toCell(geom.Point{X: body.X, Y: body.Y})
		for i, entry := range v.ecs.FloatingTexts[id].Entries {
			v.text(col, row-1-i, entry.Text, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(entry.Color.R), int32(entry.Color.G), int32(entry.Color.B))))
		}
	}
}

func (v *View) text(col, row int, s string, style tcell.Style) {
	if row < 0 {
		return
	}
	for i, r := range []rune(s) {
		v.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (v *View) toCell(p geom.Point) (int, int) {
	sx, sy := v.Scale()
	vp := v.ecs.World.Viewport
	return int(math.Floor((p.X - vp.X) * sx)), int(math.Floor((p.Y - vp.Y) * sy))
}

// fill закрашивает клетки, которые задевает прямоугольник. Даже крошечное тело занимает одну клетку.
func (v *View) fill(r geom.Rect, glyph rune, style tcell.Style) {
	sx, sy := v.Scale()
	vp := v.ecs.World.Viewport
	x0 := int(math.Floor((r.X - vp.X) * sx))
	y0 := int(math.Floor((r.Y - vp.Y) * sy))
	x1 := max(x0+1, int(math.Ceil((r.X+r.Width-vp.X)*sx)))
	y1 := max(y0+1, int(math.Ceil((r.Y+r.Height-vp.Y)*sy)))

	w, h := v.screen.Size()
	for y := max(0, y0); y < min(h, y1); y++ {
		for x := max(0, x0); x < min(w, x1); x++ {
			v.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}
