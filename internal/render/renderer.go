// internal/render/renderer.go
package render

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/pkg/geom"
	colors "go-adventurer/pkg/render"
)

// Renderer рисует мир прямоугольниками поверх неба. Всё в экранных координатах:
// из мировых вычитается положение камеры.
type Renderer struct {
	ecs  *entity.ECS
	face font.Face
}

func NewRenderer(ecs *entity.ECS) *Renderer {
	return &Renderer{ecs: ecs, face: basicfont.Face7x13}
}

// Draw рисует один кадр мира
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	r.drawPlatforms(screen)
	r.drawDoors(screen)
	r.drawPowerups(screen)
	r.drawCreatures(screen)
	r.drawProjectiles(screen)
	r.drawFloatingTexts(screen)
}

func (r *Renderer) toScreen(p geom.Point) (float32, float32) {
	vp := r.ecs.World.Viewport
	return float32(p.X - vp.X), float32(p.Y - vp.Y)
}

func (r *Renderer) fillBody(screen *ebiten.Image, b *component.Body, c color.Color) {
	x, y := r.toScreen(geom.Point{X: b.X, Y: b.Y})
	vector.DrawFilledRect(screen, x, y, float32(b.Width), float32(b.Height), c, false)
}

func (r *Renderer) drawPlatforms(screen *ebiten.Image) {
	for _, id := range r.ecs.PlatformIDs() {
		p, body := r.ecs.Platforms[id], r.ecs.Bodies[id]
		c, ok := config.PlatformColors[string(p.Style)]
		if !ok {
			c = config.PlatformColors[string(types.StyleDirt)]
		}
		r.fillBody(screen, body, c)
		// Тёмная кромка сверху
		x, y := r.toScreen(geom.Point{X: body.X, Y: body.Y})
		vector.DrawFilledRect(screen, x, y, float32(body.Width), 4, colors.DarkenColor(c), false)

		if p.Label != "" && r.ecs.World.Debug {
			text.Draw(screen, p.Label, r.face, int(x)+4, int(y)+16, config.TextLightColor)
		}
	}
}

func (r *Renderer) drawDoors(screen *ebiten.Image) {
	for _, id := range r.ecs.DoorIDs() {
		c := config.DoorClosedColor
		if r.ecs.Doors[id].Open {
			c = config.DoorOpenColor
		}
		r.fillBody(screen, r.ecs.Bodies[id], c)
	}
}

func (r *Renderer) drawPowerups(screen *ebiten.Image) {
	now := r.ecs.World.Now
	for _, id := range r.ecs.PowerupIDs() {
		if r.ecs.Powerups[id].IsActivated(now) {
			continue
		}
		r.fillBody(screen, r.ecs.Bodies[id], config.PowerupColor)
	}
}

func (r *Renderer) drawCreatures(screen *ebiten.Image) {
	now := r.ecs.World.Now
	for _, id := range r.ecs.CreatureIDs() {
		c, body := r.ecs.Creatures[id], r.ecs.Bodies[id]
		fill := config.MonsterColor
		if id == r.ecs.World.AdventurerID {
			fill = config.AdventurerColor
		}
		if m, ok := r.ecs.Monsters[id]; ok {
			if m.LockedTarget != types.NoEntity {
				fill = config.LockedColor
			} else if m.Species != types.MonsterGoblin && m.Species != types.MonsterSkeleton {
				fill = colors.Grayscale(fill)
			}
		}
		switch {
		case c.IsDead():
			fill = colors.Fade(fill, 0.4)
		case c.IsTemporaryInvincible(now):
			phase := float64(now.UnixMilli()%250) / 250
			fill = colors.Fade(fill, math.Sin(phase*math.Pi))
		}
		r.fillBody(screen, body, fill)

		if _, isMonster := r.ecs.Monsters[id]; isMonster && c.MaxHitpoints > 0 {
			x, y := r.toScreen(geom.Point{X: body.X, Y: body.Y})
			share := float32(c.Hitpoints) / float32(c.MaxHitpoints)
			vector.DrawFilledRect(screen, x, y-10, float32(body.Width)*share, 5, config.HealthBarColor, false)
		}
	}
}

// drawProjectiles рисует повёрнутый прямоугольник по углам хитбокса
func (r *Renderer) drawProjectiles(screen *ebiten.Image) {
	now := r.ecs.World.Now
	unit := physics.BaseUnitSize(r.ecs.World.ViewportSize())
	for _, id := range r.ecs.ProjectileIDs() {
		p, body := r.ecs.Projectiles[id], r.ecs.Bodies[id]
		if p.OutOfBounds {
			continue
		}
		c, ok := config.ThemeColors[string(p.ColorTheme)]
		if !ok {
			c = config.ThemeColors[string(types.ThemeRed)]
		}

		if p.Bomb != nil && !p.Bomb.Detonated.IsZero() {
			if now.Sub(p.Bomb.Detonated) < p.Bomb.DetonationDuration {
				cx, cy := r.toScreen(body.Center())
				vector.DrawFilledCircle(screen, cx, cy, float32(p.Bomb.ExplosionSize*unit), config.ExplosionColor, true)
			}
			continue
		}

		if !p.DespawnTime.IsZero() {
			left := p.DespawnTime.Sub(now)
			c = colors.Fade(c, float64(left)/float64(max(p.DespawnDuration, time.Millisecond)))
		}
		r.fillQuad(screen, body.Hitbox(), c)
	}
}

func (r *Renderer) fillQuad(screen *ebiten.Image, h geom.Hitbox, c color.RGBA) {
	var path vector.Path
	x, y := r.toScreen(h.TopLeft)
	path.MoveTo(x, y)
	for _, corner := range []geom.Point{h.TopRight, h.BottomRight, h.BottomLeft} {
		x, y = r.toScreen(corner)
		path.LineTo(x, y)
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := c.RGBA()
	for i := range vertices {
		vertices[i].SrcX, vertices[i].SrcY = 1, 1
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) drawFloatingTexts(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(r.ecs.FloatingTexts) {
		body, ok := r.ecs.Bodies[id]
		if !ok {
			continue
		}
		x, y := r.toScreen(geom.Point{X: body.X, Y: body.Y})
		for i, entry := range r.ecs.FloatingTexts[id].Entries {
			text.Draw(screen, entry.Text, r.face, int(x), int(y)-16-14*i, entry.Color)
		}
	}
}
