// internal/ui/indicator.go
package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// whitePixel создаётся при первой отрисовке
var whitePixel *ebiten.Image

// CooldownIndicator — круг способности: сектор закрашивается по мере перезарядки
type CooldownIndicator struct {
	X, Y     float32
	Radius   float32
	Label    string
	LastUsed time.Time
}

func NewCooldownIndicator(x, y, radius float32, label string) *CooldownIndicator {
	return &CooldownIndicator{X: x, Y: y, Radius: radius, Label: label}
}

// ReadyShare — доля готовности от 0 до 1
func ReadyShare(remaining, total time.Duration) float64 {
	if total <= 0 || remaining <= 0 {
		return 1
	}
	return 1 - min(1, float64(remaining)/float64(total))
}

// Draw отрисовывает индикатор. lastUsed — момент применения, от него идёт "вспухание".
func (i *CooldownIndicator) Draw(screen *ebiten.Image, face font.Face, now, lastUsed time.Time, remaining, total time.Duration, ready color.RGBA) {
	currentRadius := i.Radius * float32(PulseScale(now.Sub(lastUsed)))

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, color.RGBA{40, 40, 40, 200}, true)

	share := ReadyShare(remaining, total)
	if share >= 1 {
		vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, ready, true)
	} else if share > 0 {
		var path vector.Path
		start := float32(-1.5707964) // от "двенадцати часов" по часовой
		path.MoveTo(i.X, i.Y)
		path.Arc(i.X, i.Y, currentRadius, start, start+float32(share)*2*3.1415927, vector.Clockwise)
		path.Close()
		fillPath(screen, &path, ready)
	}
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)

	bounds := text.BoundString(face, i.Label)
	text.Draw(screen, i.Label, face, int(i.X)-bounds.Dx()/2, int(i.Y)+bounds.Dy()/2, color.White)
}

func fillPath(screen *ebiten.Image, path *vector.Path, c color.Color) {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for j := range vertices {
		vertices[j].SrcX, vertices[j].SrcY = 1, 1
		vertices[j].ColorR = float32(r) / 0xffff
		vertices[j].ColorG = float32(g) / 0xffff
		vertices[j].ColorB = float32(b) / 0xffff
		vertices[j].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
