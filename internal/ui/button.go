// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-adventurer/pkg/geom"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.Black,
		BgColor:    color.RGBA{200, 200, 200, 255},
		HoverColor: color.RGBA{130, 130, 130, 255},
		Face:       face,
	}
}

// Contains — попадает ли точка экрана в кнопку
func (b *Button) Contains(x, y float64) bool {
	return x >= b.Rect.X && x <= b.Rect.X+b.Rect.Width &&
		y >= b.Rect.Y && y <= b.Rect.Y+b.Rect.Height
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY float64) {
	bgColor := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bgColor = b.HoverColor
	}

	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.Width), float32(b.Rect.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{80, 80, 80, 255}, false)

	bounds := text.BoundString(b.Face, b.Text)
	textX := int(b.Rect.X + (b.Rect.Width-float64(bounds.Dx()))/2)
	textY := int(b.Rect.Y+(b.Rect.Height+float64(bounds.Dy()))/2) - 1
	text.Draw(screen, b.Text, b.Face, textX, textY, b.TextColor)
}
