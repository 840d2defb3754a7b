// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы, после клика коротко "вспухает"
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

// PulseScale — множитель размера через elapsed после клика, затухает к 1
func PulseScale(elapsed time.Duration) float64 {
	return 1.0 + 0.3*math.Exp(-elapsed.Seconds()*8)
}

func (b *PauseButton) Draw(screen *ebiten.Image, now time.Time) {
	rectSize := b.Size * float32(PulseScale(now.Sub(b.LastClickTime)))

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-rectSize, b.Y-rectSize*1.2)
		path.LineTo(b.X-rectSize, b.Y+rectSize*1.2)
		path.LineTo(b.X+rectSize, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, color.White, false)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, color.White, false)
}

// IsClicked — попал ли клик в круг кнопки
func (b *PauseButton) IsClicked(x, y float64) bool {
	dx, dy := x-float64(b.X), y-float64(b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

func (b *PauseButton) Toggle(now time.Time) {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = now
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
