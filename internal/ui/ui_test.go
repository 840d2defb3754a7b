package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"go-adventurer/pkg/geom"
)

func TestButtonContains(t *testing.T) {
	b := NewButton(geom.Rect{X: 100, Y: 50, Width: 200, Height: 40}, "Start", basicfont.Face7x13)

	assert.True(t, b.Contains(100, 50))
	assert.True(t, b.Contains(300, 90))
	assert.False(t, b.Contains(99, 60))
	assert.False(t, b.Contains(150, 91))
}

func TestPauseButtonToggle(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	b := NewPauseButton(500, 40, 10, nil, nil)

	b.Toggle(now)
	assert.True(t, b.IsPaused)
	assert.Equal(t, now, b.LastClickTime)

	b.SetPaused(false)
	assert.False(t, b.IsPaused)

	assert.True(t, b.IsClicked(510, 45))
	assert.False(t, b.IsClicked(530, 40))
}

func TestPulseScaleDecays(t *testing.T) {
	assert.InDelta(t, 1.3, PulseScale(0), 1e-9)
	assert.Less(t, PulseScale(100*time.Millisecond), PulseScale(0))
	assert.InDelta(t, 1.0, PulseScale(2*time.Second), 1e-6)
}

func TestReadyShare(t *testing.T) {
	tests := []struct {
		name             string
		remaining, total time.Duration
		want             float64
	}{
		{"ready", 0, 10 * time.Second, 1},
		{"just used", 10 * time.Second, 10 * time.Second, 0},
		{"half way", 5 * time.Second, 10 * time.Second, 0.5},
		{"no cooldown", time.Second, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReadyShare(tt.remaining, tt.total), 1e-9)
		})
	}
}
