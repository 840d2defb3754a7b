package termview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-adventurer/internal/component"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/types"
	"go-adventurer/pkg/geom"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen, *entity.ECS) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 30)

	ecs := entity.NewECS()
	ecs.World.Viewport = geom.Rect{Width: 3000, Height: 1500}
	ecs.World.GameSize = geom.Size{Width: 3000, Height: 1500}
	ecs.World.Now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewView(screen, ecs), screen, ecs
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func TestDrawPlacesEntitiesOnGrid(t *testing.T) {
	view, screen, ecs := newTestView(t)

	ecs.AddPlatform(component.Body{X: 0, Y: 1400, Width: 3000, Height: 100}, component.Platform{Style: types.StyleDirt})
	adv := ecs.AddCreature(component.Body{X: 100, Y: 1250, Width: 100, Height: 150}, &component.Creature{Hitpoints: 100, MaxHitpoints: 100})
	ecs.World.AdventurerID = adv
	ecs.Adventurers[adv] = &component.Adventurer{MaxAmmo: 3}
	goblin := ecs.AddCreature(component.Body{X: 1000, Y: 1300, Width: 100, Height: 100}, &component.Creature{Hitpoints: 15, MaxHitpoints: 15})
	ecs.Monsters[goblin] = &component.Monster{Species: types.MonsterGoblin}

	view.Draw("Tutorial")

	assert.Equal(t, '=', cellAt(screen, 10, 29))
	assert.Equal(t, '@', cellAt(screen, 2, 26))
	assert.Equal(t, '@', cellAt(screen, 3, 27))
	assert.Equal(t, ' ', cellAt(screen, 4, 27))
	assert.Equal(t, 'g', cellAt(screen, 20, 27))
	assert.Equal(t, 'T', cellAt(screen, 0, 0), "status line starts with the level name")
}

func TestDrawFollowsViewport(t *testing.T) {
	view, screen, ecs := newTestView(t)
	ecs.World.Viewport.X = 1500

	ecs.AddPlatform(component.Body{X: 1500, Y: 1400, Width: 50, Height: 100}, component.Platform{Style: types.StyleDirt})
	view.Draw("")

	assert.Equal(t, '=', cellAt(screen, 0, 29))
	assert.Equal(t, ' ', cellAt(screen, 1, 29))
}

func TestDoorGlyphShowsState(t *testing.T) {
	view, screen, ecs := newTestView(t)
	door := ecs.NewEntity()
	ecs.Bodies[door] = &component.Body{X: 2800, Y: 1200, Width: 200, Height: 200}
	ecs.Doors[door] = &component.Door{Name: "Exit"}

	view.Draw("")
	assert.Equal(t, '#', cellAt(screen, 57, 25))

	ecs.Doors[door].Open = true
	view.Draw("")
	assert.Equal(t, '[', cellAt(screen, 57, 25))
}

func TestCellToScreenIsCellCenter(t *testing.T) {
	view, _, _ := newTestView(t)
	x, y := view.CellToScreen(0, 0)
	assert.InDelta(t, 25.0, x, 1e-9)
	assert.InDelta(t, 25.0, y, 1e-9)
}

func TestHeldKeysExpire(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	keys := NewHeldKeys()

	keys.Press(DirLeft, now)
	assert.True(t, keys.Held(DirLeft, now.Add(keyTimeout-time.Millisecond)))
	assert.False(t, keys.Held(DirLeft, now.Add(keyTimeout)))

	keys.Press(DirRight, now)
	assert.False(t, keys.Held(DirLeft, now), "opposite direction is released")
	assert.True(t, keys.Held(DirRight, now))
}
