// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	game "go-adventurer/internal/app"
	"go-adventurer/internal/render"
	"go-adventurer/internal/ui"
	"go-adventurer/pkg/geom"
)

// MenuState — титульный экран, Space начинает кампанию
type MenuState struct {
	sm          *StateMachine
	game        *game.Game
	renderer    *render.Renderer
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, g *game.Game) *MenuState {
	vp := g.ECS.World.Viewport
	return &MenuState{
		sm:       sm,
		game:     g,
		renderer: render.NewRenderer(g.ECS),
		startButton: ui.NewButton(
			geom.Rect{X: vp.Width/2 - 100, Y: vp.Height - 120, Width: 200, Height: 40},
			"Start", basicfont.Face7x13),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update() {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		start = start || m.startButton.Contains(float64(mx), float64(my))
	}
	if start {
		m.game.Start()
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.renderer.DrawOverlay(screen, []string{
		"ADVENTURER",
		"",
		fmt.Sprintf("%d levels", len(m.game.Campaign.Levels)+m.game.Settings.Campaign.RandomLevels),
		"WASD to move, Space to jump, mouse to shoot",
		"1 Guided Arrow, 2 Bomb, C to crouch",
		"",
		"Press Space to begin",
	})

	mx, my := ebiten.CursorPosition()
	m.startButton.Draw(screen, float64(mx), float64(my))
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
