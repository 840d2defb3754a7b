// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-adventurer/internal/render"
	"go-adventurer/internal/ui"
	"go-adventurer/pkg/geom"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState показывает подсказки уровня поверх замороженного мира
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	renderer      *render.Renderer
	resumeButton  *ui.Button
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	vp := prevState.GetGame().ECS.World.Viewport
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		renderer:      prevState.renderer,
		resumeButton: ui.NewButton(
			geom.Rect{X: vp.Width/2 - 100, Y: vp.Height - 120, Width: 200, Height: 40},
			"Continue", basicfont.Face7x13),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		unpause = unpause || s.resumeButton.Contains(float64(mx), float64(my))
	}

	if unpause {
		s.previousState.GetGame().SetPaused(false)
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	g := s.previousState.GetGame()
	lines := []string{"Paused", "", "Press P or Enter to continue"}
	if g.Level != nil {
		lines = render.TipsLines(g.Level.Name, g.Level.Tips)
	}
	s.renderer.DrawOverlay(screen, lines)

	mx, my := ebiten.CursorPosition()
	s.resumeButton.Draw(screen, float64(mx), float64(my))
}

func (s *PauseState) Exit() {}
