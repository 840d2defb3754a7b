// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	game "go-adventurer/internal/app"
	"go-adventurer/internal/config"
	"go-adventurer/internal/render"
	"go-adventurer/internal/types"
	"go-adventurer/internal/ui"
)

// GameState — состояние игры: ввод превращается в намерения игрока, затем идёт тик симуляции
type GameState struct {
	sm          *StateMachine
	game        *game.Game
	renderer    *render.Renderer
	pauseButton *ui.PauseButton
	abilities   map[types.AbilityName]*ui.CooldownIndicator
}

func NewGameState(sm *StateMachine, g *game.Game) *GameState {
	right := float32(g.ECS.World.Viewport.Width)
	return &GameState{
		sm:          sm,
		game:        g,
		renderer:    render.NewRenderer(g.ECS),
		pauseButton: ui.NewPauseButton(right-40, 40, 12, config.TextDarkColor, config.DoorOpenColor),
		abilities: map[types.AbilityName]*ui.CooldownIndicator{
			types.AbilityGuidedArrow: ui.NewCooldownIndicator(right-120, 40, 20, "1"),
			types.AbilityBomb:        ui.NewCooldownIndicator(right-170, 40, 20, "2"),
		},
	}
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Exit() {}

// GetGame даёт другим состояниям доступ к симуляции
func (g *GameState) GetGame() *game.Game {
	return g.game
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *GameState) Update() {
	world := g.game.ECS.World

	if (world.GameOver || world.GameWon) && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.game.ToggleDebug()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pauseClicked() {
		g.pauseButton.Toggle(g.game.ECS.World.Now)
		g.game.SetPaused(true)
	}
	if g.game.IsPaused() {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleInput()
	g.game.Update()
}

func (g *GameState) pauseClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return g.pauseButton.IsClicked(float64(mx), float64(my))
}

func (g *GameState) handleInput() {
	id, _, ok := g.game.ECS.Adventurer()
	if !ok {
		return
	}
	player := g.game.PlayerSystem

	mx, my := ebiten.CursorPosition()
	g.game.SetMouse(float64(mx), float64(my))

	player.SetMovementIntent(id,
		anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		anyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
		anyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
	)
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		player.Jump(id, ebiten.IsKeyPressed(ebiten.KeyShift))
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyC) {
		player.ToggleCrouch(id)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyF) {
		player.ChargeRangedAttack(id)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustReleased(ebiten.KeyF) {
		player.RangedMouseAttack(id)
	}

	if inpututil.IsKeyJustReleased(ebiten.Key1) {
		player.UseSpecialAbility(id, types.AbilityGuidedArrow)
	}
	if inpututil.IsKeyJustReleased(ebiten.Key2) {
		player.UseSpecialAbility(id, types.AbilityBomb)
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)

	hud := render.HUD{}
	if g.game.Level != nil {
		hud.LevelName = g.game.Level.Name
	}
	if id, _, ok := g.game.ECS.Adventurer(); ok {
		hud.ChargePercent = g.game.PlayerSystem.ChargePercent(id)
	}
	g.renderer.DrawHUD(screen, hud)

	now := g.game.ECS.World.Now
	g.pauseButton.Draw(screen, now)
	if id, _, ok := g.game.ECS.Adventurer(); ok {
		adv := g.game.ECS.Adventurers[id]
		for name, indicator := range g.abilities {
			ability, ok := adv.Abilities[name]
			if !ok {
				continue
			}
			cd := adv.AbilityCooldown(name, now)
			indicator.Draw(screen, basicfont.Face7x13, now, ability.LastUsed, cd.Remaining, cd.Total, config.DoorOpenColor)
		}
	}
}
