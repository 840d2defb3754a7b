// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	game "go-adventurer/internal/app"
	"go-adventurer/internal/config"
	"go-adventurer/internal/defs"
	"go-adventurer/internal/state"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func loadCampaign(settings config.Settings) (*defs.Campaign, error) {
	if settings.Campaign.LevelsFile == "" {
		return defs.DefaultCampaign()
	}
	return defs.LoadCampaign(settings.Campaign.LevelsFile)
}

func main() {
	configPath := flag.String("config", "", "path to settings file (yaml, json or toml)")
	pprofAddr := flag.String("pprof", "", "address for the pprof listener, e.g. localhost:6060")
	skipMenu := flag.Bool("skip-menu", false, "start straight from the first level")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	campaign, err := loadCampaign(settings)
	if err != nil {
		log.Fatal(err)
	}

	viewport := geom.Size{Width: float64(settings.Window.Width), Height: float64(settings.Window.Height)}
	g := game.NewGame(settings, campaign, utils.NewSimClock(), utils.NewPRNGService(settings.Seed), viewport)

	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		g.Start()
		sm.SetState(state.NewGameState(sm, g)) // Устанавливаем состояние игры
	} else {
		sm.SetState(state.NewMenuState(sm, g)) // Устанавливаем состояние меню
	}

	app := &AppGame{
		stateMachine: sm,
		width:        settings.Window.Width,
		height:       settings.Window.Height,
	}
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
