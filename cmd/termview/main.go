// cmd/termview/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	game "go-adventurer/internal/app"
	"go-adventurer/internal/audio"
	"go-adventurer/internal/config"
	"go-adventurer/internal/defs"
	"go-adventurer/internal/termview"
	"go-adventurer/internal/utils"
	"go-adventurer/pkg/geom"
)

const frameInterval = config.NominalTickInterval

func main() {
	configPath := flag.String("config", "", "path to settings file (yaml, json or toml)")
	logPath := flag.String("log", "termview.log", "file for game log output")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile) // stdout занят терминальным экраном

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	settings, err := config.LoadSettings(configPath)
	if err != nil {
		return err
	}
	campaign, err := defs.DefaultCampaign()
	if settings.Campaign.LevelsFile != "" {
		campaign, err = defs.LoadCampaign(settings.Campaign.LevelsFile)
	}
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Мир считается в том же вьюпорте, что и окно графической версии
	viewport := geom.Size{Width: float64(settings.Window.Width), Height: float64(settings.Window.Height)}
	g := game.NewGame(settings, campaign, utils.NewSimClock(), utils.NewPRNGService(settings.Seed), viewport)

	if settings.Sound {
		cues, err := audio.InitSpeaker(g.ECS)
		if err != nil {
			// Без звука играть можно
			log.Printf("Audio initialization failed: %v", err)
		} else {
			cues.Subscribe(g.EventDispatcher)
		}
	}

	view := termview.NewView(screen, g.ECS)
	controller := termview.NewController(g, view)
	g.Start()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if ev == nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !controller.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			controller.Apply(now)
			g.Update()
			levelName := ""
			if g.Level != nil {
				levelName = g.Level.Name
			}
			view.Draw(levelName)
		}
	}
}
