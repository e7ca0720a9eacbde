package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/boy/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (hot reloaded)")
	sheetPath := flag.String("sheet", "", "sprite sheet png, overrides the config and the embedded sheet")
	scriptPath := flag.String("script", "", "tengo autopilot script, overrides the config")
	debug := flag.Bool("debug", false, "enable debug overlay and debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sheetPath != "" {
		cfg.Sheet = *sheetPath
	}
	if *scriptPath != "" {
		cfg.Script = *scriptPath
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, *configPath, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
