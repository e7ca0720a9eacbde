package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/boy/assets"
	"github.com/milk9111/boy/boy"
	"github.com/milk9111/boy/config"
	"github.com/milk9111/boy/input"
	"github.com/milk9111/boy/render"
	"github.com/milk9111/boy/script"
	"golang.org/x/image/colornames"
)

// spriteRows is the number of poses on the sheet, one per boy.Action.
const spriteRows = 4

type Game struct {
	cfg   config.Config
	debug bool
	ticks int

	input   *input.Input
	sheet   *render.Sheet
	boy     *boy.Boy
	autorun *script.Driver
	watcher *config.Watcher

	paused    bool
	clock     *boy.PausableClock
	quit      bool
	pauseUI   *ebitenui.UI
	lastEvent string
}

// NewGame loads the sprite sheet and builds the character. configPath, when
// set, is watched for tuning changes.
func NewGame(cfg config.Config, configPath string, debug bool) (*Game, error) {
	tuning := cfg.Tuning()
	img, err := assets.LoadSheet(cfg.Sheet, tuning.FrameSize, tuning.FrameCount, spriteRows)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		debug: debug,
		input: input.New(),
		sheet: render.NewSheet(img, cfg.Window.Height),
		clock: boy.NewPausableClock(),
	}

	g.boy, err = boy.New(g.sheet,
		boy.WithTuning(tuning),
		boy.WithClock(g.clock),
		boy.WithPosition(cfg.Boy.StartX, cfg.Boy.StartY),
	)
	if err != nil {
		_ = g.sheet.Close()
		return nil, err
	}
	g.boy.Machine().OnTransition(func(from, to boy.StateID, e boy.Event) {
		g.lastEvent = fmt.Sprintf("%s -> %s on %s", from, to, e)
	})

	if cfg.Script != "" {
		if g.autorun, err = script.Load(cfg.Script); err != nil {
			g.Close()
			return nil, err
		}
	}

	if configPath != "" {
		if g.watcher, err = config.Watch(configPath); err != nil {
			log.Printf("config: hot reload disabled: %v", err)
		}
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}
	if g.input.Pause {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.applyReloads()

	for _, k := range g.input.Events() {
		g.boy.HandleEvent(k)
	}
	if g.autorun != nil {
		g.stepScript()
	}

	g.boy.Update()
	g.ticks++
	return nil
}

// setPaused freezes the character's clock along with Update so time spent in
// the pause menu never counts toward a state timer.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	g.clock.SetPaused(paused)
}

func (g *Game) stepScript() {
	keys, err := g.autorun.Step(script.Frame{
		Tick:  g.ticks,
		State: g.boy.State(),
		X:     g.boy.X,
		Y:     g.boy.Y,
		Dir:   g.boy.Dir,
		Frame: g.boy.Frame,
	})
	if err != nil {
		log.Printf("script: disabled: %v", err)
		g.autorun = nil
		return
	}
	for _, k := range keys {
		g.boy.HandleEvent(k)
	}
}

func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.boy.SetTuning(cfg.Tuning()); err != nil {
			log.Printf("config: reload rejected: %v", err)
			return
		}
		log.Printf("config: reloaded tuning")
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("config: reload failed: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightsteelblue)

	g.sheet.SetTarget(screen)
	g.boy.Draw()

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS: %.2f  state: %s  x: %.0f  dir: %d  frame: %d  action: %d\n%s",
			ebiten.ActualTPS(), g.boy.State(), g.boy.X, g.boy.Dir, g.boy.Frame, g.boy.Action, g.lastEvent,
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the sheet and stops the config watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
	if g.boy != nil {
		if err := g.boy.Close(); err != nil {
			log.Printf("game: %v", err)
		}
		return
	}
	_ = g.sheet.Close()
}
