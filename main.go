package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/rotr/config"
	"github.com/automoto/rotr/fonts"
	"github.com/automoto/rotr/logging"
	"github.com/automoto/rotr/scenes"
	"github.com/automoto/rotr/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const titleFontSize = 48

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Window.Width, config.C.Window.Height)
	return config.C.Window.Width, config.C.Window.Height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config as YAML and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	config.C = cfg

	if *dumpConfig {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encoding config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := fonts.LoadDefaults(cfg.HUD.FontSize, cfg.Debug.FontSize, titleFontSize); err != nil {
		logger.Fatal("loading fonts", zap.Error(err))
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err == nil {
		systems.ApplySavedSettingsGlobal(systems.LoadSettings())
	} else {
		systems.ApplySavedSettingsGlobal(nil)
	}

	logger.Info("starting",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tps", cfg.Window.TPS),
	)
	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
