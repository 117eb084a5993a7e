package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/focusball/config"
	"github.com/automoto/focusball/fonts"
	"github.com/automoto/focusball/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type quitter interface {
	Quit() bool
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	g := &Game{}
	scene, err := scenes.NewTrainerScene(g)
	if err != nil {
		return nil, err
	}
	g.scene = scene
	return g, nil
}

func loadFonts() error {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.HUD.FontSize); err != nil {
		return err
	}
	return fonts.LoadFontWithSize(fonts.BreathTag, gobold.TTF, config.HUD.FontSize*2)
}

func (g *Game) Update() error {
	g.scene.Update()
	if q, ok := g.scene.(quitter); ok && q.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window size so the canvas always fills it.
func (g *Game) Layout(width, height int) (int, int) {
	config.C.Width, config.C.Height = width, height
	return width, height
}

func main() {
	configPath := flag.String("config", "", "INI file with setting overrides")
	seed := flag.Int64("seed", 0, "random seed for the motion patterns (0 = time based)")
	width := flag.Int("width", 0, "initial window width")
	height := flag.Int("height", 0, "initial window height")
	meditation := flag.Bool("meditation", false, "start in meditation mode")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Printf("Warning: could not load %s: %v", *configPath, err)
		}
	}
	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	if *meditation {
		config.Meditation.StartEnabled = true
	}
	config.C.Seed = *seed
	if config.C.Seed == 0 {
		config.C.Seed = time.Now().UnixNano()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
