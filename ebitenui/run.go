package ebitenui

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/arbor"
)

// RunConfig configures Run. Zero values select the defaults noted on each
// field.
type RunConfig struct {
	Title         string      // window title, default "arbor"
	Width, Height int         // initial window size, default 640x480
	ShowFPS       bool        // draw an FPS/TPS overlay
	ClearColor    arbor.Color // screen fill before each frame
	Debug         bool        // arbor.SetDebugMode

	// ScriptPath names a JSON test script driving the input. Real mouse
	// input passes through whenever the script has nothing queued.
	ScriptPath string
	// ExitOnScriptEnd stops the game loop once the script has finished.
	ExitOnScriptEnd bool
	// ScreenshotDir receives screenshot PNGs, default "screenshots".
	ScreenshotDir string

	// Fonts renders Label text. Nil loads Go Regular.
	Fonts *Fonts

	// UpdateFunc, if set, runs after the tree each tick with the events as
	// the tree left them.
	UpdateFunc func(tc *TickContext, ev arbor.Events) error
}

func (cfg *RunConfig) applyDefaults() {
	if cfg.Title == "" {
		cfg.Title = "arbor"
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
}

// game implements ebiten.Game around an arbor.Tree.
type game struct {
	tree   *arbor.Tree
	cfg    RunConfig
	input  *arbor.InjectedInput
	runner *arbor.TestRunner
	canvas *Canvas
	shots  screenshots
	fps    fpsOverlay
	width  int
	height int
}

// Run opens a window and drives tree until the window is closed. It blocks
// and returns the game loop's error, if any.
func Run(tree *arbor.Tree, cfg RunConfig) error {
	cfg.applyDefaults()

	fonts := cfg.Fonts
	if fonts == nil {
		var err error
		if fonts, err = NewFonts(nil); err != nil {
			return err
		}
	}

	g := &game{
		tree:   tree,
		cfg:    cfg,
		input:  arbor.NewInjectedInput(Input{}),
		canvas: NewCanvas(fonts),
		shots:  screenshots{dir: cfg.ScreenshotDir},
		width:  cfg.Width,
		height: cfg.Height,
	}

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return fmt.Errorf("read test script: %w", err)
		}
		runner, err := arbor.LoadTestScript(data)
		if err != nil {
			return err
		}
		runner.OnScreenshot = g.shots.request
		g.runner = runner
	}

	arbor.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *game) screenRect() arbor.Rect {
	return arbor.RectFromSize(arbor.Point{}, float64(g.width), float64(g.height))
}

func (g *game) Update() error {
	tc := newTickContext()
	if g.runner != nil {
		g.runner.Step(g.input)
	}
	g.input.Advance()

	ev := g.tree.Update(tc, g.input, g.screenRect())

	if g.cfg.ShowFPS {
		g.fps.update(tc.Delta)
	}
	if g.cfg.UpdateFunc != nil {
		if err := g.cfg.UpdateFunc(tc, ev); err != nil {
			return err
		}
	}
	if g.cfg.ExitOnScriptEnd && g.runner != nil && g.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(toNRGBA(g.cfg.ClearColor))
	}
	g.canvas.Begin(screen)
	g.tree.Draw(g.canvas, g.screenRect())
	g.shots.flush(screen)
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
