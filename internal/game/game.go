// Package game hosts the particle engine in an ebiten window.
//
// ebiten's Draw plays the role of the browser's animation frame: every Draw
// runs the engine's pending frame callback onto an offscreen layer, which is
// then composited over the theme background. Layout reports window size
// changes to the engine's viewport.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-graph/internal/config"
	"github.com/iburimskiy/particle-graph/internal/engine"
	"github.com/iburimskiy/particle-graph/internal/render/ebitensurface"
	"github.com/iburimskiy/particle-graph/internal/render/pngsurface"
	"github.com/iburimskiy/particle-graph/internal/render/svgsurface"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

const frameRingSize = 120

// Options wires a Game.
type Options struct {
	Config *config.Config
	Theme  theme.Mode
	Rand   *rand.Rand
	Logger *slog.Logger
}

type Game struct {
	cfg *config.Config
	log *slog.Logger

	display *engine.Display
	frames  *engine.FrameQueue
	surface *ebitensurface.Surface
	engine  *engine.Engine

	// hud
	started time.Time
	ring    *frameRing
	showHUD bool

	// selectSavePath asks where to write a snapshot; a .png name selects
	// raster output
	selectSavePath func() (string, error)

	lastErr    error
	lastStatus string
}

func New(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	g := &Game{
		cfg:            cfg,
		log:            log,
		display:        engine.NewDisplay(0, 0),
		frames:         engine.NewFrameQueue(),
		surface:        ebitensurface.New(),
		started:        time.Now(),
		ring:           newFrameRing(frameRingSize),
		showHUD:        cfg.Window.HUD,
		selectSavePath: selectSnapshotFile,
	}
	g.engine = engine.New(g.surface, g.frames, g.display, engine.Options{
		Theme:  opts.Theme,
		Rand:   opts.Rand,
		Logger: log,
	})
	// The display starts at 0x0; the first Layout call sizes it and
	// triggers the first real build.
	g.engine.Mount()
	return g
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	w := g.cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.TPS)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	defer g.engine.Unmount()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.engine.Unmount()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.SetPaused(!g.engine.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		next := g.engine.Theme().Toggle()
		g.engine.SetTheme(next)
		g.log.Info("theme switched", "theme", string(next))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.saveSnapshot(); err != nil {
			g.log.Error("snapshot failed", "err", err)
			g.lastErr = err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	pal := theme.PaletteFor(g.engine.Theme())
	screen.Fill(pal.Background.NRGBA())

	start := time.Now()
	g.frames.RunFrame()
	g.ring.record(time.Since(start))

	if layer := g.surface.Layer(); layer != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(layerAlpha(g.cfg.Window.Opacity))
		screen.DrawImage(layer, op)
	}

	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout makes the canvas track the window, like a full-viewport canvas
// element.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.display.Resize(outsideWidth, outsideHeight) {
		g.log.Debug("viewport resized", "width", outsideWidth, "height", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) saveSnapshot() error {
	path, err := g.selectSavePath()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = g.writeSnapshot(f, path)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	g.lastErr = nil
	g.lastStatus = "Saved " + path
	g.log.Info("snapshot saved", "path", path)
	return nil
}

func (g *Game) writeSnapshot(out io.Writer, path string) error {
	w, h := g.engine.Size()
	bg := theme.PaletteFor(g.engine.Theme()).Background
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return pngsurface.Write(out, int(w), int(h), pngsurface.Options{
			Background: bg,
			Opacity:    g.cfg.Window.Opacity,
		}, g.engine.Render)
	}
	return svgsurface.Write(out, int(w), int(h), svgsurface.Options{
		Title:      "particle-graph",
		Background: bg,
		Opacity:    g.cfg.Window.Opacity,
	}, g.engine.Render)
}

func selectSnapshotFile() (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename("particle-graph.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "SVG", Patterns: []string{"*.svg"}},
			{Name: "PNG", Patterns: []string{"*.png"}},
		},
	)
}
