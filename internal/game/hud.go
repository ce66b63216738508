package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-graph/internal/particle"
)

// peakWindow is how many recent frames the HUD peak covers.
const peakWindow = 30

var hudBackdrop = color.NRGBA{R: 0, G: 0, B: 0, A: 140}

func (g *Game) hudText() string {
	s := g.engine.Stats()
	w, h := g.engine.Size()

	state := "running"
	if g.engine.Paused() {
		state = "paused"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s | %.0fx%.0f | particles %d nodes %d edges %d (visible %d)\n",
		g.engine.Theme(), state, w, h, s.Particles, s.Nodes, s.Edges,
		particle.VisibleEdges(g.engine.Particles(), w))
	fmt.Fprintf(&b, "frame %s (peak %s) | up %s",
		formatMillis(g.ring.average()), formatMillis(peak(g.ring.snapshot(peakWindow))),
		formatUptime(time.Since(g.started)))
	if g.lastStatus != "" {
		b.WriteString("\n" + g.lastStatus)
	}
	if g.lastErr != nil {
		b.WriteString("\nError: " + g.lastErr.Error())
	}
	return b.String()
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	text := g.hudText()
	drawBackdrop(screen, text)
	ebitenutil.DebugPrintAt(screen, text, 12, 12)
}

// drawBackdrop darkens the area behind the HUD text. DebugPrint glyphs are
// 6x16 pixels.
func drawBackdrop(screen *ebiten.Image, text string) {
	lines := strings.Split(text, "\n")
	cols := 0
	for _, l := range lines {
		cols = max(cols, len(l))
	}
	vector.DrawFilledRect(screen, 6, 8, float32(cols*6+12), float32(len(lines)*16+8), hudBackdrop, false)
}

// formatUptime renders MM:SS, switching to H:MM:SS past the hour.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}

func peak(ds []time.Duration) time.Duration {
	var p time.Duration
	for _, d := range ds {
		p = max(p, d)
	}
	return p
}

// layerAlpha maps the configured canvas opacity onto a color scale factor.
func layerAlpha(opacity float64) float32 {
	return float32(min(max(opacity, 0), 1))
}
