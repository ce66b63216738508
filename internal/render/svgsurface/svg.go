// Package svgsurface renders a scene to an SVG document.
//
// SVG output is append-only, so a document holds exactly one frame: Clear
// only resets the gradient counter and the caller draws a single scene
// between New and Close.
package svgsurface

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/particle-graph/internal/render"
	"github.com/iburimskiy/particle-graph/internal/theme"
)

// Options controls the document frame around the scene.
type Options struct {
	Title string
	// Background fills the canvas before the scene when its alpha is > 0.
	Background theme.RGBA
	// Opacity is applied to the whole scene group; 0 means 1.
	Opacity float64
}

// Surface implements render.Surface on top of svgo.
type Surface struct {
	canvas    *svg.SVG
	width     int
	height    int
	gradients int
}

var _ render.Surface = (*Surface)(nil)

// New writes the document header and opens the scene group.
func New(w io.Writer, width, height int, opts Options) *Surface {
	s := &Surface{canvas: svg.New(w), width: width, height: height}
	s.canvas.Start(width, height)
	if opts.Title != "" {
		s.canvas.Title(opts.Title)
	}
	if opts.Background.A > 0 {
		s.canvas.Rect(0, 0, width, height, fill(opts.Background))
	}
	opacity := opts.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	s.canvas.Gstyle("opacity:" + num(opacity))
	return s
}

// Close ends the scene group and the document.
func (s *Surface) Close() {
	s.canvas.Gend()
	s.canvas.End()
}

func (s *Surface) Clear() { s.gradients = 0 }

func (s *Surface) FillCircle(x, y, r float64, c theme.RGBA) {
	s.canvas.Path(circlePath(x, y, r), fill(c))
}

func (s *Surface) FillDiamond(x, y, r float64, c theme.RGBA) {
	d := r * sqrt2
	s.canvas.Path(fmt.Sprintf("M%s %s L%s %s L%s %s L%s %s Z",
		num(x), num(y-d), num(x+d), num(y), num(x), num(y+d), num(x-d), num(y)), fill(c))
}

func (s *Surface) StrokeCircle(x, y, r, width float64, c theme.RGBA) {
	s.canvas.Path(circlePath(x, y, r),
		fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s", rgb(c), num(c.A), num(width)))
}

// GradientLine defines a user-space linear gradient along the line so that
// horizontal and vertical edges, whose bounding box is degenerate, still
// paint.
func (s *Surface) GradientLine(x0, y0, x1, y1, width float64, stops []render.GradientStop) {
	s.gradients++
	id := "edge" + strconv.Itoa(s.gradients)

	s.canvas.Def()
	fmt.Fprintf(s.canvas.Writer, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`+"\n",
		id, num(x0), num(y0), num(x1), num(y1))
	for _, st := range stops {
		fmt.Fprintf(s.canvas.Writer, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`+"\n",
			num(st.Offset), rgb(st.Color), num(st.Color.A))
	}
	fmt.Fprintln(s.canvas.Writer, `</linearGradient>`)
	s.canvas.DefEnd()

	s.canvas.Path(fmt.Sprintf("M%s %s L%s %s", num(x0), num(y0), num(x1), num(y1)),
		fmt.Sprintf("fill:none;stroke:url(#%s);stroke-width:%s", id, num(width)))
}

const sqrt2 = 1.4142135623730951

func circlePath(x, y, r float64) string {
	return fmt.Sprintf("M%s %s a%s %s 0 1 0 %s 0 a%s %s 0 1 0 %s 0",
		num(x-r), num(y), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
}

func fill(c theme.RGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s", rgb(c), num(c.A))
}

func rgb(c theme.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
