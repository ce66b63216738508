package svgsurface

import (
	"io"

	"github.com/iburimskiy/particle-graph/internal/render"
)

// Write renders the single frame painted by paint into w as a complete
// document and reports the first write error.
func Write(w io.Writer, width, height int, opts Options, paint func(render.Surface)) error {
	ew := &errWriter{w: w}
	s := New(ew, width, height, opts)
	paint(s)
	s.Close()
	return ew.err
}

// errWriter keeps the first error; svgo ignores write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
