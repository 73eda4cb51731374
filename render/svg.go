package render

import (
	"errors"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// WriteSVG draws the closed outline as an SVG polygon scaled by scale
// pixels per unit with a margin of 5% of its size. The y-axis points up.
func WriteSVG(w io.Writer, outline []r2.Vec, scale float64) error {
	if len(outline) < 3 {
		return errors.New("outline needs at least 3 points")
	}
	if !(scale > 0) {
		return errors.New("svg scale must be positive")
	}
	bb := d2.BoxOf(outline)
	bb = bb.Enlarge(r2.Scale(0.1, bb.Size()))
	size := r2.Scale(scale, bb.Size())
	width, height := int(math.Ceil(size.X)), int(math.Ceil(size.Y))

	xs := make([]int, len(outline))
	ys := make([]int, len(outline))
	for i, p := range outline {
		q := r2.Scale(scale, r2.Sub(p, bb.Min))
		xs[i] = int(math.Round(q.X))
		ys[i] = height - int(math.Round(q.Y))
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Polygon(xs, ys, "fill:none;stroke:black;stroke-width:1")
	center := r2.Scale(scale, r2.Sub(r2.Vec{}, bb.Min))
	canvas.Circle(int(math.Round(center.X)), height-int(math.Round(center.Y)), 2, "fill:red")
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error and discards writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(b []byte) (int, error) {
	if e.err != nil {
		return len(b), nil
	}
	n, err := e.w.Write(b)
	e.err = err
	return n, err
}
