// Package plot draws gear outlines together with their reference circles.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/soypat/spur"
	"github.com/soypat/spur/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const circleSegments = 256

var (
	outlineColor = color.RGBA{A: 255}
	pitchColor   = color.RGBA{R: 220, A: 255}
	rootColor    = color.RGBA{B: 220, A: 255}
	outerColor   = color.RGBA{G: 160, A: 255}
	baseColor    = color.RGBA{R: 200, G: 180, A: 255}
)

// Figure returns a plot of the outline with the pitch, root, outer and base
// circles of g. Axes share the same scale.
func Figure(g spur.Geometry, outline []r2.Vec) (*plot.Plot, error) {
	if len(outline) < 3 {
		return nil, errors.New("outline needs at least 3 points")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("m=%g z=%d α=%g°", g.Module, g.Teeth, g.PressureAngle)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	for _, c := range []struct {
		name   string
		radius float64
		color  color.Color
	}{
		{"pitch", g.PitchRadius(), pitchColor},
		{"root", g.RootRadius, rootColor},
		{"outer", g.OuterRadius, outerColor},
		{"base", g.BaseRadius, baseColor},
	} {
		l, err := plotter.NewLine(circle(c.radius))
		if err != nil {
			return nil, fmt.Errorf("%s circle: %w", c.name, err)
		}
		l.LineStyle.Color = c.color
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
		p.Legend.Add(c.name, l)
	}

	xys := make(plotter.XYs, len(outline)+1)
	for i, v := range outline {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	xys[len(outline)] = xys[0] // close the outline.
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("outline: %w", err)
	}
	l.LineStyle.Color = outlineColor
	l.LineStyle.Width = vg.Points(1)
	p.Add(l)

	bb := d2.BoxOf(outline).Include(r2.Vec{X: g.OuterRadius}).Include(r2.Vec{X: -g.OuterRadius})
	bb = bb.Include(r2.Vec{Y: g.OuterRadius}).Include(r2.Vec{Y: -g.OuterRadius}).Square()
	bb = bb.Enlarge(r2.Scale(0.05, bb.Size()))
	p.X.Min, p.X.Max = bb.Min.X, bb.Max.X
	p.Y.Min, p.Y.Max = bb.Min.Y, bb.Max.Y
	return p, nil
}

// Save writes the figure to path. The format is taken from the file
// extension, e.g. png, svg or pdf.
func Save(p *plot.Plot, path string, size vg.Length) error {
	return p.Save(size, size, path)
}

// Write encodes the figure in the given format to w.
func Write(w io.Writer, p *plot.Plot, format string, size vg.Length) error {
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func circle(radius float64) plotter.XYs {
	xys := make(plotter.XYs, circleSegments+1)
	for i := range xys {
		s, c := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		xys[i] = plotter.XY{X: radius * c, Y: radius * s}
	}
	return xys
}
