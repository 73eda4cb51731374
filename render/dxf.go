package render

import (
	"errors"

	"github.com/yofu/dxf"
	"gonum.org/v1/gonum/spatial/r2"
)

// CreateDXF writes the closed outline as DXF line entities to path.
func CreateDXF(path string, outline []r2.Vec) error {
	n := len(outline)
	if n < 3 {
		return errors.New("outline needs at least 3 points")
	}
	drawing := dxf.NewDrawing()
	for i, a := range outline {
		b := outline[(i+1)%n]
		if _, err := drawing.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return err
		}
	}
	return drawing.SaveAs(path)
}
