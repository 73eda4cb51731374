package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// GearFilename returns the conventional name of a gear point file,
// gear-<module>-<teeth>.gear.
func GearFilename(module float64, teeth int) string {
	return "gear-" + strconv.FormatFloat(module, 'g', -1, 64) + "-" + strconv.Itoa(teeth) + ".gear"
}

// CreateGear writes points to a new file at path in gear point format.
func CreateGear(path string, pts []r2.Vec) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = WriteGear(fp, pts)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteGear writes one point per line as two space separated numbers.
// Numbers use the shortest representation that parses back to the same
// float64 so that ReadGear reproduces pts exactly.
func WriteGear(w io.Writer, pts []r2.Vec) error {
	if len(pts) == 0 {
		return errors.New("empty point slice")
	}
	bw := bufio.NewWriter(w)
	var line []byte
	for _, p := range pts {
		line = strconv.AppendFloat(line[:0], p.X, 'g', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Y, 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadGear parses the gear point format. Blank lines are ignored, any other
// line must hold exactly two whitespace separated numbers.
func ReadGear(r io.Reader) ([]r2.Vec, error) {
	var pts []r2.Vec
	scan := bufio.NewScanner(r)
	lineno := 0
	for scan.Scan() {
		lineno++
		fields := strings.Fields(scan.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 values, got %d", lineno, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		pts = append(pts, r2.Vec{X: x, Y: y})
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, errors.New("no points in gear file")
	}
	return pts, nil
}
