package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/spur"
	"github.com/soypat/spur/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func generate(t testing.TB, spec spur.Spec) spur.Gear {
	t.Helper()
	gear, err := spur.Generate(spec, 20)
	if err != nil {
		t.Fatal(err)
	}
	return gear
}

func TestGearFilename(t *testing.T) {
	for _, test := range []struct {
		module float64
		teeth  int
		want   string
	}{
		{10, 25, "gear-10-25.gear"},
		{1.5, 12, "gear-1.5-12.gear"},
		{0.25, 100, "gear-0.25-100.gear"},
	} {
		if got := render.GearFilename(test.module, test.teeth); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestGearRoundTrip(t *testing.T) {
	pts := generate(t, spur.NewSpec(10, 25)).Profile.Points()
	var buf bytes.Buffer
	if err := render.WriteGear(&buf, pts); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != len(pts) {
		t.Fatalf("wrote %d lines for %d points", lines, len(pts))
	}
	got, err := render.ReadGear(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pts) {
		t.Fatalf("read %d points, want %d", len(got), len(pts))
	}
	for i := range pts {
		if got[i] != pts[i] {
			t.Fatalf("point %d: got %v, want %v", i, got[i], pts[i])
		}
	}
}

func TestCreateGear(t *testing.T) {
	pts := generate(t, spur.NewSpec(2, 12)).Profile.Points()
	path := filepath.Join(t.TempDir(), render.GearFilename(2, 12))
	if err := render.CreateGear(path, pts); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	got, err := render.ReadGear(fp)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(pts) || got[len(got)-1] != pts[len(pts)-1] {
		t.Error("file contents differ from written points")
	}
}

func TestReadGearErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"\n\n",
		"1 2\n3\n",
		"1 2 3\n",
		"1 x\n",
		"nope 2\n",
	} {
		if _, err := render.ReadGear(strings.NewReader(input)); err == nil {
			t.Errorf("%q: expected error", input)
		}
	}
	pts, err := render.ReadGear(strings.NewReader("  1.5\t-2\n\n3e2 4 \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 || pts[0] != (r2.Vec{X: 1.5, Y: -2}) || pts[1] != (r2.Vec{X: 300, Y: 4}) {
		t.Errorf("got %v", pts)
	}
	if err := render.WriteGear(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected error writing no points")
	}
}

func TestExtrude(t *testing.T) {
	const height = 5.0
	gear := generate(t, spur.NewSpec(10, 25))
	pts := gear.Profile.Points()
	model, err := render.Extrude(pts, height)
	if err != nil {
		t.Fatal(err)
	}
	// Two wall triangles per edge, two cap triangles per edge not collinear
	// with the origin. Radial root segments, one per flank, have no cap.
	n := len(pts)
	radial := 2 * gear.Profile.Teeth()
	if want := 4*n - 2*radial; len(model) != want {
		t.Fatalf("got %d triangles, want %d", len(model), want)
	}
	var capArea float64
	for i, tri := range model {
		if tri.Degenerate(1e-9) {
			t.Fatalf("triangle %d degenerate", i)
		}
		nrm := tri.Normal()
		centroid := r3.Scale(1./3, r3.Add(r3.Add(tri.V[0], tri.V[1]), tri.V[2]))
		switch {
		case tri.V[0].Z == tri.V[1].Z && tri.V[1].Z == tri.V[2].Z:
			// Cap normals point away from the solid.
			if (centroid.Z == 0 && nrm.Z > -0.99) || (centroid.Z == height && nrm.Z < 0.99) {
				t.Fatalf("cap triangle %d normal %v", i, nrm)
			}
			if centroid.Z == height {
				capArea += r3.Norm(r3.Cross(r3.Sub(tri.V[1], tri.V[0]), r3.Sub(tri.V[2], tri.V[0]))) / 2
			}
		default:
			// Wall normals point away from the gear axis.
			// Radial root segments have tangential normals.
			radialDir := r3.Vec{X: centroid.X, Y: centroid.Y}
			if nrm.Z != 0 || r3.Dot(nrm, radialDir) < -1e-9*r3.Norm(radialDir) {
				t.Fatalf("wall triangle %d faces inward", i)
			}
		}
	}
	g := gear.Geometry
	if capArea <= math.Pi*g.RootRadius*g.RootRadius || capArea >= math.Pi*g.OuterRadius*g.OuterRadius {
		t.Errorf("cap area %g outside root and outer circle areas", capArea)
	}
}

func TestExtrudeSkipsRepeatedPoints(t *testing.T) {
	pts := generate(t, spur.NewSpec(10, 25)).Profile.Points()
	want, err := render.Extrude(pts, 1)
	if err != nil {
		t.Fatal(err)
	}
	repeated := append([]r2.Vec{pts[0]}, pts...)
	got, err := render.Extrude(repeated, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Errorf("got %d triangles, want %d", len(got), len(want))
	}
	for i, tri := range got {
		if tri.Degenerate(1e-12) {
			t.Fatalf("triangle %d degenerate", i)
		}
	}
}

func TestExtrudeRejects(t *testing.T) {
	pts := generate(t, spur.NewSpec(10, 25)).Profile.Points()
	if _, err := render.Extrude(pts, 0); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := render.Extrude(pts[:2], 1); err == nil {
		t.Error("expected error for two points")
	}
	crossing := generate(t, spur.Spec{Module: 1, Teeth: 3, PressureAngle: 35})
	if _, err := render.Extrude(crossing.Profile.Points(), 1); err == nil {
		t.Error("expected error for crossing flanks")
	}
	// Outline not enclosing the origin.
	offset := []r2.Vec{{X: 10, Y: 0}, {X: 11, Y: 0}, {X: 11, Y: 1}}
	if _, err := render.Extrude(offset, 1); err == nil {
		t.Error("expected error for outline away from origin")
	}
}

func TestSTLRoundTrip(t *testing.T) {
	gear := generate(t, spur.NewSpec(1, 17))
	model, err := render.Extrude(gear.Profile.Points(), 2)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := render.WriteSTL(&buf, model); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 84+50*len(model) {
		t.Fatalf("STL size %d, want %d", buf.Len(), 84+50*len(model))
	}
	got, err := render.ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, want %d", len(got), len(model))
	}
	for i := range got {
		for j := 0; j < 3; j++ {
			if r3.Norm(r3.Sub(got[i].V[j], model[i].V[j])) > 1e-5 {
				t.Fatalf("triangle %d vertex %d: got %v, want %v", i, j, got[i].V[j], model[i].V[j])
			}
		}
	}
	path := filepath.Join(t.TempDir(), "gear.stl")
	if err := render.CreateSTL(path, model); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var again bytes.Buffer
	render.WriteSTL(&again, model)
	if !bytes.Equal(b, again.Bytes()) {
		t.Error("CreateSTL and WriteSTL output mismatch")
	}
	if err := render.WriteSTL(&again, nil); err == nil {
		t.Error("expected error for empty model")
	}
}

func TestWriteSVG(t *testing.T) {
	pts := generate(t, spur.NewSpec(10, 25)).Profile.Points()
	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, pts, 2); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{"<svg", "<polygon", "</svg>"} {
		if !strings.Contains(s, want) {
			t.Errorf("svg output missing %q", want)
		}
	}
	if err := render.WriteSVG(&buf, pts, 0); err == nil {
		t.Error("expected error for zero scale")
	}
}

func TestCreateDXF(t *testing.T) {
	pts := generate(t, spur.NewSpec(3, 9)).Profile.Points()
	path := filepath.Join(t.TempDir(), "gear.dxf")
	if err := render.CreateDXF(path, pts); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got int
	for _, line := range strings.Split(string(b), "\n") {
		if strings.TrimSpace(line) == "LINE" {
			got++
		}
	}
	if got < len(pts) {
		t.Errorf("found %d LINE entities, want %d", got, len(pts))
	}
}

func TestCreatePreview(t *testing.T) {
	gear := generate(t, spur.NewSpec(1, 12))
	model, err := render.Extrude(gear.Profile.Points(), 3)
	if err != nil {
		t.Fatal(err)
	}
	img, err := render.Preview(model, 64, 48, render.DefaultView)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("preview size %v", b)
	}
	path := filepath.Join(t.TempDir(), "gear.png")
	if err := render.CreatePreview(path, model, 64, 48); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error(err)
	}
	if _, err := render.Preview(nil, 64, 48, render.DefaultView); err == nil {
		t.Error("expected error for empty model")
	}
}

func TestExtrudeStandardLargeGear(t *testing.T) {
	// Root circle outside base circle.
	for _, start := range []spur.FlankStart{spur.StartOnBase, spur.StartOnRoot} {
		gear, err := spur.GenerateWith(spur.NewSpec(1, 150), 20, spur.Options{Centering: spur.CenterOnPitch, Start: start})
		if err != nil {
			t.Fatal(err)
		}
		model, err := render.Extrude(gear.Profile.Points(), 1)
		if err != nil {
			t.Fatalf("start=%d: %v", start, err)
		}
		for i, tri := range model {
			if tri.Degenerate(1e-12) {
				t.Fatalf("start=%d: triangle %d degenerate", start, i)
			}
		}
	}
}
