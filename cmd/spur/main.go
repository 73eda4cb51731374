// Command spur generates involute spur gear outlines and writes them as
// point lists, figures, drawings and extruded models.
//
// Usage:
//
//	spur --module 10 --n 25 --store
//
// writes gear-10-25.gear and the figure gear-10-25.png to the current directory.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/spur"
	"github.com/soypat/spur/helpers/matter"
	"github.com/soypat/spur/plot"
	"github.com/soypat/spur/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
)

const (
	figureSize         = 6 * vg.Inch
	svgScale           = 4 // pixels per unit of length
	previewW, previewH = 768, 432
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("spur: ")
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	module    float64
	teeth     int
	pressure  float64
	points    int
	dir       string
	store     bool
	noplot    bool
	svg       bool
	dxf       bool
	stl       float64
	preview   bool
	standard  bool
	rootstart bool
	pla       bool
	verbose   bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "spur --module M --n N",
		Short:         "Generate involute spur gear outlines",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&opts.module, "module", 0, "gear module, pitch diameter divided by teeth (required)")
	f.IntVar(&opts.teeth, "n", 0, "number of teeth (required)")
	f.Float64Var(&opts.pressure, "pressure", spur.DefaultPressureAngle, "pressure angle in degrees")
	f.IntVar(&opts.points, "points", 20, "involute samples per flank")
	f.StringVar(&opts.dir, "dir", ".", "output directory")
	f.BoolVar(&opts.store, "store", false, "write the outline to a .gear point file")
	f.BoolVar(&opts.noplot, "noplot", false, "do not write the figure")
	f.BoolVar(&opts.svg, "svg", false, "write an SVG drawing of the outline")
	f.BoolVar(&opts.dxf, "dxf", false, "write a DXF drawing of the outline")
	f.Float64Var(&opts.stl, "stl", 0, "extrude the outline to this height and write an STL model")
	f.BoolVar(&opts.preview, "preview", false, "write a PNG preview of the STL model")
	f.BoolVar(&opts.standard, "standard", false, "use standard tooth thickness at the pitch circle")
	f.BoolVar(&opts.rootstart, "rootstart", false, "start flanks on the root circle when it lies outside the base circle")
	f.BoolVar(&opts.pla, "pla", false, "enlarge SVG, DXF and STL outlines to compensate PLA shrinkage")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "print derived geometry")
	cmd.MarkFlagRequired("module")
	cmd.MarkFlagRequired("n")
	return cmd
}

func run(out io.Writer, opts options) error {
	if opts.preview && opts.stl <= 0 {
		return errors.New("--preview requires --stl")
	}
	spec := spur.Spec{Module: opts.module, Teeth: opts.teeth, PressureAngle: opts.pressure}
	var gopts spur.Options
	if opts.standard {
		gopts.Centering = spur.CenterOnPitch
	}
	if opts.rootstart {
		gopts.Start = spur.StartOnRoot
	}
	gear, err := spur.GenerateWith(spec, opts.points, gopts)
	if err != nil {
		return err
	}
	if opts.verbose {
		fmt.Fprintln(out, gear.Geometry)
	}
	if !gear.Geometry.RootBelowBase() && !opts.rootstart {
		log.Printf("note: root circle outside base circle, flanks dip to the base circle, see --rootstart")
	}
	if gear.Tooth.FlanksOverlap() {
		log.Printf("warning: tooth flanks cross below the tip for %d teeth at %g°, see --standard", spec.Teeth, spec.PressureAngle)
	}
	if err := os.MkdirAll(opts.dir, 0777); err != nil {
		return err
	}
	outline := gear.Profile.Points()
	// Exports meant for manufacturing are compensated for shrinkage.
	export := outline
	if opts.pla {
		export = matter.PLA.Scale(outline)
	}
	base := filepath.Join(opts.dir, strings.TrimSuffix(render.GearFilename(spec.Module, spec.Teeth), ".gear"))
	written := func(path string) { fmt.Fprintln(out, "wrote", path) }

	if opts.store {
		path := base + ".gear"
		if err := render.CreateGear(path, outline); err != nil {
			return err
		}
		written(path)
	}
	if !opts.noplot {
		path := base + ".png"
		if err := writeFigure(path, gear.Geometry, outline); err != nil {
			return err
		}
		written(path)
	}
	if opts.svg {
		path := base + ".svg"
		if err := writeSVG(path, export); err != nil {
			return err
		}
		written(path)
	}
	if opts.dxf {
		path := base + ".dxf"
		if err := render.CreateDXF(path, export); err != nil {
			return err
		}
		written(path)
	}
	if opts.stl > 0 {
		model, err := render.Extrude(export, opts.stl)
		if err != nil {
			return err
		}
		path := base + ".stl"
		if err := render.CreateSTL(path, model); err != nil {
			return err
		}
		written(path)
		if opts.preview {
			path := base + "-preview.png"
			if err := render.CreatePreview(path, model, previewW, previewH); err != nil {
				return err
			}
			written(path)
		}
	}
	fmt.Fprintf(out, "%d teeth, %d outline points\n", gear.Profile.Teeth(), len(outline))
	return nil
}

func writeFigure(path string, g spur.Geometry, outline []r2.Vec) error {
	p, err := plot.Figure(g, outline)
	if err != nil {
		return err
	}
	return plot.Save(p, path, figureSize)
}

func writeSVG(path string, outline []r2.Vec) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	err = render.WriteSVG(fp, outline, svgScale)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	return err
}
