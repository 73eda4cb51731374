package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
}

// DefaultView looks at the model from above at an angle.
var DefaultView = View{
	Up:     r3.Vec{Z: 1},
	Eyepos: r3.Vec{X: 0.8, Y: -1.6, Z: 2.4},
	Near:   1,
	Far:    10,
}

// Preview renders the model with a phong shader. The model is fit in a
// bi-unit cube centered at the origin before rendering.
func Preview(model []Triangle3, width, height int, view View) (image.Image, error) {
	if len(model) == 0 {
		return nil, errors.New("empty triangle slice")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("preview size must be positive")
	}
	const (
		scale = 2  // supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	triangles := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		triangles[i] = fauxgl.NewTriangleForPoints(fvec(t.V[0]), fvec(t.V[1]), fvec(t.V[2]))
	}
	mesh := fauxgl.NewTriangleMesh(triangles)

	var (
		eye    = fvec(view.Eyepos)                    // camera position
		center = fvec(view.Lookat)                    // view center position
		up     = fvec(view.Up)                        // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#468966")           // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	img = resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	return img, nil
}

// CreatePreview renders the model with DefaultView and saves it as a PNG file.
func CreatePreview(path string, model []Triangle3, width, height int) error {
	img, err := Preview(model, width, height, DefaultView)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func fvec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
