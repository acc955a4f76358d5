package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingTextureColor is returned when no image data is available, so a failed load shows up in renders
var missingTextureColor = core.NewVec3(1, 0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], linear [0,1] components
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(u, v float64, point core.Vec3) core.Vec3 {
	if t == nil || t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	// Clamp input texture coordinates to [0,1] x [1,0]
	u = core.Clamp(u, 0.0, 1.0)
	v = 1.0 - core.Clamp(v, 0.0, 1.0) // flip V to image coordinates

	x := core.Clamp(int(u*float64(t.Width)), 0, t.Width-1)
	y := core.Clamp(int(v*float64(t.Height)), 0, t.Height-1)

	return t.Pixels[y*t.Width+x]
}
