package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// EbitenDrawer draws each instance as the front face of its box,
// one DrawTriangles call per chunk.
type EbitenDrawer struct {
	camera   *Camera
	target   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenDrawer creates a drawer projecting through camera
func NewEbitenDrawer(camera *Camera) *EbitenDrawer {
	return &EbitenDrawer{camera: camera}
}

// SetTarget sets the image drawn to until the next call
func (d *EbitenDrawer) SetTarget(target *ebiten.Image) {
	d.target = target
}

// DrawInstances implements Drawer
func (d *EbitenDrawer) DrawInstances(mesh Mesh, instances []mgl64.Mat4) {
	if d.target == nil || len(instances) == 0 {
		return
	}

	r := float32(mesh.Color.R) / 0xff
	g := float32(mesh.Color.G) / 0xff
	b := float32(mesh.Color.B) / 0xff
	a := float32(mesh.Color.A) / 0xff

	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
	for i, m := range instances {
		quad := ProjectQuad(d.camera, m, mesh.Size)
		for _, p := range quad {
			d.vertices = append(d.vertices, ebiten.Vertex{
				DstX: p[0], DstY: p[1],
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		base := uint16(i * 4)
		d.indices = append(d.indices, base, base+1, base+2, base, base+2, base+3)
	}

	d.target.DrawTriangles(d.vertices, d.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// ProjectQuad returns the screen corners of the front face of a box of the
// given size placed by m, in counter-clockwise order from bottom-left.
func ProjectQuad(c *Camera, m mgl64.Mat4, size mgl64.Vec3) [4][2]float32 {
	hx, hy := size.X()/2, size.Y()/2
	corners := [4]mgl64.Vec4{
		{-hx, -hy, 0, 1},
		{hx, -hy, 0, 1},
		{hx, hy, 0, 1},
		{-hx, hy, 0, 1},
	}

	var out [4][2]float32
	for i, corner := range corners {
		x, y := c.WorldToScreen(m.Mul4x1(corner).Vec3())
		out[i] = [2]float32{x, y}
	}
	return out
}
