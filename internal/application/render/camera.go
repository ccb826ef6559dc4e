package render

import "github.com/go-gl/mathgl/mgl64"

// Camera trails a target with exponential smoothing.
// The view is orthographic, so the z of Offset only matters for Position.
type Camera struct {
	Position  mgl64.Vec3
	Offset    mgl64.Vec3
	Smoothing float64 // fraction of the remaining distance covered per Follow

	PixelsPerUnit float64
	ScreenWidth   int
	ScreenHeight  int
}

// NewCamera creates a camera already at target + offset
func NewCamera(target, offset mgl64.Vec3, smoothing, ppu float64, screenW, screenH int) *Camera {
	return &Camera{
		Position:      target.Add(offset),
		Offset:        offset,
		Smoothing:     smoothing,
		PixelsPerUnit: ppu,
		ScreenWidth:   screenW,
		ScreenHeight:  screenH,
	}
}

// Follow moves the camera toward target + offset
func (c *Camera) Follow(target mgl64.Vec3) {
	desired := target.Add(c.Offset)
	c.Position = c.Position.Add(desired.Sub(c.Position).Mul(c.Smoothing))
}

// WorldToScreen projects a world point to screen pixels. World y points up.
func (c *Camera) WorldToScreen(p mgl64.Vec3) (float32, float32) {
	x := float64(c.ScreenWidth)/2 + (p.X()-c.Position.X())*c.PixelsPerUnit
	y := float64(c.ScreenHeight)/2 - (p.Y()-c.Position.Y())*c.PixelsPerUnit
	return float32(x), float32(y)
}
