// Package rocket derives the geometry of the rocket badge icon: a white
// circular badge holding a rocket built from a body polygon, a porthole
// window, two fins, and an exhaust flame.
//
// Everything is computed from the effective canvas side (base size ×
// pixel-density scale) with fixed proportional constants, truncated to
// whole pixels. The same constants apply at every size and scale, so a
// @2x layout is the 1x layout with doubled coordinates rather than a
// resampled bitmap.
package rocket

import "image/color"

// Proportional constants. Badge padding is relative to the canvas side;
// the rocket frame is relative to the canvas; everything else is
// relative to the frame.
const (
	paddingRatio = 0.05

	frameWidthRatio  = 0.3
	frameHeightRatio = 0.6

	bodySideRatio   = 0.4 // y of the side vertices, down the frame
	bodyBottomRatio = 0.8 // y of the bottom corners, down the frame

	windowSizeRatio = 0.4  // window diameter, relative to frame width
	windowTopRatio  = 0.25 // window top edge, down the frame

	finWidthRatio  = 0.3
	finHeightRatio = 0.25
	finTopRatio    = 0.65

	flameWidthRatio  = 0.8
	flameHeightRatio = 0.2
	flameTopRatio    = 0.8
)

// Fill colors, fixed by the icon design.
var (
	BadgeWhite  = color.RGBA{255, 255, 255, 255}
	BodyRed     = color.RGBA{220, 38, 127, 255}
	WindowBlue  = color.RGBA{135, 206, 235, 255}
	FinDarkRed  = color.RGBA{178, 34, 34, 255}
	FlameOrange = color.RGBA{255, 140, 0, 255}
)

// Point is a pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Box is an axis-aligned rectangle in pixel coordinates, top-left
// (X0,Y0) to bottom-right (X1,Y1). Circles are inscribed in their box.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b Box) Height() int { return b.Y1 - b.Y0 }

// Center returns the midpoint of the box.
func (b Box) Center() (x, y float64) {
	return float64(b.X0+b.X1) / 2, float64(b.Y0+b.Y1) / 2
}

// Radii returns the half-extents of the box, i.e. the radii of the
// inscribed ellipse.
func (b Box) Radii() (rx, ry float64) {
	return float64(b.X1-b.X0) / 2, float64(b.Y1-b.Y0) / 2
}

// Layout holds every figure of the rocket badge for one canvas.
// Polygons keep their drawing order: badge, body, window, fins, flame.
type Layout struct {
	Canvas   int     // canvas side length (size × scale)
	Badge    Box     // white background circle bounds
	Frame    Box     // rectangle the rocket occupies, centered on the canvas
	Body     []Point // 5-point hull
	Window   Box     // porthole circle bounds
	FinLeft  []Point // 3-point triangle flaring left
	FinRight []Point // 3-point triangle flaring right
	Flame    []Point // 6-point notch-and-point silhouette
}

// NewLayout derives the badge geometry for a base size at the given
// pixel-density scale (1 or 2). size and scale must be positive.
func NewLayout(size, scale int) Layout {
	eff := size * scale

	pad := int(float64(eff) * paddingRatio)

	fw := int(float64(eff) * frameWidthRatio)
	fh := int(float64(eff) * frameHeightRatio)
	fx := (eff - fw) / 2
	fy := (eff - fh) / 2

	sideY := fy + int(float64(fh)*bodySideRatio)
	bottomY := fy + int(float64(fh)*bodyBottomRatio)

	ws := int(float64(fw) * windowSizeRatio)
	wx := fx + (fw-ws)/2
	wy := fy + int(float64(fh)*windowTopRatio)

	finW := int(float64(fw) * finWidthRatio)
	finH := int(float64(fh) * finHeightRatio)
	finY := fy + int(float64(fh)*finTopRatio)

	flW := int(float64(fw) * flameWidthRatio)
	flH := int(float64(fh) * flameHeightRatio)
	flX := fx + (fw-flW)/2
	flY := fy + int(float64(fh)*flameTopRatio)

	return Layout{
		Canvas: eff,
		Badge:  Box{pad, pad, eff - pad, eff - pad},
		Frame:  Box{fx, fy, fx + fw, fy + fh},
		Body: []Point{
			{fx + fw/2, fy},    // nose
			{fx + fw, sideY},   // right side
			{fx + fw, bottomY}, // right bottom
			{fx, bottomY},      // left bottom
			{fx, sideY},        // left side
		},
		Window: Box{wx, wy, wx + ws, wy + ws},
		FinLeft: []Point{
			{fx, finY},
			{fx - finW, finY + finH},
			{fx, finY + finH},
		},
		FinRight: []Point{
			{fx + fw, finY},
			{fx + fw + finW, finY + finH},
			{fx + fw, finY + finH},
		},
		Flame: []Point{
			{flX + flW/2, flY + flH},     // bottom point
			{flX, flY},                   // left
			{flX + flW/4, flY - flH/4},   // left shoulder
			{flX + flW/2, flY},           // center notch
			{flX + flW*3/4, flY - flH/4}, // right shoulder
			{flX + flW, flY},             // right
		},
	}
}
