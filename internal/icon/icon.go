// Package icon rasterizes the rocket badge with an in-process 2D
// renderer, no external tools involved.
package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/Mavwarf/icongen/internal/rocket"
)

// Render draws the rocket badge for one base size at the given
// pixel-density scale and returns the finished RGBA raster. The canvas
// is size×scale pixels on a side and starts fully transparent.
func Render(size, scale int) image.Image {
	l := rocket.NewLayout(size, scale)
	dc := gg.NewContext(l.Canvas, l.Canvas)

	fillEllipse(dc, l.Badge, rocket.BadgeWhite)
	fillPolygon(dc, l.Body, rocket.BodyRed)
	fillEllipse(dc, l.Window, rocket.WindowBlue)
	fillPolygon(dc, l.FinLeft, rocket.FinDarkRed)
	fillPolygon(dc, l.FinRight, rocket.FinDarkRed)
	fillPolygon(dc, l.Flame, rocket.FlameOrange)

	return dc.Image()
}

func fillEllipse(dc *gg.Context, b rocket.Box, c color.Color) {
	cx, cy := b.Center()
	rx, ry := b.Radii()
	dc.SetColor(c)
	dc.DrawEllipse(cx, cy, rx, ry)
	dc.Fill()
}

func fillPolygon(dc *gg.Context, pts []rocket.Point, c color.Color) {
	dc.SetColor(c)
	dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		dc.LineTo(float64(p.X), float64(p.Y))
	}
	dc.ClosePath()
	dc.Fill()
}
