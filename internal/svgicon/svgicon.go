// Package svgicon emits the rocket badge as a vector document carrying
// the same geometry as the largest raster rendition.
package svgicon

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/Mavwarf/icongen/internal/iconset"
	"github.com/Mavwarf/icongen/internal/rocket"
)

// Write draws the badge into w as a complete SVG document. The drawing
// calls never report writer errors, so callers own flushing and closing
// the destination.
func Write(w io.Writer) {
	l := rocket.NewLayout(iconset.MaxSize, 1)
	canvas := svg.New(w)
	canvas.Start(l.Canvas, l.Canvas)

	cx, cy, r := circleParams(l.Badge)
	canvas.Circle(cx, cy, r, fill(rocket.BadgeWhite))

	xs, ys := split(l.Body)
	canvas.Polygon(xs, ys, fill(rocket.BodyRed))

	cx, cy, r = circleParams(l.Window)
	canvas.Circle(cx, cy, r, fill(rocket.WindowBlue))

	xs, ys = split(l.FinLeft)
	canvas.Polygon(xs, ys, fill(rocket.FinDarkRed))
	xs, ys = split(l.FinRight)
	canvas.Polygon(xs, ys, fill(rocket.FinDarkRed))

	xs, ys = split(l.Flame)
	canvas.Polygon(xs, ys, fill(rocket.FlameOrange))

	canvas.End()
}

// circleParams converts ellipse bounds to svg circle parameters. The
// 1024 layout hands out even diameters, so integer math is exact here.
func circleParams(b rocket.Box) (cx, cy, r int) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2, (b.X1 - b.X0) / 2
}

func split(pts []rocket.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func fill(c color.RGBA) string {
	return fmt.Sprintf("fill:rgb(%d,%d,%d)", c.R, c.G, c.B)
}
