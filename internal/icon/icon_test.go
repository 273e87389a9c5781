package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	xdraw "golang.org/x/image/draw"

	"github.com/Mavwarf/icongen/internal/rocket"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{16, 32, 64, 128, 256, 512, 1024} {
		for _, scale := range []int{1, 2} {
			img := Render(size, scale)
			want := image.Rect(0, 0, size*scale, size*scale)
			if img.Bounds() != want {
				t.Errorf("Render(%d, %d).Bounds() = %v, want %v", size, scale, img.Bounds(), want)
			}
		}
	}
}

// Probes sit well inside each figure so antialiased edges cannot touch
// them; an exact color match is expected there.
func TestRenderColors(t *testing.T) {
	probes := []struct {
		size, x, y int
		want       color.RGBA
		figure     string
	}{
		{256, 128, 30, rocket.BadgeWhite, "badge"},
		{256, 128, 140, rocket.BodyRed, "body"},
		{256, 128, 104, rocket.WindowBlue, "window"},
		{256, 83, 176, rocket.FinDarkRed, "left fin"},
		{256, 128, 190, rocket.FlameOrange, "flame"},
		{1024, 512, 100, rocket.BadgeWhite, "badge"},
		{1024, 511, 560, rocket.BodyRed, "body"},
		{1024, 511, 419, rocket.WindowBlue, "window"},
		{1024, 327, 706, rocket.FinDarkRed, "left fin"},
		{1024, 511, 760, rocket.FlameOrange, "flame"},
	}
	rendered := map[int]image.Image{}
	for _, p := range probes {
		img, ok := rendered[p.size]
		if !ok {
			img = Render(p.size, 1)
			rendered[p.size] = img
		}
		got := color.RGBAModel.Convert(img.At(p.x, p.y)).(color.RGBA)
		if got != p.want {
			t.Errorf("size %d %s at (%d,%d) = %v, want %v", p.size, p.figure, p.x, p.y, got, p.want)
		}
	}
}

func TestRenderTransparentCorners(t *testing.T) {
	for _, size := range []int{16, 256, 1024} {
		img := Render(size, 1)
		n := size - 1
		for _, pt := range []image.Point{{0, 0}, {n, 0}, {0, n}, {n, n}} {
			if _, _, _, a := img.At(pt.X, pt.Y).RGBA(); a != 0 {
				t.Errorf("size %d corner (%d,%d) alpha = %d, want 0", size, pt.X, pt.Y, a)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	if err := png.Encode(&first, Render(64, 1)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := png.Encode(&second, Render(64, 1)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two renders of the same size produced different PNG bytes")
	}
}

// A @2x render halved with a nearest-neighbor pass must show the rocket
// body in the same place as the 1x render, give or take the pixel
// truncation done independently at each size.
func TestRenderScaleSilhouette(t *testing.T) {
	base := Render(256, 1)
	retina := Render(256, 2)

	halved := image.NewRGBA(image.Rect(0, 0, 256, 256))
	xdraw.NearestNeighbor.Scale(halved, halved.Bounds(), retina, retina.Bounds(), xdraw.Src, nil)

	got, ok := colorBounds(halved, rocket.BodyRed)
	if !ok {
		t.Fatal("no body pixels in halved @2x render")
	}
	want, ok := colorBounds(base, rocket.BodyRed)
	if !ok {
		t.Fatal("no body pixels in 1x render")
	}

	const tol = 3
	if abs(got.Min.X-want.Min.X) > tol || abs(got.Min.Y-want.Min.Y) > tol ||
		abs(got.Max.X-want.Max.X) > tol || abs(got.Max.Y-want.Max.Y) > tol {
		t.Errorf("body bounds drifted: halved @2x %v vs 1x %v", got, want)
	}
}

// colorBounds returns the bounding box of the pixels exactly matching c.
func colorBounds(img image.Image, c color.RGBA) (image.Rectangle, bool) {
	var r image.Rectangle
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)).(color.RGBA) != c {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				r = px
				found = true
			} else {
				r = r.Union(px)
			}
		}
	}
	return r, found
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
