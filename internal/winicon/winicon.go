// Package winicon exports the rocket badge as a multi-resolution
// Windows ICO container.
package winicon

import (
	"fmt"
	"image"
	"os"

	"github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/Mavwarf/icongen/internal/icon"
	"github.com/Mavwarf/icongen/internal/iconset"
)

// Sizes are the resolutions embedded in the container, largest first.
// 48 has no iconset counterpart but is a standard Windows shell size.
var Sizes = []int{256, 128, 64, 48, 32, 16}

// Build renders one large master, resamples it to every embedded
// resolution, and writes the container to dst.
func Build(dst string) error {
	master := icon.Render(iconset.MaxSize, 1)

	images := make([]image.Image, 0, len(Sizes))
	for _, size := range Sizes {
		scaled := image.NewRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), master, master.Bounds(), xdraw.Src, nil)
		images = append(images, scaled)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, iconset.FilePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
