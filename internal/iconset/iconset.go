// Package iconset knows the layout of a macOS AppIcon.iconset staging
// directory: which renditions exist, what they are called, and how to
// fill a directory with them.
package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sizes lists every base size in the iconset, ascending. Each base size
// gets a standard and an @2x rendition except MaxSize, whose @2x would
// exceed the largest rendition macOS uses.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

// MaxSize is the largest base size; it has no @2x rendition.
const MaxSize = 1024

// DirName is the staging directory name iconutil expects.
const DirName = "AppIcon.iconset"

const (
	// DirPerm is the mode for created directories.
	DirPerm = 0755
	// FilePerm is the mode for created files.
	FilePerm = 0644
)

// Renderer produces the square image for one base size at the given
// pixel-density scale.
type Renderer func(size, scale int) image.Image

// FileName returns the rendition file name for a base size and scale.
func FileName(size, scale int) string {
	if scale == 2 {
		return fmt.Sprintf("icon_%dx%d@2x.png", size, size)
	}
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// Count is the number of rendition files in a complete iconset.
func Count() int {
	return len(Sizes)*2 - 1
}

// Write renders every rendition into dir, which must already exist.
// Renditions are produced smallest to largest, standard before @2x.
// The first failed file stops the run and is reported.
func Write(dir string, render Renderer) error {
	for _, size := range Sizes {
		if err := writePNG(dir, FileName(size, 1), render(size, 1)); err != nil {
			return err
		}
		if size == MaxSize {
			continue
		}
		if err := writePNG(dir, FileName(size, 2), render(size, 2)); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(dir, name string, img image.Image) error {
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
