// Package magick renders a simplified stand-in icon by shelling out to
// ImageMagick. It is the degraded path used when the in-process
// renderer cannot produce the iconset.
package magick

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/Mavwarf/icongen/internal/iconset"
)

// lookPath probes the ImageMagick entry points in order of preference:
// the v7 "magick" front end first, then the legacy "convert".
func lookPath() (string, error) {
	for _, bin := range []string{"magick", "convert"} {
		if path, err := exec.LookPath(bin); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("imagemagick not found in PATH (tried magick, convert)")
}

// Available reports whether an ImageMagick binary is installed.
func Available() bool {
	_, err := lookPath()
	return err == nil
}

// args builds the draw instructions for one rendition: a transparent
// canvas with a red triangle for the rocket and an orange disc for the
// flame, all coordinates in fifths and tenths of the canvas side.
func args(px int, out string) []string {
	return []string{
		"-size", fmt.Sprintf("%dx%d", px, px),
		"xc:transparent",
		"-fill", "red",
		"-draw", fmt.Sprintf("polygon %d,%d %d,%d %d,%d",
			px/2, px/5, px*3/5, px*4/5, px*2/5, px*4/5),
		"-fill", "orange",
		"-draw", fmt.Sprintf("circle %d,%d %d,%d",
			px/2, px*4/5, px/2, px*9/10),
		out,
	}
}

func render(bin string, px int, dst string) error {
	cmd := exec.Command(bin, args(px, dst)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("imagemagick draw: %w\n%s", err, out)
	}
	return nil
}

// Write fills dir with the full set of simplified renditions, one per
// iconset file name, using a single probed binary for every call.
func Write(dir string) error {
	bin, err := lookPath()
	if err != nil {
		return err
	}
	for _, size := range iconset.Sizes {
		if err := render(bin, size, filepath.Join(dir, iconset.FileName(size, 1))); err != nil {
			return err
		}
		if size == iconset.MaxSize {
			continue
		}
		if err := render(bin, size*2, filepath.Join(dir, iconset.FileName(size, 2))); err != nil {
			return err
		}
	}
	return nil
}
