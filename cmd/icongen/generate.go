package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Mavwarf/icongen/internal/icon"
	"github.com/Mavwarf/icongen/internal/iconset"
	"github.com/Mavwarf/icongen/internal/iconutil"
	"github.com/Mavwarf/icongen/internal/magick"
	"github.com/Mavwarf/icongen/internal/svgicon"
	"github.com/Mavwarf/icongen/internal/winicon"
)

// writeRenditions fills dir with every iconset PNG. The in-process
// renderer is the primary path; ImageMagick takes over when the caller
// forces it or when the primary path fails with ImageMagick installed.
func writeRenditions(dir string, forceFallback bool) error {
	if forceFallback {
		fmt.Println("Built-in renderer disabled. Creating a basic icon instead...")
		return magick.Write(dir)
	}
	err := iconset.Write(dir, icon.Render)
	if err == nil {
		return nil
	}
	if !magick.Available() {
		return err
	}
	fmt.Printf("Renderer failed (%v). Creating a basic icon instead...\n", err)
	return magick.Write(dir)
}

// generateICNS stages the iconset under a fresh temporary directory,
// packages it with iconutil, and removes the staging tree whatever the
// outcome. A kept AppIcon.iconset in the working directory is never
// touched.
func generateICNS(dst string, forceFallback bool) error {
	tmp, err := os.MkdirTemp("", "icongen-*")
	if err != nil {
		return fmt.Errorf("staging dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	dir := filepath.Join(tmp, iconset.DirName)
	if err := os.Mkdir(dir, iconset.DirPerm); err != nil {
		return fmt.Errorf("staging dir: %w", err)
	}
	if err := writeRenditions(dir, forceFallback); err != nil {
		return err
	}
	return iconutil.ToICNS(dir, dst)
}

func runICNS(outPath string, fallback bool) {
	if outPath == "" {
		outPath = "AppIcon.icns"
	}
	if err := generateICNS(outPath, fallback); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Icon generated: %s\n", outPath)
}

func runIconset(outPath string, fallback bool) {
	if outPath == "" {
		outPath = iconset.DirName
	}
	if err := os.MkdirAll(outPath, iconset.DirPerm); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeRenditions(outPath, fallback); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Iconset written: %s\n", outPath)
}

func runICO(outPath string) {
	if outPath == "" {
		outPath = "AppIcon.ico"
	}
	if err := winicon.Build(outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Icon generated: %s\n", outPath)
}

func runSVG(outPath string) {
	if outPath == "" {
		outPath = "AppIcon.svg"
	}
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, iconset.FilePerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	svgicon.Write(f)
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Icon generated: %s\n", outPath)
}

// resolvePNGOut picks the png command's output path from the optional
// positional argument and the --out flag. Giving both is an error.
func resolvePNGOut(args []string, outPath string) (string, error) {
	switch len(args) {
	case 0:
	case 1:
		if outPath != "" {
			return "", fmt.Errorf("output path given both as --out and as an argument")
		}
		outPath = args[0]
	default:
		return "", fmt.Errorf("expected at most one output path")
	}
	if outPath == "" {
		outPath = "AppIcon.png"
	}
	return outPath, nil
}

func runPNG(args []string, outPath string, size int) {
	outPath, err := resolvePNGOut(args, outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'icongen help' for usage.\n")
		os.Exit(1)
	}
	if size == 0 {
		size = 256
	}

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, iconset.FilePerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(f, icon.Render(size, 1)); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Icon generated: %s (%dx%d)\n", outPath, size, size)
}
