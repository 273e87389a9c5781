package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	outPath := ""
	size := 0
	fallback := false

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out", "-o":
			if i+1 < len(args) {
				outPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a path\n")
				os.Exit(1)
			}
		case "--size", "-s":
			if i+1 < len(args) {
				v, err := strconv.Atoi(args[i+1])
				if err != nil || v < 16 || v > 4096 {
					fmt.Fprintf(os.Stderr, "Error: size must be a number between 16 and 4096\n")
					os.Exit(1)
				}
				size = v
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --size requires a value (16-4096)\n")
				os.Exit(1)
			}
		case "--fallback":
			fallback = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	// Bare invocation builds the icns bundle, same as "icongen icns".
	if len(filtered) == 0 {
		runICNS(outPath, fallback)
		return
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		printVersion()
	case "icns":
		runICNS(outPath, fallback)
	case "iconset":
		runIconset(outPath, fallback)
	case "ico":
		runICO(outPath)
	case "svg":
		runSVG(outPath)
	case "png":
		runPNG(filtered[1:], outPath, size)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(os.Stderr, "Run 'icongen help' for usage.\n")
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("icongen %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("icongen %s - Generate the rocket app icon in desktop formats\n", version)
	fmt.Println(`
Usage:
  icongen [options] [command]

Options:
  --out, -o <path>       Output path (default depends on the command)
  --size, -s <16-4096>   Side length for the png command (default: 256)
  --fallback             Skip the built-in renderer, draw with ImageMagick

Commands:
  icns                   Build AppIcon.icns via iconutil (default command)
  iconset                Write the AppIcon.iconset directory and keep it
  png [path]             Write a single PNG rendition
  ico                    Build a multi-resolution AppIcon.ico for Windows
  svg                    Write a scalable AppIcon.svg master
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Formats:
  icns packs 13 renditions (16 to 1024 px, with @2x pairs) for macOS.
  ico embeds 256, 128, 64, 48, 32 and 16 px for Windows shells.

Examples:
  icongen                          Build AppIcon.icns in the current directory
  icongen -o build/AppIcon.icns    Build to a custom path
  icongen iconset                  Write AppIcon.iconset for inspection
  icongen png -s 512 logo.png      One 512 px PNG
  icongen --fallback               Use the simplified ImageMagick icon

Created by Thomas Häuser
https://mavwarf.netlify.app/
https://github.com/Mavwarf/icongen`)
}
