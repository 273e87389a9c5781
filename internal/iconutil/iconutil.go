// Package iconutil wraps the macOS iconutil binary for icns packaging.
package iconutil

import (
	"fmt"
	"os/exec"
)

// ToICNS bundles the iconset directory at dir into a single icns file
// at dst. Returns an error if iconutil is not installed; the tool ships
// with macOS only.
func ToICNS(dir, dst string) error {
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found in PATH (required for icns packaging): %w", err)
	}
	cmd := exec.Command("iconutil", "-c", "icns", "-o", dst, dir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("iconutil convert: %w\n%s", err, out)
	}
	return nil
}
