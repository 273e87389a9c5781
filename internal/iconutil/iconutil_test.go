package iconutil

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestToICNSMissingTool(t *testing.T) {
	if _, err := exec.LookPath("iconutil"); err == nil {
		t.Skip("iconutil is installed; cannot test the missing-binary path")
	}
	err := ToICNS("AppIcon.iconset", "AppIcon.icns")
	if err == nil {
		t.Fatal("expected an error when iconutil is missing")
	}
	if !strings.Contains(err.Error(), "iconutil not found") {
		t.Errorf("error %q does not name the missing tool", err)
	}
}

func TestToICNSBadDir(t *testing.T) {
	if _, err := exec.LookPath("iconutil"); err != nil {
		t.Skip("iconutil not installed")
	}
	dir := t.TempDir()
	err := ToICNS(filepath.Join(dir, "missing.iconset"), filepath.Join(dir, "out.icns"))
	if err == nil {
		t.Fatal("expected an error for a nonexistent iconset directory")
	}
}
