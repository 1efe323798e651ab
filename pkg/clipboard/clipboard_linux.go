//go:build linux

package clipboard

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

func bridgeNames() []string {
	return []string{"xclip", "xsel"}
}

// writeImagePNG pipes the PNG bytes to the platform bridge with an image/png
// target. Wayland sessions use wl-copy; X11 uses xclip. xsel has no image
// support, so an xsel-only host can copy text but not images.
func writeImagePNG(data []byte) error {
	var cmd *exec.Cmd
	switch {
	case os.Getenv("WAYLAND_DISPLAY") != "" && commandExists("wl-copy"):
		cmd = exec.Command("wl-copy", "-t", "image/png")
	case commandExists("xclip"):
		cmd = exec.Command("xclip", "-selection", "clipboard", "-t", "image/png")
	default:
		return fmt.Errorf("no image-capable clipboard bridge found (xclip or wl-copy required)")
	}

	cmd.Stdin = bytes.NewReader(data)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s failed: %w: %s", cmd.Path, err, out)
		}
		return fmt.Errorf("%s failed: %w", cmd.Path, err)
	}
	return nil
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
