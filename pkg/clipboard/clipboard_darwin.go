//go:build darwin

package clipboard

import (
	"fmt"
	"os"
	"os/exec"
)

func bridgeNames() []string {
	return []string{"pbcopy", "osascript"}
}

// writeImagePNG stages the PNG in a temporary file and asks osascript to set
// the clipboard to its contents as PNG data. The temp file is removed on all
// paths.
func writeImagePNG(data []byte) error {
	f, err := os.CreateTemp("", "copybuffer-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp image file: %w", err)
	}

	script := fmt.Sprintf(`set the clipboard to (read (POSIX file %q) as «class PNGf»)`, f.Name())
	cmd := exec.Command("osascript", "-e", script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("osascript failed: %w: %s", err, out)
		}
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}
