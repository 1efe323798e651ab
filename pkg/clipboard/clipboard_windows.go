//go:build windows

package clipboard

import (
	"fmt"
	"os"
	"os/exec"
)

func bridgeNames() []string {
	return []string{"clip.exe", "powershell.exe"}
}

// writeImagePNG stages the PNG in a temporary file and loads it onto the
// clipboard through Windows Forms. Clipboard access requires an STA thread,
// hence the -STA switch. The temp file is removed on all paths.
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

	script := fmt.Sprintf(
		"Add-Type -AssemblyName System.Windows.Forms; Add-Type -AssemblyName System.Drawing; "+
			"$img = [System.Drawing.Image]::FromFile('%s'); "+
			"[System.Windows.Forms.Clipboard]::SetImage($img); $img.Dispose()",
		f.Name())
	cmd := exec.Command("powershell.exe", "-NoProfile", "-STA", "-Command", script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("powershell failed: %w: %s", err, out)
		}
		return fmt.Errorf("powershell failed: %w", err)
	}
	return nil
}
