//go:build !linux && !darwin && !windows

package clipboard

import "fmt"

func bridgeNames() []string {
	return nil
}

// writeImagePNG is not supported on this platform.
func writeImagePNG(data []byte) error {
	return fmt.Errorf("image clipboard is not supported on this platform")
}
