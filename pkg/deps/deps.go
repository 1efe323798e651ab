// Package deps verifies the host has a working clipboard stack before any
// clipboard interaction is attempted. The check runs once per process and
// its result is cached.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"copybuffer/pkg/clipboard"
)

var (
	once    sync.Once
	missing []string
)

// Check returns the names of missing clipboard dependencies. An empty result
// means the clipboard stack is usable. The probe runs once; subsequent calls
// return the cached result.
func Check() []string {
	once.Do(func() {
		missing = probe()
	})
	return missing
}

func probe() []string {
	var out []string

	bridges := clipboard.BridgeNames()
	switch {
	case len(bridges) == 0:
		out = append(out, "a clipboard bridge utility")
	case !anyOnPath(bridges):
		out = append(out, strings.Join(bridges, " or "))
	}

	if !clipboard.Supported() {
		out = append(out, "clipboard library support")
	}

	return out
}

func anyOnPath(names []string) bool {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// Report prints the missing-dependency block followed by installation
// guidance. It is a no-op when nothing is missing.
func Report(names []string) {
	if len(names) == 0 {
		return
	}

	fmt.Println("Missing dependencies:")
	for _, name := range names {
		fmt.Printf("- %s\n", name)
	}

	fmt.Println("Please install the following dependencies:")
	for _, name := range names {
		fmt.Printf("- %s\n", name)
	}
}
