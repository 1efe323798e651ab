package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestAnyOnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH probing test uses a unix-style executable")
	}

	tmpDir := t.TempDir()
	fake := filepath.Join(tmpDir, "fake-bridge")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to create fake executable: %v", err)
	}
	t.Setenv("PATH", tmpDir)

	tests := []struct {
		name     string
		names    []string
		expected bool
	}{
		{name: "present", names: []string{"fake-bridge"}, expected: true},
		{name: "one of several present", names: []string{"no-such-tool", "fake-bridge"}, expected: true},
		{name: "absent", names: []string{"no-such-tool"}, expected: false},
		{name: "empty", names: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := anyOnPath(tt.names); result != tt.expected {
				t.Errorf("anyOnPath(%v) = %v, want %v", tt.names, result, tt.expected)
			}
		})
	}
}

func TestCheck_Cached(t *testing.T) {
	first := Check()
	second := Check()

	if len(first) != len(second) {
		t.Fatalf("Check() results differ between calls: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Check()[%d] = %q on repeat, want %q", i, second[i], first[i])
		}
	}
}
