package token

import (
	"testing"
)

func TestCount(t *testing.T) {
	counter := NewCounter()

	// Probe once so an offline environment skips rather than fails: the
	// encoder data may need to be fetched on first use.
	if _, err := counter.Count(""); err != nil {
		t.Skipf("cl100k_base encoder unavailable: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "empty", input: "", expected: 0},
		{name: "hello world", input: "hello world", expected: 2},
		{name: "single word", input: "hello", expected: 1},
		{name: "repeated phrase", input: "hello world hello world", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := counter.Count(tt.input)
			if err != nil {
				t.Fatalf("Count(%q) returned error: %v", tt.input, err)
			}
			if n != tt.expected {
				t.Errorf("Count(%q) = %d, want %d", tt.input, n, tt.expected)
			}
		})
	}
}

func TestCount_Deterministic(t *testing.T) {
	counter := NewCounter()

	first, err := counter.Count("the quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Skipf("cl100k_base encoder unavailable: %v", err)
	}

	for i := 0; i < 5; i++ {
		n, err := counter.Count("the quick brown fox jumps over the lazy dog")
		if err != nil {
			t.Fatalf("Count() returned error on repeat %d: %v", i, err)
		}
		if n != first {
			t.Errorf("Count() = %d on repeat %d, want %d", n, i, first)
		}
	}
}
