package cli

import "testing"

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		n      uint32
		want   string
	}{
		{"empty output derives from index", "", 10, "fibspiral_10"},
		{"format extension stripped", "spiral.svg", 5, "spiral"},
		{"png extension stripped", "out/spiral.png", 5, "out/spiral"},
		{"unknown extension kept", "spiral.backup", 5, "spiral.backup"},
		{"no extension kept", "spiral", 5, "spiral"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.n); got != tt.want {
				t.Errorf("basePath(%q, %d) = %q, want %q", tt.output, tt.n, got, tt.want)
			}
		})
	}
}
