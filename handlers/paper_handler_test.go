package handlers

import "testing"

func intPtr(n int) *int { return &n }

func TestDefaultMCQCount(t *testing.T) {
	tests := []struct {
		name      string
		requested *int
		want      int
	}{
		{"omitted field defaults", nil, 25},
		{"explicit zero composes empty paper", intPtr(0), 0},
		{"explicit count kept", intPtr(10), 10},
		{"larger than pool kept", intPtr(500), 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := defaultMCQCount(tc.requested); got != tc.want {
				t.Errorf("defaultMCQCount(%v) = %d, want %d", tc.requested, got, tc.want)
			}
		})
	}
}
