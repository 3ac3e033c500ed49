package engine

import "testing"

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w", true},
		{"K+B vs K+B same colour squares", "5b2/8/8/8/8/8/8/2B1K3 w", true},
		{"K+B vs K+B opposite colour squares", "5b2/8/8/8/8/8/8/3BK3 w", false},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w", false},
		{"K+N vs K+N", "4kn2/8/8/8/8/8/8/4KN2 w", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}
