package pricing

import "testing"

func TestEstimate(t *testing.T) {
	tests := []struct {
		name       string
		followers  int64
		engagement float64
		expected   float64
	}{
		{"zero followers", 0, 5.0, 0},
		{"negative followers clamped", -100, 5.0, 0},
		{"negative engagement clamped", 10000, -3.0, 250},
		{"zero engagement", 10000, 0, 250},
		{"mid account", 50000, 3.0, 2000},
		{"small account hits floor", 100, 0, 10},
		{"large account", 1000000, 1.0, 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.followers, tt.engagement)
			if got != tt.expected {
				t.Errorf("Estimate(%d, %v) = %v, want %v", tt.followers, tt.engagement, got, tt.expected)
			}
		})
	}
}

func TestEstimateDeterministic(t *testing.T) {
	e := Default()
	first := e.Estimate(123456, 2.7)
	for i := 0; i < 100; i++ {
		if got := e.Estimate(123456, 2.7); got != first {
			t.Fatalf("Estimate not deterministic: %v != %v", got, first)
		}
	}
}

func TestEstimateMonotonicInFollowers(t *testing.T) {
	e := Default()
	prev := 0.0
	for _, f := range []int64{1000, 5000, 20000, 100000, 1000000} {
		got := e.Estimate(f, 2.0)
		if got < prev {
			t.Errorf("Estimate(%d, 2.0) = %v, decreased from %v", f, got, prev)
		}
		prev = got
	}
}
