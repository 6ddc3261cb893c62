package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 10, 10*time.Millisecond)
	if s.AveragePopulation != 10 {
		t.Errorf("first average = %v, want 10", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-9 {
		t.Errorf("GenerationsPerSecond = %v, want 100", s.GenerationsPerSecond)
	}

	s.Update(2, 20, 0)
	if math.Abs(s.AveragePopulation-11) > 1e-9 {
		t.Errorf("moving average = %v, want 11", s.AveragePopulation)
	}
	if s.PeakPopulation != 20 {
		t.Errorf("PeakPopulation = %d, want 20", s.PeakPopulation)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("TotalGenerations = %d, want 2", s.TotalGenerations)
	}

	s.Update(3, 5, time.Millisecond)
	if s.PeakPopulation != 20 {
		t.Errorf("PeakPopulation dropped to %d", s.PeakPopulation)
	}
}
