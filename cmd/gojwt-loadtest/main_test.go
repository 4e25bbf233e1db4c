package main

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func TestPercentile(t *testing.T) {
	samples := []time.Duration{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := percentile(samples, 0); got != 1 {
		t.Fatalf("p0 expected 1, got %d", got)
	}
	if got := percentile(samples, 50); got != 5 {
		t.Fatalf("p50 expected 5, got %d", got)
	}
	if got := percentile(samples, 100); got != 10 {
		t.Fatalf("p100 expected 10, got %d", got)
	}
	if got := percentile(nil, 50); got != 0 {
		t.Fatalf("empty expected 0, got %d", got)
	}
}

func TestRunPhaseCountsFailures(t *testing.T) {
	stats := runPhase(100, 4, 1, func(i int, _ *rand.Rand) error {
		if i%10 == 0 {
			return errors.New("boom")
		}
		return nil
	})
	if stats.ops != 100 {
		t.Fatalf("expected 100 ops, got %d", stats.ops)
	}
	if stats.failures != 10 {
		t.Fatalf("expected 10 failures, got %d", stats.failures)
	}
}
