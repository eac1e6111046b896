package sanitize

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestInt64(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if got := Int64(nil); got != nil {
			t.Errorf("expected nil, got %d", *got)
		}
	})

	t.Run("nan", func(t *testing.T) {
		if got := Int64(f(math.NaN())); got != nil {
			t.Errorf("expected nil for NaN, got %d", *got)
		}
	})

	t.Run("positive_inf", func(t *testing.T) {
		if got := Int64(f(math.Inf(1))); got != nil {
			t.Errorf("expected nil for +Inf, got %d", *got)
		}
	})

	t.Run("negative_inf", func(t *testing.T) {
		if got := Int64(f(math.Inf(-1))); got != nil {
			t.Errorf("expected nil for -Inf, got %d", *got)
		}
	})

	t.Run("truncates_toward_zero", func(t *testing.T) {
		cases := []struct {
			in   float64
			want int64
		}{
			{123.9, 123},
			{-123.9, -123},
			{0, 0},
			{1e9, 1000000000},
		}
		for _, c := range cases {
			got := Int64(f(c.in))
			if got == nil {
				t.Fatalf("Int64(%v) = nil, want %d", c.in, c.want)
			}
			if *got != c.want {
				t.Errorf("Int64(%v) = %d, want %d", c.in, *got, c.want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		// Re-sanitizing an already sanitized value must not change it.
		first := Int64(f(456.7))
		asFloat := float64(*first)
		second := Int64(&asFloat)
		if *second != *first {
			t.Errorf("expected %d after re-sanitizing, got %d", *first, *second)
		}
	})
}

func TestFloat64(t *testing.T) {
	if got := Float64(nil); got != nil {
		t.Errorf("expected nil, got %f", *got)
	}
	if got := Float64(f(math.NaN())); got != nil {
		t.Errorf("expected nil for NaN, got %f", *got)
	}
	if got := Float64(f(101.5)); got == nil || *got != 101.5 {
		t.Errorf("expected 101.5 passthrough, got %v", got)
	}
}
