// Package sanitize normalizes numeric values coming from external, untrusted
// market data sources. Providers routinely use NaN or infinities as sentinels
// for unreported metrics; those must never reach storage as invalid numeric
// state. Every externally-sourced value destined for an integral column
// (market cap, volume, statement metrics) goes through this package.
package sanitize

import "math"

// Int64 converts an optional floating-point value to an optional integral
// one. Nil, NaN, and ±Inf inputs all map to nil; finite values are truncated
// toward zero.
func Int64(v *float64) *int64 {
	if v == nil || !isFinite(*v) {
		return nil
	}
	n := int64(*v)
	return &n
}

// Float64 passes through an optional continuous value, mapping NaN and ±Inf
// to nil. Used for price fields that stay floating-point in storage.
func Float64(v *float64) *float64 {
	if v == nil || !isFinite(*v) {
		return nil
	}
	return v
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
