package features

import "math"

// ShannonEntropy is the base-2 entropy of s over its characters (runes).
// The empty string has entropy 0.
func ShannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	counts := make(map[rune]int)
	var order []rune
	total := 0
	for _, r := range s {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
		total++
	}

	// Sum in first-seen order so the result is bit-for-bit reproducible.
	n := float64(total)
	h := 0.0
	for _, r := range order {
		p := float64(counts[r]) / n
		h -= p * math.Log2(p)
	}
	if h <= 0 {
		return 0
	}
	return h
}
