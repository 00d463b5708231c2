package pattern

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/jjjules/all-of-the-rythmns/constants"
	"github.com/jjjules/all-of-the-rythmns/model"
)

// ValidateLength rejects pattern lengths that are non-positive or so large
// that enumerating 2^n measures stops being practical.
func ValidateLength(n int) error {
	if n < 1 {
		return errors.Errorf("pattern length must be a positive integer, got %v", n)
	}
	if n > constants.MaxPatternLength {
		return errors.Errorf("pattern length %v is too large: 2^%v patterns would exhaust practical memory and time (max is %v)",
			n, n, constants.MaxPatternLength)
	}
	return nil
}

// Enumerate produces every pattern of length n, in ascending bitmask order.
// The result always has exactly 2^n entries with no duplicates.
func Enumerate(n int) ([]model.Pattern, error) {
	if err := ValidateLength(n); err != nil {
		return nil, err
	}
	total := 1 << n
	res := make([]model.Pattern, 0, total)
	for bits := 0; bits < total; bits++ {
		res = append(res, model.Pattern{Bits: uint32(bits), Length: n})
	}
	return res, nil
}

// SortGrouped orders patterns so that rhythms with the same number of onsets
// sit next to each other: ascending hit-count first, ascending bitmask within
// a group. This is a total order, so the result is the same no matter how the
// input was arranged.
func SortGrouped(patterns []model.Pattern) {
	sort.Slice(patterns, func(i, j int) bool {
		hi, hj := patterns[i].HitCount(), patterns[j].HitCount()
		if hi != hj {
			return hi < hj
		}
		return patterns[i].Bits < patterns[j].Bits
	})
}

// Group buckets patterns by hit-count. Every pattern lands in exactly one
// bucket, so the buckets partition the input.
func Group(patterns []model.Pattern) map[int][]model.Pattern {
	res := make(map[int][]model.Pattern)
	for _, p := range patterns {
		count := p.HitCount()
		res[count] = append(res[count], p)
	}
	return res
}
