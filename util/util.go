package util

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// RecreateOutputDir wipes and recreates the given directory so a run never
// mixes its documents with leftovers from a previous one.
func RecreateOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "could not clear output dir %v", dir)
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return errors.Wrapf(err, "could not create output dir %v", dir)
	}
	return nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// CeilDiv is ceil(total / size) for positive size.
func CeilDiv[A constraints.Integer](total A, size A) A {
	return (total + size - 1) / size
}
