package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jjjules/all-of-the-rythmns/model"
)

func TestEnumerateProducesAllDistinctPatterns(t *testing.T) {
	patterns, err := Enumerate(3)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(8, len(patterns))

	seen := make(map[uint32]bool)
	for i, p := range patterns {
		assert.Equal(3, p.Length)
		assert.Equal(uint32(i), p.Bits)
		assert.False(seen[p.Bits])
		seen[p.Bits] = true
	}
}

func TestEnumerateSingleSlot(t *testing.T) {
	patterns, err := Enumerate(1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.Pattern{{Bits: 0, Length: 1}, {Bits: 1, Length: 1}}, patterns)
}

func TestEnumerateRejectsBadLengths(t *testing.T) {
	for _, n := range []int{0, -1, -42, 25, 100} {
		_, err := Enumerate(n)
		if err == nil {
			t.Errorf("Enumerate(%v) should have failed", n)
		}
	}
}

func TestGroupMatchesBinomialCoefficients(t *testing.T) {
	patterns, err := Enumerate(3)
	assert := assert.New(t)
	assert.NoError(err)

	groups := Group(patterns)
	assert.Equal(4, len(groups))
	assert.Equal(1, len(groups[0]))
	assert.Equal(3, len(groups[1]))
	assert.Equal(3, len(groups[2]))
	assert.Equal(1, len(groups[3]))
}

func TestGroupPartitionsTheWholeSpace(t *testing.T) {
	patterns, err := Enumerate(4)
	assert := assert.New(t)
	assert.NoError(err)

	groups := Group(patterns)
	total := 0
	for count, group := range groups {
		total += len(group)
		for _, p := range group {
			assert.Equal(count, p.HitCount())
		}
	}
	assert.Equal(16, total)
}

func TestSortGroupedOrdersByHitCountThenBitmask(t *testing.T) {
	patterns := []model.Pattern{
		{Bits: 3, Length: 2},
		{Bits: 2, Length: 2},
		{Bits: 0, Length: 2},
		{Bits: 1, Length: 2},
	}
	SortGrouped(patterns)

	var got []uint32
	for _, p := range patterns {
		got = append(got, p.Bits)
	}
	assert.Equal(t, []uint32{0, 1, 2, 3}, got)
}

func TestSortGroupedIsDeterministic(t *testing.T) {
	a, err := Enumerate(5)
	assert := assert.New(t)
	assert.NoError(err)

	// feed the same patterns in the opposite order
	b := make([]model.Pattern, len(a))
	for i, p := range a {
		b[len(a)-1-i] = p
	}

	SortGrouped(a)
	SortGrouped(b)
	assert.Equal(a, b)

	for i := 1; i < len(a); i++ {
		prev, curr := a[i-1], a[i]
		if prev.HitCount() == curr.HitCount() {
			assert.Less(prev.Bits, curr.Bits)
		} else {
			assert.Less(prev.HitCount(), curr.HitCount())
		}
	}
}
