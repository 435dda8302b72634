// Package settest is a battery of tests that every Sets.Set implementation is
// expected to pass. Backends call Run from their own tests.
package settest

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/ordset/Sets"
)

const (
	tOpN       = 4000
	tValRange  = 1500
	tCheckStep = 250
)

// Run the whole battery against sets built by newSet, which must return a
// new empty set on every call. The optional check is called after every batch
// of random operations with the set under test, so backends can assert
// invariants of their own.
func Run(t *testing.T, newSet func() Sets.Set, check func(t *testing.T, s Sets.Set)) {
	t.Run("Scenario", func(t *testing.T) { testScenario(t, newSet()) })
	t.Run("Empty", func(t *testing.T) { testEmpty(t, newSet()) })
	t.Run("Duplicates", func(t *testing.T) { testDuplicates(t, newSet()) })
	t.Run("Extremes", func(t *testing.T) { testExtremes(t, newSet()) })
	t.Run("Random", func(t *testing.T) { testRandom(t, newSet(), check) })
}

// Scenario inserts 1, 5, 2, 4, 3 and runs the queries every backend must agree on.
func Scenario(s Sets.Set) Sets.Set {
	Sets.Adds(s, 1, 5, 2, 4, 3)
	return s
}

func testScenario(t *testing.T, s Sets.Set) {
	Scenario(s)
	require.EqualValues(t, 5, s.Size())

	assert.True(t, s.Member(3))
	assert.False(t, s.Member(6))

	_, ok := s.Predecessor(1)
	assert.False(t, ok)
	p, ok := s.Predecessor(5)
	assert.True(t, ok)
	assert.EqualValues(t, 4, p)

	assert.EqualValues(t, 1, s.Rank(1))
	assert.EqualValues(t, 3, s.Rank(3))
	assert.EqualValues(t, 5, s.Rank(6))

	requireSelect(t, s, 0, 1)
	requireSelect(t, s, 3, 4)

	requireSelect(t, s, 2, 3)
	assert.True(t, s.Delete(3))
	requireSelect(t, s, 2, 4)

	assert.True(t, s.Insert(3))
	requireSelect(t, s, 4, 5)
	assert.False(t, s.Delete(6))
	requireSelect(t, s, 4, 5)
	assert.EqualValues(t, 5, s.Size())
}

func requireSelect(t *testing.T, s Sets.Set, j uint, want int32) {
	t.Helper()
	v, ok := s.Select(j)
	require.True(t, ok, "select %d", j)
	require.Equal(t, want, v, "select %d", j)
}

func testEmpty(t *testing.T, s Sets.Set) {
	assert.Zero(t, s.Size())
	assert.False(t, s.Member(0))
	_, ok := s.Predecessor(0)
	assert.False(t, ok)
	assert.Zero(t, s.Rank(math.MaxInt32))
	_, ok = s.Select(0)
	assert.False(t, ok)
	assert.False(t, s.Delete(0))

	assert.True(t, s.Insert(7))
	assert.True(t, s.Delete(7))
	assert.Zero(t, s.Size())
	assert.False(t, s.Member(7))
}

func testDuplicates(t *testing.T, s Sets.Set) {
	for i := int32(0); i < 10; i++ {
		require.True(t, s.Insert(i), "wrong insert %d", i)
		require.False(t, s.Insert(i), "inserted %d twice", i)
	}
	require.EqualValues(t, 10, s.Size())
	for i := int32(0); i < 10; i++ {
		require.EqualValues(t, i+1, s.Rank(i))
	}
	for i := int32(0); i < 5; i++ {
		require.True(t, s.Delete(i), "wrong delete %d", i)
		require.False(t, s.Delete(i), "deleted %d twice", i)
	}
	require.EqualValues(t, 5, s.Size())
}

func testExtremes(t *testing.T, s Sets.Set) {
	Sets.Adds(s, math.MaxInt32, math.MinInt32, 0)
	_, ok := s.Predecessor(math.MinInt32)
	assert.False(t, ok)
	p, ok := s.Predecessor(math.MaxInt32)
	assert.True(t, ok)
	assert.EqualValues(t, 0, p)
	p, ok = s.Predecessor(math.MinInt32 + 1)
	assert.True(t, ok)
	assert.EqualValues(t, math.MinInt32, p)
	assert.EqualValues(t, 1, s.Rank(math.MinInt32))
	assert.EqualValues(t, 3, s.Rank(math.MaxInt32))
	requireSelect(t, s, 2, math.MaxInt32)
	_, ok = s.Select(3)
	assert.False(t, ok)
	_, ok = s.Select(math.MaxUint)
	assert.False(t, ok)
}

// testRandom runs a seeded mix of inserts and deletes against a map and
// compares every query with the sorted contents of the map.
func testRandom(t *testing.T, s Sets.Set, check func(*testing.T, Sets.Set)) {
	rg := rand.New(rand.NewSource(0))
	content := make(map[int32]struct{})
	for i := 0; i < tOpN; i++ {
		x := int32(rg.Intn(tValRange)) - tValRange/2
		_, in := content[x]
		if rg.Intn(3) == 0 {
			require.Equal(t, in, s.Delete(x), "delete %d", x)
			require.False(t, s.Member(x), "member %d after delete", x)
			delete(content, x)
		} else {
			require.Equal(t, !in, s.Insert(x), "insert %d", x)
			require.True(t, s.Member(x), "member %d after insert", x)
			content[x] = struct{}{}
		}
		if (i+1)%tCheckStep == 0 {
			compare(t, s, content)
			if check != nil {
				check(t, s)
			}
		}
	}
}

func compare(t *testing.T, s Sets.Set, content map[int32]struct{}) {
	t.Helper()
	sorted := make([]int32, 0, len(content))
	for k := range content {
		sorted = append(sorted, k)
	}
	slices.Sort(sorted)
	require.EqualValues(t, len(sorted), s.Size())
	require.Equal(t, sorted, Sets.Values(s))

	for j, v := range sorted {
		got, ok := s.Select(uint(j))
		require.True(t, ok)
		require.Equal(t, v, got, "select %d", j)
		require.EqualValues(t, j+1, s.Rank(v), "rank of select %d", j)
	}
	_, ok := s.Select(uint(len(sorted)))
	require.False(t, ok)
	if len(sorted) > 0 {
		require.EqualValues(t, len(sorted), s.Rank(sorted[len(sorted)-1]))
	}

	for x := int32(-tValRange/2 - 2); x < tValRange/2+2; x++ {
		i, found := slices.BinarySearch(sorted, x)
		require.Equal(t, found, s.Member(x), "member %d", x)
		rank := i
		if found {
			rank++
		}
		require.EqualValues(t, rank, s.Rank(x), "rank %d", x)
		p, ok := s.Predecessor(x)
		if i == 0 {
			require.False(t, ok, "predecessor %d", x)
		} else {
			require.True(t, ok, "predecessor %d", x)
			require.Equal(t, sorted[i-1], p, "predecessor %d", x)
		}
	}
}
