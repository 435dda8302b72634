package Trees

import (
	"errors"
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/ordset/Sets"
	"github.com/g-m-twostay/ordset/Sets/settest"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 40000
)

func checkOSTree[S uint | uint16](t *testing.T, s Sets.Set) {
	require.NoError(t, s.(*OSTree[S]).Check())
}

func TestOSTree_Set(t *testing.T) {
	settest.Run(t, func() Sets.Set { return NewOSTree[uint]() }, checkOSTree[uint])
}

func TestOSTree_Set16(t *testing.T) {
	settest.Run(t, func() Sets.Set { return NewOSTree[uint16]() }, checkOSTree[uint16])
}

func TestOSTree_ZeroValue(t *testing.T) {
	var tree OSTree[uint32]
	require.True(t, tree.Insert(3))
	require.EqualValues(t, 1, tree.Size())
	require.NoError(t, tree.Check())
}

func TestOSTree_AddDel(t *testing.T) {
	tree := NewOSTree[uint]()
	content := make(map[int32]struct{})
	a := make([]int32, tAddN)
	for i := range a {
		a[i] = int32(rg.Intn(tAddValRange))
	}
	for _, b := range a {
		_, in := content[b]
		if c := tree.Insert(b); c == in {
			t.Errorf("insert %v returned %v", b, c)
		}
		content[b] = struct{}{}
	}
	require.NoError(t, tree.Check())
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.Delete(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if b := tree.Delete(a[i]); b {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	require.NoError(t, tree.Check())
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Member(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	t.Logf("depth: %d, size: %d.\n", tree.MaxDepth(), tree.Size())
}

// deleteFixture is
//
//	        50
//	    30      70
//	  20  40  60  80
//	     35 45
func deleteFixture() *OSTree[uint] {
	tree := NewOSTree[uint]()
	Sets.Adds(tree, 50, 30, 70, 20, 40, 60, 80, 35, 45)
	return tree
}

func TestOSTree_DeleteCases(t *testing.T) {
	tree := deleteFixture()
	require.NoError(t, tree.Check())
	require.EqualValues(t, 9, tree.root.sz)

	// two children: 45, the rightmost of the left subtree, replaces 50.
	require.True(t, tree.Delete(50))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 45, tree.root.v)
	assert.EqualValues(t, 8, tree.root.sz)
	assert.EqualValues(t, 4, tree.root.l.sz)
	assert.EqualValues(t, 40, tree.root.l.r.v)
	assert.Nil(t, tree.root.l.r.r)

	// two children, and the predecessor is the left child itself.
	require.True(t, tree.Delete(30))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 20, tree.root.l.v)
	assert.Nil(t, tree.root.l.l)
	assert.EqualValues(t, 3, tree.root.l.sz)

	// only a left child.
	require.True(t, tree.Delete(40))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 35, tree.root.l.r.v)

	// only a right child.
	require.True(t, tree.Delete(20))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 35, tree.root.l.v)
	assert.EqualValues(t, 1, tree.root.l.sz)

	// leaf.
	require.True(t, tree.Delete(35))
	require.NoError(t, tree.Check())
	assert.Nil(t, tree.root.l)
	assert.EqualValues(t, 4, tree.root.sz)
	assert.Equal(t, []int32{45, 60, 70, 80}, Sets.Values(tree))

	// missing keys leave every size alone.
	require.False(t, tree.Delete(50))
	require.False(t, tree.Delete(65))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 4, tree.root.sz)
}

func TestOSTree_DeletePredecessorWithLeft(t *testing.T) {
	tree := NewOSTree[uint]()
	Sets.Adds(tree, 10, 5, 15, 3, 8, 7)
	require.True(t, tree.Delete(10))
	require.NoError(t, tree.Check())
	assert.EqualValues(t, 8, tree.root.v)
	assert.EqualValues(t, 5, tree.root.sz)
	assert.EqualValues(t, 3, tree.root.l.sz)
	assert.EqualValues(t, 7, tree.root.l.r.v)
	assert.Equal(t, []int32{3, 5, 7, 8, 15}, Sets.Values(tree))
}

func TestOSTree_DeleteRoot(t *testing.T) {
	tree := NewOSTree[uint]()
	tree.Insert(1)
	require.True(t, tree.Delete(1))
	assert.Nil(t, tree.root)
	assert.Zero(t, tree.Size())
}

func TestOSTree_Sorted(t *testing.T) {
	const n = 2000
	tree := NewOSTree[uint]()
	for i := int32(0); i < n; i++ {
		tree.Insert(i)
	}
	require.NoError(t, tree.Check())
	require.EqualValues(t, n-1, tree.MaxDepth())
	require.EqualValues(t, n-1, tree.MinDepth())
	for i := int32(0); i < n; i++ {
		require.EqualValues(t, i+1, tree.Rank(i))
		v, ok := tree.Select(uint(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	for i := int32(0); i < n; i += 2 {
		require.True(t, tree.Delete(i))
	}
	require.NoError(t, tree.Check())
	require.EqualValues(t, n/2, tree.Size())
	v, ok := tree.Minimum()
	require.True(t, ok)
	require.EqualValues(t, 1, v)
}

func TestOSTree_RankSelect(t *testing.T) {
	tree := NewOSTree[uint16]()
	sorted := make([]int32, 0, tAddN)
	{
		content := make(map[int32]struct{})
		for range tAddN {
			b := int32(rg.Intn(tAddValRange))
			tree.Insert(b)
			content[b] = struct{}{}
		}
		for k := range content {
			sorted = append(sorted, k)
		}
	}
	slices.Sort(sorted)
	for i, v := range sorted {
		a, ok := tree.Select(uint(i))
		if !ok {
			t.Fatalf("nothing at rank k %d\n", i)
		}
		if a != v {
			t.Fatalf("wrong rank k %d, want %d has %d\n", i, v, a)
		}
		if r := tree.Rank(v); r != uint(i)+1 {
			t.Fatalf("wrong rank of %d, want %d has %d", v, i+1, r)
		}
	}
}

func TestOSTree_PreSucc(t *testing.T) {
	content := make([]int32, tAddN+2)
	content[0] = -1
	content[tAddN+1] = tAddN * 3
	for i := 1; i <= tAddN; i++ {
		content[i] = int32(i) * 2
	}
	tree := BuildOSTree[uint](content, true)
	for i := 1; i <= tAddN; i++ {
		if a, _ := tree.Predecessor(content[i]); a != content[i-1] {
			t.Fatalf("wrong predecessor %d %d", a, content[i-1])
		}
		if a, _ := tree.Successor(content[i]); a != content[i+1] {
			t.Fatalf("wrong successor %d %d", a, content[i+1])
		}
		if a, _ := tree.Predecessor(content[i] + 1); a != content[i] {
			t.Fatalf("wrong predecessor %d %d", a, content[i])
		}
		if a, _ := tree.Successor(content[i] - 1); a != content[i] {
			t.Fatalf("wrong successor %d %d", a, content[i])
		}
	}
	if _, ok := tree.Predecessor(content[0]); ok {
		t.Fatal("shouldn't have predecessor")
	}
	if _, ok := tree.Successor(content[len(content)-1]); ok {
		t.Fatal("shouldn't have successor")
	}
}

func TestOSTree_MinMax(t *testing.T) {
	tree := NewOSTree[uint]()
	_, ok := tree.Minimum()
	assert.False(t, ok)
	_, ok = tree.Maximum()
	assert.False(t, ok)
	settest.Scenario(tree)
	v, _ := tree.Minimum()
	assert.EqualValues(t, 1, v)
	v, _ = tree.Maximum()
	assert.EqualValues(t, 5, v)
}

func TestBuildOSTree(t *testing.T) {
	content := make([]int32, tAddN)
	for i := range content {
		content[i] = int32(i*3 - tAddN)
	}
	tree := BuildOSTree[uint32](content, true)
	require.NoError(t, tree.Check())
	require.EqualValues(t, len(content), tree.Size())
	require.EqualValues(t, bits.Len(uint(len(content)))-1, tree.MaxDepth())
	require.Equal(t, content, Sets.Values(tree))

	empty := BuildOSTree[uint]([]int32{}, true)
	require.Zero(t, empty.Size())
	require.NoError(t, empty.Check())

	require.PanicsWithValue(t, InvalidSliceError{2, 5, 5}, func() {
		BuildOSTree[uint]([]int32{1, 5, 5, 7}, true)
	})
}

func TestOSTree_Check(t *testing.T) {
	tree := deleteFixture()
	require.False(t, tree.Corrupt())

	tree.root.l.r.sz++
	err := tree.Check()
	require.True(t, errors.Is(err, ErrSizeDrift), "got %v", err)
	require.True(t, tree.Corrupt())
	tree.root.l.r.sz--

	tree.root.l.r.l.v = 10
	err = tree.Check()
	require.True(t, errors.Is(err, ErrOrder), "got %v", err)
}

func TestOSTree_InOrder(t *testing.T) {
	tree := deleteFixture()
	var s []int32
	tree.InOrder(func(v int32) bool {
		s = append(s, v)
		return v < 40
	})
	assert.Equal(t, []int32{20, 30, 35, 40}, s)
}

func TestOSTree_Levels(t *testing.T) {
	tree := settest.Scenario(NewOSTree[uint]()).(*OSTree[uint])
	var depths []uint
	var vs []int32
	tree.Levels(func(d uint, v int32) bool {
		depths = append(depths, d)
		vs = append(vs, v)
		return true
	})
	assert.Equal(t, []uint{0, 1, 2, 3, 4}, depths)
	assert.Equal(t, []int32{1, 5, 2, 4, 3}, vs)
	assert.EqualValues(t, 4, tree.MaxDepth())
	assert.EqualValues(t, 4, tree.MinDepth())

	tree = deleteFixture()
	vs = vs[:0]
	tree.Levels(func(d uint, v int32) bool {
		vs = append(vs, v)
		return d < 2
	})
	assert.Equal(t, []int32{50, 30, 70, 20}, vs)
	assert.EqualValues(t, 2, tree.MinDepth())
	assert.EqualValues(t, 3, tree.MaxDepth())
}

func TestOSTree_String(t *testing.T) {
	a, b := deleteFixture(), deleteFixture()
	require.Equal(t, a.String(), b.String())
	for _, label := range []string{"50 (9)", "30 (5)", "40 (3)", "35 (1)"} {
		assert.Contains(t, a.String(), label)
	}
	b.Delete(80)
	assert.NotEqual(t, a.String(), b.String())
	assert.Contains(t, b.String(), "nil")
	assert.Contains(t, NewOSTree[uint]().String(), "<empty>")
}
