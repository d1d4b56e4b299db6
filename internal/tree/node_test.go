// Tests in this package assume the smalltree build tag (go test
// -tags smalltree ./...), which shrinks MaxBytes/MaxChildren down to
// a size small enough that ordinary test strings exercise splitting
// and rebalancing — mirroring the original's #[cfg(test)] constants.
package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_InsertAtByteIdx_FitsInPlace(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("ab")))
	res, err := n.InsertAtByteIdx(1, []byte("X"))
	require.NoError(t, err)
	assert.False(t, res.Split)
	assert.Equal(t, "aXb", string(n.Leaf().Bytes()))
}

func TestNode_InsertAtByteIdx_NotOnBoundary(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("a世b")))
	_, err := n.InsertAtByteIdx(2, []byte("X"))
	assert.ErrorIs(t, err, ErrNotOnCharBoundary)
}

func TestNode_InsertAtByteIdx_SplitsWhenLeafOverflows(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte(strings.Repeat("a", MaxBytes))))
	res, err := n.InsertAtByteIdx(MaxBytes/2, []byte(strings.Repeat("b", MaxBytes)))
	require.NoError(t, err)
	assert.True(t, res.Split)
	assert.True(t, n.Leaf().Len() <= MaxBytes)
	assert.True(t, res.Right.Leaf().Len() <= MaxBytes)

	total := string(n.Leaf().Bytes()) + string(res.Right.Leaf().Bytes())
	assert.Equal(t, MaxBytes*2, len(total))
	assert.Equal(t, strings.Count(total, "b"), MaxBytes)
}

func TestNode_InsertAtByteIdx_Internal_PropagatesSplit(t *testing.T) {
	left := NewLeafNode(NewLeafText([]byte(strings.Repeat("a", MaxBytes))))
	right := NewLeafNode(NewLeafText([]byte(strings.Repeat("b", MaxBytes))))
	arr := NewChildArray()
	arr.Insert(0, left, left.TextInfo())
	arr.Insert(1, right, right.TextInfo())
	for arr.Len() < MaxChildren {
		extra := NewLeafNode(NewLeafText([]byte(strings.Repeat("c", MinBytes))))
		arr.Insert(arr.Len(), extra, extra.TextInfo())
	}
	n := NewInternalNode(arr)
	require.NoError(t, CheckInvariants(n))

	res, err := n.InsertAtByteIdx(0, []byte(strings.Repeat("z", MaxBytes)))
	require.NoError(t, err)
	assert.True(t, res.Split)
	assert.NoError(t, CheckInvariants(n))
	assert.NoError(t, CheckInvariants(res.Right))
}

func TestNode_RemoveByteRange_Leaf(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("hello world")))
	info, err := n.RemoveByteRange(5, 11)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(n.Leaf().Bytes()))
	assert.Equal(t, Count(5), info.Bytes)
}

func TestNode_RemoveByteRange_Internal_RemovesWholeChild(t *testing.T) {
	a := NewLeafNode(NewLeafText([]byte("aaaaa")))
	b := NewLeafNode(NewLeafText([]byte("bbbbb")))
	c := NewLeafNode(NewLeafText([]byte("ccccc")))
	arr := NewChildArray()
	arr.Insert(0, a, a.TextInfo())
	arr.Insert(1, b, b.TextInfo())
	arr.Insert(2, c, c.TextInfo())
	n := NewInternalNode(arr)

	_, err := n.RemoveByteRange(5, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Children().Len())
	assert.Equal(t, "aaaaa", string(n.Children().NodeAt(0).Leaf().Bytes()))
	assert.Equal(t, "ccccc", string(n.Children().NodeAt(1).Leaf().Bytes()))
}

func TestNode_RemoveByteRange_SpansMultipleChildrenPartially(t *testing.T) {
	a := NewLeafNode(NewLeafText([]byte("aaaaa")))
	b := NewLeafNode(NewLeafText([]byte("bbbbb")))
	c := NewLeafNode(NewLeafText([]byte("ccccc")))
	arr := NewChildArray()
	arr.Insert(0, a, a.TextInfo())
	arr.Insert(1, b, b.TextInfo())
	arr.Insert(2, c, c.TextInfo())
	n := NewInternalNode(arr)

	_, err := n.RemoveByteRange(3, 13)
	require.NoError(t, err)

	var got strings.Builder
	for i := 0; i < n.Children().Len(); i++ {
		got.Write(n.Children().NodeAt(i).Leaf().Bytes())
	}
	assert.Equal(t, "aaacc", got.String())
	assert.NoError(t, CheckInvariants(n))
}

// Regression test: when a removal's start falls exactly on a child
// boundary (the start child is removed whole, not trimmed) and only
// the end child is trimmed, the trimmed end child lands at index
// removeFrom after RemoveMultiple shifts the array down — a different
// index than the untouched child immediately before the deleted run.
// Rebalancing only removeFrom-1 (the untouched child) leaves the
// genuinely undersized trimmed end child unrebalanced.
func TestNode_RemoveByteRange_RebalancesTrimmedEndAfterWholeChildRemoval(t *testing.T) {
	a := NewLeafNode(NewLeafText([]byte("aaaaaaaaa"))) // 9 bytes, untouched
	b := NewLeafNode(NewLeafText([]byte("bbbbb")))     // removed whole
	c := NewLeafNode(NewLeafText([]byte("ccccccccc"))) // trimmed down to "cc"
	arr := NewChildArray()
	arr.Insert(0, a, a.TextInfo())
	arr.Insert(1, b, b.TextInfo())
	arr.Insert(2, c, c.TextInfo())
	n := NewInternalNode(arr)
	require.NoError(t, CheckInvariants(n))

	// lo=9 is exactly the start of b; hi=21 is 7 bytes into c, leaving
	// c trimmed to its last 2 bytes ("cc"), well under MinBytes.
	_, err := n.RemoveByteRange(9, 21)
	require.NoError(t, err)

	var got strings.Builder
	for i := 0; i < n.Children().Len(); i++ {
		got.Write(n.Children().NodeAt(i).Leaf().Bytes())
	}
	assert.Equal(t, "aaaaaaaaacc", got.String())
	assert.NoError(t, CheckInvariants(n))
}

// Companion case: both the start and end children are trimmed (no
// whole child sits between them once the fully-removed run is
// spliced out), so the two trimmed children end up adjacent and a
// single rebalance naturally reaches both.
func TestNode_RemoveByteRange_RebalancesBothTrimmedEnds(t *testing.T) {
	a := NewLeafNode(NewLeafText([]byte("aaaaaaaaa"))) // 9 bytes, == MaxBytes
	b := NewLeafNode(NewLeafText([]byte("bbbbb")))
	c := NewLeafNode(NewLeafText([]byte("ccccc")))
	d := NewLeafNode(NewLeafText([]byte("ddddddddd"))) // 9 bytes, == MaxBytes
	arr := NewChildArray()
	arr.Insert(0, a, a.TextInfo())
	arr.Insert(1, b, b.TextInfo())
	arr.Insert(2, c, c.TextInfo())
	arr.Insert(3, d, d.TextInfo())
	n := NewInternalNode(arr)
	require.NoError(t, CheckInvariants(n))

	// Trim a down to "aaa" (3 bytes, undersized) and d down to "dd" (2
	// bytes, undersized), removing b and c entirely in between.
	_, err := n.RemoveByteRange(3, 26)
	require.NoError(t, err)

	var got strings.Builder
	for i := 0; i < n.Children().Len(); i++ {
		got.Write(n.Children().NodeAt(i).Leaf().Bytes())
	}
	assert.Equal(t, "aaadd", got.String())
	assert.NoError(t, CheckInvariants(n))
}

func TestCollapse_ReplacesSingleChildInternalNode(t *testing.T) {
	leaf := NewLeafNode(NewLeafText([]byte("solo")))
	arr := NewChildArray()
	arr.Insert(0, leaf, leaf.TextInfo())
	n := NewInternalNode(arr)

	collapsed := Collapse(n)
	assert.True(t, collapsed.IsLeaf())
	assert.Equal(t, "solo", string(collapsed.Leaf().Bytes()))
}

func TestCollapse_LeavesMultiChildNodeAlone(t *testing.T) {
	a := NewLeafNode(NewLeafText([]byte("a")))
	b := NewLeafNode(NewLeafText([]byte("b")))
	arr := NewChildArray()
	arr.Insert(0, a, a.TextInfo())
	arr.Insert(1, b, b.TextInfo())
	n := NewInternalNode(arr)

	collapsed := Collapse(n)
	assert.True(t, collapsed.IsInternal())
	assert.Equal(t, 2, collapsed.Children().Len())
}
