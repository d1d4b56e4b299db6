package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInvariants_RootLeafMayBeTiny(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("x")))
	assert.NoError(t, CheckInvariants(n))
}

func TestCheckInvariants_NonRootUndersizedLeafIsRejected(t *testing.T) {
	small := NewLeafNode(NewLeafText([]byte("x"))) // 1 byte, well under MinBytes
	big := NewLeafNode(NewLeafText([]byte("bbbbbbbbb")))
	arr := NewChildArray()
	arr.Insert(0, small, small.TextInfo())
	arr.Insert(1, big, big.TextInfo())
	n := NewInternalNode(arr)

	err := CheckInvariants(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fewer than MinBytes")
}

func TestCheckInvariants_LeafBoundarySplittingCRLFIsRejected(t *testing.T) {
	left := NewLeafNode(NewLeafText([]byte("aaa\r")))
	right := NewLeafNode(NewLeafText([]byte("\nbbb")))
	arr := NewChildArray()
	arr.Insert(0, left, left.TextInfo())
	arr.Insert(1, right, right.TextInfo())
	n := NewInternalNode(arr)

	err := CheckInvariants(n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "splits a CR+LF pair")
}

func TestCheckInvariants_AdjacentCRWithoutLFIsFine(t *testing.T) {
	left := NewLeafNode(NewLeafText([]byte("aaa\r")))
	right := NewLeafNode(NewLeafText([]byte("bbbb")))
	arr := NewChildArray()
	arr.Insert(0, left, left.TextInfo())
	arr.Insert(1, right, right.TextInfo())
	n := NewInternalNode(arr)

	assert.NoError(t, CheckInvariants(n))
}
