package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_CloneSharesPayloadUntilMutated(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("hello")))
	clone := n.Clone()

	mutated := n.LeafMut()
	_ = mutated.InsertStr(5, []byte(" world"))

	assert.Equal(t, "hello world", string(n.Leaf().Bytes()))
	assert.Equal(t, "hello", string(clone.Leaf().Bytes()))
}

func TestNode_LeafMut_NoCloneWhenUnique(t *testing.T) {
	n := NewLeafNode(NewLeafText([]byte("hi")))
	before := n.shared
	_ = n.LeafMut()
	assert.Same(t, before, n.shared)
}

func TestNode_IsLeafIsInternal(t *testing.T) {
	leaf := NewLeafNode(NewLeafText([]byte("x")))
	internal := NewInternalNode(NewChildArray())
	assert.True(t, leaf.IsLeaf())
	assert.False(t, leaf.IsInternal())
	assert.True(t, internal.IsInternal())
	assert.False(t, internal.IsLeaf())
}

func TestNode_ChildrenMut_ClonesAndRetainsChildren(t *testing.T) {
	child := NewLeafNode(NewLeafText([]byte("a")))
	arr := NewChildArray()
	arr.Insert(0, child, child.TextInfo())
	n := NewInternalNode(arr)

	clone := n.Clone()
	mutArr := n.ChildrenMut()
	mutArr.Insert(1, NewLeafNode(NewLeafText([]byte("b"))), NewLeafNode(NewLeafText([]byte("b"))).TextInfo())

	assert.Equal(t, 2, n.Children().Len())
	assert.Equal(t, 1, clone.Children().Len())
}
