package tree

import "sync/atomic"

type nodeKind int

const (
	leafKind nodeKind = iota
	internalKind
)

// sharedPayload is the reference-counted storage behind a Node: either
// a LeafText or a ChildArray, never both. Go's garbage collector frees
// it once nothing points at it, so refCount only has to never
// under-count — it exists purely to answer "am I the sole owner of
// this payload right now", not to drive manual deallocation.
type sharedPayload struct {
	refCount int32
	kind     nodeKind
	leaf     *LeafText
	children *ChildArray
}

// Node is a small value type: a handle to a shared sharedPayload.
// Cloning a Node is an O(1) atomic refcount bump, never a copy of the
// payload itself — the Go rendition of Rust's Arc<Leaf>/Arc<Children>
// enum. This is the persistence mechanism the whole package relies on:
// two Rope values can share a Node handle (and everything under it)
// until one of them mutates, at which point only the touched spine is
// promoted to a unique copy (see LeafMut/ChildrenMut below), grounded
// on the retrieved nzinfo-texere CowNode.Retain/Release/CloneIfNeeded
// pattern and the transaction-scoped clone-on-first-touch idiom in the
// retrieved immutable-radix-tree examples.
type Node struct {
	shared *sharedPayload
}

// NewLeafNode wraps leaf in a fresh, uniquely-owned Node.
func NewLeafNode(leaf *LeafText) Node {
	return Node{shared: &sharedPayload{refCount: 1, kind: leafKind, leaf: leaf}}
}

// NewInternalNode wraps children in a fresh, uniquely-owned Node.
func NewInternalNode(children *ChildArray) Node {
	return Node{shared: &sharedPayload{refCount: 1, kind: internalKind, children: children}}
}

// IsLeaf reports whether n holds a LeafText. The zero Node is
// considered a (empty) leaf so a not-yet-initialized Node behaves
// predictably.
func (n Node) IsLeaf() bool { return n.shared == nil || n.shared.kind == leafKind }

// IsInternal reports whether n holds a ChildArray.
func (n Node) IsInternal() bool { return n.shared != nil && n.shared.kind == internalKind }

// Clone returns a new handle to the same payload, bumping its
// refcount. Nothing is copied.
func (n Node) Clone() Node {
	if n.shared != nil {
		atomic.AddInt32(&n.shared.refCount, 1)
	}
	return n
}

func (n Node) isShared() bool {
	return n.shared != nil && atomic.LoadInt32(&n.shared.refCount) > 1
}

// Leaf returns the node's LeafText directly, for read-only access.
// Panics if n isn't a leaf.
func (n Node) Leaf() *LeafText {
	if n.shared == nil || n.shared.kind != leafKind {
		panic("tree: Leaf called on a non-leaf Node")
	}
	return n.shared.leaf
}

// Children returns the node's ChildArray directly, for read-only
// access. Panics if n isn't internal.
func (n Node) Children() *ChildArray {
	if n.shared == nil || n.shared.kind != internalKind {
		panic("tree: Children called on a non-internal Node")
	}
	return n.shared.children
}

// LeafMut returns a uniquely-owned *LeafText ready for in-place
// editing, cloning the underlying buffer first if n's payload is
// shared with another handle — the Go rendition of Arc::make_mut. When
// a clone happens, n's own shared pointer is repointed at the new,
// unique payload and the old payload's refcount is released.
func (n *Node) LeafMut() *LeafText {
	if n.shared == nil || n.shared.kind != leafKind {
		panic("tree: LeafMut called on a non-leaf Node")
	}
	if n.isShared() {
		cloned := NewLeafText(n.shared.leaf.Bytes())
		atomic.AddInt32(&n.shared.refCount, -1)
		n.shared = &sharedPayload{refCount: 1, kind: leafKind, leaf: cloned}
	}
	return n.shared.leaf
}

// ChildrenMut returns a uniquely-owned *ChildArray ready for in-place
// editing, cloning (and retaining each child via ChildArray.Clone)
// first if n's payload is shared with another handle.
func (n *Node) ChildrenMut() *ChildArray {
	if n.shared == nil || n.shared.kind != internalKind {
		panic("tree: ChildrenMut called on a non-internal Node")
	}
	if n.isShared() {
		cloned := n.shared.children.Clone()
		atomic.AddInt32(&n.shared.refCount, -1)
		n.shared = &sharedPayload{refCount: 1, kind: internalKind, children: cloned}
	}
	return n.shared.children
}

// TextInfo computes this node's summary: the leaf's own cached info,
// or the fold of its children's infos. Assumes children's cached infos
// are already up to date, matching the original's documented
// precondition for the equivalent call.
func (n Node) TextInfo() TextInfo {
	if n.shared == nil {
		return TextInfo{}
	}
	if n.shared.kind == leafKind {
		return n.shared.leaf.TextInfo()
	}
	return n.shared.children.CombinedTextInfo()
}

// ChildCount returns the number of children if n is internal, or 0 for
// a leaf.
func (n Node) ChildCount() int {
	if n.shared == nil || n.shared.kind != internalKind {
		return 0
	}
	return n.shared.children.Len()
}
