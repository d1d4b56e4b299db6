package tree

import "github.com/ssargent/textrope/internal/scanner"

// InsertResult is the outcome of Node.InsertAtByteIdx: the node's own
// updated TextInfo, and — only when Split is true, because the node
// had no room left to absorb the insert in place — the new right
// sibling it produced plus that sibling's TextInfo. Returning both
// sides' info avoids a second pass over the new sibling to recompute
// it, matching the original's documented rationale for the same
// two-sided return shape.
type InsertResult struct {
	Info      TextInfo
	Right     Node
	RightInfo TextInfo
	Split     bool
}

// InsertAtByteIdx inserts text at byteIdx within the subtree rooted at
// n. byteIdx must be a UTF-8 char boundary of n's current text, or
// ErrNotOnCharBoundary is returned and n is left unmodified.
func (n *Node) InsertAtByteIdx(byteIdx int, text []byte) (InsertResult, error) {
	if len(text) == 0 {
		return InsertResult{Info: n.TextInfo()}, nil
	}
	if n.IsLeaf() {
		return n.insertLeaf(byteIdx, text)
	}
	return n.insertInternal(byteIdx, text)
}

func (n *Node) insertLeaf(byteIdx int, text []byte) (InsertResult, error) {
	if !scanner.IsCharBoundary(n.shared.leaf.Bytes(), byteIdx) {
		return InsertResult{}, ErrNotOnCharBoundary
	}

	leaf := n.LeafMut()
	freeCapacity := MaxBytes - leaf.Len()
	if len(text) <= freeCapacity {
		_ = leaf.InsertStr(byteIdx, text) // boundary already verified above
		return InsertResult{Info: leaf.TextInfo()}, nil
	}

	// Not enough room: split the leaf, divide the new text across the
	// split, then redistribute so both sides land within the size
	// invariants.
	right, err := leaf.SplitOff(byteIdx)
	if err != nil {
		return InsertResult{}, err // unreachable: byteIdx already verified
	}
	splitIdx := scanner.PrevCharBoundary(text, MaxBytes-leaf.Len())
	leaf.AppendStr(text[:splitIdx])
	_ = right.InsertStr(0, text[splitIdx:]) // 0 is always a boundary
	leaf.Distribute(right)

	return InsertResult{
		Info:      leaf.TextInfo(),
		Right:     NewLeafNode(right),
		RightInfo: right.TextInfo(),
		Split:     true,
	}, nil
}

func (n *Node) insertInternal(byteIdx int, text []byte) (InsertResult, error) {
	children := n.ChildrenMut()
	childIdx, localIdx := children.SearchByte(byteIdx)

	child := children.NodeAt(childIdx)
	res, err := child.InsertAtByteIdx(localIdx, text)
	if err != nil {
		return InsertResult{}, err
	}
	children.SetNode(childIdx, child)
	children.SetInfo(childIdx, res.Info)

	if !res.Split {
		return InsertResult{Info: children.CombinedTextInfo()}, nil
	}

	rightArr := children.InsertSplit(childIdx+1, res.Right, res.RightInfo)
	if rightArr == nil {
		return InsertResult{Info: children.CombinedTextInfo()}, nil
	}
	return InsertResult{
		Info:      children.CombinedTextInfo(),
		Right:     NewInternalNode(rightArr),
		RightInfo: rightArr.CombinedTextInfo(),
		Split:     true,
	}, nil
}

// RemoveByteRange deletes the bytes in [lo, hi) from the subtree rooted
// at n, returning n's updated TextInfo. Both bounds must be UTF-8 char
// boundaries or ErrNotOnCharBoundary is returned; lo/hi past n's own
// byte length is a programming error (panicOutOfBounds).
func (n *Node) RemoveByteRange(lo, hi int) (TextInfo, error) {
	if lo < 0 || hi > int(n.TextInfo().Bytes) || lo > hi {
		panicOutOfBounds("Node.RemoveByteRange: range outside node")
	}
	if lo == hi {
		return n.TextInfo(), nil
	}
	if n.IsLeaf() {
		return n.removeLeaf(lo, hi)
	}
	return n.removeInternal(lo, hi)
}

func (n *Node) removeLeaf(lo, hi int) (TextInfo, error) {
	leaf := n.LeafMut()
	if err := leaf.RemoveRange(lo, hi); err != nil {
		return TextInfo{}, err
	}
	return leaf.TextInfo(), nil
}

func (n *Node) removeInternal(lo, hi int) (TextInfo, error) {
	children := n.ChildrenMut()
	startChild, startLocal := children.SearchByte(lo)
	endChild, endLocal := children.SearchByte(hi)

	if startChild == endChild {
		childBytes := int(children.InfoAt(startChild).Bytes)
		if startLocal == 0 && endLocal == childBytes {
			children.Remove(startChild)
			return children.CombinedTextInfo(), nil
		}
		child := children.NodeAt(startChild)
		info, err := child.RemoveByteRange(startLocal, endLocal)
		if err != nil {
			return TextInfo{}, err
		}
		children.SetNode(startChild, child)
		children.SetInfo(startChild, info)
		rebalanceChildAt(children, startChild)
		return children.CombinedTextInfo(), nil
	}

	removeFrom, removeTo := startChild, endChild+1

	if startLocal > 0 {
		startBytes := int(children.InfoAt(startChild).Bytes)
		child := children.NodeAt(startChild)
		info, err := child.RemoveByteRange(startLocal, startBytes)
		if err != nil {
			return TextInfo{}, err
		}
		children.SetNode(startChild, child)
		children.SetInfo(startChild, info)
		removeFrom = startChild + 1
	}

	endBytes := int(children.InfoAt(endChild).Bytes)
	if endLocal < endBytes {
		child := children.NodeAt(endChild)
		info, err := child.RemoveByteRange(0, endLocal)
		if err != nil {
			return TextInfo{}, err
		}
		children.SetNode(endChild, child)
		children.SetInfo(endChild, info)
		removeTo = endChild
	}

	if removeFrom < removeTo {
		children.RemoveMultiple(removeFrom, removeTo)
	}

	// The start-trimmed child (if any) keeps its original index, since
	// nothing before removeFrom shifted. The end-trimmed child (if any)
	// lands at removeFrom once RemoveMultiple has closed the gap in
	// front of it. Both are independent and must each be checked —
	// trimming either side can leave it undersized on its own.
	if startLocal > 0 {
		rebalanceChildAt(children, startChild)
	}
	if endLocal < endBytes {
		rebalanceChildAt(children, removeFrom)
	}

	return children.CombinedTextInfo(), nil
}

// Collapse repeatedly replaces an internal node holding exactly one
// child with that child, which is what an internal node degenerates to
// after enough removals merge its children down to a single entry.
// Called by the rope façade on the whole tree's root after a removal,
// since only the top-level caller knows a node is the root (the root
// is the one place a lone child, or a lone undersized leaf, is
// legitimate rather than an invariant violation).
func Collapse(n Node) Node {
	for n.IsInternal() && n.Children().Len() == 1 {
		n = n.Children().NodeAt(0)
	}
	return n
}
