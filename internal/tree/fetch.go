package tree

import "github.com/ssargent/textrope/internal/scanner"

// getTextAt walks from n down to the leaf covering idx under whatever
// metric search implements, returning the accumulated TextInfo of
// everything in the tree that precedes that leaf, the leaf itself, and
// idx's offset local to it. search is a ChildArray method value such as
// (*ChildArray).SearchByte, letting GetTextAtByte/Char/UTF16/Line share
// one tree walk.
func getTextAt(n Node, idx int, search func(*ChildArray, int) (int, int)) (TextInfo, *LeafText, int) {
	if n.IsLeaf() {
		return TextInfo{}, n.Leaf(), idx
	}
	children := n.Children()
	childIdx, local := search(children, idx)

	var prefix TextInfo
	for i := 0; i < childIdx; i++ {
		prefix = prefix.Append(children.InfoAt(i))
	}
	childPrefix, leaf, localOffset := getTextAt(children.NodeAt(childIdx), local, search)
	return prefix.Append(childPrefix), leaf, localOffset
}

// GetTextAtByte finds the leaf covering byte offset idx in the subtree
// rooted at n, returning the TextInfo of everything before that leaf,
// the leaf, and idx's offset local to it.
func GetTextAtByte(n Node, idx int) (TextInfo, *LeafText, int) {
	return getTextAt(n, idx, (*ChildArray).SearchByte)
}

// GetTextAtChar is GetTextAtByte's char-offset counterpart.
func GetTextAtChar(n Node, idx int) (TextInfo, *LeafText, int) {
	return getTextAt(n, idx, (*ChildArray).SearchChar)
}

// GetTextAtUTF16 is GetTextAtByte's UTF-16 code unit offset counterpart.
func GetTextAtUTF16(n Node, idx int) (TextInfo, *LeafText, int) {
	return getTextAt(n, idx, (*ChildArray).SearchUTF16)
}

// GetTextAtLine is GetTextAtByte's line-index counterpart under
// line-break regime lt.
func GetTextAtLine(n Node, idx int, lt scanner.LineType) (TextInfo, *LeafText, int) {
	return getTextAt(n, idx, func(c *ChildArray, i int) (int, int) { return c.SearchLine(i, lt) })
}
