package tree

import "fmt"

// CheckInvariants walks the subtree rooted at n and reports the first
// structural invariant it finds violated, or nil if none are. It's the
// Go counterpart of the debug-only assertions the original tree walk
// runs in non-release builds (equal-depth leaves, no empty internal
// node, no empty non-root leaf, cached TextInfo matching a fresh
// recompute) — exported so tests can assert a tree stays well-formed
// after a sequence of edits, rather than compiled into every build the
// way debug_assert! is.
func CheckInvariants(n Node) error {
	w := &crlfWalk{}
	_, err := checkDepth(n, true, w)
	return err
}

// crlfWalk threads the one piece of state that can't be checked
// locally at a single leaf: whether the previous leaf visited in-order
// ended with a bare CR, so the next leaf's StartsWithLF can be checked
// against it for a split CR+LF pair (property 4).
type crlfWalk struct {
	have       bool
	endsWithCR bool
}

func checkDepth(n Node, isRoot bool, w *crlfWalk) (int, error) {
	if n.IsLeaf() {
		leaf := n.Leaf()
		if leaf.Len() == 0 && !isRoot {
			return 0, fmt.Errorf("tree: empty non-root leaf")
		}
		if !isRoot && leaf.IsUndersized() {
			return 0, fmt.Errorf("tree: leaf has %d bytes, fewer than MinBytes=%d", leaf.Len(), MinBytes)
		}
		info := leaf.TextInfo()
		if got, want := info, FromBytes(leaf.Bytes()); got != want {
			return 0, fmt.Errorf("tree: leaf TextInfo cache stale: got %+v, want %+v", got, want)
		}
		if leaf.Len() > 0 {
			if w.have && w.endsWithCR && info.StartsWithLF {
				return 0, fmt.Errorf("tree: leaf boundary splits a CR+LF pair")
			}
			w.have = true
			w.endsWithCR = info.EndsWithCR
		}
		return 0, nil
	}

	children := n.Children()
	if children.Len() == 0 {
		return 0, fmt.Errorf("tree: empty internal node")
	}
	if !isRoot && children.IsUndersized() {
		return 0, fmt.Errorf("tree: internal node has only %d children, fewer than MinChildren=%d", children.Len(), MinChildren)
	}

	depth := -1
	for i := 0; i < children.Len(); i++ {
		child := children.NodeAt(i)
		if got, want := children.InfoAt(i), child.TextInfo(); got != want {
			return 0, fmt.Errorf("tree: child %d cached TextInfo stale: got %+v, want %+v", i, got, want)
		}
		childDepth, err := checkDepth(child, false, w)
		if err != nil {
			return 0, err
		}
		if depth == -1 {
			depth = childDepth
		} else if depth != childDepth {
			return 0, fmt.Errorf("tree: unequal leaf depth across children of one node")
		}
	}
	return depth + 1, nil
}
