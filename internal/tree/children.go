package tree

import "github.com/ssargent/textrope/internal/scanner"

// ChildArray holds between MinChildren and MaxChildren child Nodes
// (fewer only at the root) in parallel with their cached TextInfo
// summaries, so a parent can find which child covers a given metric
// position without touching any child's own storage. Backed by fixed
// arrays rather than slices: capacity never exceeds MaxChildren, so
// there's nothing for a slice's growth behavior to buy us.
type ChildArray struct {
	nodes [MaxChildren]Node
	infos [MaxChildren]TextInfo
	len   int
}

// NewChildArray returns an empty ChildArray.
func NewChildArray() *ChildArray { return &ChildArray{} }

// Len returns the number of children currently held.
func (c *ChildArray) Len() int { return c.len }

// IsFull reports whether the array already holds MaxChildren entries.
func (c *ChildArray) IsFull() bool { return c.len >= MaxChildren }

// IsUndersized reports whether the array holds fewer than MinChildren
// entries — a signal to the parent that a merge or redistribution is
// due, unless this is the tree's root.
func (c *ChildArray) IsUndersized() bool { return c.len < MinChildren }

// NodeAt returns the child Node at idx.
func (c *ChildArray) NodeAt(idx int) Node { return c.nodes[idx] }

// InfoAt returns the cached TextInfo of the child at idx.
func (c *ChildArray) InfoAt(idx int) TextInfo { return c.infos[idx] }

// SetNode replaces the child Node at idx (used after a child is edited
// in place and the parent just needs to record the new handle).
func (c *ChildArray) SetNode(idx int, node Node) { c.nodes[idx] = node }

// SetInfo replaces the cached TextInfo at idx (used after a child is
// edited in place and its summary changed).
func (c *ChildArray) SetInfo(idx int, info TextInfo) { c.infos[idx] = info }

// CombinedTextInfo folds every child's info left to right through
// TextInfo.Append, which applies the CRLF join correction at each
// adjacent pair exactly as leaf concatenation does.
func (c *ChildArray) CombinedTextInfo() TextInfo {
	var out TextInfo
	for i := 0; i < c.len; i++ {
		out = out.Append(c.infos[i])
	}
	return out
}

// Insert places (node, info) at idx, shifting later entries right. It
// panics (OutOfBounds) if the array is already full — callers must use
// InsertSplit, or split beforehand, once capacity is exhausted.
func (c *ChildArray) Insert(idx int, node Node, info TextInfo) {
	if c.IsFull() {
		panicOutOfBounds("ChildArray.Insert: array is full")
	}
	if idx < 0 || idx > c.len {
		panicOutOfBounds("ChildArray.Insert: index out of range")
	}
	copy(c.nodes[idx+1:c.len+1], c.nodes[idx:c.len])
	copy(c.infos[idx+1:c.len+1], c.infos[idx:c.len])
	c.nodes[idx] = node
	c.infos[idx] = info
	c.len++
}

// InsertSplit inserts (node, info) at idx. If the array has room, this
// is exactly Insert and nil is returned. If the array is full, it
// splits roughly in half instead: the receiver keeps the first half,
// and a new ChildArray holding the second half (with the new entry
// landing in whichever half idx falls into) is returned as the new
// right sibling.
func (c *ChildArray) InsertSplit(idx int, node Node, info TextInfo) *ChildArray {
	if !c.IsFull() {
		c.Insert(idx, node, info)
		return nil
	}

	total := c.len + 1
	mid := total / 2

	allNodes := make([]Node, 0, total)
	allInfos := make([]TextInfo, 0, total)
	allNodes = append(allNodes, c.nodes[:idx]...)
	allInfos = append(allInfos, c.infos[:idx]...)
	allNodes = append(allNodes, node)
	allInfos = append(allInfos, info)
	allNodes = append(allNodes, c.nodes[idx:c.len]...)
	allInfos = append(allInfos, c.infos[idx:c.len]...)

	right := &ChildArray{}
	for i := 0; i < mid; i++ {
		c.nodes[i] = allNodes[i]
		c.infos[i] = allInfos[i]
	}
	for i := mid; i < total; i++ {
		right.nodes[i-mid] = allNodes[i]
		right.infos[i-mid] = allInfos[i]
	}
	c.len = mid
	right.len = total - mid
	return right
}

// Remove deletes the entry at idx, shifting later entries left.
func (c *ChildArray) Remove(idx int) {
	if idx < 0 || idx >= c.len {
		panicOutOfBounds("ChildArray.Remove: index out of range")
	}
	copy(c.nodes[idx:c.len-1], c.nodes[idx+1:c.len])
	copy(c.infos[idx:c.len-1], c.infos[idx+1:c.len])
	c.len--
	c.nodes[c.len] = Node{}
	c.infos[c.len] = TextInfo{}
}

// RemoveMultiple deletes entries [start, end), shifting later entries
// left.
func (c *ChildArray) RemoveMultiple(start, end int) {
	if start < 0 || end > c.len || start > end {
		panicOutOfBounds("ChildArray.RemoveMultiple: range out of bounds")
	}
	n := end - start
	copy(c.nodes[start:c.len-n], c.nodes[end:c.len])
	copy(c.infos[start:c.len-n], c.infos[end:c.len])
	for i := c.len - n; i < c.len; i++ {
		c.nodes[i] = Node{}
		c.infos[i] = TextInfo{}
	}
	c.len -= n
}

// Clone returns a shallow copy of the array: a fresh backing store
// whose slots point at the same children, each retained via Node.Clone
// (an atomic refcount bump) so the copy is an independently mutable,
// safely-shared view — the ChildArray half of "clone the Arc; promote
// to unique before writing".
func (c *ChildArray) Clone() *ChildArray {
	out := &ChildArray{len: c.len}
	for i := 0; i < c.len; i++ {
		out.nodes[i] = c.nodes[i].Clone()
		out.infos[i] = c.infos[i]
	}
	return out
}

// searchByMetric finds the child whose cumulative metric range (as
// extracted by get from the running TextInfo.Append fold) contains
// target, returning that child's index and target's offset local to
// it. target at or past the combined total saturates to the last
// child's end, matching spec.md §4.7's past-the-end semantics. Folding
// through TextInfo.Append rather than summing raw fields means any
// CRLF join correction at a child boundary is applied automatically,
// the same way it is for leaf concatenation.
func (c *ChildArray) searchByMetric(target int, get func(TextInfo) int) (childIdx, local int) {
	if c.len == 0 {
		return 0, 0
	}
	var prefix TextInfo
	prevCount := 0
	for i := 0; i < c.len; i++ {
		next := prefix.Append(c.infos[i])
		count := get(next)
		if target < count || i == c.len-1 {
			l := target - prevCount
			if l < 0 {
				l = 0
			}
			if max := count - prevCount; l > max {
				l = max
			}
			return i, l
		}
		prevCount = count
		prefix = next
	}
	return c.len - 1, 0
}

// SearchByte finds the child containing byte offset idx.
func (c *ChildArray) SearchByte(idx int) (childIdx, localIdx int) {
	return c.searchByMetric(idx, func(t TextInfo) int { return int(t.Bytes) })
}

// SearchChar finds the child containing char offset idx.
func (c *ChildArray) SearchChar(idx int) (childIdx, localIdx int) {
	return c.searchByMetric(idx, func(t TextInfo) int { return int(t.Chars) })
}

// SearchUTF16 finds the child containing UTF-16 code unit offset idx.
func (c *ChildArray) SearchUTF16(idx int) (childIdx, localIdx int) {
	return c.searchByMetric(idx, func(t TextInfo) int { return int(t.UTF16) })
}

// SearchLine finds the child containing line idx under line-break
// regime lt.
func (c *ChildArray) SearchLine(idx int, lt scanner.LineType) (childIdx, localIdx int) {
	return c.searchByMetric(idx, func(t TextInfo) int {
		switch lt {
		case scanner.LF:
			return int(t.LineBreaksLF)
		case scanner.CRLF:
			return int(t.LineBreaksCRLF)
		default:
			return int(t.LineBreaksUnicode)
		}
	})
}
