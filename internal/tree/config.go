//go:build !smalltree

package tree

// Count is the integer type used for every metric stored in a TextInfo
// or ChildArray: byte/char/utf16/line-break counts.
type Count = uint64

// Node size targets, chosen (like the original) to land leaf and
// internal nodes on power-of-two byte budgets once Go's own per-handle
// bookkeeping (two machine words: the sharedPayload pointer and the
// atomic refcount) is subtracted.
const (
	ptrSize           = 8
	childInfoSize     = 64 // a Node handle plus a TextInfo, rounded for alignment
	targetLeafSize    = 1024 - (ptrSize * 2)
	targetInternalSize = 512 - (ptrSize * 2)
)

// MaxChildren is the branching factor: the largest number of children
// an internal node may hold. MinChildren is the smallest (except the
// root, which may have fewer).
const (
	MaxChildren = (targetInternalSize - 1) / childInfoSize
	MinChildren = MaxChildren / 2
)

// MaxBytes is a leaf's byte capacity. MinBytes sits a little under half
// of MaxBytes (hysteresis) so alternating small inserts/removals near
// the midpoint don't thrash between splitting and merging.
const (
	MaxBytes = targetLeafSize - 1 - (ptrSize * 2)
	MinBytes = (MaxBytes / 2) - (MaxBytes / 32)
)
