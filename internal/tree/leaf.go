package tree

import "github.com/ssargent/textrope/internal/scanner"

// LeafText is a fixed-capacity UTF-8 buffer: the payload of a tree
// leaf. Its length must stay within [MinBytes, MaxBytes] except when it
// is the sole leaf in the whole tree (spec.md §3). It additionally
// caches a split point — a UTF-8- and CRLF-safe offset roughly midway
// through the buffer — and the TextInfo of the left half that split
// point produces, so a leaf can answer "what's in my left half"
// without rescanning on every query.
type LeafText struct {
	buf []byte

	fullInfo TextInfo

	splitPoint int
	leftInfo   TextInfo
}

// NewLeafText builds a LeafText from buf, which must be valid UTF-8 and
// no longer than MaxBytes. buf is copied; the caller retains ownership
// of the slice passed in.
func NewLeafText(buf []byte) *LeafText {
	l := &LeafText{buf: append([]byte(nil), buf...)}
	l.recompute()
	return l
}

// Len returns the buffer's length in bytes.
func (l *LeafText) Len() int { return len(l.buf) }

// Bytes returns the leaf's full text. The caller must not mutate the
// returned slice.
func (l *LeafText) Bytes() []byte { return l.buf }

// TextInfo returns the cached summary of the whole leaf.
func (l *LeafText) TextInfo() TextInfo { return l.fullInfo }

// SplitPoint returns the cached byte offset splitting the leaf into
// its two logical halves.
func (l *LeafText) SplitPoint() int { return l.splitPoint }

// LeftInfo returns the cached TextInfo of buf[:SplitPoint()].
func (l *LeafText) LeftInfo() TextInfo { return l.leftInfo }

// RightInfo returns the TextInfo of buf[SplitPoint():]. It is not
// cached: each call rescans the right half.
func (l *LeafText) RightInfo() TextInfo {
	return FromBytes(l.buf[l.splitPoint:])
}

// IsUndersized reports whether the leaf holds fewer than MinBytes — a
// signal to the node layer that a merge or redistribution is due,
// unless this is the tree's sole leaf.
func (l *LeafText) IsUndersized() bool { return len(l.buf) < MinBytes }

func (l *LeafText) recompute() {
	l.fullInfo = FromBytes(l.buf)
	l.splitPoint = splitPointNear(l.buf, len(l.buf)/2)
	l.leftInfo = FromBytes(l.buf[:l.splitPoint])
}

// InsertStr inserts s at byteIdx. byteIdx must be a UTF-8 char boundary
// of the current buffer or ErrNotOnCharBoundary is returned and the
// leaf is left unmodified. The caller is responsible for ensuring
// Len()+len(s) <= MaxBytes before calling; InsertStr doesn't enforce
// capacity itself (the node layer decides whether to split first).
func (l *LeafText) InsertStr(byteIdx int, s []byte) error {
	if !scanner.IsCharBoundary(l.buf, byteIdx) {
		return ErrNotOnCharBoundary
	}
	if len(s) == 0 {
		return nil
	}
	buf := make([]byte, 0, len(l.buf)+len(s))
	buf = append(buf, l.buf[:byteIdx]...)
	buf = append(buf, s...)
	buf = append(buf, l.buf[byteIdx:]...)
	l.buf = buf
	l.recompute()
	return nil
}

// AppendStr appends s to the end of the buffer.
func (l *LeafText) AppendStr(s []byte) {
	if len(s) == 0 {
		return
	}
	l.buf = append(l.buf, s...)
	l.recompute()
}

// RemoveRange deletes buf[start:end]. Both bounds must be UTF-8 char
// boundaries or ErrNotOnCharBoundary is returned. start and end past
// Len() is a programming error (panicOutOfBounds), matching spec.md
// §7's OutOfBounds semantics.
func (l *LeafText) RemoveRange(start, end int) error {
	if start < 0 || end > len(l.buf) || start > end {
		panicOutOfBounds("LeafText.RemoveRange: range outside buffer")
	}
	if !scanner.IsCharBoundary(l.buf, start) || !scanner.IsCharBoundary(l.buf, end) {
		return ErrNotOnCharBoundary
	}
	if start == end {
		return nil
	}
	buf := make([]byte, 0, len(l.buf)-(end-start))
	buf = append(buf, l.buf[:start]...)
	buf = append(buf, l.buf[end:]...)
	l.buf = buf
	l.recompute()
	return nil
}

// SplitOff truncates the leaf to buf[:byteIdx] and returns a new
// LeafText holding buf[byteIdx:]. byteIdx must be a char boundary.
// Used by the node layer when an insert would overflow MaxBytes and a
// new sibling leaf must be created.
func (l *LeafText) SplitOff(byteIdx int) (*LeafText, error) {
	if byteIdx < 0 || byteIdx > len(l.buf) {
		panicOutOfBounds("LeafText.SplitOff: index outside buffer")
	}
	if !scanner.IsCharBoundary(l.buf, byteIdx) {
		return nil, ErrNotOnCharBoundary
	}
	right := NewLeafText(l.buf[byteIdx:])
	l.buf = append([]byte(nil), l.buf[:byteIdx]...)
	l.recompute()
	return right, nil
}

// Distribute rebalances bytes between l and its right neighbor so that
// the split between them lands on a UTF-8 boundary that doesn't
// separate a CR from its LF, moving the split as close to the midpoint
// of their combined bytes as those constraints and MaxBytes allow.
func (l *LeafText) Distribute(right *LeafText) {
	combined := make([]byte, 0, l.Len()+right.Len())
	combined = append(combined, l.buf...)
	combined = append(combined, right.buf...)

	target := len(combined) / 2
	if target > MaxBytes {
		target = MaxBytes
	}
	if rem := len(combined) - target; rem > MaxBytes {
		target = len(combined) - MaxBytes
	}

	sp := splitPointNear(combined, target)
	l.buf = append([]byte(nil), combined[:sp]...)
	right.buf = append([]byte(nil), combined[sp:]...)
	l.recompute()
	right.recompute()
}

// splitPointNear finds the nearest UTF-8 char boundary to target within
// buf that also doesn't fall between a CR and its following LF,
// preferring to move backward first (matching the original's
// leaf-split back-off behavior) and moving forward instead when the
// char-boundary back-off would collapse to zero. A point between CR
// and LF always moves back one byte to the CR, even when that is zero.
func splitPointNear(buf []byte, target int) int {
	if len(buf) == 0 {
		return 0
	}
	if target < 0 {
		target = 0
	}
	if target > len(buf) {
		target = len(buf)
	}

	sp := scanner.PrevCharBoundary(buf, target)
	if sp == 0 && target > 0 {
		sp = scanner.NextCharBoundary(buf, target)
	}
	if splitsCRLF(buf, sp) {
		if back := scanner.PrevCharBoundary(buf, sp-1); back > 0 || sp-1 == 0 {
			sp = back
		} else {
			sp = scanner.NextCharBoundary(buf, sp+1)
		}
	}
	if sp > len(buf) {
		sp = len(buf)
	}
	return sp
}

// splitsCRLF reports whether offset sp falls strictly between a CR and
// the LF that immediately follows it.
func splitsCRLF(buf []byte, sp int) bool {
	return sp > 0 && sp < len(buf) && buf[sp-1] == '\r' && buf[sp] == '\n'
}
