// Package rope is the thin, public façade over internal/tree: an
// immutable-by-default, structurally-shared string type with
// logarithmic-time edits and lookups by byte, char, UTF-16, and
// line-break position.
package rope

import (
	"strings"

	"github.com/ssargent/textrope/internal/hashproto"
	"github.com/ssargent/textrope/internal/scanner"
	"github.com/ssargent/textrope/internal/tree"

	"crypto/sha256"
)

// Rope is an immutable handle to a persistent text tree. The zero
// value is not valid; use New or FromString.
type Rope struct {
	root tree.Node
}

// New returns an empty rope.
func New() Rope {
	return Rope{root: tree.NewLeafNode(tree.NewLeafText(nil))}
}

// FromString builds a balanced rope from s. s must be valid UTF-8.
func FromString(s string) Rope {
	return buildBalanced([]byte(s))
}

// buildBalanced cuts buf into MaxBytes-sized, char-boundary-aligned
// pieces and appends each one at the end of the rope via the ordinary
// insert path, so the same split machinery that edits use also builds
// the initial tree from scratch.
func buildBalanced(buf []byte) Rope {
	r := New()
	if len(buf) == 0 {
		return r
	}
	offset := 0
	for offset < len(buf) {
		end := offset + tree.MaxBytes
		if end > len(buf) {
			end = len(buf)
		} else {
			end = scanner.PrevCharBoundary(buf, end)
			if end <= offset {
				end = scanner.NextCharBoundary(buf, offset+1)
			}
		}
		var err error
		r, err = r.Insert(r.LenBytes(), string(buf[offset:end]))
		if err != nil {
			panic("rope: FromString produced a non-boundary insert, which should be unreachable for valid UTF-8")
		}
		offset = end
	}
	return r
}

// LenBytes returns the rope's length in UTF-8 bytes.
func (r Rope) LenBytes() int { return int(r.root.TextInfo().Bytes) }

// LenChars returns the rope's length in Unicode scalar values.
func (r Rope) LenChars() int { return int(r.root.TextInfo().Chars) }

// LenUTF16 returns the rope's length in UTF-16 code units.
func (r Rope) LenUTF16() int { return int(r.root.TextInfo().UTF16) }

// LenLines returns the number of line breaks under line-break regime
// lt; the rope always has LenLines(lt)+1 logical lines.
func (r Rope) LenLines(lt scanner.LineType) int {
	info := r.root.TextInfo()
	switch lt {
	case scanner.LF:
		return int(info.LineBreaksLF)
	case scanner.CRLF:
		return int(info.LineBreaksCRLF)
	default:
		return int(info.LineBreaksUnicode)
	}
}

// Insert returns a new rope with s inserted at byte offset byteIdx. r
// itself is left unmodified — Insert always clones its root handle
// before descending, so in-place copy-on-write mutation never touches
// a payload a caller might still be holding through r.
func (r Rope) Insert(byteIdx int, s string) (Rope, error) {
	if len(s) == 0 {
		return r, nil
	}
	root := r.root.Clone()
	res, err := (&root).InsertAtByteIdx(byteIdx, []byte(s))
	if err != nil {
		return r, err
	}
	if !res.Split {
		return Rope{root: root}, nil
	}
	arr := tree.NewChildArray()
	arr.Insert(0, root, res.Info)
	arr.Insert(1, res.Right, res.RightInfo)
	return Rope{root: tree.NewInternalNode(arr)}, nil
}

// Remove returns a new rope with the bytes in [lo, hi) deleted. r
// itself is left unmodified, for the same reason as Insert.
func (r Rope) Remove(lo, hi int) (Rope, error) {
	if lo == hi {
		return r, nil
	}
	root := r.root.Clone()
	_, err := (&root).RemoveByteRange(lo, hi)
	if err != nil {
		return r, err
	}
	return Rope{root: tree.Collapse(root)}, nil
}

// ByteToChar converts a byte offset to the char offset of the scalar
// value it falls within (or starts), saturating at the rope's length.
func (r Rope) ByteToChar(idx int) int {
	total := r.root.TextInfo()
	if idx >= int(total.Bytes) {
		return int(total.Chars)
	}
	prefix, leaf, local := tree.GetTextAtByte(r.root, idx)
	return int(prefix.Chars) + scanner.ByteToChar(leaf.Bytes(), local)
}

// CharToByte converts a char offset to its byte offset, saturating at
// the rope's length.
func (r Rope) CharToByte(idx int) int {
	total := r.root.TextInfo()
	if idx >= int(total.Chars) {
		return int(total.Bytes)
	}
	prefix, leaf, local := tree.GetTextAtChar(r.root, idx)
	return int(prefix.Bytes) + scanner.CharToByte(leaf.Bytes(), local)
}

// ByteToUTF16 converts a byte offset to a UTF-16 code unit offset,
// saturating at the rope's length.
func (r Rope) ByteToUTF16(idx int) int {
	total := r.root.TextInfo()
	if idx >= int(total.Bytes) {
		return int(total.UTF16)
	}
	prefix, leaf, local := tree.GetTextAtByte(r.root, idx)
	return int(prefix.UTF16) + scanner.ByteToUTF16(leaf.Bytes(), local)
}

// UTF16ToByte converts a UTF-16 code unit offset to its byte offset,
// saturating at the rope's length.
func (r Rope) UTF16ToByte(idx int) int {
	total := r.root.TextInfo()
	if idx >= int(total.UTF16) {
		return int(total.Bytes)
	}
	prefix, leaf, local := tree.GetTextAtUTF16(r.root, idx)
	return int(prefix.Bytes) + scanner.UTF16ToByte(leaf.Bytes(), local)
}

// ByteToLine converts a byte offset to a line index under regime lt,
// saturating at the rope's length.
func (r Rope) ByteToLine(idx int, lt scanner.LineType) int {
	total := r.root.TextInfo()
	if idx >= int(total.Bytes) {
		return r.LenLines(lt)
	}
	prefix, leaf, local := tree.GetTextAtByte(r.root, idx)
	return lineCount(prefix, lt) + scanner.ByteToLine(leaf.Bytes(), local, lt)
}

// LineToByte converts a line index under regime lt to the byte offset
// of the first byte after the line's preceding break (line 0 starts at
// byte 0), saturating at the rope's length.
func (r Rope) LineToByte(idx int, lt scanner.LineType) int {
	if idx <= 0 {
		return 0
	}
	if idx >= r.LenLines(lt)+1 {
		return r.LenBytes()
	}
	// The leaf found for line idx-1 is the one holding the idx-th break.
	prefix, leaf, local := tree.GetTextAtLine(r.root, idx-1, lt)
	return int(prefix.Bytes) + scanner.LineToByte(leaf.Bytes(), local+1, lt)
}

func lineCount(info tree.TextInfo, lt scanner.LineType) int {
	switch lt {
	case scanner.LF:
		return int(info.LineBreaksLF)
	case scanner.CRLF:
		return int(info.LineBreaksCRLF)
	default:
		return int(info.LineBreaksUnicode)
	}
}

// ChunkAtByte returns the leaf chunk containing byteIdx and the
// TextInfo summarizing everything before it.
func (r Rope) ChunkAtByte(idx int) (string, tree.TextInfo) {
	prefix, leaf, _ := tree.GetTextAtByte(r.root, idx)
	return string(leaf.Bytes()), prefix
}

// String materializes the rope's full content. For large ropes,
// prefer iterating chunks instead.
func (r Rope) String() string {
	var b strings.Builder
	b.Grow(r.LenBytes())
	it := r.Chunks()
	for chunk, ok := it.Next(); ok; chunk, ok = it.Next() {
		b.WriteString(chunk)
	}
	return b.String()
}

// Equal reports whether r and other hold byte-for-byte identical
// content.
func (r Rope) Equal(other Rope) bool {
	return r.Compare(other) == 0
}

// Compare returns -1, 0, or 1 according to the lexicographic byte
// ordering of r and other's content, walking both as chunk streams
// rather than materializing either in full.
func (r Rope) Compare(other Rope) int {
	a, b := r.Chunks(), other.Chunks()
	var abuf, bbuf []byte
	for {
		for len(abuf) == 0 {
			chunk, ok := a.Next()
			if !ok {
				break
			}
			abuf = []byte(chunk)
		}
		for len(bbuf) == 0 {
			chunk, ok := b.Next()
			if !ok {
				break
			}
			bbuf = []byte(chunk)
		}
		if len(abuf) == 0 || len(bbuf) == 0 {
			switch {
			case len(abuf) == len(bbuf):
				return 0
			case len(abuf) == 0:
				return -1
			default:
				return 1
			}
		}
		n := len(abuf)
		if len(bbuf) < n {
			n = len(bbuf)
		}
		for i := 0; i < n; i++ {
			if abuf[i] != bbuf[i] {
				if abuf[i] < bbuf[i] {
					return -1
				}
				return 1
			}
		}
		abuf = abuf[n:]
		bbuf = bbuf[n:]
	}
}

// Hash returns a 32-byte digest of the rope's content using the fixed
// block hashing protocol in internal/hashproto, so two ropes holding
// the same text hash identically regardless of how their leaves
// happen to be chunked. The content is followed by one
// hashproto.Sentinel byte.
func (r Rope) Hash() [32]byte {
	h := hashproto.NewHasher(sha256.New())
	it := r.Chunks()
	for chunk, ok := it.Next(); ok; chunk, ok = it.Next() {
		_, _ = h.Write([]byte(chunk))
	}
	_, _ = h.Write([]byte{hashproto.Sentinel})
	return h.Sum()
}
