package rope

import (
	"unicode/utf8"

	"github.com/ssargent/textrope/internal/tree"
)

// frame is one level of an in-order tree descent: the node at this
// level and the index of the child to visit next.
type frame struct {
	node     tree.Node
	childIdx int
}

// ChunkIterator yields a rope's leaves left to right as strings. It's
// the foundation every other iterator and String/Hash/Compare is built
// on, matching spec.md's "iter_chunks is the primitive; iter_bytes and
// iter_chars are built atop it" shape.
type ChunkIterator struct {
	root  tree.Node
	stack []frame
	done  bool
}

// Chunks returns a restartable iterator over r's leaves in order.
func (r Rope) Chunks() *ChunkIterator {
	it := &ChunkIterator{root: r.root}
	it.Reset()
	return it
}

// Reset rewinds the iterator back to the rope's first chunk.
func (it *ChunkIterator) Reset() {
	it.stack = it.stack[:0]
	it.done = false
	it.descendLeftmost(it.root)
}

// descendLeftmost pushes n and every leftmost descendant onto the
// stack, so the top of the stack is always the next unvisited leaf.
func (it *ChunkIterator) descendLeftmost(n tree.Node) {
	for {
		it.stack = append(it.stack, frame{node: n, childIdx: 0})
		if n.IsLeaf() {
			return
		}
		n = n.Children().NodeAt(0)
	}
}

// Next returns the next chunk and true, or ("", false) once exhausted.
func (it *ChunkIterator) Next() (string, bool) {
	for {
		if len(it.stack) == 0 {
			it.done = true
			return "", false
		}
		top := len(it.stack) - 1
		f := it.stack[top]

		if f.node.IsLeaf() {
			it.stack = it.stack[:top]
			it.advanceParent()
			if f.node.Leaf().Len() == 0 {
				continue // the sole empty leaf of an empty rope: skip it
			}
			return string(f.node.Leaf().Bytes()), true
		}

		children := f.node.Children()
		if f.childIdx >= children.Len() {
			it.stack = it.stack[:top]
			it.advanceParent()
			continue
		}
		it.descendLeftmost(children.NodeAt(f.childIdx))
	}
}

// advanceParent bumps the child index of whatever frame is now on top
// of the stack, so the next time it's visited descendLeftmost moves on
// to its next child rather than repeating the one just finished.
func (it *ChunkIterator) advanceParent() {
	if len(it.stack) == 0 {
		return
	}
	top := len(it.stack) - 1
	it.stack[top].childIdx++
}

// CharIterator yields a rope's content one rune at a time, decoding
// each chunk with unicode/utf8 as it's pulled from the underlying
// ChunkIterator.
type CharIterator struct {
	chunks  *ChunkIterator
	current string
}

// Chars returns a restartable iterator over r's Unicode scalar values.
func (r Rope) Chars() *CharIterator {
	return &CharIterator{chunks: r.Chunks()}
}

// Reset rewinds the iterator back to the rope's first rune.
func (c *CharIterator) Reset() {
	c.chunks.Reset()
	c.current = ""
}

// Next returns the next rune and true, or (0, false) once exhausted.
func (c *CharIterator) Next() (rune, bool) {
	for len(c.current) == 0 {
		chunk, ok := c.chunks.Next()
		if !ok {
			return 0, false
		}
		c.current = chunk
	}
	r, size := utf8.DecodeRuneInString(c.current)
	c.current = c.current[size:]
	return r, true
}

// ByteIterator yields a rope's content one byte at a time.
type ByteIterator struct {
	chunks  *ChunkIterator
	current string
}

// Bytes returns a restartable iterator over r's raw UTF-8 bytes.
func (r Rope) Bytes() *ByteIterator {
	return &ByteIterator{chunks: r.Chunks()}
}

// Reset rewinds the iterator back to the rope's first byte.
func (b *ByteIterator) Reset() {
	b.chunks.Reset()
	b.current = ""
}

// Next returns the next byte and true, or (0, false) once exhausted.
func (b *ByteIterator) Next() (byte, bool) {
	for len(b.current) == 0 {
		chunk, ok := b.chunks.Next()
		if !ok {
			return 0, false
		}
		b.current = chunk
	}
	out := b.current[0]
	b.current = b.current[1:]
	return out, true
}
