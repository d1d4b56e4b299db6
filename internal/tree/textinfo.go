package tree

import "github.com/ssargent/textrope/internal/scanner"

// TextInfo is the additive monoid of per-chunk metrics cached at every
// node of the tree: byte/char/UTF-16/line-break counts for the text a
// subtree or leaf covers, plus the two boundary flags needed to apply
// the CRLF join correction when chunks are concatenated.
//
// The zero value is the identity element: all counts zero, both flags
// false. Append is associative, which is what lets these summaries be
// cached per-node and composed bottom-up instead of recomputed.
type TextInfo struct {
	Bytes Count
	Chars Count
	UTF16 Count

	LineBreaksLF      Count
	LineBreaksCRLF    Count
	LineBreaksUnicode Count

	// StartsWithLF is true iff the chunk's first byte is '\n'.
	StartsWithLF bool
	// EndsWithCR is true iff the chunk's last byte is '\r'.
	EndsWithCR bool
}

// FromBytes computes a TextInfo in one pass over b, which must be valid
// UTF-8 (the leaf/scanner layer enforces this; FromBytes doesn't
// re-validate it).
func FromBytes(b []byte) TextInfo {
	if len(b) == 0 {
		return TextInfo{}
	}
	return TextInfo{
		Bytes: Count(len(b)),
		Chars: Count(scanner.CountChars(b)),
		UTF16: Count(scanner.CountUTF16(b)),

		LineBreaksLF:      Count(scanner.CountLineBreaks(b, scanner.LF)),
		LineBreaksCRLF:    Count(scanner.CountLineBreaks(b, scanner.CRLF)),
		LineBreaksUnicode: Count(scanner.CountLineBreaks(b, scanner.Unicode)),

		StartsWithLF: b[0] == '\n',
		EndsWithCR:   b[len(b)-1] == '\r',
	}
}

// Append combines a (earlier text) and b (later text) into the summary
// of their concatenation, applying the CRLF join correction: if a ends
// with CR and b starts with LF, the pair straddles the boundary and
// must be counted as a single line break under the CRLF-aware regimes
// (CRLF and Unicode) rather than once on each side.
func (a TextInfo) Append(b TextInfo) TextInfo {
	out := TextInfo{
		Bytes: a.Bytes + b.Bytes,
		Chars: a.Chars + b.Chars,
		UTF16: a.UTF16 + b.UTF16,

		LineBreaksLF:      a.LineBreaksLF + b.LineBreaksLF,
		LineBreaksCRLF:    a.LineBreaksCRLF + b.LineBreaksCRLF,
		LineBreaksUnicode: a.LineBreaksUnicode + b.LineBreaksUnicode,

		StartsWithLF: a.StartsWithLF,
		EndsWithCR:   b.EndsWithCR,
	}
	if a.Bytes == 0 {
		out.StartsWithLF = b.StartsWithLF
	}
	if b.Bytes == 0 {
		out.EndsWithCR = a.EndsWithCR
	}
	if a.EndsWithCR && b.StartsWithLF {
		out.LineBreaksCRLF--
		out.LineBreaksUnicode--
	}
	return out
}

// AdjustedByNextIsLF returns the info this TextInfo would have if the
// byte immediately following the described text were (nextIsLF=true)
// or were not (false) LF. It's used when a caller trims a leaf's text
// for a sliced view: a CR sitting right at the trim edge must not be
// double counted against the real neighboring byte once the trim
// discards the chunk's own knowledge of what actually follows.
func (a TextInfo) AdjustedByNextIsLF(nextIsLF bool) TextInfo {
	if !nextIsLF || !a.EndsWithCR {
		return a
	}
	out := a
	out.LineBreaksCRLF--
	out.LineBreaksUnicode--
	return out
}
