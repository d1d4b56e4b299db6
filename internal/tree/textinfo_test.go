package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBytes_Empty(t *testing.T) {
	info := FromBytes(nil)
	assert.Equal(t, TextInfo{}, info)
}

func TestFromBytes_Basic(t *testing.T) {
	info := FromBytes([]byte("ab\ncd"))
	assert.Equal(t, Count(5), info.Bytes)
	assert.Equal(t, Count(5), info.Chars)
	assert.Equal(t, Count(1), info.LineBreaksLF)
	assert.False(t, info.StartsWithLF)
	assert.False(t, info.EndsWithCR)
}

func TestFromBytes_Flags(t *testing.T) {
	info := FromBytes([]byte("\nx\r"))
	assert.True(t, info.StartsWithLF)
	assert.True(t, info.EndsWithCR)
}

func TestAppend_SumsCounts(t *testing.T) {
	a := FromBytes([]byte("ab"))
	b := FromBytes([]byte("cd\n"))
	sum := a.Append(b)
	assert.Equal(t, Count(5), sum.Bytes)
	assert.Equal(t, Count(1), sum.LineBreaksLF)
	assert.False(t, sum.StartsWithLF)
	assert.False(t, sum.EndsWithCR)
}

func TestAppend_JoinsCRLFAcrossBoundary(t *testing.T) {
	a := FromBytes([]byte("ab\r"))
	b := FromBytes([]byte("\ncd"))

	// Each side independently sees one CRLF-regime break (the lone CR,
	// the lone LF); joined, the real text "ab\r\ncd" has exactly one.
	assert.Equal(t, Count(1), a.LineBreaksCRLF)
	assert.Equal(t, Count(1), b.LineBreaksCRLF)

	sum := a.Append(b)
	assert.Equal(t, Count(1), sum.LineBreaksCRLF)
	assert.Equal(t, Count(1), sum.LineBreaksUnicode)
	// LF-only regime never counted the CR at all, so no correction is
	// needed there: "ab\r\ncd" has exactly one '\n'.
	assert.Equal(t, Count(1), sum.LineBreaksLF)
}

func TestAppend_PreservesEdgeFlagsThroughEmptyOperand(t *testing.T) {
	a := FromBytes([]byte("ab\r"))
	empty := TextInfo{}
	sum := a.Append(empty)
	assert.True(t, sum.EndsWithCR)

	sum2 := empty.Append(a)
	assert.True(t, sum2.EndsWithCR)
	assert.False(t, sum2.StartsWithLF)
}

func TestAdjustedByNextIsLF(t *testing.T) {
	a := FromBytes([]byte("ab\r"))
	assert.Equal(t, Count(1), a.LineBreaksCRLF)

	adjusted := a.AdjustedByNextIsLF(true)
	assert.Equal(t, Count(0), adjusted.LineBreaksCRLF)
	assert.Equal(t, Count(0), adjusted.LineBreaksUnicode)
	// LF-only count is untouched: CR was never counted there.
	assert.Equal(t, a.LineBreaksLF, adjusted.LineBreaksLF)

	unchanged := a.AdjustedByNextIsLF(false)
	assert.Equal(t, a, unchanged)
}

func TestAdjustedByNextIsLF_NoOpWithoutTrailingCR(t *testing.T) {
	a := FromBytes([]byte("ab"))
	assert.Equal(t, a, a.AdjustedByNextIsLF(true))
}
