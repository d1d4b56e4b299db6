package scanner

import "encoding/binary"

// word64 is the narrowest chunk backend: a single 8-byte lane group,
// used on CPUs where no wider feature was detected and as the scalar
// reference implementation exercised directly by tests.
type word64 uint64

func (word64) Size() int    { return 8 }
func (word64) MaxAcc() int  { return 255 }
func (word64) Splat(b byte) word64 {
	v := uint64(b) * 0x0101010101010101
	return word64(v)
}

func (word64) LoadFrom(data []byte) word64 {
	var buf [8]byte
	copy(buf[:], data)
	return word64(binary.LittleEndian.Uint64(buf[:]))
}

func (w word64) CmpEqByte(b byte) word64 {
	return word64(byteMaskWord(uint64(w), func(x byte) bool { return x == b }))
}

func (w word64) BytesBetween(lo, hi byte) word64 {
	return word64(byteMaskWord(uint64(w), func(x byte) bool { return x >= lo && x <= hi }))
}

func (w word64) BitAnd(o word64) word64 { return w & o }
func (w word64) Or(o word64) word64     { return w | o }
func (w word64) Add(o word64) word64    { return w + o }
func (w word64) Sub(o word64) word64    { return w - o }
func (w word64) IsZero() bool           { return w == 0 }

func (w word64) IncLexByte() word64 { return word64(perLaneAddConst(uint64(w), 1)) }
func (w word64) DecLexByte() word64 { return word64(perLaneAddConst(uint64(w), -1)) }

func (w word64) ShiftBack(n int) word64 {
	if n <= 0 {
		return w
	}
	if n >= 8 {
		return 0
	}
	return w >> uint(8*n)
}

func (w word64) Shr(n uint) word64 { return w >> n }

func (w word64) SumBytes() int { return popcountMaskWord(uint64(w)) }
