package scanner

// lane128 packs two word64 lane-groups for a 16-byte chunk width. It
// models the "wider backing" tier of the ByteChunk capability set
// without depending on real vector instructions: each half is an
// independent word64 classification, which keeps the behavior
// identical to word64 while doubling the stride of the scanning loops
// that use it.
type lane128 [2]uint64

func (lane128) Size() int   { return 16 }
func (lane128) MaxAcc() int { return 255 }

func (lane128) Splat(b byte) lane128 {
	v := word64(0).Splat(b)
	return lane128{uint64(v), uint64(v)}
}

func (lane128) LoadFrom(data []byte) lane128 {
	var out lane128
	out[0] = uint64(word64(0).LoadFrom(data[0:8]))
	out[1] = uint64(word64(0).LoadFrom(data[8:16]))
	return out
}

func (l lane128) CmpEqByte(b byte) lane128 {
	return lane128{
		uint64(word64(l[0]).CmpEqByte(b)),
		uint64(word64(l[1]).CmpEqByte(b)),
	}
}

func (l lane128) BytesBetween(lo, hi byte) lane128 {
	return lane128{
		uint64(word64(l[0]).BytesBetween(lo, hi)),
		uint64(word64(l[1]).BytesBetween(lo, hi)),
	}
}

func (l lane128) BitAnd(o lane128) lane128 { return lane128{l[0] & o[0], l[1] & o[1]} }
func (l lane128) Or(o lane128) lane128     { return lane128{l[0] | o[0], l[1] | o[1]} }
func (l lane128) Add(o lane128) lane128    { return lane128{l[0] + o[0], l[1] + o[1]} }
func (l lane128) Sub(o lane128) lane128    { return lane128{l[0] - o[0], l[1] - o[1]} }
func (l lane128) IsZero() bool             { return l[0] == 0 && l[1] == 0 }

func (l lane128) IncLexByte() lane128 {
	return lane128{perLaneAddConst(l[0], 1), perLaneAddConst(l[1], 1)}
}
func (l lane128) DecLexByte() lane128 {
	return lane128{perLaneAddConst(l[0], -1), perLaneAddConst(l[1], -1)}
}

func (l lane128) ShiftBack(n int) lane128 {
	if n <= 0 {
		return l
	}
	if n >= 16 {
		return lane128{}
	}
	if n < 8 {
		// bytes flow from lane1 into lane0's vacated high end.
		lo := (word64(l[0]).ShiftBack(n))
		carry := word64(l[1]) << uint(8*(8-n))
		return lane128{uint64(lo) | uint64(carry), uint64(word64(l[1]).ShiftBack(n))}
	}
	return lane128{uint64(word64(l[1]).ShiftBack(n - 8)), 0}
}

func (l lane128) Shr(n uint) lane128 {
	return lane128{uint64(word64(l[0]).Shr(n)), uint64(word64(l[1]).Shr(n))}
}

func (l lane128) SumBytes() int {
	return popcountMaskWord(l[0]) + popcountMaskWord(l[1])
}
