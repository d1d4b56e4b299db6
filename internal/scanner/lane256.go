package scanner

// lane256 packs four word64 lane-groups for a 32-byte chunk width,
// selected when the running CPU advertises AVX2-class width via
// golang.org/x/sys/cpu (see detect.go). As with lane128, each 8-byte
// group is classified independently; the benefit here is stride, not
// vectorized execution.
type lane256 [4]uint64

func (lane256) Size() int   { return 32 }
func (lane256) MaxAcc() int { return 255 }

func (lane256) Splat(b byte) lane256 {
	v := uint64(word64(0).Splat(b))
	return lane256{v, v, v, v}
}

func (lane256) LoadFrom(data []byte) lane256 {
	var out lane256
	for i := 0; i < 4; i++ {
		out[i] = uint64(word64(0).LoadFrom(data[i*8 : i*8+8]))
	}
	return out
}

func (l lane256) mapWords(f func(uint64) uint64) lane256 {
	return lane256{f(l[0]), f(l[1]), f(l[2]), f(l[3])}
}

func (l lane256) CmpEqByte(b byte) lane256 {
	return l.mapWords(func(w uint64) uint64 { return uint64(word64(w).CmpEqByte(b)) })
}

func (l lane256) BytesBetween(lo, hi byte) lane256 {
	return l.mapWords(func(w uint64) uint64 { return uint64(word64(w).BytesBetween(lo, hi)) })
}

func (l lane256) BitAnd(o lane256) lane256 {
	return lane256{l[0] & o[0], l[1] & o[1], l[2] & o[2], l[3] & o[3]}
}
func (l lane256) Or(o lane256) lane256 {
	return lane256{l[0] | o[0], l[1] | o[1], l[2] | o[2], l[3] | o[3]}
}
func (l lane256) Add(o lane256) lane256 {
	return lane256{l[0] + o[0], l[1] + o[1], l[2] + o[2], l[3] + o[3]}
}
func (l lane256) Sub(o lane256) lane256 {
	return lane256{l[0] - o[0], l[1] - o[1], l[2] - o[2], l[3] - o[3]}
}
func (l lane256) IsZero() bool {
	return l[0] == 0 && l[1] == 0 && l[2] == 0 && l[3] == 0
}

func (l lane256) IncLexByte() lane256 {
	return l.mapWords(func(w uint64) uint64 { return perLaneAddConst(w, 1) })
}
func (l lane256) DecLexByte() lane256 {
	return l.mapWords(func(w uint64) uint64 { return perLaneAddConst(w, -1) })
}

func (l lane256) ShiftBack(n int) lane256 {
	if n <= 0 {
		return l
	}
	if n >= 32 {
		return lane256{}
	}
	// Flatten, shift, repack: simplest correct rendition; this path
	// isn't on the hot counting loop.
	var buf [32]byte
	for i := 0; i < 4; i++ {
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(l[i] >> uint(8*j))
		}
	}
	var shifted [32]byte
	copy(shifted[:32-n], buf[n:])
	var out lane256
	for i := 0; i < 4; i++ {
		var w uint64
		for j := 0; j < 8; j++ {
			w |= uint64(shifted[i*8+j]) << uint(8*j)
		}
		out[i] = w
	}
	return out
}

func (l lane256) Shr(n uint) lane256 {
	return l.mapWords(func(w uint64) uint64 { return w >> n })
}

func (l lane256) SumBytes() int {
	return popcountMaskWord(l[0]) + popcountMaskWord(l[1]) + popcountMaskWord(l[2]) + popcountMaskWord(l[3])
}
