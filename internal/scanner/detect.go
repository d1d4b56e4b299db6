package scanner

import "golang.org/x/sys/cpu"

// BackendName reports which Chunk backend was selected at init time,
// for diagnostics and tests.
var BackendName string

var (
	countCharsImpl      func([]byte) int
	count4ByteLeadsImpl func([]byte) int
	charToByteImpl      func([]byte, int) int
)

func init() {
	switch {
	case cpu.X86.HasAVX2:
		BackendName = "lane256"
		countCharsImpl = countCharsGeneric[lane256]
		count4ByteLeadsImpl = count4ByteLeadsGeneric[lane256]
		charToByteImpl = charToByteGeneric[lane256]
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		BackendName = "lane128"
		countCharsImpl = countCharsGeneric[lane128]
		count4ByteLeadsImpl = count4ByteLeadsGeneric[lane128]
		charToByteImpl = charToByteGeneric[lane128]
	default:
		BackendName = "word64"
		countCharsImpl = countCharsGeneric[word64]
		count4ByteLeadsImpl = count4ByteLeadsGeneric[word64]
		charToByteImpl = charToByteGeneric[word64]
	}
}
