package gen_pure

import (
	"math/bits"
	"unsafe"

	"github.com/zeebo/chacha20/internal/consts"
	"github.com/zeebo/chacha20/internal/utils"
)

// qr is the ChaCha20 quarter round. All arithmetic is mod 2^32 and all
// rotations are circular left rotates.
func qr(a, b, c, d uint32) (uint32, uint32, uint32, uint32) {
	a += b
	d = bits.RotateLeft32(d^a, 16)
	c += d
	b = bits.RotateLeft32(b^c, 12)
	a += b
	d = bits.RotateLeft32(d^a, 8)
	c += d
	b = bits.RotateLeft32(b^c, 7)
	return a, b, c, d
}

// Block computes one 64 byte keystream block for state with the counter
// word advanced by delta, and writes it to out in little-endian order.
// The diagonal rounds index the state directly; this is the reference
// the lane engine is checked against.
func Block(state *[16]uint32, delta uint32, out *[64]byte) {
	s0, s1, s2, s3 := state[0], state[1], state[2], state[3]
	s4, s5, s6, s7 := state[4], state[5], state[6], state[7]
	s8, s9, sa, sb := state[8], state[9], state[10], state[11]
	sc, sd, se, sf := state[12]+delta, state[13], state[14], state[15]

	x0, x1, x2, x3 := s0, s1, s2, s3
	x4, x5, x6, x7 := s4, s5, s6, s7
	x8, x9, xa, xb := s8, s9, sa, sb
	xc, xd, xe, xf := sc, sd, se, sf

	for i := 0; i < 10; i++ {
		x0, x4, x8, xc = qr(x0, x4, x8, xc)
		x1, x5, x9, xd = qr(x1, x5, x9, xd)
		x2, x6, xa, xe = qr(x2, x6, xa, xe)
		x3, x7, xb, xf = qr(x3, x7, xb, xf)

		x0, x5, xa, xf = qr(x0, x5, xa, xf)
		x1, x6, xb, xc = qr(x1, x6, xb, xc)
		x2, x7, x8, xd = qr(x2, x7, x8, xd)
		x3, x4, x9, xe = qr(x3, x4, x9, xe)
	}

	block := [16]uint32{
		x0 + s0, x1 + s1, x2 + s2, x3 + s3,
		x4 + s4, x5 + s5, x6 + s6, x7 + s7,
		x8 + s8, x9 + s9, xa + sa, xb + sb,
		xc + sc, xd + sd, xe + se, xf + sf,
	}

	if consts.IsLittleEndian {
		copy(out[:], (*[64]byte)(unsafe.Pointer(&block[0]))[:])
	} else {
		utils.WordsToBytes(&block, out[:])
	}
}

// Keystream computes n consecutive keystream blocks for state, one per
// counter value starting at the state's counter word, and writes them
// to out in counter order. out must hold at least n*64 bytes.
func Keystream(state *[16]uint32, n int, out []byte) {
	for i := 0; i < n; i++ {
		Block(state, uint32(i), (*[64]byte)(out[i*consts.BlockLen:]))
	}
}
