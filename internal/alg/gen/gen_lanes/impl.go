// Package gen_lanes generates keystream blocks in parallel groups of
// four, holding the cipher state in row form: each vec models one wide
// register whose four 128-bit lanes carry the same four-word row of
// four consecutive blocks. Quarter rounds apply element-wise across
// every lane, and diagonal rounds are realized by rotating the words
// of each lane rather than by indexing the state diagonally.
package gen_lanes

import (
	"math/bits"
	"unsafe"

	"github.com/zeebo/chacha20/internal/consts"
	"github.com/zeebo/chacha20/internal/utils"
)

// vec is one row register: four lanes of four words, lane l holding a
// row of block l within the current group.
type vec [16]uint32

var (
	ctrAdd  = vec(consts.CtrAdd)
	ctrStep = vec(consts.CtrStep)
)

func (v *vec) add(o *vec) {
	for i := range v {
		v[i] += o[i]
	}
}

// qr applies the quarter round to four row registers, element-wise
// across all sixteen lanes' words at once.
func qr(a, b, c, d *vec) {
	for i := range a {
		ai, bi, ci, di := a[i], b[i], c[i], d[i]
		ai += bi
		di = bits.RotateLeft32(di^ai, 16)
		ci += di
		bi = bits.RotateLeft32(bi^ci, 12)
		ai += bi
		di = bits.RotateLeft32(di^ai, 8)
		ci += di
		bi = bits.RotateLeft32(bi^ci, 7)
		a[i], b[i], c[i], d[i] = ai, bi, ci, di
	}
}

// rotLanes rotates the four words of every lane left by n positions.
func (v *vec) rotLanes(n int) {
	for l := 0; l < len(v); l += 4 {
		s := v[l : l+4]
		s[0], s[1], s[2], s[3] = s[n&3], s[(n+1)&3], s[(n+2)&3], s[(n+3)&3]
	}
}

// diagonalize rotates the b/c/d rows' lanes left by 1/2/3 so that the
// diagonal quadruples (0,5,10,15) (1,6,11,12) (2,7,8,13) (3,4,9,14)
// line up as columns. undiagonalize restores row orientation.
func diagonalize(b, c, d *vec) {
	b.rotLanes(1)
	c.rotLanes(2)
	d.rotLanes(3)
}

func undiagonalize(b, c, d *vec) {
	b.rotLanes(3)
	c.rotLanes(2)
	d.rotLanes(1)
}

// Keystream computes n consecutive keystream blocks for state, four
// blocks per group, and writes them to out in counter order. The final
// group still computes four lanes; lanes past n are discarded. out
// must hold at least n*64 bytes.
func Keystream(state *[16]uint32, n int, out []byte) {
	// Broadcast each four-word row of the state into every lane. The
	// saved rows double as the feed-forward addend, so the counter
	// deltas are folded into ds up front.
	var as, bs, cs, ds vec
	for l := 0; l < 16; l += 4 {
		copy(as[l:l+4], state[0:4])
		copy(bs[l:l+4], state[4:8])
		copy(cs[l:l+4], state[8:12])
		copy(ds[l:l+4], state[12:16])
	}
	ds.add(&ctrAdd)

	for done := 0; done < n; done += consts.LaneWidth {
		a, b, c, d := as, bs, cs, ds

		for i := 0; i < 10; i++ {
			qr(&a, &b, &c, &d)
			diagonalize(&b, &c, &d)
			qr(&a, &b, &c, &d)
			undiagonalize(&b, &c, &d)
		}

		a.add(&as)
		b.add(&bs)
		c.add(&cs)
		d.add(&ds)

		g := n - done
		if g > consts.LaneWidth {
			g = consts.LaneWidth
		}
		collate(&a, &b, &c, &d, g, out[done*consts.BlockLen:])

		ds.add(&ctrStep)
	}
}

// collate de-interleaves g lanes into consecutive 64 byte blocks: lane
// l's four rows land at out[l*64:(l+1)*64] in little-endian order.
func collate(a, b, c, d *vec, g int, out []byte) {
	for l := 0; l < g; l++ {
		var block [16]uint32
		copy(block[0:4], a[4*l:])
		copy(block[4:8], b[4*l:])
		copy(block[8:12], c[4*l:])
		copy(block[12:16], d[4*l:])

		o := out[l*consts.BlockLen:]
		if consts.IsLittleEndian {
			copy(o[:consts.BlockLen], (*[64]byte)(unsafe.Pointer(&block[0]))[:])
		} else {
			utils.WordsToBytes(&block, o)
		}
	}
}
