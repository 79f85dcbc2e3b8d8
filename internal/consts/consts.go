package consts

import (
	"unsafe"
)

// The four constant words of the cipher state: "expand 32-byte k".
const (
	Sigma0 = 0x61707865
	Sigma1 = 0x3320646e
	Sigma2 = 0x79622d32
	Sigma3 = 0x6b206574
)

const (
	BlockLen = 64 // bytes of keystream per counter value
	StateLen = 16 // words in a cipher state
	KeyLen   = 32
	NonceLen = 12

	// CounterWord is the index of the block counter in the state.
	CounterWord = 12
)

// Blocks produced per call by each tier.
const (
	NarrowBlocks = 2
	MediumBlocks = 4
	WideBlocks   = 16
)

// LaneWidth is how many blocks the lane engine advances per group: one
// block per 128-bit lane, four lanes per group.
const LaneWidth = 4

// CtrAdd overlays +0/+1/+2/+3 onto the counter word of a four-lane d
// row, giving each lane its own block counter. CtrStep advances all
// four lanes to the next group of four blocks. Both are read-only after
// initialization.
var CtrAdd = [16]uint32{
	0, 0, 0, 0,
	1, 0, 0, 0,
	2, 0, 0, 0,
	3, 0, 0, 0,
}

var CtrStep = [16]uint32{
	4, 0, 0, 0,
	4, 0, 0, 0,
	4, 0, 0, 0,
	4, 0, 0, 0,
}

// TODO: maybe this would be better if it was a const. then the compiler could
// do dead code elimination.
var IsLittleEndian = *(*uint32)(unsafe.Pointer(&[4]byte{0, 0, 0, 1})) != 1
