package gen_lanes_test

import (
	"bytes"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/chacha20/internal/alg/gen/gen_lanes"
	"github.com/zeebo/chacha20/internal/alg/gen/gen_pure"
	"github.com/zeebo/chacha20/internal/consts"
	"github.com/zeebo/pcg"
)

func TestKeystream(t *testing.T) {
	var state [16]uint32

	for n := 1; n <= 16; n++ {
		for trial := 0; trial < 64; trial++ {
			for i := range &state {
				state[i] = pcg.Uint32()
			}

			o1 := make([]byte, n*consts.BlockLen)
			o2 := make([]byte, n*consts.BlockLen)

			gen_lanes.Keystream(&state, n, o1)
			gen_pure.Keystream(&state, n, o2)

			assert.True(t, bytes.Equal(o1, o2))
		}
	}
}

func TestKeystream_CounterWrap(t *testing.T) {
	var state [16]uint32

	// place every lane of every group on both sides of the wrap
	for _, base := range []uint32{
		0xffffffff, 0xfffffffe, 0xfffffff8, 0xfffffff1,
	} {
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		state[consts.CounterWord] = base

		o1 := make([]byte, 16*consts.BlockLen)
		o2 := make([]byte, 16*consts.BlockLen)

		gen_lanes.Keystream(&state, 16, o1)
		gen_pure.Keystream(&state, 16, o2)

		assert.True(t, bytes.Equal(o1, o2))
	}
}

func TestKeystream_StateNotMutated(t *testing.T) {
	var state [16]uint32
	for i := range &state {
		state[i] = pcg.Uint32()
	}
	orig := state

	out := make([]byte, 16*consts.BlockLen)
	gen_lanes.Keystream(&state, 16, out)

	assert.Equal(t, orig, state)
}
