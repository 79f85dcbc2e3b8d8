// Package gen selects a keystream strategy for a requested block count.
package gen

import (
	"github.com/zeebo/chacha20/internal/alg/gen/gen_lanes"
	"github.com/zeebo/chacha20/internal/alg/gen/gen_pure"
	"github.com/zeebo/chacha20/internal/consts"
)

// Keystream writes n consecutive 64 byte keystream blocks for state
// into out, starting at the state's counter word. Requests smaller
// than a lane group go to the scalar path; everything else runs the
// lane engine. Both paths produce identical bytes.
func Keystream(state *[16]uint32, n int, out []byte) {
	if n >= consts.LaneWidth {
		gen_lanes.Keystream(state, n, out)
	} else {
		gen_pure.Keystream(state, n, out)
	}
}
