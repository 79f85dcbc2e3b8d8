// Package chacha20 implements a multi-block keystream generator for
// the ChaCha20 stream cipher (RFC 8439). Depending on the selected
// tier, each Generate call produces 2, 4, or 16 consecutive 64 byte
// keystream blocks, bit-identical to the scalar reference algorithm.
package chacha20

import (
	"errors"

	"github.com/zeebo/chacha20/internal/alg/gen"
	"github.com/zeebo/chacha20/internal/consts"
	"github.com/zeebo/chacha20/internal/utils"
)

// Tier selects how many keystream blocks Generate produces per call.
// Tiers differ only in how much keystream a call yields, never in its
// content.
type Tier int

const (
	Narrow Tier = iota // two blocks per call
	Medium             // four blocks per call
	Wide               // sixteen blocks per call
)

// Blocks returns the number of 64 byte keystream blocks the tier
// produces per Generate call.
func (t Tier) Blocks() int {
	switch t {
	case Narrow:
		return consts.NarrowBlocks
	case Medium:
		return consts.MediumBlocks
	case Wide:
		return consts.WideBlocks
	}
	panic("chacha20: invalid tier")
}

// DetectTier returns the widest tier the processor's vector registers
// support. Any tier is valid on any processor; wider tiers only
// amortize better when the hardware is wide enough.
func DetectTier() Tier {
	switch {
	case consts.HasAVX512:
		return Wide
	case consts.HasAVX2:
		return Medium
	default:
		return Narrow
	}
}

// State is the 16 word ChaCha20 cipher state: four constant words,
// eight key words, one counter word, and three nonce words. Generate
// treats it as read-only.
type State [16]uint32

// Setup assembles a State from a 32 byte key, a 12 byte nonce, and an
// initial block counter.
func Setup(key, nonce []byte, counter uint32) (*State, error) {
	if len(key) != consts.KeyLen {
		return nil, errors.New("invalid key size")
	}
	if len(nonce) != consts.NonceLen {
		return nil, errors.New("invalid nonce size")
	}

	var s State
	s[0], s[1], s[2], s[3] = consts.Sigma0, consts.Sigma1, consts.Sigma2, consts.Sigma3
	utils.WordsFromBytes(key, s[4:12])
	s[consts.CounterWord] = counter
	utils.WordsFromBytes(nonce, s[13:16])
	return &s, nil
}

// Generate fills out with tier.Blocks() consecutive keystream blocks
// for counters state.counter, state.counter+1, ... and returns the
// number of bytes written (tier.Blocks()*64). Block i occupies
// out[i*64:(i+1)*64] with each word serialized little-endian.
//
// The counter word wraps mod 2^32 within a call; avoiding counter
// reuse across calls is the caller's responsibility. Generate panics
// if out is shorter than tier.Blocks()*64 bytes.
//
// Generate is a pure function of its inputs and holds no state between
// calls, so any number of goroutines may call it concurrently on their
// own states and buffers.
func Generate(state *State, tier Tier, out []byte) int {
	n := tier.Blocks() * consts.BlockLen
	if len(out) < n {
		panic("chacha20: output buffer too small")
	}
	gen.Keystream((*[16]uint32)(state), tier.Blocks(), out[:n])
	return n
}
