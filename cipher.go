package chacha20

import (
	"github.com/zeebo/chacha20/internal/alg/gen"
	"github.com/zeebo/chacha20/internal/consts"
)

// Cipher encrypts by XORing generated keystream with input. It owns
// the absolute block counter: unlike Generate, it refuses to wrap the
// 32 bit counter word, since that would reuse keystream.
type Cipher struct {
	state State
	tier  Tier
	ctr   uint64 // next block counter to generate

	// buf[off:off+len] is keystream generated but not yet consumed
	buf [consts.WideBlocks * consts.BlockLen]byte
	off int
	len int
}

// NewCipher returns a Cipher for the given 32 byte key, 12 byte nonce,
// and initial counter, generating keystream at the detected tier.
func NewCipher(key, nonce []byte, counter uint32) (*Cipher, error) {
	state, err := Setup(key, nonce, counter)
	if err != nil {
		return nil, err
	}
	return &Cipher{state: *state, tier: DetectTier(), ctr: uint64(counter)}, nil
}

// XORKeyStream XORs each byte of src with the next byte of keystream
// and writes it to dst. dst must be at least as long as src. Multiple
// calls behave as one call on the concatenated inputs. It panics if
// the keystream is exhausted (2^32 blocks from the initial counter).
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("chacha20: output smaller than input")
	}
	dst = dst[:len(src)]

	for len(src) > 0 {
		if c.len == 0 {
			need := uint64(len(src)+consts.BlockLen-1) / consts.BlockLen
			if c.ctr+need > 1<<32 {
				panic("chacha20: counter overflow")
			}

			// generate a full group, clipped at counter exhaustion
			n := c.tier.Blocks()
			if rem := uint64(1<<32) - c.ctr; uint64(n) > rem {
				n = int(rem)
			}

			c.state[consts.CounterWord] = uint32(c.ctr)
			gen.Keystream((*[16]uint32)(&c.state), n, c.buf[:n*consts.BlockLen])
			c.ctr += uint64(n)
			c.off, c.len = 0, n*consts.BlockLen
		}

		ks := c.buf[c.off : c.off+c.len]
		if len(src) < len(ks) {
			ks = ks[:len(src)]
		}
		for i, b := range ks {
			dst[i] = src[i] ^ b
		}
		c.off += len(ks)
		c.len -= len(ks)
		dst, src = dst[len(ks):], src[len(ks):]
	}
}
