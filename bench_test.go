package chacha20

import (
	"fmt"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	run := func(b *testing.B, tier Tier) {
		state, err := Setup(make([]byte, 32), make([]byte, 12), 0)
		if err != nil {
			b.Fatal(err)
		}
		out := make([]byte, tier.Blocks()*64)
		b.ReportAllocs()
		b.SetBytes(int64(len(out)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			Generate(state, tier, out)
		}
	}

	for _, tier := range []Tier{Narrow, Medium, Wide} {
		b.Run(fmt.Sprintf("%04d_bytes", tier.Blocks()*64), func(b *testing.B) { run(b, tier) })
	}
}

func BenchmarkXORKeyStream(b *testing.B) {
	run := func(b *testing.B, size int) {
		key := make([]byte, 32)
		nonce := make([]byte, 12)
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(size))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			c, _ := NewCipher(key, nonce, 0)
			c.XORKeyStream(buf, buf)
		}
	}

	for _, n := range []int{1, 2, 4, 8, 16, 64, 256, 1024} {
		b.Run(fmt.Sprintf("%04d_kib", n), func(b *testing.B) { run(b, n*1024) })
	}
}
