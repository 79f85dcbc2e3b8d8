package chacha20_test

import (
	"fmt"

	"github.com/zeebo/chacha20"
)

func ExampleGenerate() {
	state, err := chacha20.Setup(make([]byte, 32), make([]byte, 12), 0)
	if err != nil {
		panic(err)
	}

	out := make([]byte, chacha20.Narrow.Blocks()*64)
	n := chacha20.Generate(state, chacha20.Narrow, out)

	fmt.Printf("%d %x\n", n, out[:8])
	//output:
	// 128 76b8e0ada0f13d90
}

func ExampleCipher() {
	c, err := chacha20.NewCipher(make([]byte, 32), make([]byte, 12), 0)
	if err != nil {
		panic(err)
	}

	msg := []byte("some data")
	out := make([]byte, len(msg))
	c.XORKeyStream(out, msg)

	fmt.Printf("%x\n", out)
	//output:
	// 05d78dc880955ce421
}
