package consts

import "golang.org/x/sys/cpu"

var (
	HasAVX2 = cpu.X86.HasAVX2

	// The sixteen block tier wants 512-bit registers with 128-bit lane
	// shuffles, so F alone is not enough.
	HasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL
)
