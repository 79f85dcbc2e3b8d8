//go:build !amd64
// +build !amd64

package consts

const (
	HasAVX2   = false
	HasAVX512 = false
)
