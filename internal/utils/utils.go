package utils

import "encoding/binary"

// WordsToBytes serializes the sixteen words of a keystream block into
// bytes in little-endian order. bytes must hold at least 64 bytes.
func WordsToBytes(words *[16]uint32, bytes []byte) {
	binary.LittleEndian.PutUint32(bytes[0*4:], words[0])
	binary.LittleEndian.PutUint32(bytes[1*4:], words[1])
	binary.LittleEndian.PutUint32(bytes[2*4:], words[2])
	binary.LittleEndian.PutUint32(bytes[3*4:], words[3])
	binary.LittleEndian.PutUint32(bytes[4*4:], words[4])
	binary.LittleEndian.PutUint32(bytes[5*4:], words[5])
	binary.LittleEndian.PutUint32(bytes[6*4:], words[6])
	binary.LittleEndian.PutUint32(bytes[7*4:], words[7])
	binary.LittleEndian.PutUint32(bytes[8*4:], words[8])
	binary.LittleEndian.PutUint32(bytes[9*4:], words[9])
	binary.LittleEndian.PutUint32(bytes[10*4:], words[10])
	binary.LittleEndian.PutUint32(bytes[11*4:], words[11])
	binary.LittleEndian.PutUint32(bytes[12*4:], words[12])
	binary.LittleEndian.PutUint32(bytes[13*4:], words[13])
	binary.LittleEndian.PutUint32(bytes[14*4:], words[14])
	binary.LittleEndian.PutUint32(bytes[15*4:], words[15])
}

// WordsFromBytes loads len(words) little-endian words from bytes.
func WordsFromBytes(bytes []byte, words []uint32) {
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(bytes[4*i:])
	}
}
