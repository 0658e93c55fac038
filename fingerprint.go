package rustedbrain

import (
	"github.com/klauspost/compress/s2"
	b58 "github.com/mr-tron/base58"
	"github.com/zeebo/blake3"

	bf "nickandperla.net/brainfuck"
)

// Fingerprint identifies a program by its filtered instruction sequence, so
// two sources that differ only in commentary or formatting share a
// fingerprint and their runs aggregate together in the run database.
func Fingerprint(program *bf.Program) string {
	sum := blake3.Sum256([]byte(program.String()))
	return b58.Encode(sum[:])
}

func packSource(source []byte) []byte {
	return s2.Encode(nil, source)
}

func unpackSource(packed []byte) ([]byte, error) {
	return s2.Decode(nil, packed)
}
