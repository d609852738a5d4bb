package testutil

import "encoding/hex"

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// MustDecodeWord32 decodes a hexadecimal string into a 32-byte dictionary
// word, or else panics. It is used for literal wallet/contract/storage-slot
// test vectors.
func MustDecodeWord32(s string) [32]byte {
	b := MustDecodeHex(s)
	if len(b) != 32 {
		panic("testutil: word is not 32 bytes")
	}
	var w [32]byte
	copy(w[:], b)
	return w
}
