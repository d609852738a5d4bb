// Package testutil is a collection of test helpers for building
// deterministic calldata, dictionaries, and wallet/contract words.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator. Unlike
// math/rand, its output is guaranteed stable across Go versions, which
// matters for test vectors and fuzz corpora that must reproduce exactly.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// Word32 returns a deterministic pseudo-random 32-byte dictionary word.
func (r *Rand) Word32() [32]byte {
	var w [32]byte
	copy(w[:], r.Bytes(32))
	return w
}

// SparseWord32 returns a 32-byte word that is mostly zero, with roughly one
// in density non-zero bytes. This mimics the leading-zero-heavy ABI-encoded
// words (small integers, addresses) that make zero-run and copy primitives
// worth exercising, rather than always landing on uniformly random bytes
// that only ever favour dictionary matches or plain copies.
func (r *Rand) SparseWord32(density int) [32]byte {
	var w [32]byte
	if density <= 0 {
		density = 1
	}
	for i := range w {
		if r.Intn(density) == 0 {
			w[i] = byte(r.Int())
		}
	}
	return w
}

// Dictionary returns n deterministic pseudo-random dictionary words.
func (r *Rand) Dictionary(n int) [][32]byte {
	words := make([][32]byte, n)
	for i := range words {
		words[i] = r.Word32()
	}
	return words
}

// Calldata returns n bytes of deterministic pseudo-random calldata, built
// by concatenating sparse 32-byte words so the result looks like ABI
// encoding rather than uniform noise.
func (r *Rand) Calldata(n int) []byte {
	data := make([]byte, 0, n+32)
	for len(data) < n {
		w := r.SparseWord32(4)
		data = append(data, w[:]...)
	}
	return data[:n]
}
