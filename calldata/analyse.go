package calldata

// ByteInfo holds the primitive-encoding candidates for one input offset.
type ByteInfo struct {
	Zero    Power   // zero-run ending at the longest all-zero prefix, capped at 64
	Copy    Power   // raw copy, possibly eliding leading zeros
	Storage []Power // dictionary-match candidates, iteration order [32,31,20,4]
}

// Analyse computes a ByteInfo for every offset in data. dict must already
// be initialized; a nil or zero-value Dictionary causes every offset to
// fail with ErrDictNotInit.
func Analyse(data []byte, dict *Dictionary) ([]ByteInfo, error) {
	infos := make([]ByteInfo, len(data))
	for i := range data {
		storage, err := dict.Storage(data, i)
		if err != nil {
			return nil, err
		}
		infos[i] = ByteInfo{
			Zero:    zeroRun(data, i),
			Copy:    copyWithLeadingZeros(data, i),
			Storage: storage,
		}
	}
	return infos, nil
}

// zeroRun is the zero-run primitive at offset i: it runs to the longest
// all-zero prefix of length at most 64 starting at i.
func zeroRun(data []byte, i int) Power {
	if data[i] != 0 {
		return Power{Dec: 0, Cmp: 0}
	}
	j := i + 1
	for j < len(data) && data[j] == 0 && j-i <= 63 {
		j++
	}
	return Power{Dec: j - i, Cmp: 1}
}

// copyWithLeadingZeros is the copy primitive at offset i: up to 32 bytes of
// raw payload, with a leading run of zeros elided via the P-bit. The
// L == 32 branch is special-cased because the on-wire copy header's length
// field is modulo 32, so a full 32-byte block is the only case where
// header elision changes the compressed-size accounting.
func copyWithLeadingZeros(data []byte, i int) Power {
	n := len(data)
	if data[i] != 0 {
		return Power{Dec: 1, Cmp: 2}
	}

	z := 0
	for z < 31 && i+z < n && data[i+z] == 0 {
		z++
	}
	if z == 31 && i+31 < n && data[i+31] == 0 {
		// First 32 bytes from i are all zero: cede to the zero-run
		// primitive, which is strictly superior at this offset.
		return Power{Dec: 31, Cmp: 32}
	}

	l := n - i
	if l > 32 {
		l = 32
	}
	if l == 32 {
		return Power{Dec: l, Cmp: 1 + l - z}
	}
	return Power{Dec: l, Cmp: 1 + l}
}
