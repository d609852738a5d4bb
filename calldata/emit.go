package calldata

import "encoding/binary"

// bb is the 2-bit dictionary-match length selector, in on-wire order. Note
// this order differs from the storage-candidate iteration order
// [32,31,20,4] used by the analyser.
var bb = [4]int{32, 20, 4, 31}

// Emit serialises a Description list against data into the on-wire
// tag-length-payload byte stream.
func Emit(data []byte, dict *Dictionary, descs []Description) ([]byte, error) {
	var out []byte
	for _, d := range descs {
		switch d.Method {
		case MethodZero:
			out = append(out, byte(d.AmountBytes-1))

		case MethodCopy:
			payload, err := sliceBytes(data, d.StartByte, d.AmountBytes)
			if err != nil {
				return nil, err
			}
			z := 0
			for z < len(payload) && payload[z] == 0 {
				z++
			}
			if z == len(payload) {
				z = 0 // defensive: an all-zero copy payload elides nothing
			}
			tag := (d.AmountBytes - z - 1) + 64
			if z > 0 {
				tag += 32
			}
			out = append(out, byte(tag))
			out = append(out, payload[z:]...)

		case MethodDictShort, MethodDictLong:
			payload, err := sliceBytes(data, d.StartByte, d.AmountBytes)
			if err != nil {
				return nil, err
			}
			idx, ok := dict.lookupIndex(payload)
			if !ok {
				return nil, ErrLookupNotFound
			}
			pos := bbPos(d.AmountBytes)
			var value uint64
			if d.Method == MethodDictShort {
				value = uint64(idx) + 1<<15 + uint64(pos)<<12
			} else {
				value = uint64(idx) + 3<<22 + uint64(pos)<<20
			}
			out = append(out, minimalBigEndian(value)...)

		default:
			return nil, &UnsupportedMethodError{Method: d.Method}
		}
	}
	return out, nil
}

// sliceBytes returns data[start:start+amount], or ErrInvalidRange if that
// range falls outside data.
func sliceBytes(data []byte, start, amount int) ([]byte, error) {
	if start < 0 || amount < 0 || start+amount > len(data) {
		return nil, ErrInvalidRange
	}
	return data[start : start+amount], nil
}

// bbPos returns the index of amount within bb.
func bbPos(amount int) int {
	for i, v := range bb {
		if v == amount {
			return i
		}
	}
	return 0
}

// minimalBigEndian encodes v as big-endian bytes with no leading zero
// bytes (the natural big-endian minimal form of an unsigned integer).
func minimalBigEndian(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return append([]byte(nil), buf[i:]...)
}
