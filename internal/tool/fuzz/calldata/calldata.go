// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package calldata

import (
	"github.com/evmpack/calldata"
)

// Fuzz checks the segment-optimal planner's internal invariants over
// arbitrary input. There is no paired decompressor in this system, so
// round-tripping is out of reach here; instead every chosen Plan is
// checked against the tiling (P1), length-cap (P3), and Power
// self-consistency (P2) invariants directly.
//
// The first 64 bytes of data seed the wallet and contract; the remainder is
// the calldata blob under test. The dictionary is up to 16 words carved from
// the start of data, so it overlaps both the seed bytes and the blob.
func Fuzz(data []byte) int {
	if len(data) < 65 {
		return 0
	}
	var wallet, contract [32]byte
	copy(wallet[:], data[0:32])
	copy(contract[:], data[32:64])
	blob := data[64:]

	dict := splitDictionary(data)

	res, err := calldata.Compress(blob, wallet, contract, dict)
	if err != nil {
		if err == calldata.ErrInvalidRange {
			return 0 // empty blob, expected rejection
		}
		panic(err)
	}

	checkTiling(res.Description, len(blob))
	checkLengthCaps(res.Description)

	if res.Power.Dec != len(blob) {
		panic("power.Dec does not match input length")
	}
	if len(res.Compressed) != res.Power.Cmp {
		panic("len(compressed) does not match power.Cmp")
	}

	return 1
}

// splitDictionary carves a handful of 32-byte dictionary words out of the
// fuzz corpus itself, so the fuzzer can discover dictionary-hit inputs
// without a separate seed corpus for dictionary content.
func splitDictionary(data []byte) [][32]byte {
	const wordSize = 32
	n := len(data) / wordSize
	if n > 16 {
		n = 16
	}
	words := make([][32]byte, 0, n)
	for i := 0; i < n; i++ {
		var w [32]byte
		copy(w[:], data[i*wordSize:(i+1)*wordSize])
		words = append(words, w)
	}
	return words
}

func checkTiling(descs []calldata.Description, n int) {
	next := 0
	for _, d := range descs {
		if d.StartByte != next {
			panic("description does not chain from the previous one")
		}
		if d.AmountBytes <= 0 {
			panic("description covers zero or negative bytes")
		}
		next += d.AmountBytes
	}
	if next != n {
		panic("descriptions do not cover the whole input")
	}
}

func checkLengthCaps(descs []calldata.Description) {
	for _, d := range descs {
		switch d.Method {
		case calldata.MethodZero:
			if d.AmountBytes > 64 {
				panic("zero-run exceeds 64 bytes")
			}
		case calldata.MethodCopy:
			if d.AmountBytes > 32 {
				panic("copy exceeds 32 bytes")
			}
		case calldata.MethodDictShort, calldata.MethodDictLong:
			switch d.AmountBytes {
			case 4, 20, 31, 32:
			default:
				panic("dictionary match has an unsupported tail length")
			}
		default:
			panic("unknown method")
		}
	}
}
