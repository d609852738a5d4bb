// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the segment-optimal planner's compression ratio
// against general-purpose byte-stream codecs over synthetic calldata
// corpora. It never imports the calldata package's own dependencies in
// reverse: the calldata package remains ignorant of every codec compared
// here.
package bench

import (
	"bytes"
	"hash/crc32"

	"github.com/dsnet/golib/hashutil"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Codec is a single general-purpose competitor. name is the label used in
// reports; compress runs the codec over input and returns its output size
// (not the bytes themselves, since only the ratio is of interest here).
type Codec struct {
	Name     string
	Compress func(input []byte) (int, error)
}

// Codecs lists every general-purpose competitor this tool wires in. Each
// entry mirrors one direct dependency: klauspost/compress supplies flate
// and zstd, ulikunitz/xz supplies a third, LZMA2-based point of comparison.
var Codecs = []Codec{
	{Name: "flate", Compress: compressFlate},
	{Name: "zstd", Compress: compressZstd},
	{Name: "xz", Compress: compressXZ},
}

func compressFlate(input []byte) (int, error) {
	buf := new(bytes.Buffer)
	zw, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(input); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func compressZstd(input []byte) (int, error) {
	buf := new(bytes.Buffer)
	zw, err := zstd.NewWriter(buf)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(input); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func compressXZ(input []byte) (int, error) {
	buf := new(bytes.Buffer)
	zw, err := xz.NewWriter(buf)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(input); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

// Ratio is one row of a comparison report: the segment-optimal planner's
// ratio alongside every general-purpose competitor's, for the same corpus.
type Ratio struct {
	Name         string
	Uncompressed int
	PlannerBytes int
	CodecBytes   map[string]int
}

// checksumHalves splits data at its midpoint and combines the CRC-32 of
// each half with hashutil.CombineCRC32, checking the result against the
// CRC-32 of the whole buffer. This is the corpus-integrity check every
// comparison run performs before trusting a corpus across codecs: a split
// computation that disagrees with the direct one means the corpus was
// mutated between reads.
func checksumHalves(data []byte) bool {
	mid := len(data) / 2
	c1 := crc32.ChecksumIEEE(data[:mid])
	c2 := crc32.ChecksumIEEE(data[mid:])
	combined := hashutil.CombineCRC32(crc32.IEEE, c1, c2, uint32(len(data)-mid))
	return combined == crc32.ChecksumIEEE(data)
}
