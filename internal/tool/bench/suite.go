// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"fmt"

	"github.com/evmpack/calldata"
	"github.com/evmpack/calldata/internal/testutil"
)

// Corpus is one named synthetic calldata sample used for comparison, built
// to resemble ABI-encoded function arguments rather than uniform noise.
type Corpus struct {
	Name     string
	Wallet   [32]byte
	Contract [32]byte
	Dict     [][32]byte
	Data     []byte
}

// DefaultCorpora builds a small, deterministic spread of synthetic corpora
// at varying sizes and dictionary depths.
func DefaultCorpora() []Corpus {
	var out []Corpus
	for i, size := range []int{64, 512, 4096, 32768} {
		rnd := testutil.NewRand(i + 1)
		wallet := rnd.Word32()
		contract := rnd.Word32()
		dict := rnd.Dictionary(32)
		data := rnd.Calldata(size)
		out = append(out, Corpus{
			Name:     fmt.Sprintf("calldata-%d", size),
			Wallet:   wallet,
			Contract: contract,
			Dict:     dict,
			Data:     data,
		})
	}
	return out
}

// RunSuite compresses every corpus with the segment-optimal planner and
// every registered Codec, returning one Ratio per corpus.
//
// A corpus failing its integrity check is a bug in this tool, not in the
// codecs under test, and is reported via error rather than silently
// skipped.
func RunSuite(corpora []Corpus) ([]Ratio, error) {
	results := make([]Ratio, 0, len(corpora))
	for _, c := range corpora {
		if !checksumHalves(c.Data) {
			return nil, fmt.Errorf("bench: corpus %q failed integrity check", c.Name)
		}

		res, err := calldata.Compress(c.Data, c.Wallet, c.Contract, c.Dict)
		if err != nil {
			return nil, fmt.Errorf("bench: corpus %q: planner failed: %w", c.Name, err)
		}

		row := Ratio{
			Name:         c.Name,
			Uncompressed: len(c.Data),
			PlannerBytes: len(res.Compressed),
			CodecBytes:   make(map[string]int, len(Codecs)),
		}
		for _, codec := range Codecs {
			n, err := codec.Compress(c.Data)
			if err != nil {
				return nil, fmt.Errorf("bench: corpus %q: codec %q failed: %w", c.Name, codec.Name, err)
			}
			row.CodecBytes[codec.Name] = n
		}
		results = append(results, row)
	}
	return results, nil
}
