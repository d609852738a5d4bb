package calldata

import (
	"testing"

	"github.com/evmpack/calldata/internal/testutil"
)

// TestCompressLiteralScenarios exercises every end-to-end scenario listed
// in the compressor's behavioural contract, each checked against its exact
// expected byte string.
func TestCompressLiteralScenarios(t *testing.T) {
	zero32 := [32]byte{}

	t.Run("small structured payload", func(t *testing.T) {
		data := testutil.MustDecodeHex(
			"0000000000000000000000000000000000000000000000000000000000000020" +
				"0000000000000000000000000000000000000000000000000000000000000040" +
				"0000000000000000000000000000000000000000000000000000000000000001" +
				"0000000000000000000000000000000000000000000000000000000000000008" +
				"6d79537472696e67000000000000000000000000000000000000000000000000")

		dict := make([][32]byte, 1000) // all-zero words
		res, err := Compress(data, zero32, zero32, dict)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := testutil.MustDecodeHex("6020006140001d40010061086d4679537472696e6717")
		assertBytesEqual(t, res.Compressed, want)
		if res.Power.Dec != len(data) {
			t.Fatalf("power.Dec = %d, want %d", res.Power.Dec, len(data))
		}
		if len(res.Compressed) != res.Power.Cmp {
			t.Fatalf("len(compressed) = %d, want power.Cmp = %d", len(res.Compressed), res.Power.Cmp)
		}
	})

	t.Run("single zero byte", func(t *testing.T) {
		res, err := Compress([]byte{0x00}, zero32, zero32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertBytesEqual(t, res.Compressed, testutil.MustDecodeHex("00"))
	})

	t.Run("single non-zero byte", func(t *testing.T) {
		res, err := Compress([]byte{0xaa}, zero32, zero32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertBytesEqual(t, res.Compressed, testutil.MustDecodeHex("40aa"))
	})

	t.Run("64 zero bytes", func(t *testing.T) {
		res, err := Compress(make([]byte, 64), zero32, zero32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertBytesEqual(t, res.Compressed, testutil.MustDecodeHex("3f"))
		if len(res.Description) != 1 || res.Description[0].AmountBytes != 64 {
			t.Fatalf("description = %+v, want single 64-byte zero-run", res.Description)
		}
	})

	t.Run("dictionary hit on wallet", func(t *testing.T) {
		wallet := [32]byte{}
		for i := range wallet {
			wallet[i] = 0x11
		}
		data := make([]byte, 32)
		for i := range data {
			data[i] = 0x11
		}
		res, err := Compress(data, wallet, zero32, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertBytesEqual(t, res.Compressed, testutil.MustDecodeHex("8000"))
		if len(res.Description) != 1 || res.Description[0].Method != MethodDictShort {
			t.Fatalf("description = %+v, want a single dict-short match", res.Description)
		}
	})
}

func TestCompressRejectsEmptyInput(t *testing.T) {
	if _, err := Compress(nil, [32]byte{}, [32]byte{}, nil); err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange for empty input, got %v", err)
	}
}

func TestCompressIsDeterministic(t *testing.T) {
	rnd := testutil.NewRand(7)
	data := rnd.Calldata(120)
	wallet := rnd.Word32()
	contract := rnd.Word32()
	dict := rnd.Dictionary(10)

	a, err := Compress(data, wallet, contract, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Compress(data, wallet, contract, dict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBytesEqual(t, a.Compressed, b.Compressed)
	if a.Power != b.Power {
		t.Fatalf("power differs between identical calls: %+v vs %+v", a.Power, b.Power)
	}
}

func assertBytesEqual(t *testing.T, got, want []byte) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %x (len %d), want %x (len %d)", got, len(got), want, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %x, want %x (first diff at byte %d)", got, want, i)
		}
	}
}
