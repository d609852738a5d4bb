package calldata

import "testing"

func TestEmitZeroRun(t *testing.T) {
	out, err := Emit(make([]byte, 64), nil, []Description{{StartByte: 0, AmountBytes: 64, Method: MethodZero}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != 0x3f {
		t.Fatalf("got %x, want [3f]", out)
	}
}

func TestEmitCopyNoElision(t *testing.T) {
	data := []byte{0xaa}
	out, err := Emit(data, nil, []Description{{StartByte: 0, AmountBytes: 1, Method: MethodCopy}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{0x40, 0xaa}
	assertBytesEqual(t, out, want)
}

func TestEmitCopyWithElision(t *testing.T) {
	data := make([]byte, 32)
	data[30] = 0x01
	out, err := Emit(data, nil, []Description{{StartByte: 0, AmountBytes: 32, Method: MethodCopy}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// z=30, tag = (32-30-1) + 64 + 32 = 97 = 0x61, payload = data[30:32].
	want := append([]byte{0x61}, data[30:]...)
	assertBytesEqual(t, out, want)
}

func TestEmitDictShort(t *testing.T) {
	wallet := [32]byte{}
	for i := range wallet {
		wallet[i] = 0x11
	}
	d := NewDictionary(wallet, [32]byte{}, nil)
	data := make([]byte, 32)
	for i := range data {
		data[i] = 0x11
	}
	out, err := Emit(data, d, []Description{{StartByte: 0, AmountBytes: 32, Method: MethodDictShort}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertBytesEqual(t, out, []byte{0x80, 0x00})
}

func TestEmitUnsupportedMethod(t *testing.T) {
	_, err := Emit([]byte{0x00}, nil, []Description{{StartByte: 0, AmountBytes: 1, Method: 0x02}})
	if err == nil {
		t.Fatalf("expected an error for an unsupported method")
	}
	if _, ok := err.(*UnsupportedMethodError); !ok {
		t.Fatalf("expected *UnsupportedMethodError, got %T: %v", err, err)
	}
}

func TestEmitLookupNotFound(t *testing.T) {
	d := NewDictionary([32]byte{}, [32]byte{}, nil)
	data := make([]byte, 32)
	for i := range data {
		data[i] = 0xff // not a dictionary key
	}
	_, err := Emit(data, d, []Description{{StartByte: 0, AmountBytes: 32, Method: MethodDictShort}})
	if err != ErrLookupNotFound {
		t.Fatalf("expected ErrLookupNotFound, got %v", err)
	}
}

func TestEmitInvalidRange(t *testing.T) {
	_, err := Emit([]byte{0x00}, nil, []Description{{StartByte: 0, AmountBytes: 5, Method: MethodCopy}})
	if err != ErrInvalidRange {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}
