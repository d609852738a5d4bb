// Package calldata implements a segment-optimal encoder for smart-contract
// calldata. Given a calldata blob and a dictionary of 32-byte reference
// words (a caller wallet, a target contract, and contract-supplied storage
// slots), it picks a covering of the blob by zero-run, raw-copy, and
// dictionary-match segments that maximises decompressed-minus-compressed
// bytes, then serialises the covering to a tag-length-payload byte stream.
//
// Decompression is a separate, paired implementation and is out of scope
// here.
package calldata

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "calldata: " + string(e) }

var (
	// ErrDictNotInit is returned when a dictionary-dependent primitive is
	// queried before the dictionary's lookup table has been built.
	ErrDictNotInit error = Error("dictionary not initialized")

	// ErrInvalidRange is returned when a byte-slice request falls outside
	// the bounds of the input blob. The emitter surfaces this for its reads,
	// and Compress returns it for empty input; the primitive analyser treats
	// an out-of-range tail read as end of data.
	ErrInvalidRange error = Error("byte range out of bounds")

	// ErrLookupNotFound is returned when the emitter is asked to encode a
	// dictionary-match description whose payload is not a lookup key. This
	// signals an invariant violation in the planner, not a normal input
	// condition.
	ErrLookupNotFound error = Error("dictionary lookup miss for emitted description")
)

// UnsupportedMethodError reports that a description carries a method byte
// the emitter does not know how to serialise. It is always a planner
// invariant violation, never a normal input condition.
type UnsupportedMethodError struct {
	Method Method
}

func (e *UnsupportedMethodError) Error() string {
	return "calldata: unsupported method"
}

// Power is the pair (decompressed, compressed) byte count of a primitive
// encoding or of an entire plan. Two Powers add componentwise.
type Power struct {
	Dec int // bytes this primitive would consume from the input
	Cmp int // bytes this primitive would emit to the output
}

// Range is the decompressed-minus-compressed byte count, the planner's
// maximand. It is signed: the copy primitive's range can be negative (e.g.
// Power{1, 2}.Range() == -1), which deliberately encodes that the primitive
// costs more than it saves.
func (p Power) Range() int { return p.Dec - p.Cmp }

// Add returns the componentwise sum of p and o.
func (p Power) Add(o Power) Power {
	return Power{Dec: p.Dec + o.Dec, Cmp: p.Cmp + o.Cmp}
}

// Method selects how a Description's byte range is encoded on the wire.
type Method byte

const (
	MethodZero      Method = 0x00 // zero-run: amount-1 in [0,63]
	MethodCopy      Method = 0x01 // raw copy, optionally eliding leading zeros
	MethodDictShort Method = 0x10 // dictionary match, 2-byte emission
	MethodDictLong  Method = 0x11 // dictionary match, 3-byte emission
)

// Description is one chosen encoding span: amount_bytes input bytes
// starting at start_byte, encoded with method.
type Description struct {
	StartByte   int
	AmountBytes int
	Method      Method
}

// Plan is an ordered, contiguous, non-overlapping list of Descriptions
// together with their aggregate Power.
type Plan struct {
	Power        Power
	Descriptions []Description
}

// addPower folds pw into the plan's aggregate Power.
func (p *Plan) addPower(pw Power) {
	p.Power = p.Power.Add(pw)
}

// pushAt appends a Description with an explicit start byte, bypassing the
// usual chaining rule. Apart from pushChained, only the full zero-run
// shortcut in compressPart calls this; every other description chains off
// the previous one.
func (p *Plan) pushAt(start, amount int, method Method) {
	p.Descriptions = append(p.Descriptions, Description{
		StartByte:   start,
		AmountBytes: amount,
		Method:      method,
	})
}

// pushChained appends a Description whose start byte is the end of the
// previous description in the plan, or origin if the plan is still empty.
func (p *Plan) pushChained(origin, amount int, method Method) {
	start := origin
	if n := len(p.Descriptions); n > 0 {
		last := p.Descriptions[n-1]
		start = last.StartByte + last.AmountBytes
	}
	p.pushAt(start, amount, method)
}

// dictMethod picks the short or long dictionary-match method for a storage
// candidate, based on the 2-byte vs. 3-byte emission its index requires.
func dictMethod(sc Power) Method {
	if sc.Cmp == 2 {
		return MethodDictShort
	}
	return MethodDictLong
}
