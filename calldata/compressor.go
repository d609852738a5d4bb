package calldata

// Result is the outcome of a single Compress call.
type Result struct {
	Uncompressed []byte        // echo of the input blob
	Compressed   []byte        // the on-wire tag-length-payload byte stream
	Power        Power         // aggregate (decompressed, compressed) size
	Description  []Description // the chosen covering of the input
}

// Compress picks a segment covering of data that maximises
// decompressed-minus-compressed range, then serialises it.
//
// dict is the caller-supplied list of storage-slot words; the wallet and
// contract words are always prepended as dictionary indices 0 and 1
// respectively. Compress is a pure function of its inputs: independent
// calls share no mutable state and may run concurrently.
func Compress(data []byte, wallet, contract [32]byte, dict [][32]byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrInvalidRange
	}

	d := NewDictionary(wallet, contract, dict)

	infos, err := Analyse(data, d)
	if err != nil {
		return Result{}, err
	}

	plan := optimize(infos)

	compressed, err := Emit(data, d, plan.Descriptions)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Uncompressed: data,
		Compressed:   compressed,
		Power:        plan.Power,
		Description:  plan.Descriptions,
	}, nil
}
