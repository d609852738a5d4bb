package calldata

// Dictionary is the effective reference-word list and its reverse lookup
// from tail byte sequences to word index. Index 0 is always the wallet,
// index 1 always the contract; caller-supplied words follow in order.
type Dictionary struct {
	words  [][32]byte
	lookup map[string]int
}

// admitted key lengths, longest first. storage(i) iterates in this order.
var tailLens = [4]int{32, 31, 20, 4}

// NewDictionary builds the effective dictionary (wallet, contract, then the
// caller-supplied words) and its reverse lookup. For each word it inserts
// four keys: the full 32 bytes, and the trailing 31, 20, and 4 bytes. On a
// colliding key between two words, the later write wins: insertion order is
// dictionary order, so a later word's short tail always shadows an earlier
// one's.
func NewDictionary(wallet, contract [32]byte, words [][32]byte) *Dictionary {
	d := &Dictionary{
		words:  make([][32]byte, 0, len(words)+2),
		lookup: make(map[string]int, (len(words)+2)*len(tailLens)),
	}
	d.words = append(d.words, wallet, contract)
	d.words = append(d.words, words...)

	for i, w := range d.words {
		for _, l := range tailLens {
			d.lookup[string(w[32-l:])] = i
		}
	}
	return d
}

// initialized reports whether the dictionary's lookup table has been built.
// A nil *Dictionary, or one obtained via the zero value rather than
// NewDictionary, counts as uninitialized.
func (d *Dictionary) initialized() bool {
	return d != nil && d.lookup != nil
}

// lookupIndex returns the dictionary index that key maps to, if any.
func (d *Dictionary) lookupIndex(key []byte) (int, bool) {
	idx, ok := d.lookup[string(key)]
	return idx, ok
}

// Storage returns the dictionary-match candidates for the amount_bytes
// window starting at offset i, one per matching tail length, in the
// iteration order [32, 31, 20, 4] — not sorted by length. A tail length
// that would read past the end of data is silently skipped, not an error.
func (d *Dictionary) Storage(data []byte, i int) ([]Power, error) {
	if !d.initialized() {
		return nil, ErrDictNotInit
	}

	var best []Power
	for _, l := range tailLens {
		if i+l > len(data) {
			continue
		}
		idx, ok := d.lookupIndex(data[i : i+l])
		if !ok {
			continue
		}
		cmp := 2
		if idx > 4096 {
			cmp = 3
		}
		best = append(best, Power{Dec: l, Cmp: cmp})
	}
	return best, nil
}
