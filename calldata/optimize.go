package calldata

// maxLookback bounds how far back the DP optimiser considers starting a
// part plan from the current offset.
const maxLookback = 63

// optimize runs the dynamic program over infos, returning the optimal plan
// covering the whole input. best[k] is the optimal plan covering bytes
// [0,k] inclusive: its descriptions tile [0,k]. Its Power.Dec is k+1 unless
// a part plan's full zero-run shortcut fired after earlier descriptions in
// the same part, in which case the shortcut's to-from+1 accounting makes
// Power.Dec larger than k+1.
func optimize(infos []ByteInfo) Plan {
	n := len(infos)
	best := make([]Plan, n)

	if infos[0].Zero.Dec != 0 {
		best[0] = Plan{
			Power:        Power{Dec: 1, Cmp: 1},
			Descriptions: []Description{{StartByte: 0, AmountBytes: 1, Method: MethodZero}},
		}
	} else {
		best[0] = Plan{
			Power:        Power{Dec: 1, Cmp: 2},
			Descriptions: []Description{{StartByte: 0, AmountBytes: 1, Method: MethodCopy}},
		}
	}

	for i := 1; i < n; i++ {
		seedDescs := make([]Description, 0, len(best[i-1].Descriptions)+1)
		seedDescs = append(seedDescs, best[i-1].Descriptions...)
		seedDescs = append(seedDescs, Description{StartByte: i, AmountBytes: 1, Method: MethodCopy})

		current := Plan{
			Power: Power{
				Dec: best[i-1].Power.Dec + 1,
				Cmp: best[i-1].Power.Cmp + 2,
			},
			Descriptions: seedDescs,
		}

		lo := i - maxLookback
		if lo < 0 {
			lo = 0
		}
		for j := i; j >= lo; j-- {
			part := compressPart(infos, j, i)

			var prefix Plan
			if start := part.Descriptions[0].StartByte; start != 0 {
				prefix = best[start-1]
			}

			if prefix.Power.Range()+part.Power.Range() > current.Power.Range() {
				descs := make([]Description, 0, len(prefix.Descriptions)+len(part.Descriptions))
				descs = append(descs, prefix.Descriptions...)
				descs = append(descs, part.Descriptions...)
				current = Plan{
					Power:        prefix.Power.Add(part.Power),
					Descriptions: descs,
				}
			}
		}

		best[i] = current
	}

	return best[n-1]
}
