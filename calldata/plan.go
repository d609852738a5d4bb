package calldata

// compressPart greedily constructs a single candidate Plan covering the
// inclusive byte range [from, to], using the precomputed ByteInfo table.
//
// The sweep favours, at each offset, whichever of a zero-run, a raw copy
// absorbing a short leading zero-run, or a dictionary match yields the
// best range, with storage candidates tried in their iteration order and
// ties broken in favour of the earlier-considered option. Raw bytes that
// aren't worth any of those are accumulated into a pending copy and
// flushed in chunks of at most 32.
func compressPart(infos []ByteInfo, from, to int) Plan {
	var plan Plan
	justCopy := 0

	i := from
	for i <= to {
		info := infos[i]

		if info.Zero.Dec >= to-i+1 {
			plan = flushJustCopy(plan, from, justCopy)
			plan.addPower(Power{Dec: to - from + 1, Cmp: 1})
			plan.pushAt(i, to-i+1, MethodZero)
			return plan
		}

		zeroBytes := 0
		paddingWithCopy := false
		needJustCopy := true

		if info.Zero.Dec != 0 {
			if info.Copy.Dec >= to-i+1 || info.Zero.Range() > info.Copy.Range() {
				zeroBytes = info.Zero.Dec
			} else {
				paddingWithCopy = true
			}
		}

		isZeroCompress := zeroBytes > 0
		storageUsed := false

		for _, sc := range info.Storage {
			if sc.Dec > to-i+1 {
				continue
			}
			storageBeatsCopy := sc.Range() > info.Copy.Range()

			if !isZeroCompress && !storageBeatsCopy && !paddingWithCopy {
				continue
			}

			plan = flushJustCopy(plan, from, justCopy)

			switch {
			case isZeroCompress:
				if sc.Range() > info.Zero.Range() {
					plan.addPower(sc)
					plan.pushChained(from, sc.Dec, dictMethod(sc))
					i += sc.Dec
				} else {
					plan.addPower(info.Zero)
					plan.pushChained(from, zeroBytes, MethodZero)
					i += zeroBytes
				}
			case storageBeatsCopy:
				plan.addPower(sc)
				plan.pushChained(from, sc.Dec, dictMethod(sc))
				i += sc.Dec
			case paddingWithCopy:
				plan.addPower(info.Copy)
				plan.pushChained(from, info.Copy.Dec, MethodCopy)
				i += info.Copy.Dec
			}

			justCopy = 0
			needJustCopy = false
			storageUsed = true
			break
		}

		if !storageUsed {
			if isZeroCompress || paddingWithCopy {
				plan = flushJustCopy(plan, from, justCopy)
			}

			if isZeroCompress {
				plan.addPower(info.Zero)
				plan.pushChained(from, zeroBytes, MethodZero)
				i += zeroBytes
			} else if paddingWithCopy {
				plan.addPower(info.Copy)
				plan.pushChained(from, info.Copy.Dec, MethodCopy)
				i += info.Copy.Dec
			}

			if isZeroCompress || paddingWithCopy {
				justCopy = 0
				needJustCopy = false
			}
		}

		if needJustCopy {
			add := info.Copy.Dec
			if rem := to - i + 1; add > rem {
				add = rem
			}
			justCopy += add
			if justCopy > 32 {
				plan = flushJustCopy(plan, from, 32)
				justCopy -= 32
			}
			i += add
		}
	}

	return flushJustCopy(plan, from, justCopy)
}

// flushJustCopy appends a pending raw-copy accumulator of amount bytes as a
// single 0x01 description, if amount is nonzero.
func flushJustCopy(plan Plan, origin, amount int) Plan {
	if amount != 0 {
		plan.addPower(Power{Dec: amount, Cmp: 1 + amount})
		plan.pushChained(origin, amount, MethodCopy)
	}
	return plan
}
