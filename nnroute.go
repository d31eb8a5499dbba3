package aprsroute

// findFirstUnusedNNIndex finds the first address in addrs matching one of
// the router's n-N patterns by text and pattern class, that isn't already
// used. If reject_excessive_hops is set, a match whose remaining hops
// exceed the pattern's configured cap is skipped rather than matched
// (spec.md §9 Open Question: reject filters at match time, so a trap
// never sees a pattern reject has already ruled out).
func findFirstUnusedNNIndex(addrs []Address, patterns []Pattern, options RoutingOption) (addrIndex int, patIndex int, ok bool) {
	reject := options.Has(RejectExcessiveHops)
	for i, a := range addrs {
		if a.Used || a.N == 0 {
			continue
		}
		for j, p := range patterns {
			if a.N != p.N || a.Text != p.Text {
				continue
			}
			if reject && p.Cap > 0 && a.Hops > p.Cap {
				continue
			}
			return i, j, true
		}
	}
	return 0, 0, false
}

// tryNNRoute attempts n-N routing in place on addrs. It returns true if
// the packet was routed. When preempt_n_N is set alongside one of
// front/truncate/drop, the matched n-N address is first collapsed down
// to the first unused position exactly as the explicit engine does
// (spec.md §3 preempt_n_N: "allow preempt strategies to also apply in
// n-N mode").
func tryNNRoute(addrs *[]Address, station string, lastUsed int, hasLastUsed bool, patterns []Pattern, options RoutingOption, tr *tracer) bool {
	addrIndex, patIndex, ok := findFirstUnusedNNIndex(*addrs, patterns, options)
	if !ok {
		return false
	}

	addrIndex = tryPreemptNNRoute(addrs, addrIndex, lastUsed, hasLastUsed, options, tr)

	if tryTrapNNRoute(addrs, addrIndex, patterns[patIndex], station, options, tr) {
		return true
	}

	tryNNRouteNoTrap(addrs, addrIndex, station, options, tr)
	return true
}

// tryPreemptNNRoute applies the front/truncate/drop preempt transform to
// collapse any unused addresses standing between the first unused
// position and the matched n-N address, returning the (possibly
// unchanged) index the match now sits at. It is a no-op unless
// preempt_n_N is set together with one of the three preempt strategies.
func tryPreemptNNRoute(addrs *[]Address, addrIndex, lastUsed int, hasLastUsed bool, options RoutingOption, tr *tracer) int {
	if !options.Has(PreemptNN) {
		return addrIndex
	}
	if !options.Has(PreemptFront) && !options.Has(PreemptTruncate) && !options.Has(PreemptDrop) {
		return addrIndex
	}

	unusedIndex := 0
	if hasLastUsed {
		unusedIndex = lastUsed + 1
	}
	if unusedIndex >= len(*addrs) {
		return addrIndex
	}

	haveOthersAhead := addrIndex != unusedIndex
	if !haveOthersAhead && !options.Has(PreemptDrop) {
		return addrIndex
	}

	setIndex, ok := tryPreemptTransformExplicitRoute(addrs, addrIndex, unusedIndex, options, tr)
	if !ok {
		return addrIndex
	}
	return setIndex
}

// tryTrapNNRoute replaces an address whose remaining hops exceed the
// router pattern's configured cap with the router's own address, instead
// of forwarding it further (spec.md §4.F, trap_excessive_hops).
func tryTrapNNRoute(addrs *[]Address, addrIndex int, pattern Pattern, station string, options RoutingOption, tr *tracer) bool {
	if !options.Has(TrapExcessiveHops) {
		return false
	}
	a := (*addrs)[addrIndex]
	if pattern.Cap > 0 && a.Hops > pattern.Cap {
		tr.emitReplace(*addrs, addrIndex, station+"*")
		(*addrs)[addrIndex] = Address{Text: station, Used: true, Index: addrIndex}
		return true
	}
	return false
}

func tryNNRouteNoTrap(addrs *[]Address, addrIndex int, station string, options RoutingOption, tr *tracer) {
	substituteZeroHops := options.Has(SubstituteCompleteHops)

	decrementAddressNN(addrs, addrIndex, tr)

	if tryCompleteNNRoute(addrs, addrIndex, substituteZeroHops, tr) {
		return
	}

	if substituteZeroHops && (*addrs)[addrIndex].Hops == 0 {
		trySubstituteCompleteNNAddress(addrs, addrIndex, station, tr)
		return
	}

	tryInsertNNRoute(addrs, addrIndex, station, substituteZeroHops, tr)
}

// decrementAddressNN decrements addrs[idx]'s remaining hop count by one
// (WIDE2-2 becomes WIDE2-1), emitting a diagnostic for the new token text.
func decrementAddressNN(addrs *[]Address, idx int, tr *tracer) {
	a := &(*addrs)[idx]
	if a.Hops == 0 {
		return
	}
	newAddr := *a
	newAddr.Hops--
	// Emit against the pre-decrement slice: the action's span is the old
	// token, which can be longer than the new one (WIDE2-1 becomes WIDE2).
	tr.emitDecrement(*addrs, idx, newAddr.CanonicalText())
	a.Hops--
}

// tryCompleteNNRoute handles the case where the path is already at the
// 8-address capacity and no further insertion is possible: the exhausted
// pattern is marked used in place, or, if hops remain, nothing more is
// done (spec.md §4.F capacity boundary).
func tryCompleteNNRoute(addrs *[]Address, idx int, substituteZeroHops bool, tr *tracer) bool {
	if len(*addrs) < 8 {
		return false
	}

	a := (*addrs)[idx]
	if !substituteZeroHops && a.Hops == 0 {
		markAddressUsed(addrs, idx, tr)
		return true
	}
	if !substituteZeroHops || a.Hops > 0 {
		return true
	}
	return false
}

// trySubstituteCompleteNNAddress replaces an exhausted n-N address
// (Hops == 0) with the router's own address, used when
// substitute_complete_hops is set.
func trySubstituteCompleteNNAddress(addrs *[]Address, idx int, station string, tr *tracer) bool {
	a := (*addrs)[idx]
	if a.Hops != 0 {
		return false
	}
	tr.emitReplace(*addrs, idx, station)
	(*addrs)[idx] = Address{Text: station, Index: idx}
	markAddressUsed(addrs, idx, tr)
	return true
}

// tryInsertNNRoute inserts the router's address in front of the matched
// n-N address, marking either the new address or the n-N address itself
// as used depending on whether hops remain.
func tryInsertNNRoute(addrs *[]Address, idx int, station string, substituteZeroHops bool, tr *tracer) bool {
	if len(*addrs) >= 8 {
		return false
	}

	newAddr := ParseAddress(station)
	tr.emitInsert(*addrs, idx, newAddr)

	out := make([]Address, 0, len(*addrs)+1)
	out = append(out, (*addrs)[:idx]...)
	out = append(out, newAddr)
	out = append(out, (*addrs)[idx:]...)
	for i := range out {
		out[i].Index = i
	}
	*addrs = out

	if substituteZeroHops || (*addrs)[idx+1].Hops > 0 {
		markAddressUsed(addrs, idx, tr)
	} else {
		markAddressUsed(addrs, idx+1, tr)
	}
	return true
}
