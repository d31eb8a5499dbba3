package aprsroute

// isExplicitRouting reports whether the packet should be routed via the
// explicit engine rather than n-N (spec.md §4.E): the router's own
// address or an alias must appear in the path, and if that address is
// also the packet's From station, route_self must be set.
func isExplicitRouting(isRoutingSelf bool, hasRouterIndex bool, options RoutingOption) bool {
	if !hasRouterIndex {
		return false
	}
	return !isRoutingSelf || options.Has(RouteSelf)
}

// tryExplicitRoute attempts explicit routing in place on addrs, emitting
// diagnostics to tr. It returns true if the packet was routed.
func tryExplicitRoute(addrs *[]Address, station string, lastUsed int, hasLastUsed bool, routerIndex int, options RoutingOption, tr *tracer) bool {
	unusedIndex := 0
	if hasLastUsed {
		unusedIndex = lastUsed + 1
	}
	if unusedIndex >= len(*addrs) {
		return false
	}

	isPathBased := (*addrs)[routerIndex].Text != station
	haveOthersAhead := routerIndex != unusedIndex
	preemptDrop := options.Has(PreemptDrop)

	if !haveOthersAhead && !preemptDrop {
		return tryExplicitBasicRoute(addrs, isPathBased, unusedIndex, routerIndex, station, options, tr)
	}
	return tryPreemptExplicitRoute(addrs, routerIndex, unusedIndex, isPathBased, station, options, tr)
}

// tryPreemptExplicitRoute applies a preempt transform (front, truncate, or
// drop) then performs the basic route at the transformed position.
// preempt_mark is handled separately: it changes nothing about position,
// it only permits marking an address that is not contiguous with the
// previously used one, so it never reaches this function (see Route).
func tryPreemptExplicitRoute(addrs *[]Address, routerIndex, unusedIndex int, isPathBased bool, station string, options RoutingOption, tr *tracer) bool {
	setIndex, ok := tryPreemptTransformExplicitRoute(addrs, routerIndex, unusedIndex, options, tr)
	if !ok {
		return false
	}
	return tryExplicitBasicRoute(addrs, isPathBased, setIndex, setIndex, station, options, tr)
}

// tryPreemptTransformExplicitRoute applies the first matching preempt
// strategy in priority order front > truncate > drop (spec.md §9 Open
// Question) and returns the address index the basic route should now
// target.
func tryPreemptTransformExplicitRoute(addrs *[]Address, routerIndex, setIndex int, options RoutingOption, tr *tracer) (int, bool) {
	switch {
	case options.Has(PreemptFront):
		tryMoveAddressToPosition(addrs, routerIndex, setIndex, tr)
		return setIndex, true
	case options.Has(PreemptTruncate):
		tryTruncateAddressRange(addrs, setIndex, routerIndex, tr)
		return setIndex, true
	case options.Has(PreemptDrop):
		tryTruncateAddressRange(addrs, 0, routerIndex, tr)
		return 0, true
	default:
		return 0, false
	}
}

// tryExplicitBasicRoute performs the actual text substitution and
// used-mark placement once a target index has been decided.
func tryExplicitBasicRoute(addrs *[]Address, isPathBased bool, unusedIndex, setIndex int, station string, options RoutingOption, tr *tracer) bool {
	if options.Has(SubstituteExplicitAddress) {
		replaceAddressText(addrs, setIndex, station, tr)
		markAddressUsed(addrs, setIndex, tr)
		return true
	}

	if isPathBased {
		if tryInsertAddress(addrs, unusedIndex, station, tr) {
			markAddressUsed(addrs, setIndex+1, tr)
		} else {
			replaceAddressText(addrs, setIndex, station, tr)
			markAddressUsed(addrs, setIndex, tr)
		}
		return true
	}

	markAddressUsed(addrs, setIndex, tr)
	return true
}

// replaceAddressText swaps addrs[idx]'s text for newText, emitting a
// diagnostic before the in-memory mutation so the tracer still sees the
// old canonical form.
func replaceAddressText(addrs *[]Address, idx int, newText string, tr *tracer) {
	tr.emitReplace(*addrs, idx, newText)
	(*addrs)[idx].Text = newText
	(*addrs)[idx].N, (*addrs)[idx].Hops, (*addrs)[idx].SSID = 0, 0, 0
}

// markAddressUsed sets addrs[idx] as the sole used address, unmarking
// every other one (spec.md's set_address_as_used semantics).
func markAddressUsed(addrs *[]Address, idx int, tr *tracer) {
	tr.emitSet(*addrs, idx, true)
	for i := range *addrs {
		(*addrs)[i].Used = i == idx
	}
}

// markAddressUsedNonExclusive sets addrs[idx] as used without clearing
// any other used-mark. It is used only by the preempt_mark strategy,
// which is explicitly allowed to leave out-of-order marks in the path.
func markAddressUsedNonExclusive(addrs *[]Address, idx int, tr *tracer) {
	tr.emitSet(*addrs, idx, false)
	(*addrs)[idx].Used = true
}

// tryInsertAddress inserts a new address with text router_address at
// index, unless the path is already at the 8-address capacity.
func tryInsertAddress(addrs *[]Address, index int, routerAddress string, tr *tracer) bool {
	if len(*addrs) >= 8 {
		return false
	}
	newAddr := ParseAddress(routerAddress)
	tr.emitInsert(*addrs, index, newAddr)

	out := make([]Address, 0, len(*addrs)+1)
	out = append(out, (*addrs)[:index]...)
	out = append(out, newAddr)
	out = append(out, (*addrs)[index:]...)
	for i := range out {
		out[i].Index = i
	}
	*addrs = out
	return true
}

// tryMoveAddressToPosition relocates addrs[fromIndex] to toIndex,
// shifting the addresses in between. Used by preempt_front.
func tryMoveAddressToPosition(addrs *[]Address, fromIndex, toIndex int, tr *tracer) bool {
	if fromIndex >= len(*addrs) || toIndex >= len(*addrs) || fromIndex == toIndex {
		return false
	}

	moved := (*addrs)[fromIndex]
	tr.emitRemove(*addrs, fromIndex)

	rest := make([]Address, 0, len(*addrs)-1)
	rest = append(rest, (*addrs)[:fromIndex]...)
	rest = append(rest, (*addrs)[fromIndex+1:]...)

	tr.emitInsert(rest, toIndex, moved)

	out := make([]Address, 0, len(rest)+1)
	out = append(out, rest[:toIndex]...)
	out = append(out, moved)
	out = append(out, rest[toIndex:]...)
	for i := range out {
		out[i].Index = i
	}
	*addrs = out
	return true
}

// tryTruncateAddressRange removes addresses in [startIndex, endIndex]
// and reinserts the one that was at endIndex at startIndex. Used by
// preempt_truncate and preempt_drop.
func tryTruncateAddressRange(addrs *[]Address, startIndex, endIndex int, tr *tracer) bool {
	if startIndex >= len(*addrs) || endIndex >= len(*addrs) || startIndex >= endIndex {
		return false
	}

	kept := (*addrs)[endIndex]
	for i := endIndex; i >= startIndex; i-- {
		tr.emitRemove(*addrs, i)
	}

	remaining := make([]Address, 0, len(*addrs)-(endIndex-startIndex+1))
	remaining = append(remaining, (*addrs)[:startIndex]...)
	remaining = append(remaining, (*addrs)[endIndex+1:]...)

	tr.emitInsert(remaining, startIndex, kept)

	out := make([]Address, 0, len(remaining)+1)
	out = append(out, remaining[:startIndex]...)
	out = append(out, kept)
	out = append(out, remaining[startIndex:]...)

	for i := range out {
		out[i].Index = i
	}
	*addrs = out
	return true
}
