package aprsroute

// State is the outcome classification of a single Route call (spec.md §7
// Error Handling Design).
type State int

const (
	// NotRouted means no mutation happened: the packet is invalid,
	// has already finished routing, was addressed directly to us, or
	// matched an address but could not be routed through it.
	NotRouted State = iota
	// Routed means the packet path was mutated and a hop was consumed
	// or inserted.
	Routed
	// AlreadyRouted means the last hop already used belongs to us: we
	// have seen this packet before.
	AlreadyRouted
	// NoMatchingAddresses means neither the router's own address, an
	// alias, nor any configured n-N pattern appears anywhere usable in
	// the path.
	NoMatchingAddresses
	// CannotRouteSelf means the packet originated from us and the
	// explicit engine was not entered: either route_self is not set, or
	// the path holds no unused router address or alias. Packets from us
	// are never n-N routed.
	CannotRouteSelf
)

func (s State) String() string {
	switch s {
	case Routed:
		return "routed"
	case AlreadyRouted:
		return "already_routed"
	case NoMatchingAddresses:
		return "no_matching_addresses"
	case CannotRouteSelf:
		return "cannot_route_self"
	default:
		return "not_routed"
	}
}

// RoutingResult is the return value of Route: the classified outcome, the
// routed packet (equal to the input packet when State != Routed), and,
// when diagnostics are enabled, the ordered trace of mutations applied.
type RoutingResult struct {
	State   State
	Packet  Packet
	Actions []RoutingAction
}

// Route evaluates a single packet against settings and returns the
// routing decision (spec.md §4, top-level control flow). Route never
// mutates its arguments and performs no I/O: it is a pure function of
// its two inputs.
func Route(packet Packet, settings RouterSettings) RoutingResult {
	station := settings.Station
	options := settings.Options

	addrs := packet.addresses()

	if station == "" || !isValidPacket(packet, addrs, options) {
		return RoutingResult{State: NotRouted, Packet: packet}
	}

	lastUsed, hasLastUsed := lastUsedIndex(addrs)

	routerStart := 0
	if hasLastUsed {
		routerStart = lastUsed + 1
	}
	routerIndex, hasRouterIndex := routerAddressIndex(addrs, routerStart, settings)

	tr := newTracer(settings.Diagnostics, packet.From, packet.To)

	if routingEnded(addrs, lastUsed, hasLastUsed) {
		tr.emitWarn(addrs, lastUsed, "routing already ended: last used address is the final path entry")
		return notRoutedResult(packet, tr)
	}

	if alreadyRoutedByUs(addrs, lastUsed, hasLastUsed, station) {
		tr.emitWarn(addrs, lastUsed, "packet already routed by this station")
		result := RoutingResult{State: AlreadyRouted, Packet: packet}
		if tr != nil {
			result.Actions = tr.actions
		}
		return result
	}

	if isToUs(packet, station) {
		return RoutingResult{State: NotRouted, Packet: packet}
	}

	isRoutingSelf := isFromUs(packet, station)

	if isExplicitRouting(isRoutingSelf, hasRouterIndex, options) {
		if routeExplicitAt(&addrs, station, lastUsed, hasLastUsed, routerIndex, options, tr) {
			return finishRouted(packet, addrs, tr)
		}
		return RoutingResult{State: NotRouted, Packet: packet}
	}

	if isRoutingSelf {
		return RoutingResult{State: CannotRouteSelf, Packet: packet}
	}

	if tryNNRoute(&addrs, station, lastUsed, hasLastUsed, settings.Patterns, options, tr) {
		return finishRouted(packet, addrs, tr)
	}

	return RoutingResult{State: NoMatchingAddresses, Packet: packet}
}

// routeExplicitAt dispatches to the explicit engine, or to the
// preempt_mark strategy, which — unlike front/truncate/drop — never
// reorders or removes addresses; it only allows marking an address that
// isn't contiguous with the previously used one (spec.md §9 Open
// Question: preempt_mark is excluded from the front/truncate/drop
// priority chain).
func routeExplicitAt(addrs *[]Address, station string, lastUsed int, hasLastUsed bool, routerIndex int, options RoutingOption, tr *tracer) bool {
	if options.Has(PreemptMark) && !options.Has(PreemptFront) && !options.Has(PreemptTruncate) && !options.Has(PreemptDrop) {
		unusedIndex := 0
		if hasLastUsed {
			unusedIndex = lastUsed + 1
		}
		if unusedIndex >= len(*addrs) {
			return false
		}
		if routerIndex == unusedIndex {
			return tryExplicitRoute(addrs, station, lastUsed, hasLastUsed, routerIndex, options, tr)
		}
		isPathBased := (*addrs)[routerIndex].Text != station
		if options.Has(SubstituteExplicitAddress) {
			replaceAddressText(addrs, routerIndex, station, tr)
			markAddressUsedNonExclusive(addrs, routerIndex, tr)
			return true
		}
		if isPathBased {
			replaceAddressText(addrs, routerIndex, station, tr)
		}
		markAddressUsedNonExclusive(addrs, routerIndex, tr)
		return true
	}
	return tryExplicitRoute(addrs, station, lastUsed, hasLastUsed, routerIndex, options, tr)
}

func finishRouted(original Packet, addrs []Address, tr *tracer) RoutingResult {
	result := RoutingResult{State: Routed, Packet: original.withPath(addrs)}
	if tr != nil {
		result.Actions = tr.actions
	}
	return result
}

// notRoutedResult builds a NotRouted result carrying whatever warn
// diagnostics tr has accumulated (the packet itself is never mutated).
func notRoutedResult(original Packet, tr *tracer) RoutingResult {
	result := RoutingResult{State: NotRouted, Packet: original}
	if tr != nil {
		result.Actions = tr.actions
	}
	return result
}
