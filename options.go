package aprsroute

import "fmt"

// RoutingOption is a composable bitmask of routing policy flags (spec.md
// §3 "Routing Option flags"). Mutually-exclusive preempt strategies are
// not rejected at construction time; the engine applies them in a fixed
// priority order instead (see explicit.go and DESIGN.md).
type RoutingOption int

const (
	RouteSelf RoutingOption = 1 << iota
	PreemptFront
	PreemptTruncate
	PreemptDrop
	PreemptMark
	SubstituteCompleteHops
	TrapExcessiveHops
	RejectExcessiveHops
	Strict
	PreemptNN
	SubstituteExplicitAddress
)

// Has reports whether every bit set in flag is also set in o.
func (o RoutingOption) Has(flag RoutingOption) bool {
	return o&flag == flag
}

var routingOptionTokens = map[string]RoutingOption{
	"route_self":                   RouteSelf,
	"preempt_front":                PreemptFront,
	"preempt_truncate":             PreemptTruncate,
	"preempt_drop":                 PreemptDrop,
	"preempt_mark":                 PreemptMark,
	"substitute_complete_hops":     SubstituteCompleteHops,
	"substitute_complete_n_N_address": SubstituteCompleteHops,
	"trap_excessive_hops":          TrapExcessiveHops,
	"reject_excessive_hops":        RejectExcessiveHops,
	"strict":                       Strict,
	"substitute_explicit_address":  SubstituteExplicitAddress,
	"preempt_n_N":                  PreemptNN,
}

// ParseRoutingOption parses a single case-sensitive option token
// (spec.md §6.2). "none" parses to the zero value. An unrecognized token
// is a parse failure.
func ParseRoutingOption(token string) (RoutingOption, error) {
	if token == "none" {
		return 0, nil
	}
	if opt, ok := routingOptionTokens[token]; ok {
		return opt, nil
	}
	return 0, fmt.Errorf("aprsroute: unknown routing option %q", token)
}

// ParseRoutingOptions parses and ORs together a list of option tokens.
func ParseRoutingOptions(tokens []string) (RoutingOption, error) {
	var result RoutingOption
	for _, t := range tokens {
		opt, err := ParseRoutingOption(t)
		if err != nil {
			return 0, err
		}
		result |= opt
	}
	return result, nil
}
