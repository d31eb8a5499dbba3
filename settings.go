package aprsroute

// Pattern is a single n-N routing pattern the router responds to, e.g.
// "WIDE2-2" contributes Pattern{Text: "WIDE", N: 2, Cap: 2}. Cap is the
// maximum N the router will accept for this pattern; 0 means uncapped.
type Pattern struct {
	Text string
	N    int
	Cap  int
}

// DefaultPath is the reference router's default address list
// (aprsroute.hpp's router_settings::path). Nothing applies it
// automatically: a RouterSettings literal or NewRouterSettings call has
// no aliases or patterns unless a path is passed in, e.g.
// NewRouterSettings(station, DefaultPath, options, diagnostics).
var DefaultPath = []string{"WIDE1-2", "WIDE2-2", "TRACE1-2", "TRACE2-2", "WIDE", "RELAY", "TRACE"}

// RouterSettings is the station identity and routing policy a single call
// to Route is evaluated against. It is a plain value: copying it is always
// safe, and Route never mutates the settings it's given.
type RouterSettings struct {
	Station     string
	Aliases     []string  // explicit alias text, matched verbatim
	Patterns    []Pattern // n-N patterns the router recognizes
	Options     RoutingOption
	Diagnostics bool
}

// NewRouterSettings builds a RouterSettings from a station callsign and a
// single combined address list, splitting it into explicit aliases and
// n-N patterns the way spec.md §4.C describes: entries that parse with
// N == 0 become aliases, entries with N > 0 become patterns (with their
// Hops value reinterpreted as the pattern's cap).
func NewRouterSettings(station string, path []string, options RoutingOption, diagnostics bool) RouterSettings {
	s := RouterSettings{Station: station, Options: options, Diagnostics: diagnostics}
	for _, tok := range path {
		a := ParseAddress(tok)
		if a.N == 0 {
			s.Aliases = append(s.Aliases, a.Text)
			continue
		}
		s.Patterns = append(s.Patterns, Pattern{Text: a.Text, N: a.N, Cap: a.Hops})
	}
	return s
}

// isAlias reports whether text matches one of the settings' explicit
// aliases (not the station callsign itself).
func (s RouterSettings) isAlias(text string) bool {
	for _, a := range s.Aliases {
		if a == text {
			return true
		}
	}
	return false
}
