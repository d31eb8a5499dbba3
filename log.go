package aprsroute

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the package-wide structured logger, used by the CLI demo and
// available to callers who want routing decisions logged consistently
// with the rest of the toolchain. The routing engine itself never logs:
// Route is a pure function (spec.md §5), so all logging lives at the
// edges that call it.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "aprsroute",
})

// LogResult writes one structured line describing a routing decision.
func LogResult(p Packet, result RoutingResult) {
	fields := []interface{}{
		"from", p.From,
		"to", p.To,
		"state", result.State.String(),
	}
	if result.State == Routed {
		fields = append(fields, "routed", result.Packet.String())
	}

	switch result.State {
	case Routed:
		Logger.Info("packet routed", fields...)
	case NotRouted, NoMatchingAddresses:
		Logger.Debug("packet not routed", fields...)
	case AlreadyRouted:
		Logger.Warn("packet already routed", fields...)
	case CannotRouteSelf:
		Logger.Warn("refusing to route own packet", fields...)
	}
}
