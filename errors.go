package aprsroute

import "errors"

// ErrStationRequired is returned by configuration and CLI entry points
// when a router's Station callsign is empty. Route itself never returns
// errors — it reports a NotRouted state instead, per spec.md §7 — this
// sentinel belongs to the ambient config/CLI layer, not the routing core.
var ErrStationRequired = errors.New("aprsroute: station is required")
