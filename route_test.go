package aprsroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenarios transcribed verbatim from spec.md's "Concrete end-to-end
// scenarios" list.

func TestScenarioBasicNNDecrementAndInsert(t *testing.T) {
	settings := RouterSettings{Station: "DIGI", Patterns: []Pattern{{Text: "WIDE", N: 1, Cap: 0}}}
	result := routeString(t, "N0CALL>APRS,WIDE1-3:data", settings)
	require.Equal(t, Routed, result.State)
	assert.Equal(t, "N0CALL>APRS,DIGI*,WIDE1-2:data", result.Packet.String())
}

func TestScenarioNNSubstituteOnZero(t *testing.T) {
	settings := RouterSettings{
		Station:  "DIGI",
		Patterns: []Pattern{{Text: "WIDE", N: 1, Cap: 0}},
		Options:  SubstituteCompleteHops,
	}
	p, err := ParsePacket("FROM>TO,,WIDE1-1:data")
	require.NoError(t, err)
	settings.Diagnostics = true
	result := Route(p, settings)
	require.Equal(t, Routed, result.State)
	assert.Equal(t, "FROM>TO,,DIGI*:data", result.Packet.String())

	var types []ActionType
	for _, a := range result.Actions {
		types = append(types, a.Type)
	}
	assert.Equal(t, []ActionType{ActionDecrement, ActionReplace, ActionSet}, types)
}

func TestScenarioAlreadyRoutedByUs(t *testing.T) {
	settings := RouterSettings{Station: "DIGI", Patterns: []Pattern{{Text: "WIDE", N: 1, Cap: 0}}}
	result := routeString(t, "N0CALL>APRS,CALL,DIGI*,WIDE1-1:data", settings)
	require.Equal(t, AlreadyRouted, result.State)
	assert.Equal(t, "N0CALL>APRS,CALL,DIGI*,WIDE1-1:data", result.Packet.String())
}

func TestScenarioExplicitAliasWithSubstitute(t *testing.T) {
	settings := RouterSettings{Station: "DIGI", Aliases: []string{"CALLA"}, Options: SubstituteExplicitAddress}
	result := routeString(t, "N0CALL>APRS,CALLA:data", settings)
	require.Equal(t, Routed, result.State)
	assert.Equal(t, "N0CALL>APRS,DIGI*:data", result.Packet.String())
}

func TestScenarioPreemptFront(t *testing.T) {
	settings := RouterSettings{Station: "DIGI", Options: PreemptFront}
	result := routeString(t, "N0CALL>APRS,CALLA,CALLB*,CALLC,DIGI,CALLD,CALLE,CALLF:data", settings)
	require.Equal(t, Routed, result.State)
	assert.Equal(t, "N0CALL>APRS,CALLA,CALLB,DIGI*,CALLC,CALLD,CALLE,CALLF:data", result.Packet.String())
}

func TestScenarioTrapExcessiveHops(t *testing.T) {
	settings := RouterSettings{
		Station:  "DIGI",
		Patterns: []Pattern{{Text: "WIDE", N: 2, Cap: 2}},
		Options:  TrapExcessiveHops,
	}
	result := routeString(t, "N0CALL>APRS,CALLA,WIDE2-7:data", settings)
	require.Equal(t, Routed, result.State)
	assert.Equal(t, "N0CALL>APRS,CALLA,DIGI*:data", result.Packet.String())
}

// Control-flow coverage beyond the six literal scenarios.

func TestRouteRejectsEmptyStation(t *testing.T) {
	result := routeString(t, "N0CALL>APRS,WIDE1-1:data", RouterSettings{})
	assert.Equal(t, NotRouted, result.State)
}

func TestRouteToUsIsNotRouted(t *testing.T) {
	settings := RouterSettings{Station: "DIGI"}
	result := routeString(t, "N0CALL>DIGI,WIDE1-1:data", settings)
	assert.Equal(t, NotRouted, result.State)
}

func TestRouteEndedWhenLastAddressAlreadyUsed(t *testing.T) {
	settings := RouterSettings{Station: "DIGI"}
	result := routeString(t, "N0CALL>APRS,WIDE1-1*:data", settings)
	assert.Equal(t, NotRouted, result.State)
	assert.Equal(t, "N0CALL>APRS,WIDE1-1*:data", result.Packet.String())
}

func TestRouteInvalidPacketIsNotRouted(t *testing.T) {
	settings := RouterSettings{Station: "DIGI"}
	p := Packet{From: "", To: "APRS", Path: []string{"WIDE1-1"}, Data: "data"}
	result := Route(p, settings)
	assert.Equal(t, NotRouted, result.State)
}
