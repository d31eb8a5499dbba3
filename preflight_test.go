package aprsroute

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPacketRequiresFromTo(t *testing.T) {
	p := Packet{From: "", To: "APRS", Path: []string{"WIDE1-1"}}
	addrs := p.addresses()
	assert.False(t, isValidPacket(p, addrs, 0))
}

func TestIsValidPacketRejectsEmptyOrOversizedPath(t *testing.T) {
	p := Packet{From: "N0CALL", To: "APRS"}
	assert.False(t, isValidPacket(p, p.addresses(), 0))

	p2 := Packet{From: "N0CALL", To: "APRS", Path: make([]string, 9)}
	for i := range p2.Path {
		p2.Path[i] = "CALL"
	}
	assert.False(t, isValidPacket(p2, p2.addresses(), 0))
}

func TestIsValidPacketNonStrictAllowsLooseGrammar(t *testing.T) {
	p := Packet{From: "not a callsign!", To: "APRS", Path: []string{"whatever"}, Data: "x"}
	assert.True(t, isValidPacket(p, p.addresses(), 0))
}

func TestIsValidPacketStrictValidatesGrammarAndDataLength(t *testing.T) {
	p := Packet{From: "N0CALL", To: "APRS", Path: []string{"WIDE1-1"}, Data: "data"}
	assert.True(t, isValidPacket(p, p.addresses(), Strict))

	bad := Packet{From: "not valid!", To: "APRS", Path: []string{"WIDE1-1"}, Data: "data"}
	assert.False(t, isValidPacket(bad, bad.addresses(), Strict))

	empty := Packet{From: "N0CALL", To: "APRS", Path: []string{"WIDE1-1"}, Data: ""}
	assert.False(t, isValidPacket(empty, empty.addresses(), Strict))

	tooLong := Packet{From: "N0CALL", To: "APRS", Path: []string{"WIDE1-1"}, Data: strings.Repeat("x", 257)}
	assert.False(t, isValidPacket(tooLong, tooLong.addresses(), Strict))
}

func TestValidCallsignGrammar(t *testing.T) {
	assert.True(t, validCallsign("N0CALL"))
	assert.True(t, validCallsign("N0CALL-9"))
	assert.True(t, validCallsign("N0CALL-15"))
	assert.False(t, validCallsign("N0CALL-0"))
	assert.False(t, validCallsign("N0CALL-16"))
	assert.False(t, validCallsign("N0CALL-05"))
	assert.False(t, validCallsign(""))
	assert.False(t, validCallsign("TOOLONGCALL"))
	assert.False(t, validCallsign("lower"))
}

func TestValidCallsignWithMark(t *testing.T) {
	assert.True(t, validCallsignWithMark("N0CALL*"))
	assert.True(t, validCallsignWithMark("N0CALL"))
	assert.False(t, validCallsignWithMark("not valid*"))
}

func TestLastUsedIndex(t *testing.T) {
	addrs := []Address{{Text: "A", Used: true}, {Text: "B"}, {Text: "C", Used: true}}
	idx, ok := lastUsedIndex(addrs)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = lastUsedIndex([]Address{{Text: "A"}})
	assert.False(t, ok)
}

func TestRouterAddressIndexSkipsUsedMatch(t *testing.T) {
	settings := RouterSettings{Station: "DIGI"}
	addrs := []Address{{Text: "DIGI", Used: true}, {Text: "DIGI"}}
	idx, ok := routerAddressIndex(addrs, 0, settings)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRouterAddressIndexFindsAliasMatch(t *testing.T) {
	settings := RouterSettings{Station: "DIGI", Aliases: []string{"RELAY"}}
	addrs := []Address{{Text: "CALL"}, {Text: "RELAY"}}
	idx, ok := routerAddressIndex(addrs, 0, settings)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestRoutingEnded(t *testing.T) {
	addrs := []Address{{Text: "A"}, {Text: "B", Used: true}}
	assert.True(t, routingEnded(addrs, 1, true))
	assert.False(t, routingEnded(addrs, 0, true))
	assert.False(t, routingEnded(addrs, 0, false))
}

func TestAlreadyRoutedByUs(t *testing.T) {
	addrs := []Address{{Text: "CALL"}, {Text: "DIGI", Used: true}, {Text: "WIDE1-1"}}
	assert.True(t, alreadyRoutedByUs(addrs, 1, true, "DIGI"))
	assert.False(t, alreadyRoutedByUs(addrs, 1, true, "OTHER"))
	assert.False(t, alreadyRoutedByUs(addrs, 0, false, "DIGI"))
}
