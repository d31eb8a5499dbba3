package aprsroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseAddressNNShape(t *testing.T) {
	a := ParseAddress("WIDE2-2")
	assert.Equal(t, "WIDE", a.Text)
	assert.Equal(t, 2, a.N)
	assert.Equal(t, 2, a.Hops)
	assert.Equal(t, KindWide, a.Kind)
	assert.False(t, a.Used)
}

func TestParseAddressSSIDShape(t *testing.T) {
	a := ParseAddress("N0CALL-15")
	assert.Equal(t, "N0CALL", a.Text)
	assert.Equal(t, 15, a.SSID)
	assert.Equal(t, 0, a.N)
}

func TestParseAddressRejectsLeadingZeroSSID(t *testing.T) {
	a := ParseAddress("N0CALL-05")
	assert.Equal(t, "N0CALL-05", a.Text)
	assert.Equal(t, 0, a.SSID)
}

func TestParseAddressTrailingHopDigit(t *testing.T) {
	a := ParseAddress("WIDE7")
	assert.Equal(t, "WIDE", a.Text)
	assert.Equal(t, 7, a.N)
	assert.Equal(t, 0, a.Hops)
}

func TestParseAddressTrailingHopDigitOutOfRange(t *testing.T) {
	a := ParseAddress("WIDE8")
	assert.Equal(t, "WIDE8", a.Text)
	assert.Equal(t, 0, a.N)
}

func TestParseAddressUsedMark(t *testing.T) {
	a := ParseAddress("DIGI1*")
	assert.True(t, a.Used)
	assert.Equal(t, "DIGI", a.Text)
	assert.Equal(t, 1, a.N)
}

func TestParseAddressQConstruct(t *testing.T) {
	a := ParseAddress("qAR")
	assert.Equal(t, KindQ, a.Kind)
	assert.Equal(t, "qAR", a.Text)
}

func TestParseAddressQConstructCaseSensitive(t *testing.T) {
	lower := ParseAddress("qAo")
	upper := ParseAddress("qAO")
	assert.Equal(t, KindQ, lower.Kind)
	assert.Equal(t, KindQ, upper.Kind)
	assert.NotEqual(t, lower.Text, upper.Text)
}

func TestAddressCanonicalTextRoundTrip(t *testing.T) {
	cases := []string{"WIDE2-2", "WIDE1-1*", "N0CALL-9", "DIGI", "CALL*", "TRACE3"}
	for _, c := range cases {
		a := ParseAddress(c)
		assert.Equal(t, c, a.CanonicalText(), "round trip for %q", c)
	}
}

func TestParseAddressNeverFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		token := rapid.StringMatching(`[A-Za-z0-9*\-]{0,12}`).Draw(t, "token")
		a := ParseAddress(token)
		assert.NotPanics(t, func() { _ = a.CanonicalText() })
	})
}
