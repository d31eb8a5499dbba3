package aprsroute

import (
	"errors"
	"strings"
)

// ErrMalformedHeader is returned by ParsePacket when the input has no
// "from>to" header or no ":" introducing the data part. This is a
// decode-level failure, never a routing outcome (spec.md §7).
var ErrMalformedHeader = errors.New("aprsroute: malformed packet header")

// Packet is the from/to/path/data quadruple a single APRS frame carries in
// its text form: "FROM>TO[,P1,P2,...]:DATA".
type Packet struct {
	From string
	To   string
	Path []string
	Data string
}

// ParsePacket decodes one canonical packet string. It locates the first
// '>' and the first ':' after it; either missing is a malformed header.
// The to+path slice between them is split on ',', with path[0] becoming
// To and the rest becoming Path. Empty path tokens are preserved verbatim.
func ParsePacket(s string) (Packet, error) {
	sep := strings.IndexByte(s, '>')
	if sep < 0 {
		return Packet{}, ErrMalformedHeader
	}

	rest := s[sep+1:]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return Packet{}, ErrMalformedHeader
	}

	from := s[:sep]
	toAndPath := strings.Split(rest[:colon], ",")
	data := rest[colon+1:]

	p := Packet{From: from, To: toAndPath[0], Data: data}
	if len(toAndPath) > 1 {
		p.Path = toAndPath[1:]
	}
	return p, nil
}

// String renders the packet back into its canonical wire form. It makes
// no validity claims about the result.
func (p Packet) String() string {
	var b strings.Builder
	b.WriteString(p.From)
	b.WriteByte('>')
	b.WriteString(p.To)
	for _, addr := range p.Path {
		b.WriteByte(',')
		b.WriteString(addr)
	}
	b.WriteByte(':')
	b.WriteString(p.Data)
	return b.String()
}

// addresses parses every path token into an Address, assigning Index 0..n-1.
func (p Packet) addresses() []Address {
	addrs := make([]Address, len(p.Path))
	for i, tok := range p.Path {
		addrs[i] = ParseAddress(tok)
		addrs[i].Index = i
	}
	return addrs
}

// withPath returns a copy of p with its Path replaced by the canonical text
// of addrs, in order. A blank address (an empty path token carried over
// from the original packet, spec.md §4.B) round-trips as an empty string
// rather than being dropped.
func (p Packet) withPath(addrs []Address) Packet {
	out := p
	out.Path = make([]string, len(addrs))
	for i, a := range addrs {
		out.Path[i] = a.CanonicalText()
	}
	return out
}
