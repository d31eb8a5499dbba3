package aprsroute

import "strconv"

// Kind classifies a parsed path token against the well-known APRS generic
// routing vocabulary (WIDEn-N, TRACEn-N, the TCPIP/TCPXX gateway markers,
// q-constructs, and so on). Kind is a tagged enum, not an interface — there
// is no dynamic dispatch anywhere in the address model.
type Kind int

const (
	KindOther Kind = iota
	KindWide
	KindTrace
	KindRelay
	KindEcho
	KindGate
	KindTemp
	KindTCPXX
	KindTCPIP
	KindNoGate
	KindRFOnly
	KindIGateCall
	KindQ
	KindOpntrk
	KindOpntrc
)

func (k Kind) String() string {
	switch k {
	case KindWide:
		return "wide"
	case KindTrace:
		return "trace"
	case KindRelay:
		return "relay"
	case KindEcho:
		return "echo"
	case KindGate:
		return "gate"
	case KindTemp:
		return "temp"
	case KindTCPXX:
		return "tcpxx"
	case KindTCPIP:
		return "tcpip"
	case KindNoGate:
		return "nogate"
	case KindRFOnly:
		return "rfonly"
	case KindIGateCall:
		return "igatecall"
	case KindQ:
		return "q"
	case KindOpntrk:
		return "opntrk"
	case KindOpntrc:
		return "opntrc"
	default:
		return "other"
	}
}

var kindLookup = map[string]Kind{
	"WIDE":      KindWide,
	"TRACE":     KindTrace,
	"RELAY":     KindRelay,
	"ECHO":      KindEcho,
	"GATE":      KindGate,
	"TEMP":      KindTemp,
	"TCPXX":     KindTCPXX,
	"TCPIP":     KindTCPIP,
	"NOGATE":    KindNoGate,
	"RFONLY":    KindRFOnly,
	"IGATECALL": KindIGateCall,
	"OPNTRK":    KindOpntrk,
	"OPNTRC":    KindOpntrc,
}

// qConstructs are the server/client q-construct literals recognized before
// any other classification is attempted (spec.md 4.A step 1). Matching is
// case-sensitive: "qAo" and "qAO" are distinct constructs.
var qConstructs = map[string]bool{
	"qAC": true, "qAX": true, "qAU": true, "qAo": true, "qAO": true,
	"qAS": true, "qAr": true, "qAR": true, "qAZ": true, "qAI": true,
}

// Address is one parsed path token: a callsign, an alias, or a generic
// n-N routing address such as WIDE2-1. Parsing never fails — an
// unrecognized token becomes Kind=KindOther with the full original text
// preserved and n/N/ssid all zero.
//
// Invariants: N == 0 implies Hops == 0; when nonzero, N is in 1..7 and
// Hops is in 0..7; SSID and the n-N counter are mutually exclusive for a
// single address; Used is not part of Text, N, or Hops.
type Address struct {
	Text  string // callsign or routing token, without the used-mark
	Kind  Kind
	N     int  // pattern class digit (1..7), 0 if this is not an n-N address
	Hops  int  // remaining hop count (0..7), meaningful only when N > 0
	SSID  int  // secondary station identifier (0..15)
	Used  bool // trailing '*' used-mark
	Index int  // position within the path, reassigned after every edit

	// Offset and Length are not populated: no code in this package sets
	// them, so both stay zero even when diagnostics are enabled. The
	// diagnostic trace computes its own byte offsets from the canonical
	// text (see RoutingAction).
	Offset int
	Length int
}

// ParseAddress tokenizes one path element into its structural fields. It
// never fails: unparseable input becomes Kind=KindOther with the original
// text retained verbatim.
func ParseAddress(token string) Address {
	if qConstructs[token] {
		return Address{Text: token, Kind: KindQ}
	}

	text := token
	used := false
	if len(text) > 0 && text[len(text)-1] == '*' {
		used = true
		text = text[:len(text)-1]
	}

	var a Address
	a.Used = used

	dash := -1
	for i := 0; i < len(text); i++ {
		if text[i] == '-' {
			dash = i
			break
		}
	}

	switch {
	case dash < 0:
		a.Text, a.N = parseTrailingHopDigit(text)

	case dash > 0 && isDigit(text[dash-1]) && dash+1 < len(text) && isDigit(text[dash+1]) && dash+2 == len(text):
		n := int(text[dash-1] - '0')
		hops := int(text[dash+1] - '0')
		if n >= 1 && n <= 7 && hops >= 1 && hops <= 7 {
			a.Text = text[:dash-1]
			a.N = n
			a.Hops = hops
		} else {
			a.Text = text
		}

	case dash > 0 && dash+1 < len(text) && isDigit(text[dash+1]):
		digits := text[dash+1:]
		if len(digits) <= 2 && !(len(digits) == 2 && digits[0] == '0') {
			if ssid, err := strconv.Atoi(digits); err == nil && ssid >= 0 && ssid <= 15 {
				a.Text = text[:dash]
				a.SSID = ssid
				break
			}
		}
		a.Text = text

	default:
		a.Text = text
	}

	a.Kind = kindLookup[a.Text]
	return a
}

func parseTrailingHopDigit(text string) (string, int) {
	if text == "" || !isDigit(text[len(text)-1]) {
		return text, 0
	}
	d := int(text[len(text)-1] - '0')
	if d < 1 || d > 7 {
		return text, 0
	}
	return text[:len(text)-1], d
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// CanonicalText renders the address the way it appears in a packet's
// canonical string: the callsign/routing text, the n-N suffix or SSID if
// present, then the used-mark.
func (a Address) CanonicalText() string {
	if a.Text == "" {
		return ""
	}

	s := a.Text
	switch {
	case a.N > 0 && a.Hops > 0:
		s += strconv.Itoa(a.N) + "-" + strconv.Itoa(a.Hops)
	case a.N > 0:
		s += strconv.Itoa(a.N)
	case a.SSID > 0:
		s += "-" + strconv.Itoa(a.SSID)
	}
	if a.Used {
		s += "*"
	}
	return s
}
