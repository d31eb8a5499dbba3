package aprsroute

// isValidPacket checks the structural and, in strict mode, grammatical
// validity of a packet (spec.md §4.D). addrs is the already-parsed path.
func isValidPacket(p Packet, addrs []Address, options RoutingOption) bool {
	if p.From == "" || p.To == "" {
		return false
	}
	if len(addrs) == 0 || len(addrs) > 8 {
		return false
	}
	if !options.Has(Strict) {
		return true
	}

	if len(p.Data) == 0 || len(p.Data) > 256 {
		return false
	}
	if !validCallsignWithMark(p.From) || !validCallsignWithMark(p.To) {
		return false
	}
	for _, tok := range p.Path {
		if !validCallsignWithMark(tok) {
			return false
		}
	}
	return true
}

// validCallsignWithMark validates a path token against the APRS callsign
// grammar after stripping an optional trailing used-mark.
func validCallsignWithMark(token string) bool {
	if token != "" && token[len(token)-1] == '*' {
		token = token[:len(token)-1]
	}
	return validCallsign(token)
}

// validCallsign checks a callsign against the documented APRS grammar:
// 1 to 6 uppercase alphanumerics, optionally followed by "-" and an SSID
// of 1 to 15 with no leading zero. This follows spec.md's grammar exactly
// rather than the original implementation's overly restrictive check
// (see DESIGN.md); uppercase letters and digits are both accepted.
func validCallsign(callsign string) bool {
	if callsign == "" || len(callsign) > 9 {
		return false
	}

	base := callsign
	if dash := indexByte(callsign, '-'); dash >= 0 {
		base = callsign[:dash]
		digits := callsign[dash+1:]
		if len(digits) == 0 || len(digits) > 2 {
			return false
		}
		if len(digits) == 2 && digits[0] == '0' {
			return false
		}
		for _, c := range digits {
			if !isDigit(byte(c)) {
				return false
			}
		}
		ssid := atoiSmall(digits)
		if ssid < 1 || ssid > 15 {
			return false
		}
	}

	if base == "" || len(base) > 6 {
		return false
	}
	for i := 0; i < len(base); i++ {
		c := base[i]
		if !((c >= 'A' && c <= 'Z') || isDigit(c)) {
			return false
		}
	}
	return true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func atoiSmall(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// lastUsedIndex returns the largest index whose used-mark is set.
func lastUsedIndex(addrs []Address) (int, bool) {
	for i := len(addrs) - 1; i >= 0; i-- {
		if addrs[i].Used {
			return i, true
		}
	}
	return 0, false
}

// routerAddressIndex locates the first address, starting at start, whose
// text equals the station address or one of the settings' explicit
// aliases, and whose used-mark is false (spec.md §4.D). It does not
// consider n-N patterns.
func routerAddressIndex(addrs []Address, start int, settings RouterSettings) (int, bool) {
	for i := start; i < len(addrs); i++ {
		if addrs[i].Used {
			continue
		}
		if addrs[i].Text == settings.Station || settings.isAlias(addrs[i].Text) {
			return i, true
		}
	}
	return 0, false
}

func isFromUs(p Packet, station string) bool { return p.From == station }
func isToUs(p Packet, station string) bool   { return p.To == station }

// routingEnded reports whether the last-used address is also the last
// address in the path: nothing further can be routed.
func routingEnded(addrs []Address, lastUsed int, hasLastUsed bool) bool {
	if !hasLastUsed {
		return false
	}
	return len(addrs) == 0 || lastUsed == len(addrs)-1
}

// alreadyRoutedByUs reports whether the last-used address is the station
// itself, meaning this packet has already passed through us.
func alreadyRoutedByUs(addrs []Address, lastUsed int, hasLastUsed bool, station string) bool {
	if !hasLastUsed {
		return false
	}
	return addrs[lastUsed].Text == station && addrs[lastUsed].Used
}
