package proto

import "strconv"

// AppendHost appends the address part without prefix.
func (n Net) AppendHost(b []byte) []byte {
	switch n.Family {
	case FamilyIPv6:
		return n.V6.AppendText(b)
	default:
		return n.V4.AppendText(b)
	}
}

// AppendText appends address and prefix, always including the prefix.
func (n Net) AppendText(b []byte) []byte {
	b = n.AppendHost(b)
	b = append(b, '/')
	return strconv.AppendUint(b, uint64(n.Prefix), 10)
}

// AppendAbbrev appends the abbreviated display form.
//
// Host values drop the prefix when it covers the full family width.
// Strict IPv4 values print only the octets covered by the prefix,
// rounded up to whole octets, at least one. Strict IPv6 values fall
// back to full text form.
func (n Net) AppendAbbrev(b []byte) []byte {
	if n.Mode == ModeHost {
		if int(n.Prefix) == n.Family.Bits() {
			return n.AppendHost(b)
		}
		return n.AppendText(b)
	}
	if n.Family != FamilyIPv4 {
		return n.AppendText(b)
	}
	octets := (int(n.Prefix) + 7) / 8
	if octets == 0 {
		octets = 1
	}
	for i := 0; i < octets; i++ {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(n.V4.Octet(i)), 10)
	}
	b = append(b, '/')
	return strconv.AppendUint(b, uint64(n.Prefix), 10)
}

// AppendDisplay appends the decode-default form: strict values always
// carry the prefix, host values drop it at full width.
func (n Net) AppendDisplay(b []byte) []byte {
	if n.Mode == ModeHost && int(n.Prefix) == n.Family.Bits() {
		return n.AppendHost(b)
	}
	return n.AppendText(b)
}

func (n Net) String() string {
	return string(n.AppendDisplay(nil))
}

func (n Net) hostString() string {
	return string(n.AppendHost(nil))
}
