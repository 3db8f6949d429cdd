package proto

import (
	"strings"

	"github.com/go-faster/errors"
)

// ParseNet parses "addr" or "addr/prefix" text as a value of the given
// mode.
//
// The address part is tried as dotted-quad IPv4 first, then as IPv6
// with optional single "::" compression. A missing prefix defaults to
// the family width for host values and fails for strict values; a
// strict value with nonzero host bits fails with ErrHostBits.
func ParseNet(mode Mode, s string) (Net, error) {
	addr, prefix, found := strings.Cut(s, "/")

	n := Net{Mode: mode}
	if v4, err := parseIPv4(addr); err == nil {
		n.Family = FamilyIPv4
		n.V4 = v4
	} else if v6, err := parseIPv6(addr); err == nil {
		n.Family = FamilyIPv6
		n.V6 = v6
	} else {
		return Net{}, errors.Wrapf(ErrParse, "address %q", addr)
	}

	if !found {
		if mode == ModeStrict {
			return Net{}, errors.Wrapf(ErrParse, "missing prefix length in %q", s)
		}
		n.Prefix = uint8(n.Family.Bits())
	} else {
		bits, err := parsePrefix(prefix)
		if err != nil {
			return Net{}, err
		}
		if bits > n.Family.Bits() {
			return Net{}, errors.Wrapf(ErrRange, "prefix %d exceeds %s width", bits, n.Family)
		}
		n.Prefix = uint8(bits)
	}

	if err := n.Validate(); err != nil {
		return Net{}, err
	}
	return n, nil
}

// parsePrefix parses a non-negative decimal prefix length.
func parsePrefix(s string) (int, error) {
	if s == "" {
		return 0, errors.Wrap(ErrParse, "empty prefix length")
	}
	bits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, errors.Wrapf(ErrParse, "prefix length %q", s)
		}
		bits = bits*10 + int(c-'0')
		if bits > 128 {
			return 0, errors.Wrapf(ErrRange, "prefix length %q", s)
		}
	}
	return bits, nil
}

// parseIPv4 parses exactly four dot-separated decimal octets.
//
// Leading zeros are accepted; sign, hex and octal notation are not.
func parseIPv4(s string) (IPv4, error) {
	var (
		v uint32
		i int
	)
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if i >= len(s) || s[i] != '.' {
				return 0, errors.Wrap(ErrParse, "want four octets")
			}
			i++
		}
		start := i
		field := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			field = field*10 + int(s[i]-'0')
			if field > 255 {
				return 0, errors.Wrapf(ErrParse, "octet %d out of range", octet)
			}
			i++
		}
		if i == start {
			return 0, errors.Wrapf(ErrParse, "empty octet %d", octet)
		}
		v = v<<8 | uint32(field)
	}
	if i != len(s) {
		return 0, errors.Wrapf(ErrParse, "trailing %q", s[i:])
	}
	return IPv4(v), nil
}

// parseIPv6 parses colon-separated 16-bit hex groups with at most one
// "::" compression marker.
//
// Embedded dotted-quad tails are not supported.
func parseIPv6(s string) (IPv6, error) {
	var v IPv6

	if i := strings.Index(s, "::"); i >= 0 {
		if strings.Contains(s[i+1:], "::") {
			return IPv6{}, errors.Wrap(ErrParse, "more than one \"::\"")
		}
		left, err := parseHexGroups(s[:i])
		if err != nil {
			return IPv6{}, err
		}
		right, err := parseHexGroups(s[i+2:])
		if err != nil {
			return IPv6{}, err
		}
		// At least one group stays implicit.
		if len(left)+len(right) > 7 {
			return IPv6{}, errors.Wrapf(ErrParse, "%d groups with \"::\"", len(left)+len(right))
		}
		for gi, g := range left {
			v[gi*2] = byte(g >> 8)
			v[gi*2+1] = byte(g)
		}
		off := 8 - len(right)
		for gi, g := range right {
			v[(off+gi)*2] = byte(g >> 8)
			v[(off+gi)*2+1] = byte(g)
		}
		return v, nil
	}

	groups, err := parseHexGroups(s)
	if err != nil {
		return IPv6{}, err
	}
	if len(groups) != 8 {
		return IPv6{}, errors.Wrapf(ErrParse, "want 8 groups, got %d", len(groups))
	}
	for gi, g := range groups {
		v[gi*2] = byte(g >> 8)
		v[gi*2+1] = byte(g)
	}
	return v, nil
}

// parseHexGroups parses colon-separated groups of 1 to 4 hex digits.
// Empty input yields no groups.
func parseHexGroups(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}
	var out []uint16
	for _, part := range strings.Split(s, ":") {
		if part == "" || len(part) > 4 {
			return nil, errors.Wrapf(ErrParse, "group %q", part)
		}
		var g uint16
		for i := 0; i < len(part); i++ {
			d := unhex(part[i])
			if d < 0 {
				return nil, errors.Wrapf(ErrParse, "group %q", part)
			}
			g = g<<4 | uint16(d)
		}
		out = append(out, g)
	}
	return out, nil
}

func unhex(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
