package proto

import "bytes"

// Compare returns the total order of two values: IPv4 sorts before
// IPv6 regardless of address value, then address ascending, then
// prefix length ascending. Mode does not participate.
func (n Net) Compare(o Net) int {
	if n.Family != o.Family {
		if n.Family.RecordLen() < o.Family.RecordLen() {
			return -1
		}
		return 1
	}
	switch n.Family {
	case FamilyIPv6:
		if c := n.V6.Compare(o.V6); c != 0 {
			return c
		}
	default:
		if c := n.V4.Compare(o.V4); c != 0 {
			return c
		}
	}
	switch {
	case n.Prefix < o.Prefix:
		return -1
	case n.Prefix > o.Prefix:
		return 1
	default:
		return 0
	}
}

// CompareBinary orders two value records without decoding them.
//
// Shorter records sort first, so every IPv4 record precedes every
// IPv6 record. Equal-length address records compare by address bytes
// (big-endian, so byte order is numeric order) and then by the prefix
// byte; the trailing family tag is constant per length and the mode
// flag is excluded from ordering. Records of unknown length fall back
// to plain byte comparison.
func CompareBinary(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	if n := len(a); n == RecordLenIPv4 || n == RecordLenIPv6 {
		return bytes.Compare(a[:n-2], b[:n-2])
	}
	return bytes.Compare(a, b)
}
