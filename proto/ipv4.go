package proto

import (
	"encoding/binary"
	"strconv"

	"inet.af/netaddr"
)

// IPv4 represents IPv4 address as uint32 number.
//
// Not using netaddr.IP because uint32 is 5 times faster,
// consumes 6 times less memory and better represents IPv4.
//
// Use ToIP helper for convenience.
type IPv4 uint32

// ToIP represents IPv4 as netaddr.IP.
func (v IPv4) ToIP() netaddr.IP {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	return netaddr.IPFrom4(buf)
}

// ToIPv4 represents ip as IPv4. Panics if ip is not ipv4.
func ToIPv4(ip netaddr.IP) IPv4 {
	b := ip.As4()
	return IPv4(binary.BigEndian.Uint32(b[:]))
}

// NetmaskIPv4 returns mask with the top bits set.
//
// bits <= 0 yields all zeros, bits >= 32 all ones; no shift ever
// reaches the full width.
func NetmaskIPv4(bits int) IPv4 {
	if bits <= 0 {
		return 0
	}
	if bits >= 32 {
		return ^IPv4(0)
	}
	return ^IPv4(0) << (32 - bits)
}

// HostmaskIPv4 returns the complement of NetmaskIPv4.
func HostmaskIPv4(bits int) IPv4 {
	return ^NetmaskIPv4(bits)
}

// Octet returns i-th address octet, counting from the most
// significant one.
func (v IPv4) Octet(i int) byte {
	return byte(v >> (24 - 8*i))
}

// Compare returns -1, 0 or 1 by numeric value, ascending.
func (v IPv4) Compare(o IPv4) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

// AppendText appends dotted-quad form to b.
func (v IPv4) AppendText(b []byte) []byte {
	for i := 0; i < 4; i++ {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(v.Octet(i)), 10)
	}
	return b
}

func (v IPv4) String() string {
	return string(v.AppendText(nil))
}
