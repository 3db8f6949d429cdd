package proto

import (
	"bytes"

	"inet.af/netaddr"
)

// IPv6 represents IPv6 address as raw 16 bytes.
type IPv6 [16]byte

// ToIP represents IPv6 as netaddr.IP.
func (v IPv6) ToIP() netaddr.IP {
	return netaddr.IPv6Raw(v)
}

// ToIPv6 represents ip as IPv6.
func ToIPv6(ip netaddr.IP) IPv6 { return ip.As16() }

// NetmaskIPv6 returns mask with the top bits set.
func NetmaskIPv6(bits int) IPv6 {
	var v IPv6
	if bits <= 0 {
		return v
	}
	if bits > 128 {
		bits = 128
	}
	full, rem := bits/8, bits%8
	for i := 0; i < full; i++ {
		v[i] = 0xFF
	}
	if rem > 0 {
		v[full] = 0xFF << (8 - rem)
	}
	return v
}

// HostmaskIPv6 returns the complement of NetmaskIPv6.
func HostmaskIPv6(bits int) IPv6 {
	return NetmaskIPv6(bits).Not()
}

// And returns bitwise conjunction with o.
func (v IPv6) And(o IPv6) IPv6 {
	var out IPv6
	for i := range v {
		out[i] = v[i] & o[i]
	}
	return out
}

// Or returns bitwise disjunction with o.
func (v IPv6) Or(o IPv6) IPv6 {
	var out IPv6
	for i := range v {
		out[i] = v[i] | o[i]
	}
	return out
}

// Not returns bitwise complement.
func (v IPv6) Not() IPv6 {
	var out IPv6
	for i := range v {
		out[i] = ^v[i]
	}
	return out
}

// IsZero reports whether every byte is zero.
func (v IPv6) IsZero() bool {
	return v == IPv6{}
}

// Compare returns -1, 0 or 1 by byte-wise lexicographic order.
func (v IPv6) Compare(o IPv6) int {
	return bytes.Compare(v[:], o[:])
}

const hextable = "0123456789abcdef"

// AppendText appends eight lowercase 4-digit groups to b.
//
// Output is never zero-compressed.
func (v IPv6) AppendText(b []byte) []byte {
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			b = append(b, ':')
		}
		b = append(b,
			hextable[v[i]>>4], hextable[v[i]&0xF],
			hextable[v[i+1]>>4], hextable[v[i+1]&0xF],
		)
	}
	return b
}

func (v IPv6) String() string {
	return string(v.AppendText(nil))
}
