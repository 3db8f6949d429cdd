package proto

import (
	"github.com/go-faster/errors"

	"inet.af/netaddr"
)

// Net is an IPv4 or IPv6 address with prefix length and semantic mode.
//
// Values are immutable once constructed: parse, decode and every
// algebra method return new values. The zero Net is invalid; construct
// via ParseNet, DecodeNet, NetFromPrefix or algebra methods, all of
// which keep the invariants: prefix never exceeds the family width,
// and strict values carry no host bits.
type Net struct {
	Family Family
	V4     IPv4 // payload when Family == FamilyIPv4
	V6     IPv6 // payload when Family == FamilyIPv6
	Prefix uint8
	Mode   Mode
}

// Validate checks Net invariants.
func (n Net) Validate() error {
	switch n.Family {
	case FamilyIPv4, FamilyIPv6:
	default:
		return errors.Wrapf(ErrUnsupportedFamily, "family %d", byte(n.Family))
	}
	if int(n.Prefix) > n.Family.Bits() {
		return errors.Wrapf(ErrRange, "prefix %d exceeds %s width", n.Prefix, n.Family)
	}
	switch n.Mode {
	case ModeHost:
	case ModeStrict:
		if !n.isNetwork() {
			return errors.Wrapf(ErrHostBits, "%s/%d", n.hostString(), n.Prefix)
		}
	default:
		return errors.Errorf("unknown mode flag %#x", byte(n.Mode))
	}
	return nil
}

func (n Net) isNetwork() bool {
	switch n.Family {
	case FamilyIPv4:
		return n.V4&HostmaskIPv4(int(n.Prefix)) == 0
	case FamilyIPv6:
		return n.V6.And(HostmaskIPv6(int(n.Prefix))).IsZero()
	default:
		return false
	}
}

// MaskLen returns the prefix length.
func (n Net) MaskLen() int { return int(n.Prefix) }

// ToIP represents the address part as netaddr.IP.
func (n Net) ToIP() netaddr.IP {
	if n.Family == FamilyIPv6 {
		return n.V6.ToIP()
	}
	return n.V4.ToIP()
}

// NetFromPrefix converts p to a Net value with the given mode.
//
// Strict conversion fails with ErrHostBits when p.IP has bits beyond
// p.Bits.
func NetFromPrefix(p netaddr.IPPrefix, mode Mode) (Net, error) {
	n := Net{Prefix: p.Bits(), Mode: mode}
	if ip := p.IP(); ip.Is4() {
		n.Family = FamilyIPv4
		n.V4 = ToIPv4(ip)
	} else {
		n.Family = FamilyIPv6
		n.V6 = ToIPv6(ip)
	}
	if err := n.Validate(); err != nil {
		return Net{}, err
	}
	return n, nil
}

// Netmask returns the mask of the network portion as a full-width
// host value of the same family.
func (n Net) Netmask() Net {
	out := Net{Family: n.Family, Prefix: uint8(n.Family.Bits()), Mode: ModeHost}
	switch n.Family {
	case FamilyIPv4:
		out.V4 = NetmaskIPv4(int(n.Prefix))
	case FamilyIPv6:
		out.V6 = NetmaskIPv6(int(n.Prefix))
	}
	return out
}

// Hostmask returns the mask of the host portion as a full-width host
// value of the same family.
func (n Net) Hostmask() Net {
	out := Net{Family: n.Family, Prefix: uint8(n.Family.Bits()), Mode: ModeHost}
	switch n.Family {
	case FamilyIPv4:
		out.V4 = HostmaskIPv4(int(n.Prefix))
	case FamilyIPv6:
		out.V6 = HostmaskIPv6(int(n.Prefix))
	}
	return out
}

// Broadcast returns the address with every host bit set, preserving
// the prefix length.
func (n Net) Broadcast() Net {
	out := n
	out.Mode = ModeHost
	switch n.Family {
	case FamilyIPv4:
		out.V4 = n.V4 | HostmaskIPv4(int(n.Prefix))
	case FamilyIPv6:
		out.V6 = n.V6.Or(HostmaskIPv6(int(n.Prefix)))
	}
	return out
}

// Network returns the network portion with host bits zeroed, as a
// strict value.
func (n Net) Network() Net {
	out := n
	out.Mode = ModeStrict
	switch n.Family {
	case FamilyIPv4:
		out.V4 = n.V4 & NetmaskIPv4(int(n.Prefix))
	case FamilyIPv6:
		out.V6 = n.V6.And(NetmaskIPv6(int(n.Prefix)))
	}
	return out
}

// WithPrefix returns the value with prefix length set to bits.
//
// Host values keep their address bits; strict values are re-masked at
// the new prefix. Out-of-range bits fail with ErrRange instead of
// clamping.
func (n Net) WithPrefix(bits int) (Net, error) {
	if bits < 0 || bits > n.Family.Bits() {
		return Net{}, errors.Wrapf(ErrRange, "prefix %d exceeds %s width", bits, n.Family)
	}
	out := n
	out.Prefix = uint8(bits)
	if n.Mode == ModeStrict {
		out = out.Network()
	}
	return out, nil
}
