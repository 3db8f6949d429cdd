package proto

import "github.com/go-faster/errors"

// EncodeBinary encodes the value record: address bytes, prefix length,
// family tag, mode flag. Fields are written one by one, never via
// struct memory layout.
func (n Net) EncodeBinary(b *Buffer) {
	switch n.Family {
	case FamilyIPv6:
		b.PutRaw(n.V6[:])
	default:
		b.PutUInt32(uint32(n.V4))
	}
	b.PutUInt8(n.Prefix)
	b.PutUInt8(byte(n.Family))
	b.PutUInt8(byte(n.Mode))
}

// DecodeNet decodes a value record.
//
// The family is inferred from the record length (7 bytes IPv4, 19
// bytes IPv6) and the embedded tag at the length-determined offset
// must agree, otherwise the record is rejected. Decoded values pass
// full validation, so a corrupt strict record with host bits fails
// with ErrHostBits.
func DecodeNet(data []byte) (Net, error) {
	var n Net
	switch len(data) {
	case RecordLenIPv4:
		if got := Family(data[tagOffsetIPv4]); got != FamilyIPv4 {
			return Net{}, errors.Wrapf(ErrUnsupportedFamily, "tag %d in %d byte record", byte(got), len(data))
		}
		n = Net{
			Family: FamilyIPv4,
			V4:     IPv4(bin.Uint32(data[:4])),
			Prefix: data[4],
			Mode:   Mode(data[6]),
		}
	case RecordLenIPv6:
		if got := Family(data[tagOffsetIPv6]); got != FamilyIPv6 {
			return Net{}, errors.Wrapf(ErrUnsupportedFamily, "tag %d in %d byte record", byte(got), len(data))
		}
		n = Net{
			Family: FamilyIPv6,
			Prefix: data[16],
			Mode:   Mode(data[18]),
		}
		copy(n.V6[:], data[:16])
	default:
		return Net{}, errors.Wrapf(ErrUnsupportedFamily, "%d byte record", len(data))
	}
	if err := n.Validate(); err != nil {
		return Net{}, errors.Wrap(err, "validate")
	}
	return n, nil
}
