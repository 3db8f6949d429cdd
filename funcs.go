package inet

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/inet/proto"
)

// Derived functions over value records, mirroring the SQL-level
// function set: family, masklen, host, text, abbrev, netmask,
// hostmask, broadcast, network, set_masklen, trunc, hash. Each one
// decodes the record, applies the pure operation and writes the
// resulting record or text into the caller buffer.

// Family returns the conventional family number of the record, 4 for
// IPv4 and 6 for IPv6.
func Family(record []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return v.Family.Number(), nil
}

// MaskLen returns the prefix length of the record.
func MaskLen(record []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return v.MaskLen(), nil
}

// Host writes the address part without prefix into buf.
func Host(record, buf []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, v.AppendHost(nil))
}

// Text writes address and prefix into buf, prefix always included.
func Text(record, buf []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, v.AppendText(nil))
}

// Abbrev writes the abbreviated display form into buf.
func Abbrev(record, buf []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, v.AppendAbbrev(nil))
}

// Netmask writes the record of the network mask into out.
func Netmask(record, out []byte) (int, error) {
	return derive(record, out, proto.Net.Netmask)
}

// Hostmask writes the record of the host mask into out.
func Hostmask(record, out []byte) (int, error) {
	return derive(record, out, proto.Net.Hostmask)
}

// Broadcast writes the record of the broadcast address into out.
func Broadcast(record, out []byte) (int, error) {
	return derive(record, out, proto.Net.Broadcast)
}

// Network writes the record of the network portion into out.
func Network(record, out []byte) (int, error) {
	return derive(record, out, proto.Net.Network)
}

// SetMaskLen writes the record with prefix length replaced by bits
// into out. Strict records are re-masked at the new prefix.
func SetMaskLen(record []byte, bits int, out []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	v, err = v.WithPrefix(bits)
	if err != nil {
		return 0, err
	}
	var b proto.Buffer
	b.Encode(v)
	return writeOut(out, b.Buf)
}

// Trunc writes the 48-bit hardware address with its host octets
// zeroed into out.
func Trunc(record, out []byte) (int, error) {
	m, err := proto.DecodeMAC(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	var b proto.Buffer
	b.Encode(m.Trunc())
	return writeOut(out, b.Buf)
}

// Hash returns the hash index key of a record.
func Hash(record []byte) uint64 {
	return proto.HashBinary(record)
}

func derive(record, out []byte, f func(proto.Net) proto.Net) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	var b proto.Buffer
	b.Encode(f(v))
	return writeOut(out, b.Buf)
}
