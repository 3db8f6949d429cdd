package proto

import (
	"bytes"
	"net"

	"github.com/go-faster/errors"
)

// MAC is a 48-bit hardware address.
//
// MAC and MAC8 are distinct fixed-size array types, so comparing
// values of mismatched width does not compile; there is no runtime
// width check anywhere.
type MAC [6]byte

// MAC8 is a 64-bit (EUI-64) hardware address.
type MAC8 [8]byte

// ParseMAC parses a 48-bit hardware address: twelve hex digits with
// ":", "-" and "." accepted interchangeably as separators.
func ParseMAC(s string) (MAC, error) {
	var m MAC
	if err := parseMACBytes(s, m[:]); err != nil {
		return MAC{}, err
	}
	return m, nil
}

// ParseMAC8 parses a 64-bit hardware address, sixteen hex digits.
func ParseMAC8(s string) (MAC8, error) {
	var m MAC8
	if err := parseMACBytes(s, m[:]); err != nil {
		return MAC8{}, err
	}
	return m, nil
}

func parseMACBytes(s string, dst []byte) error {
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ':' || c == '-' || c == '.' {
			continue
		}
		d := unhex(c)
		if d < 0 {
			return errors.Wrapf(ErrParse, "character %q", c)
		}
		if digits == 2*len(dst) {
			return errors.Wrapf(ErrParse, "want %d hex digits", 2*len(dst))
		}
		if digits%2 == 0 {
			dst[digits/2] = byte(d) << 4
		} else {
			dst[digits/2] |= byte(d)
		}
		digits++
	}
	if digits != 2*len(dst) {
		return errors.Wrapf(ErrParse, "want %d hex digits, got %d", 2*len(dst), digits)
	}
	return nil
}

// Trunc zeroes the host-assigned last three octets, keeping the OUI.
func (m MAC) Trunc() MAC {
	return MAC{m[0], m[1], m[2]}
}

// Compare returns -1, 0 or 1 by byte-wise lexicographic order.
func (m MAC) Compare(o MAC) int {
	return bytes.Compare(m[:], o[:])
}

// Compare returns -1, 0 or 1 by byte-wise lexicographic order.
func (m MAC8) Compare(o MAC8) int {
	return bytes.Compare(m[:], o[:])
}

// ToHardwareAddr represents MAC as net.HardwareAddr.
func (m MAC) ToHardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m[:])
}

// ToHardwareAddr represents MAC8 as net.HardwareAddr.
func (m MAC8) ToHardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(m[:])
}

func appendMACBytes(b, m []byte) []byte {
	for i, c := range m {
		if i > 0 {
			b = append(b, ':')
		}
		b = append(b, hextable[c>>4], hextable[c&0xF])
	}
	return b
}

// AppendText appends lowercase colon-separated hex pairs to b.
func (m MAC) AppendText(b []byte) []byte {
	return appendMACBytes(b, m[:])
}

// AppendText appends lowercase colon-separated hex pairs to b.
func (m MAC8) AppendText(b []byte) []byte {
	return appendMACBytes(b, m[:])
}

func (m MAC) String() string {
	return string(m.AppendText(nil))
}

func (m MAC8) String() string {
	return string(m.AppendText(nil))
}

// EncodeBinary encodes raw octets, no tag or flag bytes.
func (m MAC) EncodeBinary(b *Buffer) {
	b.PutRaw(m[:])
}

// EncodeBinary encodes raw octets, no tag or flag bytes.
func (m MAC8) EncodeBinary(b *Buffer) {
	b.PutRaw(m[:])
}

// DecodeMAC decodes a 6-byte record.
func DecodeMAC(data []byte) (MAC, error) {
	if len(data) != len(MAC{}) {
		return MAC{}, errors.Wrapf(ErrUnsupportedFamily, "%d byte record", len(data))
	}
	var m MAC
	copy(m[:], data)
	return m, nil
}

// DecodeMAC8 decodes an 8-byte record.
func DecodeMAC8(data []byte) (MAC8, error) {
	if len(data) != len(MAC8{}) {
		return MAC8{}, errors.Wrapf(ErrUnsupportedFamily, "%d byte record", len(data))
	}
	var m MAC8
	copy(m[:], data)
	return m, nil
}
