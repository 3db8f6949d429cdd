// Package inet provides PostgreSQL-style network address value types
// (INET, CIDR, MACADDR, MACADDR8) for embedding into a relational
// engine type system.
//
// The pure core lives in the proto package; this package adapts it to
// the engine-facing surface: encode text to a fixed-layout record,
// decode a record back to text, order two records. All entry points
// write into caller-provided buffers and fail with
// proto.ErrBufferTooSmall, leaving the buffer untouched, when the
// output does not fit.
package inet

import (
	"github.com/go-faster/errors"

	"github.com/go-faster/inet/proto"
)

// Type describes one engine value type.
type Type struct {
	// Name of the type as registered in the engine.
	Name string
	// PersistedLen is the maximum record length in bytes.
	PersistedLen int
	// MaxDecodeLen is the text buffer capacity Decode may need.
	MaxDecodeLen int

	// Encode parses text and writes the value record into buf,
	// returning the record length.
	Encode func(text string, buf []byte) (int, error)
	// Decode renders a record as text into buf, returning the text
	// length.
	Decode func(record, buf []byte) (int, error)
	// Compare orders two records. Total for any input within the
	// type; passing a record of the wrong width for a MAC type is a
	// caller bug and panics.
	Compare func(a, b []byte) int
}

// Types returns descriptors of every value type, for registration in
// the host engine.
func Types() []Type {
	return []Type{
		{
			Name:         "CIDR",
			PersistedLen: proto.RecordLenIPv6,
			MaxDecodeLen: 64,
			Encode:       encodeNet(proto.ModeStrict),
			Decode:       decodeNet,
			Compare:      proto.CompareBinary,
		},
		{
			Name:         "INET",
			PersistedLen: proto.RecordLenIPv6,
			MaxDecodeLen: 64,
			Encode:       encodeNet(proto.ModeHost),
			Decode:       decodeNet,
			Compare:      proto.CompareBinary,
		},
		{
			Name:         "MACADDR",
			PersistedLen: 6,
			MaxDecodeLen: 32,
			Encode:       encodeMAC,
			Decode:       decodeMAC,
			Compare:      compareMAC,
		},
		{
			Name:         "MACADDR8",
			PersistedLen: 8,
			MaxDecodeLen: 32,
			Encode:       encodeMAC8,
			Decode:       decodeMAC8,
			Compare:      compareMAC8,
		},
	}
}

func encodeNet(mode proto.Mode) func(string, []byte) (int, error) {
	return func(text string, buf []byte) (int, error) {
		v, err := proto.ParseNet(mode, text)
		if err != nil {
			return 0, errors.Wrap(err, "parse")
		}
		var b proto.Buffer
		b.Encode(v)
		return writeOut(buf, b.Buf)
	}
}

func decodeNet(record, buf []byte) (int, error) {
	v, err := proto.DecodeNet(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, v.AppendDisplay(nil))
}

func encodeMAC(text string, buf []byte) (int, error) {
	m, err := proto.ParseMAC(text)
	if err != nil {
		return 0, errors.Wrap(err, "parse")
	}
	var b proto.Buffer
	b.Encode(m)
	return writeOut(buf, b.Buf)
}

func encodeMAC8(text string, buf []byte) (int, error) {
	m, err := proto.ParseMAC8(text)
	if err != nil {
		return 0, errors.Wrap(err, "parse")
	}
	var b proto.Buffer
	b.Encode(m)
	return writeOut(buf, b.Buf)
}

func decodeMAC(record, buf []byte) (int, error) {
	m, err := proto.DecodeMAC(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, m.AppendText(nil))
}

func decodeMAC8(record, buf []byte) (int, error) {
	m, err := proto.DecodeMAC8(record)
	if err != nil {
		return 0, errors.Wrap(err, "decode")
	}
	return writeOut(buf, m.AppendText(nil))
}

func compareMAC(a, b []byte) int {
	x := mustMAC(a)
	y := mustMAC(b)
	return x.Compare(y)
}

func compareMAC8(a, b []byte) int {
	x := mustMAC8(a)
	y := mustMAC8(b)
	return x.Compare(y)
}

// mustMAC decodes a MAC record, treating failure as a caller contract
// breach: the engine guarantees record width per registered type.
func mustMAC(record []byte) proto.MAC {
	m, err := proto.DecodeMAC(record)
	if err != nil {
		panic(err)
	}
	return m
}

func mustMAC8(record []byte) proto.MAC8 {
	m, err := proto.DecodeMAC8(record)
	if err != nil {
		panic(err)
	}
	return m
}

// writeOut copies out into the caller buffer, leaving buf untouched
// when out does not fit.
func writeOut(buf, out []byte) (int, error) {
	if len(out) > len(buf) {
		return 0, errors.Wrapf(proto.ErrBufferTooSmall, "need %d, have %d", len(out), len(buf))
	}
	return copy(buf, out), nil
}
