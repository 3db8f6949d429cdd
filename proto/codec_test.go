package proto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-faster/inet/internal/gold"
)

func TestNetEncodeBinary(t *testing.T) {
	t.Run("V4Host", func(t *testing.T) {
		var b Buffer
		b.Encode(mustParse(t, ModeHost, "192.168.1.5/24"))
		require.Len(t, b.Buf, RecordLenIPv4)
		gold.Bytes(t, b.Buf, "net_v4_host")
	})
	t.Run("V4Strict", func(t *testing.T) {
		var b Buffer
		b.Encode(mustParse(t, ModeStrict, "10.1.0.0/16"))
		require.Len(t, b.Buf, RecordLenIPv4)
		gold.Bytes(t, b.Buf, "net_v4_strict")
	})
	t.Run("V6Host", func(t *testing.T) {
		var b Buffer
		b.Encode(mustParse(t, ModeHost, "2001:db8::1/64"))
		require.Len(t, b.Buf, RecordLenIPv6)
		gold.Bytes(t, b.Buf, "net_v6_host")
	})
}

func TestNetRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		mode  Mode
		input string
	}{
		{ModeHost, "0.0.0.0/0"},
		{ModeHost, "10.0.0.5"},
		{ModeHost, "10.0.0.5/24"},
		{ModeHost, "255.255.255.255"},
		{ModeHost, "::1"},
		{ModeHost, "2001:db8::1/64"},
		{ModeStrict, "10.0.0.0/24"},
		{ModeStrict, "0.0.0.0/0"},
		{ModeStrict, "2001:db8::/32"},
		{ModeStrict, "2001:db8::1/128"},
	} {
		v := mustParse(t, tt.mode, tt.input)

		var b Buffer
		b.Encode(v)
		dec, err := DecodeNet(b.Buf)
		require.NoError(t, err, "input %q", tt.input)
		require.Equal(t, v, dec, "input %q", tt.input)
		require.Equal(t, v.String(), dec.String(), "input %q", tt.input)
	}
}

func TestNetRoundTripGrid(t *testing.T) {
	// Host text canonicalizes through encode/decode: /32 stays
	// suppressed, everything else round-trips verbatim.
	for _, a := range []int{0, 1, 10, 127, 255} {
		for _, bits := range []int{0, 1, 8, 24, 31, 32} {
			v := Net{
				Family: FamilyIPv4,
				V4:     IPv4(a)<<24 | IPv4(a),
				Prefix: uint8(bits),
				Mode:   ModeHost,
			}
			var b Buffer
			b.Encode(v)
			dec, err := DecodeNet(b.Buf)
			require.NoError(t, err)
			require.Equal(t, v.String(), dec.String())
		}
	}
}

func TestDecodeNetErrors(t *testing.T) {
	v4 := func() []byte {
		var b Buffer
		b.Encode(mustParse(t, ModeHost, "10.0.0.5/24"))
		return b.Buf
	}()
	v6 := func() []byte {
		var b Buffer
		b.Encode(mustParse(t, ModeHost, "2001:db8::1/64"))
		return b.Buf
	}()

	t.Run("EmptyRecord", func(t *testing.T) {
		_, err := DecodeNet(nil)
		require.ErrorIs(t, err, ErrUnsupportedFamily)
	})
	t.Run("UnknownLength", func(t *testing.T) {
		_, err := DecodeNet(make([]byte, 10))
		require.ErrorIs(t, err, ErrUnsupportedFamily)
	})
	t.Run("TagMismatchV4", func(t *testing.T) {
		rec := append([]byte(nil), v4...)
		rec[5] = byte(FamilyIPv6)
		_, err := DecodeNet(rec)
		require.ErrorIs(t, err, ErrUnsupportedFamily)
	})
	t.Run("TagMismatchV6", func(t *testing.T) {
		rec := append([]byte(nil), v6...)
		rec[17] = byte(FamilyIPv4)
		_, err := DecodeNet(rec)
		require.ErrorIs(t, err, ErrUnsupportedFamily)
	})
	t.Run("PrefixOutOfRange", func(t *testing.T) {
		rec := append([]byte(nil), v4...)
		rec[4] = 200
		_, err := DecodeNet(rec)
		require.ErrorIs(t, err, ErrRange)
	})
	t.Run("StrictHostBits", func(t *testing.T) {
		// Corrupt record: strict flag over an address with host bits.
		rec := append([]byte(nil), v4...)
		rec[6] = byte(ModeStrict)
		_, err := DecodeNet(rec)
		require.ErrorIs(t, err, ErrHostBits)
	})
	t.Run("UnknownMode", func(t *testing.T) {
		rec := append([]byte(nil), v4...)
		rec[6] = 0x07
		_, err := DecodeNet(rec)
		require.Error(t, err)
	})
}

func TestMACBinary(t *testing.T) {
	t.Run("MAC48", func(t *testing.T) {
		m, err := ParseMAC("08:00:2b:01:02:03")
		require.NoError(t, err)

		var b Buffer
		b.Encode(m)
		gold.Bytes(t, b.Buf, "mac48")

		dec, err := DecodeMAC(b.Buf)
		require.NoError(t, err)
		require.Equal(t, m, dec)
	})
	t.Run("MAC64", func(t *testing.T) {
		m, err := ParseMAC8("08:00:2b:01:02:03:04:05")
		require.NoError(t, err)

		var b Buffer
		b.Encode(m)
		gold.Bytes(t, b.Buf, "mac64")

		dec, err := DecodeMAC8(b.Buf)
		require.NoError(t, err)
		require.Equal(t, m, dec)
	})
	t.Run("WidthMismatch", func(t *testing.T) {
		_, err := DecodeMAC(make([]byte, 8))
		require.ErrorIs(t, err, ErrUnsupportedFamily)
		_, err = DecodeMAC8(make([]byte, 6))
		require.ErrorIs(t, err, ErrUnsupportedFamily)
	})
}

func TestHashBinary(t *testing.T) {
	record := func(mode Mode, s string) []byte {
		var b Buffer
		b.Encode(mustParse(t, mode, s))
		return b.Buf
	}

	// Mode flag does not participate: records that compare equal
	// hash equal.
	host := record(ModeHost, "10.0.0.0/24")
	strict := record(ModeStrict, "10.0.0.0/24")
	require.Equal(t, 0, CompareBinary(host, strict))
	require.Equal(t, HashBinary(host), HashBinary(strict))

	// Prefix and address do.
	require.NotEqual(t, HashBinary(host), HashBinary(record(ModeHost, "10.0.0.0/25")))
	require.NotEqual(t, HashBinary(host), HashBinary(record(ModeHost, "10.0.1.0/24")))
}

func BenchmarkDecodeNet(b *testing.B) {
	var buf Buffer
	v, err := ParseNet(ModeHost, "2001:db8::1/64")
	if err != nil {
		b.Fatal(err)
	}
	buf.Encode(v)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf.Buf)))
	for i := 0; i < b.N; i++ {
		if _, err := DecodeNet(buf.Buf); err != nil {
			b.Fatal(err)
		}
	}
}
