package proto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetmask(t *testing.T) {
	v := mustParse(t, ModeHost, "10.0.0.5/24").Netmask()
	require.Equal(t, ModeHost, v.Mode)
	require.Equal(t, "255.255.255.0", v.String())

	v = mustParse(t, ModeHost, "2001:db8::1/64").Netmask()
	require.Equal(t, "ffff:ffff:ffff:ffff:0000:0000:0000:0000", v.String())

	require.Equal(t, "0.0.0.0", mustParse(t, ModeHost, "1.2.3.4/0").Netmask().String())
	require.Equal(t, "255.255.255.255", mustParse(t, ModeHost, "1.2.3.4").Netmask().String())
}

func TestHostmask(t *testing.T) {
	v := mustParse(t, ModeHost, "10.0.0.5/24").Hostmask()
	require.Equal(t, "0.0.0.255", v.String())

	v = mustParse(t, ModeHost, "2001:db8::1/64").Hostmask()
	require.Equal(t, "0000:0000:0000:0000:ffff:ffff:ffff:ffff", v.String())

	require.Equal(t, "255.255.255.255", mustParse(t, ModeHost, "1.2.3.4/0").Hostmask().String())
	require.Equal(t, "0.0.0.0", mustParse(t, ModeHost, "1.2.3.4").Hostmask().String())
}

func TestBroadcast(t *testing.T) {
	v := mustParse(t, ModeHost, "10.0.0.5/24").Broadcast()
	require.Equal(t, ModeHost, v.Mode)
	require.Equal(t, uint8(24), v.Prefix)
	require.Equal(t, "10.0.0.255/24", v.String())

	v = mustParse(t, ModeHost, "2001:db8::1/64").Broadcast()
	require.Equal(t, "2001:0db8:0000:0000:ffff:ffff:ffff:ffff/64", v.String())

	// Full-width prefix: broadcast is the address itself.
	v = mustParse(t, ModeHost, "10.0.0.5").Broadcast()
	require.Equal(t, "10.0.0.5", v.String())
}

func TestNetwork(t *testing.T) {
	v := mustParse(t, ModeHost, "10.0.0.5/24").Network()
	require.Equal(t, ModeStrict, v.Mode)
	require.Equal(t, "10.0.0.0/24", v.String())
	require.NoError(t, v.Validate())

	v = mustParse(t, ModeHost, "2001:db8::1/64").Network()
	require.Equal(t, "2001:0db8:0000:0000:0000:0000:0000:0000/64", v.String())
	require.NoError(t, v.Validate())
}

func TestWithPrefix(t *testing.T) {
	t.Run("HostKeepsBits", func(t *testing.T) {
		v, err := mustParse(t, ModeHost, "10.0.0.5/24").WithPrefix(16)
		require.NoError(t, err)
		require.Equal(t, "10.0.0.5/16", v.String())
	})
	t.Run("StrictRemasks", func(t *testing.T) {
		v, err := mustParse(t, ModeStrict, "10.1.0.0/16").WithPrefix(8)
		require.NoError(t, err)
		require.Equal(t, "10.0.0.0/8", v.String())
		require.NoError(t, v.Validate())
	})
	t.Run("Widen", func(t *testing.T) {
		v, err := mustParse(t, ModeHost, "10.0.0.5/24").WithPrefix(32)
		require.NoError(t, err)
		require.Equal(t, "10.0.0.5", v.String())
	})
	t.Run("OutOfRange", func(t *testing.T) {
		_, err := mustParse(t, ModeHost, "10.0.0.5/24").WithPrefix(33)
		require.ErrorIs(t, err, ErrRange)
		_, err = mustParse(t, ModeHost, "10.0.0.5/24").WithPrefix(-1)
		require.ErrorIs(t, err, ErrRange)
		_, err = mustParse(t, ModeHost, "2001:db8::1").WithPrefix(129)
		require.ErrorIs(t, err, ErrRange)
	})
}

func TestMACTrunc(t *testing.T) {
	m, err := ParseMAC("08:00:2b:01:02:03")
	require.NoError(t, err)
	require.Equal(t, "08:00:2b:00:00:00", m.Trunc().String())
	// Input is unchanged, values are immutable.
	require.Equal(t, "08:00:2b:01:02:03", m.String())
}

func TestMaskHelpers(t *testing.T) {
	require.Equal(t, IPv4(0), NetmaskIPv4(0))
	require.Equal(t, ^IPv4(0), NetmaskIPv4(32))
	require.Equal(t, IPv4(0xFFFFFF00), NetmaskIPv4(24))
	require.Equal(t, IPv4(0x000000FF), HostmaskIPv4(24))

	require.True(t, NetmaskIPv6(0).IsZero())
	require.True(t, HostmaskIPv6(128).IsZero())
	require.Equal(t,
		IPv6{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x80},
		NetmaskIPv6(65),
	)
	require.Equal(t, NetmaskIPv6(65).Not(), HostmaskIPv6(65))
}

func TestNetValidate(t *testing.T) {
	require.ErrorIs(t, Net{}.Validate(), ErrUnsupportedFamily)

	v := Net{Family: FamilyIPv4, V4: 0x0A000005, Prefix: 24, Mode: ModeStrict}
	require.ErrorIs(t, v.Validate(), ErrHostBits)

	v.Mode = ModeHost
	require.NoError(t, v.Validate())

	v.Prefix = 33
	require.ErrorIs(t, v.Validate(), ErrRange)
}

func TestFamily(t *testing.T) {
	require.Equal(t, 32, FamilyIPv4.Bits())
	require.Equal(t, 128, FamilyIPv6.Bits())
	require.Equal(t, RecordLenIPv4, FamilyIPv4.RecordLen())
	require.Equal(t, RecordLenIPv6, FamilyIPv6.RecordLen())
	require.Equal(t, 4, FamilyIPv4.Number())
	require.Equal(t, 6, FamilyIPv6.Number())
	require.Equal(t, "IPv4", FamilyIPv4.String())
	require.Equal(t, "IPv6", FamilyIPv6.String())
	require.False(t, Family(3).IsAFamily())
}

func TestMode(t *testing.T) {
	require.Equal(t, "Strict", ModeStrict.String())
	require.Equal(t, "Host", ModeHost.String())
	require.False(t, Mode(0).IsAMode())
}
