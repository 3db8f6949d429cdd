package proto

//go:generate go run github.com/dmarkham/enumer -type Family -trimprefix Family -output family_gen.go

// Family is the address family of a Net value.
//
// Constant values match the family tag byte embedded in records.
type Family byte

const (
	FamilyIPv4 Family = 2
	FamilyIPv6 Family = 10
)

// Bits returns address width in bits.
func (f Family) Bits() int {
	switch f {
	case FamilyIPv4:
		return 32
	case FamilyIPv6:
		return 128
	default:
		return 0
	}
}

// RecordLen returns encoded record length in bytes.
func (f Family) RecordLen() int {
	switch f {
	case FamilyIPv4:
		return RecordLenIPv4
	case FamilyIPv6:
		return RecordLenIPv6
	default:
		return 0
	}
}

// Number returns the conventional family number, 4 or 6.
func (f Family) Number() int {
	switch f {
	case FamilyIPv4:
		return 4
	case FamilyIPv6:
		return 6
	default:
		return 0
	}
}
