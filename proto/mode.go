package proto

//go:generate go run github.com/dmarkham/enumer -type Mode -trimprefix Mode -output mode_gen.go

// Mode is the semantic mode of a Net value.
//
// Strict values are networks in the CIDR sense: every bit beyond the
// prefix length is zero and construction enforces that. Host values
// keep arbitrary host bits and default to the full-width prefix.
//
// Constant values match the mode flag byte embedded in records.
type Mode byte

const (
	ModeStrict Mode = 0x01
	ModeHost   Mode = 0x02
)
