package proto

import "github.com/go-faster/errors"

// Errors returned by parse, codec, format and algebra operations.
//
// Match with errors.Is; call sites wrap these with context.
var (
	// ErrParse means malformed text: wrong field count, invalid
	// character, bad decimal or hex value.
	ErrParse = errors.New("malformed address")

	// ErrRange means prefix length or numeric field outside the
	// valid range of the family.
	ErrRange = errors.New("value out of range")

	// ErrHostBits means a strict network value has nonzero bits
	// beyond its prefix length.
	ErrHostBits = errors.New("host bits set in network value")

	// ErrUnsupportedFamily means a record could not be classified
	// by its length and embedded family tag.
	ErrUnsupportedFamily = errors.New("unsupported address family")

	// ErrBufferTooSmall means output exceeds the capacity of the
	// caller-provided buffer. The buffer is left untouched.
	ErrBufferTooSmall = errors.New("buffer too small")
)
