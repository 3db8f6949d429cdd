// Package proto implements network address value types and their
// fixed-layout records.
package proto

// Record sizes per family.
//
// IPv4 and IPv6 records share one layout shape: address bytes, prefix
// length, family tag, mode flag. The family tag offset is fixed by the
// record length, which is what decode uses to classify a record.
const (
	RecordLenIPv4 = 7
	RecordLenIPv6 = 19

	tagOffsetIPv4 = 5
	tagOffsetIPv6 = 17
)
