package proto

import "github.com/go-faster/city"

// HashBinary returns CityHash64 of a value record, usable as a hash
// index key.
//
// Only ordering-relevant bytes participate: for address records the
// trailing family tag and mode flag are skipped, so records that
// compare equal hash equal. MAC records hash whole.
func HashBinary(record []byte) uint64 {
	if n := len(record); n == RecordLenIPv4 || n == RecordLenIPv6 {
		record = record[:n-2]
	}
	return city.CH64(record)
}
