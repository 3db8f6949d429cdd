package proto

import (
	"encoding/binary"
	"io"
)

// Record fields are big-endian: the address bytes double as the sort
// key, see CompareBinary.
var bin = binary.BigEndian

// Buffer implements value record encoding.
type Buffer struct {
	Buf []byte
}

// Ensure Buf length.
func (b *Buffer) Ensure(n int) {
	b.Buf = append(b.Buf[:0], make([]byte, n)...)
}

// Encoder implements encoding to Buffer.
type Encoder interface {
	EncodeBinary(b *Buffer)
}

// Encode value that implements Encoder.
func (b *Buffer) Encode(e Encoder) {
	e.EncodeBinary(b)
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if len(b.Buf) == 0 {
		return 0, io.EOF
	}
	n = copy(p, b.Buf)
	b.Buf = b.Buf[n:]
	return n, nil
}

// PutRaw writes v as raw bytes to buffer.
func (b *Buffer) PutRaw(v []byte) {
	b.Buf = append(b.Buf, v...)
}

// PutUInt8 encodes x as single byte.
func (b *Buffer) PutUInt8(x uint8) {
	b.Buf = append(b.Buf, x)
}

// PutUInt32 encodes x as big-endian.
func (b *Buffer) PutUInt32(x uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, x)
	b.Buf = append(b.Buf, buf...)
}
