package axcl

import (
	"encoding/hex"
	"fmt"
	"unsafe"
)

// Addr is a host or device address carried by a pointer field. The
// marshaler never dereferences it and holds no ownership of the memory.
type Addr uintptr

func (a Addr) String() string { return fmt.Sprintf("0x%x", uintptr(a)) }

// AddrOf returns the address of the first byte of b, 0 for an empty slice.
// The caller keeps b alive for as long as the address is in use.
func AddrOf(b []byte) Addr {
	if len(b) == 0 {
		return 0
	}
	return Addr(uintptr(unsafe.Pointer(&b[0])))
}

// Record is the native memory image of one struct or union. A Record is
// scoped to a single native call and must not be shared between goroutines
// while in flight.
type Record struct {
	typ   *Type
	words []uint64 // 8-byte aligned backing store
	buf   []byte
}

// NewRecord allocates a zeroed record of type t.
func NewRecord(t *Type) *Record {
	n := (t.size + 7) / 8
	if n == 0 {
		n = 1
	}
	w := make([]uint64, n)
	return &Record{
		typ:   t,
		words: w,
		buf:   unsafe.Slice((*byte)(unsafe.Pointer(&w[0])), t.size),
	}
}

// RecordFromBytes copies a native image into a new record of type t.
func RecordFromBytes(t *Type, b []byte) (*Record, error) {
	if uintptr(len(b)) != t.size {
		return nil, fmt.Errorf("%w: %s wants %d bytes, got %d", ErrRecordSize, t.name, t.size, len(b))
	}
	r := NewRecord(t)
	copy(r.buf, b)
	return r, nil
}

// Type returns the record type.
func (r *Record) Type() *Type { return r.typ }

// Size returns the byte size of the native image.
func (r *Record) Size() uintptr { return r.typ.size }

// Bytes returns the live native image. Writes through it modify the record.
func (r *Record) Bytes() []byte { return r.buf }

// Pointer returns the address of the native image for passing to a native
// function. The record must be kept alive until the call returns.
func (r *Record) Pointer() unsafe.Pointer { return unsafe.Pointer(&r.words[0]) }

// Addr returns the native image address as a pointer field value, for
// records referenced from another record.
func (r *Record) Addr() Addr { return Addr(uintptr(r.Pointer())) }

// Reset zeroes the native image.
func (r *Record) Reset() {
	clear(r.words)
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := NewRecord(r.typ)
	copy(c.words, r.words)
	return c
}

// Hex returns the native image as lowercase hex.
func (r *Record) Hex() string { return hex.EncodeToString(r.buf) }

// Dump returns a hex dump of the native image, 16 bytes per line.
func (r *Record) Dump() string { return hex.Dump(r.buf) }
