package axcl

// Kind identifies the shape of a native field.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
	KindF32
	KindF64
	KindBool    // AX_BOOL, a 4-byte int
	KindPointer // host or device address, never owned
	KindChars   // char[N], a NUL-padded string
	KindArray
	KindStruct
	KindUnion
	kindCount
)

// kindMeta contains static metadata about a scalar kind.
type kindMeta struct {
	Name   string
	Size   uintptr
	Signed bool
	Float  bool
}

// Static metadata table - indexed by Kind. Aggregates carry size 0 here,
// their layout lives on the Type.
var kindInfo = [kindCount]kindMeta{
	KindInvalid: {"invalid", 0, false, false},
	KindS8:      {"s8", 1, true, false},
	KindU8:      {"u8", 1, false, false},
	KindS16:     {"s16", 2, true, false},
	KindU16:     {"u16", 2, false, false},
	KindS32:     {"s32", 4, true, false},
	KindU32:     {"u32", 4, false, false},
	KindS64:     {"s64", 8, true, false},
	KindU64:     {"u64", 8, false, false},
	KindF32:     {"f32", 4, true, true},
	KindF64:     {"f64", 8, true, true},
	KindBool:    {"bool", 4, false, false},
	KindPointer: {"ptr", 8, false, false},
	KindChars:   {"char", 0, false, false},
	KindArray:   {"array", 0, false, false},
	KindStruct:  {"struct", 0, false, false},
	KindUnion:   {"union", 0, false, false},
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindInfo[k].Name
}

// Scalar reports whether the kind is a single fixed-size value.
func (k Kind) Scalar() bool {
	return k >= KindS8 && k <= KindPointer
}

// Integer reports whether the kind stores an integral number.
func (k Kind) Integer() bool {
	return k >= KindS8 && k <= KindU64
}

// Signed reports whether the kind stores a signed number.
func (k Kind) Signed() bool {
	if k >= kindCount {
		return false
	}
	return kindInfo[k].Signed
}

// Float reports whether the kind stores an IEEE-754 number.
func (k Kind) Float() bool {
	if k >= kindCount {
		return false
	}
	return kindInfo[k].Float
}

// size returns the byte width of a scalar kind, 0 for aggregates.
func (k Kind) size() uintptr {
	if k >= kindCount {
		return 0
	}
	return kindInfo[k].Size
}

// bounds returns the representable integer range of an integral kind.
// The upper bound of KindU64 does not fit in int64 and is reported by maxU.
func (k Kind) bounds() (minS int64, maxU uint64) {
	switch k {
	case KindS8:
		return -1 << 7, 1<<7 - 1
	case KindU8:
		return 0, 1<<8 - 1
	case KindS16:
		return -1 << 15, 1<<15 - 1
	case KindU16:
		return 0, 1<<16 - 1
	case KindS32:
		return -1 << 31, 1<<31 - 1
	case KindU32:
		return 0, 1<<32 - 1
	case KindS64:
		return -1 << 63, 1<<63 - 1
	case KindU64, KindPointer:
		return 0, 1<<64 - 1
	case KindBool:
		return 0, 1
	}
	return 0, 0
}
