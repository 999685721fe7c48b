package axcl

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"strconv"
)

var native = binary.NativeEndian

// integerOf extracts an integral value. Negative values are returned in
// two's complement with neg set.
func integerOf(v any) (val uint64, neg bool, ok bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), x < 0, true
	case int8:
		return uint64(x), x < 0, true
	case int16:
		return uint64(x), x < 0, true
	case int32:
		return uint64(x), x < 0, true
	case int64:
		return uint64(x), x < 0, true
	case uint:
		return uint64(x), false, true
	case uint8:
		return uint64(x), false, true
	case uint16:
		return uint64(x), false, true
	case uint32:
		return uint64(x), false, true
	case uint64:
		return x, false, true
	case uintptr:
		return uint64(x), false, true
	case Addr:
		return uint64(x), false, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return uint64(i), i < 0, true
		}
		if u, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return u, false, true
		}
	}
	return 0, false, false
}

func floatOf(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	}
	if u, neg, ok := integerOf(v); ok {
		if neg {
			return float64(int64(u)), true
		}
		return float64(u), true
	}
	return 0, false
}

// encodeScalar stores v into b, which is exactly the width of kind k.
func encodeScalar(k Kind, b []byte, v any) error {
	switch {
	case k.Float():
		f, ok := floatOf(v)
		if !ok {
			return conversionError("%T is not a number", v)
		}
		if k == KindF32 {
			if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
				return conversionError("%g overflows %s", f, k)
			}
			native.PutUint32(b, math.Float32bits(float32(f)))
			return nil
		}
		native.PutUint64(b, math.Float64bits(f))
		return nil

	case k == KindBool:
		if bv, ok := v.(bool); ok {
			var u uint32
			if bv {
				u = 1
			}
			native.PutUint32(b, u)
			return nil
		}
	}

	if _, isBool := v.(bool); isBool {
		return conversionError("bool given for %s", k)
	}
	u, neg, ok := integerOf(v)
	if !ok {
		return conversionError("%T given for %s", v, k)
	}
	minS, maxU := k.bounds()
	if neg {
		if int64(u) < minS {
			return conversionError("%d out of range for %s", int64(u), k)
		}
	} else if u > maxU {
		return conversionError("%d out of range for %s", u, k)
	}

	switch len(b) {
	case 1:
		b[0] = byte(u)
	case 2:
		native.PutUint16(b, uint16(u))
	case 4:
		native.PutUint32(b, uint32(u))
	case 8:
		native.PutUint64(b, u)
	}
	return nil
}

// decodeScalar reads the value of kind k from b.
func decodeScalar(k Kind, b []byte) any {
	switch k {
	case KindS8:
		return int64(int8(b[0]))
	case KindU8:
		return int64(b[0])
	case KindS16:
		return int64(int16(native.Uint16(b)))
	case KindU16:
		return int64(native.Uint16(b))
	case KindS32:
		return int64(int32(native.Uint32(b)))
	case KindU32:
		return int64(native.Uint32(b))
	case KindS64:
		return int64(native.Uint64(b))
	case KindU64:
		return native.Uint64(b)
	case KindF32:
		return float64(math.Float32frombits(native.Uint32(b)))
	case KindF64:
		return math.Float64frombits(native.Uint64(b))
	case KindBool:
		return native.Uint32(b) != 0
	case KindPointer:
		return Addr(native.Uint64(b))
	}
	return nil
}

// readDiscriminant reads an integral or bool field as int64.
func readDiscriminant(k Kind, b []byte) (int64, bool) {
	switch v := decodeScalar(k, b).(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// encodeChars stores a string into a NUL-padded char buffer.
func encodeChars(b []byte, v any) error {
	var s []byte
	switch x := v.(type) {
	case string:
		s = []byte(x)
	case []byte:
		s = x
	default:
		return conversionError("%T given for char[%d]", v, len(b))
	}
	if len(s) > len(b) {
		return conversionError("%d bytes do not fit char[%d]", len(s), len(b))
	}
	n := copy(b, s)
	clear(b[n:])
	return nil
}

func decodeChars(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
