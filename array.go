package axcl

import (
	"fmt"
	"reflect"
)

// sequenceLen returns the length of a public sequence, -1 if v is not one.
// Strings are not sequences; char buffers take them directly.
func sequenceLen(v any) int {
	switch x := v.(type) {
	case []any:
		return len(x)
	case nil, string:
		return -1
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return -1
}

func sequenceAt(v any, i int) any {
	if x, ok := v.([]any); ok {
		return x[i]
	}
	return reflect.ValueOf(v).Index(i).Interface()
}

// encodeArray writes a public sequence into a fixed-capacity native array.
// Slots past the end of the sequence keep their current contents.
func (c *codec) encodeArray(t *Type, buf []byte, v any, fr *frame, path string) error {
	n := sequenceLen(v)
	if n < 0 {
		return c.fail(path, conversionError("%T given for %s", v, t.name))
	}
	if n > t.length {
		return c.fail(path, fmt.Errorf("%w: %d elements for capacity %d", ErrArrayCapacityExceeded, n, t.length))
	}
	es := t.elem.size
	for i := 0; i < n; i++ {
		ev := sequenceAt(v, i)
		if ev == nil {
			continue
		}
		eb := buf[uintptr(i)*es : uintptr(i+1)*es]
		if err := c.encodeValue(t.elem, eb, ev, fr, indexPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

// decodeArray reads every slot of a native array; the result always has
// exactly capacity elements.
func (c *codec) decodeArray(t *Type, buf []byte, fr *frame, path string) ([]any, error) {
	out := make([]any, t.length)
	es := t.elem.size
	for i := range out {
		eb := buf[uintptr(i)*es : uintptr(i+1)*es]
		v, err := c.decodeValue(t.elem, eb, fr, indexPath(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
