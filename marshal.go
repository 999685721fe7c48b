package axcl

import (
	"errors"
	"fmt"
)

// Dict is the public, dictionary-shaped form of a record.
type Dict = map[string]any

// Option adjusts a single marshaling call.
type Option func(*codec)

// WithDiscriminant supplies the discriminant of a union from outside the
// record. name is matched against the discriminant field, the union
// member (native or public name) or the union type name.
func WithDiscriminant(name string, value int64) Option {
	return func(c *codec) {
		c.external[name] = value
	}
}

// WithStrictKeys rejects dictionary keys that match no member.
func WithStrictKeys() Option {
	return func(c *codec) {
		c.strict = true
	}
}

// codec carries the per-call state of one marshaling operation.
type codec struct {
	root     *Type
	strict   bool
	external map[string]int64
}

func newCodec(root *Type, opts []Option) *codec {
	c := &codec{root: root, external: make(map[string]int64)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// frame is one level of the enclosing-record chain used to find
// discriminants outside the immediate parent.
type frame struct {
	t      *Type
	buf    []byte
	parent *frame
}

// lookup reads an integral field by native name, innermost record first.
func (f *frame) lookup(native string) (int64, bool) {
	for s := f; s != nil; s = s.parent {
		fi, ok := s.t.FieldByName(native)
		if !ok || !(fi.Type.kind.Integer() || fi.Type.kind == KindBool) {
			continue
		}
		return readDiscriminant(fi.Type.kind, s.buf[fi.Offset:fi.Offset+fi.Type.size])
	}
	return 0, false
}

func (c *codec) fail(path string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Type: c.root.name, Path: path, Err: err}
}

// ToRecord marshals d into a new zeroed record of type t.
func ToRecord(t *Type, d Dict, opts ...Option) (*Record, error) {
	r := NewRecord(t)
	if err := r.Fill(d, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Fill marshals d over the current contents of r. Keys absent from d leave
// their bytes untouched unless the field declares a default or counts an
// array present in d.
func (r *Record) Fill(d Dict, opts ...Option) error {
	c := newCodec(r.typ, opts)
	switch r.typ.kind {
	case KindStruct:
		return c.encodeStruct(r.typ, r.buf, d, nil, "")
	case KindUnion:
		sel, err := c.resolveBare(r.typ)
		if err != nil {
			return c.fail("", err)
		}
		return c.encodeUnion(r.typ, r.buf, d, sel, nil, "")
	}
	return c.fail("", conversionError("%s is not a record", r.typ.name))
}

// FromRecord marshals r back into its public dictionary form.
func FromRecord(r *Record, opts ...Option) (Dict, error) {
	c := newCodec(r.typ, opts)
	switch r.typ.kind {
	case KindStruct:
		return c.decodeStruct(r.typ, r.buf, nil, "")
	case KindUnion:
		sel, err := c.resolveBare(r.typ)
		if err != nil {
			return nil, c.fail("", err)
		}
		d, err := c.decodeUnion(r.typ, r.buf, sel, nil, "")
		if d == nil && err == nil {
			d = Dict{}
		}
		return d, err
	}
	return nil, c.fail("", conversionError("%s is not a record", r.typ.name))
}

// lookup finds the value of f under its public key, then its native name.
func lookup(d Dict, f FieldInfo) (any, bool) {
	if v, ok := d[f.Public()]; ok {
		return v, true
	}
	if f.Alias != "" {
		v, ok := d[f.Name]
		return v, ok
	}
	return nil, false
}

func asDict(v any) (Dict, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		d := make(Dict, len(x))
		for k, e := range x {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			d[s] = e
		}
		return d, true
	}
	return nil, false
}

func (c *codec) encodeValue(t *Type, buf []byte, v any, fr *frame, path string) error {
	switch t.kind {
	case KindChars:
		if err := encodeChars(buf, v); err != nil {
			return c.fail(path, err)
		}
		return nil
	case KindArray:
		return c.encodeArray(t, buf, v, fr, path)
	case KindStruct:
		d, ok := asDict(v)
		if !ok {
			return c.fail(path, conversionError("%T given for %s", v, t.name))
		}
		return c.encodeStruct(t, buf, d, fr, path)
	case KindUnion:
		d, ok := asDict(v)
		if !ok {
			return c.fail(path, conversionError("%T given for %s", v, t.name))
		}
		sel, err := c.resolveBare(t)
		if err != nil {
			return c.fail(path, err)
		}
		return c.encodeUnion(t, buf, d, sel, fr, path)
	}
	if err := encodeScalar(t.kind, buf, v); err != nil {
		return c.fail(path, err)
	}
	return nil
}

// encodeStruct writes plain members before unions so every discriminant is
// in place by the time its union is resolved.
func (c *codec) encodeStruct(t *Type, buf []byte, d Dict, parent *frame, path string) error {
	fr := &frame{t: t, buf: buf, parent: parent}
	if c.strict {
		for key := range d {
			if _, ok := t.aliases.ResolveNative(key); !ok {
				return c.fail(joinPath(path, key), ErrUnknownField)
			}
		}
	}
	for pass := 0; pass < 2; pass++ {
		for _, f := range t.fields {
			if (f.Type.kind == KindUnion) != (pass == 1) {
				continue
			}
			if err := c.encodeField(t, f, buf, d, fr, path); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *codec) encodeField(t *Type, f FieldInfo, buf []byte, d Dict, fr *frame, path string) error {
	fb := buf[f.Offset : f.Offset+f.Type.size]
	p := joinPath(path, f.Public())

	v, ok := lookup(d, f)
	if !ok || v == nil {
		v = nil
		if f.CountOf != "" {
			arr, _ := t.FieldByName(f.CountOf)
			if seq, ok := lookup(d, arr); ok {
				if n := sequenceLen(seq); n >= 0 {
					v = n
				}
			}
		}
		if v == nil {
			v = f.Default
		}
		if v == nil {
			return nil
		}
	}

	if f.Type.kind != KindUnion {
		return c.encodeValue(f.Type, fb, v, fr, p)
	}
	ud, ok := asDict(v)
	if !ok {
		return c.fail(p, conversionError("%T given for %s", v, f.Type.name))
	}
	sel, err := c.resolveField(t, f, fr)
	if err != nil {
		return c.fail(p, err)
	}
	return c.encodeUnion(f.Type, fb, ud, sel, fr, p)
}

func (c *codec) decodeValue(t *Type, buf []byte, fr *frame, path string) (any, error) {
	switch t.kind {
	case KindChars:
		return decodeChars(buf), nil
	case KindArray:
		return c.decodeArray(t, buf, fr, path)
	case KindStruct:
		return c.decodeStruct(t, buf, fr, path)
	case KindUnion:
		sel, err := c.resolveBare(t)
		if err != nil {
			return nil, c.fail(path, err)
		}
		d, err := c.decodeUnion(t, buf, sel, fr, path)
		if d == nil && err == nil {
			return Dict{}, nil
		}
		return d, err
	}
	if !t.kind.Scalar() {
		return nil, c.fail(path, fmt.Errorf("%w: kind %s", ErrTypeConversion, t.kind))
	}
	return decodeScalar(t.kind, buf), nil
}

func (c *codec) decodeStruct(t *Type, buf []byte, parent *frame, path string) (Dict, error) {
	fr := &frame{t: t, buf: buf, parent: parent}
	out := make(Dict, len(t.fields))
	for _, f := range t.fields {
		fb := buf[f.Offset : f.Offset+f.Type.size]
		p := joinPath(path, f.Public())
		if f.Type.kind == KindUnion {
			sel, err := c.resolveField(t, f, fr)
			if err != nil {
				return nil, c.fail(p, err)
			}
			ud, err := c.decodeUnion(f.Type, fb, sel, fr, p)
			if err != nil {
				return nil, err
			}
			if ud != nil {
				out[f.Public()] = ud
			}
			continue
		}
		v, err := c.decodeValue(f.Type, fb, fr, p)
		if err != nil {
			return nil, err
		}
		out[f.Public()] = v
	}
	return out, nil
}
