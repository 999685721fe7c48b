package axcl

import "fmt"

// selection is the outcome of resolving a union: the active member, or
// none when the discriminant declares the union unused.
type selection struct {
	member   string
	inactive bool
}

// resolveField picks the active member of union field f of the struct
// enclosing, whose frame is fr.
func (c *codec) resolveField(enclosing *Type, f FieldInfo, fr *frame) (selection, error) {
	ut := f.Type
	if !ut.Mapped() {
		return selection{}, nil
	}
	if d, ok := enclosing.Discriminant(f.Name); ok {
		if v, found := fr.lookup(d); found {
			return ut.pick(v)
		}
		if v, found := c.external[d]; found {
			return ut.pick(v)
		}
		return selection{}, fmt.Errorf("%w: discriminant %q of %s not found", ErrUnresolvedUnion, d, f.Name)
	}
	for _, key := range []string{f.Name, f.Public(), ut.name} {
		if v, found := c.external[key]; found {
			return ut.pick(v)
		}
	}
	return selection{}, fmt.Errorf("%w: no discriminant for %s", ErrUnresolvedUnion, f.Name)
}

// resolveBare picks the active member of a union not reached through a
// struct field (a top-level record or an array element).
func (c *codec) resolveBare(ut *Type) (selection, error) {
	if !ut.Mapped() {
		return selection{}, nil
	}
	if v, found := c.external[ut.name]; found {
		return ut.pick(v)
	}
	return selection{}, fmt.Errorf("%w: no discriminant for %s", ErrUnresolvedUnion, ut.name)
}

func (t *Type) pick(v int64) (selection, error) {
	name, inactive, ok := t.Variant(v)
	if !ok {
		return selection{}, fmt.Errorf("%w: %s has no variant for discriminant %d", ErrUnresolvedUnion, t.name, v)
	}
	return selection{member: name, inactive: inactive}, nil
}

// encodeUnion writes the active member of a union from its one-key dict.
// An untagged union (no value mapping) takes whichever single member the
// dict names.
func (c *codec) encodeUnion(ut *Type, buf []byte, d Dict, sel selection, parent *frame, path string) error {
	fr := &frame{t: ut, buf: buf, parent: parent}

	var given []string
	for key := range d {
		native, ok := ut.aliases.ResolveNative(key)
		if !ok {
			if c.strict {
				return c.fail(joinPath(path, key), ErrUnknownField)
			}
			continue
		}
		if d[key] != nil {
			given = append(given, native)
		}
	}

	switch {
	case sel.inactive:
		if len(given) > 0 {
			return c.fail(path, fmt.Errorf("%w: %s is unused for this discriminant, got %q", ErrUnresolvedUnion, ut.name, given[0]))
		}
		return nil
	case sel.member == "":
		if len(given) > 1 {
			return c.fail(path, fmt.Errorf("%w: %s takes one member, got %d", ErrUnresolvedUnion, ut.name, len(given)))
		}
		if len(given) == 0 {
			return nil
		}
		sel.member = given[0]
	default:
		for _, g := range given {
			if g != sel.member {
				return c.fail(path, fmt.Errorf("%w: %s selects %q, got %q", ErrUnresolvedUnion, ut.name, sel.member, g))
			}
		}
	}

	m, _ := ut.FieldByName(sel.member)
	v, ok := lookup(d, m)
	if !ok || v == nil {
		return nil
	}
	return c.encodeValue(m.Type, buf[:m.Type.size], v, fr, joinPath(path, m.Public()))
}

// decodeUnion reads only the active member. Untagged unions read through
// their first member, as a C initializer would.
func (c *codec) decodeUnion(ut *Type, buf []byte, sel selection, parent *frame, path string) (Dict, error) {
	if sel.inactive {
		return nil, nil
	}
	m := ut.fields[0]
	if sel.member != "" {
		m, _ = ut.FieldByName(sel.member)
	}
	fr := &frame{t: ut, buf: buf, parent: parent}
	p := m.Public()
	v, err := c.decodeValue(m.Type, buf[:m.Type.size], fr, joinPath(path, p))
	if err != nil {
		return nil, err
	}
	return Dict{p: v}, nil
}
