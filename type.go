package axcl

import (
	"fmt"
	"sort"
	"strings"
)

// Type describes the fixed binary layout of a native value. Types are
// immutable once constructed and safe to share between goroutines.
type Type struct {
	name   string
	kind   Kind
	size   uintptr
	align  uintptr
	elem   *Type
	length int

	fields   []FieldInfo
	byNative map[string]int
	aliases  *AliasTable

	// union only
	variants map[int64]string
	inactive map[int64]struct{}

	// struct only: union field -> discriminant field, both native names
	discriminants map[string]string
}

// Field declares one member of a struct or union.
type Field struct {
	Name    string // native member name
	Type    *Type
	Alias   string // public dictionary key, Name when empty
	Default any    // used when the key is absent on encode
	CountOf string // native name of an array whose length this field carries
}

// FieldInfo is a Field with its resolved byte offset.
type FieldInfo struct {
	Field
	Offset uintptr
}

// Public returns the dictionary key of the field.
func (f FieldInfo) Public() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

func scalar(name string, k Kind) *Type {
	s := k.size()
	return &Type{name: name, kind: k, size: s, align: s}
}

// Scalar types of the LP64 C ABI used by the runtime (aarch64, x86_64).
var (
	S8      = scalar("AX_S8", KindS8)
	U8      = scalar("AX_U8", KindU8)
	S16     = scalar("AX_S16", KindS16)
	U16     = scalar("AX_U16", KindU16)
	S32     = scalar("AX_S32", KindS32)
	U32     = scalar("AX_U32", KindU32)
	S64     = scalar("AX_S64", KindS64)
	U64     = scalar("AX_U64", KindU64)
	F32     = scalar("AX_F32", KindF32)
	F64     = scalar("AX_F64", KindF64)
	Bool    = scalar("AX_BOOL", KindBool)
	Pointer = scalar("AX_VOID*", KindPointer)

	// Enum is the storage of every C enum in the SDK headers.
	Enum = S32
)

// Array returns the type of a fixed-capacity sequence of n elements.
func Array(elem *Type, n int) *Type {
	if elem == nil || n <= 0 {
		panic(fmt.Sprintf("axcl: invalid array of %d elements", n))
	}
	return &Type{
		name:   fmt.Sprintf("%s[%d]", elem.name, n),
		kind:   KindArray,
		size:   elem.size * uintptr(n),
		align:  elem.align,
		elem:   elem,
		length: n,
	}
}

// Chars returns the type of a char[n] buffer exchanged as a string.
func Chars(n int) *Type {
	if n <= 0 {
		panic(fmt.Sprintf("axcl: invalid char buffer of %d bytes", n))
	}
	return &Type{
		name:   fmt.Sprintf("AX_CHAR[%d]", n),
		kind:   KindChars,
		size:   uintptr(n),
		align:  1,
		length: n,
	}
}

// TypeOption configures a struct or union at construction.
type TypeOption func(*Type)

// SelectBy maps discriminant values to the native name of the union
// variant they select. Several values may select the same variant.
func SelectBy(m map[int64]string) TypeOption {
	return func(t *Type) {
		if t.variants == nil {
			t.variants = make(map[int64]string, len(m))
		}
		for v, name := range m {
			t.variants[v] = name
		}
	}
}

// Inactive declares discriminant values for which no variant is in use.
func Inactive(values ...int64) TypeOption {
	return func(t *Type) {
		if t.inactive == nil {
			t.inactive = make(map[int64]struct{}, len(values))
		}
		for _, v := range values {
			t.inactive[v] = struct{}{}
		}
	}
}

// DiscriminateBy names the field holding the discriminant of a union
// member. The discriminant is looked up in this record first, then in
// each enclosing record outward.
func DiscriminateBy(unionField, discriminant string) TypeOption {
	return func(t *Type) {
		if t.discriminants == nil {
			t.discriminants = make(map[string]string)
		}
		t.discriminants[unionField] = discriminant
	}
}

// Struct builds a record type. It panics on malformed declarations, which
// are programming errors caught at package initialization.
func Struct(name string, fields []Field, opts ...TypeOption) *Type {
	t := &Type{name: name, kind: KindStruct}
	t.init(fields, opts)

	var off, maxAlign uintptr = 0, 1
	for i := range t.fields {
		ft := t.fields[i].Type
		off = alignUp(off, ft.align)
		t.fields[i].Offset = off
		off += ft.size
		if ft.align > maxAlign {
			maxAlign = ft.align
		}
	}
	t.align = maxAlign
	t.size = alignUp(off, maxAlign)

	for u, d := range t.discriminants {
		i, ok := t.byNative[u]
		if !ok || t.fields[i].Type.kind != KindUnion {
			panic(fmt.Sprintf("axcl: %s: discriminated member %q is not a union", name, u))
		}
		if d == "" {
			panic(fmt.Sprintf("axcl: %s: empty discriminant for %q", name, u))
		}
	}
	for _, f := range t.fields {
		if f.CountOf == "" {
			continue
		}
		i, ok := t.byNative[f.CountOf]
		if !ok || t.fields[i].Type.kind != KindArray || !f.Type.kind.Integer() {
			panic(fmt.Sprintf("axcl: %s: %q cannot count %q", name, f.Name, f.CountOf))
		}
	}
	return t
}

// Union builds a union type whose members share offset 0.
func Union(name string, fields []Field, opts ...TypeOption) *Type {
	if len(fields) == 0 {
		panic(fmt.Sprintf("axcl: %s: union without members", name))
	}
	t := &Type{name: name, kind: KindUnion}
	t.init(fields, opts)

	var size, maxAlign uintptr = 0, 1
	for i := range t.fields {
		ft := t.fields[i].Type
		if ft.size > size {
			size = ft.size
		}
		if ft.align > maxAlign {
			maxAlign = ft.align
		}
	}
	t.align = maxAlign
	t.size = alignUp(size, maxAlign)

	for v, variant := range t.variants {
		if _, ok := t.byNative[variant]; !ok {
			panic(fmt.Sprintf("axcl: %s: value %d selects unknown variant %q", name, v, variant))
		}
		if _, ok := t.inactive[v]; ok {
			panic(fmt.Sprintf("axcl: %s: value %d is both mapped and inactive", name, v))
		}
	}
	if len(t.discriminants) > 0 {
		panic(fmt.Sprintf("axcl: %s: DiscriminateBy applies to the enclosing struct", name))
	}
	return t
}

func (t *Type) init(fields []Field, opts []TypeOption) {
	t.fields = make([]FieldInfo, len(fields))
	t.byNative = make(map[string]int, len(fields))
	for i, f := range fields {
		if f.Name == "" || f.Type == nil {
			panic(fmt.Sprintf("axcl: %s: field %d is incomplete", t.name, i))
		}
		if _, dup := t.byNative[f.Name]; dup {
			panic(fmt.Sprintf("axcl: %s: duplicate field %q", t.name, f.Name))
		}
		t.byNative[f.Name] = i
		t.fields[i] = FieldInfo{Field: f}
	}
	for _, opt := range opts {
		opt(t)
	}
	t.aliases = newAliasTable(t)
}

func alignUp(n, a uintptr) uintptr {
	if a <= 1 {
		return n
	}
	return (n + a - 1) &^ (a - 1)
}

// Name returns the native type name.
func (t *Type) Name() string { return t.name }

// Kind returns the shape of the type.
func (t *Type) Kind() Kind { return t.kind }

// Size returns the total byte size including trailing padding.
func (t *Type) Size() uintptr { return t.size }

// Align returns the alignment requirement in bytes.
func (t *Type) Align() uintptr { return t.align }

// Elem returns the element type of an array, nil otherwise.
func (t *Type) Elem() *Type { return t.elem }

// Len returns the capacity of an array or char buffer.
func (t *Type) Len() int { return t.length }

// NumField returns the number of members of a struct or union.
func (t *Type) NumField() int { return len(t.fields) }

// Field returns the i'th member.
func (t *Type) Field(i int) FieldInfo { return t.fields[i] }

// FieldByName returns the member with the given native name.
func (t *Type) FieldByName(native string) (FieldInfo, bool) {
	i, ok := t.byNative[native]
	if !ok {
		return FieldInfo{}, false
	}
	return t.fields[i], true
}

// Aliases returns the field alias table of a struct or union.
func (t *Type) Aliases() *AliasTable { return t.aliases }

// Discriminant returns the native name of the field tagging a union member.
func (t *Type) Discriminant(unionField string) (string, bool) {
	d, ok := t.discriminants[unionField]
	return d, ok
}

// Variant returns the native name of the member selected by value.
// inactive is true when the value is declared to select no member.
func (t *Type) Variant(value int64) (name string, inactive, ok bool) {
	if name, ok := t.variants[value]; ok {
		return name, false, true
	}
	if _, ok := t.inactive[value]; ok {
		return "", true, true
	}
	return "", false, false
}

// Mapped reports whether the union carries a value mapping.
func (t *Type) Mapped() bool { return len(t.variants) > 0 }

// Values returns the discriminant values selecting the given member, sorted.
func (t *Type) Values(variant string) []int64 {
	var out []int64
	for v, name := range t.variants {
		if name == variant {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *Type) String() string { return t.name }

// LayoutRow is one line of a flattened layout.
type LayoutRow struct {
	Path   string
	Native string
	Offset uintptr
	Size   uintptr
	Kind   Kind
	Type   string
}

// Layout flattens the type into rows of public paths with absolute offsets.
// Union members are listed at their shared offset; arrays of records are
// expanded through their first element.
func (t *Type) Layout() []LayoutRow {
	var rows []LayoutRow
	t.layout(&rows, "", "", 0)
	return rows
}

func (t *Type) layout(rows *[]LayoutRow, path, native string, base uintptr) {
	switch t.kind {
	case KindStruct, KindUnion:
		for _, f := range t.fields {
			p := joinPath(path, f.Public())
			n := joinPath(native, f.Name)
			off := base + f.Offset
			*rows = append(*rows, LayoutRow{p, n, off, f.Type.size, f.Type.kind, f.Type.name})
			f.Type.layout(rows, p, n, off)
		}
	case KindArray:
		if k := t.elem.kind; k == KindStruct || k == KindUnion || k == KindArray {
			t.elem.layout(rows, path+"[0]", native+"[0]", base)
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	var b strings.Builder
	b.Grow(len(prefix) + 1 + len(name))
	b.WriteString(prefix)
	b.WriteByte('.')
	b.WriteString(name)
	return b.String()
}
