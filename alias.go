package axcl

import "fmt"

// AliasTable maps between the public dictionary keys of a record type and
// its native member names. Keys without an alias are their own public name.
type AliasTable struct {
	toNative map[string]string
	toPublic map[string]string
}

func newAliasTable(t *Type) *AliasTable {
	a := &AliasTable{
		toNative: make(map[string]string, len(t.fields)),
		toPublic: make(map[string]string, len(t.fields)),
	}
	for _, f := range t.fields {
		pub := f.Public()
		if prev, dup := a.toNative[pub]; dup {
			panic(fmt.Sprintf("axcl: %s: public key %q used by %q and %q", t.name, pub, prev, f.Name))
		}
		a.toNative[pub] = f.Name
		a.toPublic[f.Name] = pub
	}
	// A native name stays addressable unless another member claims it publicly.
	for _, f := range t.fields {
		if _, taken := a.toNative[f.Name]; !taken {
			a.toNative[f.Name] = f.Name
		}
	}
	return a
}

// ResolveNative returns the native member for a dictionary key. Public
// names win; a native name is accepted as a fallback.
func (a *AliasTable) ResolveNative(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	n, ok := a.toNative[key]
	return n, ok
}

// ResolvePublic returns the dictionary key for a native member. Members
// without an alias resolve to their own name.
func (a *AliasTable) ResolvePublic(native string) string {
	if a == nil {
		return native
	}
	if p, ok := a.toPublic[native]; ok {
		return p
	}
	return native
}

// Len returns the number of members in the table.
func (a *AliasTable) Len() int {
	if a == nil {
		return 0
	}
	return len(a.toPublic)
}
