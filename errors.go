package axcl

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeConversion reports a value that cannot be stored in its field.
	ErrTypeConversion = errors.New("axcl: type conversion")
	// ErrUnresolvedUnion reports a discriminant that selects no known variant,
	// or a union whose discriminant cannot be found.
	ErrUnresolvedUnion = errors.New("axcl: unresolved union")
	// ErrArrayCapacityExceeded reports a sequence longer than its array.
	ErrArrayCapacityExceeded = errors.New("axcl: array capacity exceeded")
	// ErrUnknownField reports a dictionary key matching no member (strict mode).
	ErrUnknownField = errors.New("axcl: unknown field")
	// ErrRecordSize reports a byte buffer whose length differs from the type size.
	ErrRecordSize = errors.New("axcl: record size mismatch")
	// ErrNotLoaded reports a call into a subsystem whose library is not loaded.
	ErrNotLoaded = errors.New("axcl: subsystem not loaded")
)

// FieldError locates a marshaling failure inside a record.
type FieldError struct {
	Type string // outermost record type
	Path string // dotted public path, e.g. "filters[0][1].engine_cfg"
	Err  error
}

func (e *FieldError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Type, e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func conversionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTypeConversion, fmt.Sprintf(format, args...))
}
