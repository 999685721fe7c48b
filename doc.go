// Package axcl marshals between Go dicts and the fixed-layout C records of
// the AXCL runtime, and binds the runtime libraries with purego.
//
// Key pieces include:
//   - Type descriptors for scalar, array, struct and union records
//   - Field alias tables mapping snake_case keys to native field names
//   - ToRecord/FromRecord converting dicts to native bytes and back
//   - Discriminated union selection through enclosing records
//   - Binding with typed wrappers for rt, sys, pool, ivps and vdec
//   - StreamAssembler turning H.264 RTP packets into decoder stream records
//
// # Records
//
//	ToRecord(IVPSRect, Dict{"x": 0, "y": 0, "width": 1920, "height": 1080})
//
// Keys may use the public alias or the native field name. Absent keys keep
// the zero value (or the field default). Decoding always produces public
// keys; unions are decoded to a single-key dict naming the active member.
//
// # Native Libraries
//
// Open loads libaxcl_*.so from Config.LibDir, AXCL_LIB_PATH, the executable
// directory and the standard install prefixes. AXCL_USE_TEST_LIB=1 loads
// libaxcl_stub.so for every subsystem instead. Missing symbols are logged
// and their calls fail with ErrNotLoaded.
package axcl
