package axcl

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// EnvLibPath names the directory holding the runtime libraries.
const EnvLibPath = "AXCL_LIB_PATH"

// EnvUseStub selects the vendor stub library for every subsystem when set
// to a non-empty value other than "0".
const EnvUseStub = "AXCL_USE_TEST_LIB"

// Config configures Open.
type Config struct {
	// LibDir is searched first; AXCL_LIB_PATH and the standard install
	// locations follow.
	LibDir string
	// Subsystems to load. Empty loads every subsystem with typed calls.
	Subsystems []Subsystem
	// Stub loads libaxcl_stub.so in place of every subsystem library.
	Stub bool
	// Logger receives load and call diagnostics. Defaults to Logger().
	Logger *zap.Logger
}

// symbol pairs a native symbol with the Go function variable it binds.
type symbol struct {
	name string
	fptr any
}

// Binding owns the loaded runtime libraries. Each subsystem API is valid
// until Close. A Binding is safe for concurrent use; records passed to
// its calls are not.
type Binding struct {
	log *zap.Logger

	mu        sync.Mutex
	closed    bool
	deps      []uintptr
	handles   [subsystemCount]uintptr
	available [subsystemCount]atomic.Bool

	RT   *RT
	Sys  *Sys
	Pool *Pool
	IVPS *IVPS
	VDEC *VDEC
}

func newBinding(log *zap.Logger) *Binding {
	if log == nil {
		log = Logger()
	}
	b := &Binding{log: log}
	b.RT = &RT{b: b}
	b.Sys = &Sys{b: b}
	b.Pool = &Pool{b: b}
	b.IVPS = &IVPS{b: b}
	b.VDEC = &VDEC{b: b}
	return b
}

// symbolsFor returns the function table bound from a subsystem library.
func (b *Binding) symbolsFor(s Subsystem) []symbol {
	switch s {
	case SubsystemRT:
		return b.RT.fn.symbols()
	case SubsystemSys:
		return append(b.Sys.fn.symbols(), b.Pool.fn.symbols()...)
	case SubsystemIVPS:
		return b.IVPS.fn.symbols()
	case SubsystemVDEC:
		return b.VDEC.fn.symbols()
	}
	return nil
}

// Open loads the requested subsystem libraries and binds their functions.
func Open(cfg Config) (*Binding, error) {
	b := newBinding(cfg.Logger)

	libDir := cfg.LibDir
	if libDir == "" {
		libDir = os.Getenv(EnvLibPath)
	}
	stub := cfg.Stub
	if v := os.Getenv(EnvUseStub); v != "" && v != "0" {
		stub = true
	}
	subsystems := cfg.Subsystems
	if len(subsystems) == 0 {
		subsystems = wrappedSubsystems()
	}

	b.loadDependencies(libDir)

	for _, s := range subsystems {
		if s >= subsystemCount {
			b.Close()
			return nil, fmt.Errorf("axcl: unknown subsystem %d", s)
		}
		lib := s.Library()
		if stub {
			lib = stubLibrary
		}
		if err := b.load(s, libDir, lib); err != nil {
			b.Close()
			return nil, err
		}
	}
	return b, nil
}

func (b *Binding) loadDependencies(libDir string) {
	for _, lib := range dependencyLibraries {
		var lastErr error
		for _, path := range libraryPaths(libDir, lib) {
			h, err := dlopen(path)
			if err == nil {
				b.deps = append(b.deps, h)
				lastErr = nil
				break
			}
			lastErr = err
		}
		if lastErr != nil {
			b.log.Debug("dependency not loaded", zap.String("lib", lib), zap.Error(lastErr))
		}
	}
}

func (b *Binding) load(s Subsystem, libDir, lib string) error {
	var lastErr error
	for _, path := range libraryPaths(libDir, lib) {
		handle, err := dlopen(path)
		if err != nil {
			lastErr = err
			continue
		}
		missing, err := bindSymbols(handle, b.symbolsFor(s))
		if err != nil {
			dlclose(handle)
			lastErr = err
			continue
		}
		if len(missing) > 0 {
			b.log.Warn("symbols missing", zap.Stringer("subsystem", s), zap.Strings("symbols", missing))
		}
		b.handles[s] = handle
		b.available[s].Store(true)
		b.log.Info("loaded", zap.Stringer("subsystem", s), zap.String("path", path))
		return nil
	}
	if lastErr != nil {
		return fmt.Errorf("failed to load %s: %w", lib, lastErr)
	}
	return fmt.Errorf("%s not found in any standard location", lib)
}

// Available reports whether the subsystem library is loaded.
func (b *Binding) Available(s Subsystem) bool {
	if s >= subsystemCount {
		return false
	}
	return b.available[s].Load()
}

// Logger returns the binding's logger.
func (b *Binding) Logger() *zap.Logger { return b.log }

// Close unloads every library. Calls made after Close fail with ErrNotLoaded.
func (b *Binding) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	var errs []error
	for s := Subsystem(0); s < subsystemCount; s++ {
		b.available[s].Store(false)
		if h := b.handles[s]; h != 0 {
			if err := dlclose(h); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", s, err))
			}
			b.handles[s] = 0
		}
	}
	for i := len(b.deps) - 1; i >= 0; i-- {
		if err := dlclose(b.deps[i]); err != nil {
			errs = append(errs, err)
		}
	}
	b.deps = nil
	return errors.Join(errs...)
}

// ready checks that fn of subsystem s can be called.
func (b *Binding) ready(s Subsystem, name string, bound bool) error {
	if !b.Available(s) || !bound {
		return fmt.Errorf("%w: %s (%s)", ErrNotLoaded, name, s)
	}
	return nil
}

// encode marshals an input record for a native call, logging failures.
func (b *Binding) encode(fn string, t *Type, d Dict, opts ...Option) (*Record, error) {
	r, err := ToRecord(t, d, opts...)
	if err != nil {
		b.log.Error("marshal failed", zap.String("fn", fn), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return r, nil
}

// decode unmarshals an output record after a successful native call.
func (b *Binding) decode(fn string, r *Record, opts ...Option) (Dict, error) {
	d, err := FromRecord(r, opts...)
	if err != nil {
		b.log.Error("unmarshal failed", zap.String("fn", fn), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return d, nil
}

// check maps a native return code to an error.
func (b *Binding) check(fn string, ret int32) error {
	err := checkRet(fn, ret)
	if err != nil {
		b.log.Debug("native call failed", zap.String("fn", fn), zap.Int32("ret", ret), zap.Error(err))
	}
	return err
}
