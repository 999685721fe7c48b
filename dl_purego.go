//go:build darwin || linux

package axcl

import (
	"fmt"

	"github.com/ebitengine/purego"
)

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

// bindSymbols registers every symbol of syms found in handle. Missing
// symbols leave their function nil and are returned by name.
func bindSymbols(handle uintptr, syms []symbol) (missing []string, err error) {
	for _, s := range syms {
		addr, err := purego.Dlsym(handle, s.name)
		if err != nil || addr == 0 {
			missing = append(missing, s.name)
			continue
		}
		if err := registerFunc(s, addr); err != nil {
			return missing, err
		}
	}
	return missing, nil
}

func registerFunc(s symbol, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("register %s: %v", s.name, r)
		}
	}()
	purego.RegisterFunc(s.fptr, addr)
	return nil
}
