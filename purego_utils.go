// Shared helpers for the purego bindings.

package axcl

import (
	"os"
	"path/filepath"
	"runtime"
	"unsafe"
)

// maxCString bounds reads of NUL-terminated strings returned by the runtime.
const maxCString = 4096

// goStringFromPtr copies the NUL-terminated string at ptr, reading at most
// maxCString bytes.
func goStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(ptr)), maxCString)
	for n, c := range raw {
		if c == 0 {
			return string(raw[:n])
		}
	}
	return string(raw)
}

// findModuleRoot returns the nearest directory above the working directory
// that holds a go.mod, or "" outside a module.
func findModuleRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for prev := ""; dir != prev; prev, dir = dir, filepath.Dir(dir) {
		if fi, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !fi.IsDir() {
			return dir
		}
	}
	return ""
}

// libraryPaths lists candidate locations for one shared library, highest
// priority first.
func libraryPaths(libDir, libName string) []string {
	var paths []string

	// Explicit directory, then environment override
	if libDir != "" {
		paths = append(paths, filepath.Join(libDir, libName))
	}
	if envPath := os.Getenv(EnvLibPath); envPath != "" && envPath != libDir {
		paths = append(paths, filepath.Join(envPath, libName))
	}

	// Relative to executable location
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, libName),
			filepath.Join(exeDir, "..", "lib", libName),
		)
	}

	// Relative to module root (tests and go run)
	if moduleRoot := findModuleRoot(); moduleRoot != "" {
		paths = append(paths,
			filepath.Join(moduleRoot, "lib", libName),
			filepath.Join(moduleRoot, "build", libName),
		)
	}

	// SDK install locations (lowest priority), then the loader's own search
	if runtime.GOOS == "linux" {
		paths = append(paths,
			filepath.Join("/usr/lib/axcl", libName),
			filepath.Join("/usr/local/lib/axcl", libName),
			filepath.Join("/opt/axcl/lib", libName),
		)
	}
	paths = append(paths, libName)

	return paths
}
