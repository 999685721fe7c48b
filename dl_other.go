//go:build !darwin && !linux

package axcl

import (
	"errors"
	"runtime"
)

var errNoDynamicLoading = errors.New("axcl: dynamic loading is not supported on " + runtime.GOOS)

func dlopen(string) (uintptr, error) { return 0, errNoDynamicLoading }

func dlclose(uintptr) error { return nil }

func bindSymbols(uintptr, []symbol) ([]string, error) { return nil, errNoDynamicLoading }
