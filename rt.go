package axcl

import (
	"runtime"
	"unsafe"
)

// rtFuncs are the libaxcl_rt entry points.
type rtFuncs struct {
	Init                func(config string) int32
	Finalize            func() int32
	GetVersion          func(major, minor, patch unsafe.Pointer) int32
	GetSocName          func() uintptr
	SetDevice           func(deviceID int32) int32
	ResetDevice         func(deviceID int32) int32
	GetDeviceList       func(list unsafe.Pointer) int32
	GetDeviceProperties func(deviceID int32, props unsafe.Pointer) int32
	Malloc              func(devPtr unsafe.Pointer, size uint64, policy int32) int32
	Free                func(devPtr uintptr) int32
	Memcpy              func(dst, src uintptr, count uint64, kind int32) int32
}

func (f *rtFuncs) symbols() []symbol {
	return []symbol{
		{"axclInit", &f.Init},
		{"axclFinalize", &f.Finalize},
		{"axclrtGetVersion", &f.GetVersion},
		{"axclrtGetSocName", &f.GetSocName},
		{"axclrtSetDevice", &f.SetDevice},
		{"axclrtResetDevice", &f.ResetDevice},
		{"axclrtGetDeviceList", &f.GetDeviceList},
		{"axclrtGetDeviceProperties", &f.GetDeviceProperties},
		{"axclrtMalloc", &f.Malloc},
		{"axclrtFree", &f.Free},
		{"axclrtMemcpy", &f.Memcpy},
	}
}

// RT exposes the device runtime (libaxcl_rt).
type RT struct {
	b  *Binding
	fn rtFuncs
}

// Init initializes the runtime with an optional JSON config file path.
func (r *RT) Init(config string) error {
	const name = "axclInit"
	if err := r.b.ready(SubsystemRT, name, r.fn.Init != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.Init(config))
}

// Finalize releases the runtime.
func (r *RT) Finalize() error {
	const name = "axclFinalize"
	if err := r.b.ready(SubsystemRT, name, r.fn.Finalize != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.Finalize())
}

// Version returns the runtime version triple.
func (r *RT) Version() (major, minor, patch int32, err error) {
	const name = "axclrtGetVersion"
	if err := r.b.ready(SubsystemRT, name, r.fn.GetVersion != nil); err != nil {
		return 0, 0, 0, err
	}
	v := new([3]int32)
	ret := r.fn.GetVersion(unsafe.Pointer(&v[0]), unsafe.Pointer(&v[1]), unsafe.Pointer(&v[2]))
	if err := r.b.check(name, ret); err != nil {
		return 0, 0, 0, err
	}
	return v[0], v[1], v[2], nil
}

// SocName returns the name of the attached SoC.
func (r *RT) SocName() (string, error) {
	const name = "axclrtGetSocName"
	if err := r.b.ready(SubsystemRT, name, r.fn.GetSocName != nil); err != nil {
		return "", err
	}
	return goStringFromPtr(r.fn.GetSocName()), nil
}

// SetDevice binds the calling thread to a device.
func (r *RT) SetDevice(deviceID int32) error {
	const name = "axclrtSetDevice"
	if err := r.b.ready(SubsystemRT, name, r.fn.SetDevice != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.SetDevice(deviceID))
}

// ResetDevice releases a device bound with SetDevice.
func (r *RT) ResetDevice(deviceID int32) error {
	const name = "axclrtResetDevice"
	if err := r.b.ready(SubsystemRT, name, r.fn.ResetDevice != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.ResetDevice(deviceID))
}

// DeviceList returns the ids of the connected devices. Only the first
// num entries of the native list are meaningful.
func (r *RT) DeviceList() ([]int32, error) {
	const name = "axclrtGetDeviceList"
	if err := r.b.ready(SubsystemRT, name, r.fn.GetDeviceList != nil); err != nil {
		return nil, err
	}
	rec := NewRecord(DeviceList)
	ret := r.fn.GetDeviceList(rec.Pointer())
	runtime.KeepAlive(rec)
	if err := r.b.check(name, ret); err != nil {
		return nil, err
	}
	d, err := r.b.decode(name, rec)
	if err != nil {
		return nil, err
	}
	num := int(d["num"].(int64))
	devices := d["devices"].([]any)
	if num > len(devices) {
		num = len(devices)
	}
	ids := make([]int32, num)
	for i := range ids {
		ids[i] = int32(devices[i].(int64))
	}
	return ids, nil
}

// DeviceProperties returns the axclrtDeviceProperties dict of a device.
func (r *RT) DeviceProperties(deviceID int32) (Dict, error) {
	const name = "axclrtGetDeviceProperties"
	if err := r.b.ready(SubsystemRT, name, r.fn.GetDeviceProperties != nil); err != nil {
		return nil, err
	}
	rec := NewRecord(DeviceProperties)
	ret := r.fn.GetDeviceProperties(deviceID, rec.Pointer())
	runtime.KeepAlive(rec)
	if err := r.b.check(name, ret); err != nil {
		return nil, err
	}
	return r.b.decode(name, rec)
}

// Malloc allocates device memory. The returned address is owned by the
// caller and released with Free.
func (r *RT) Malloc(size uint64, policy int32) (Addr, error) {
	const name = "axclrtMalloc"
	if err := r.b.ready(SubsystemRT, name, r.fn.Malloc != nil); err != nil {
		return 0, err
	}
	p := new(uintptr)
	if err := r.b.check(name, r.fn.Malloc(unsafe.Pointer(p), size, policy)); err != nil {
		return 0, err
	}
	return Addr(*p), nil
}

// Free releases device memory from Malloc.
func (r *RT) Free(devPtr Addr) error {
	const name = "axclrtFree"
	if err := r.b.ready(SubsystemRT, name, r.fn.Free != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.Free(uintptr(devPtr)))
}

// Memcpy copies count bytes in the direction given by kind.
func (r *RT) Memcpy(dst, src Addr, count uint64, kind int32) error {
	const name = "axclrtMemcpy"
	if err := r.b.ready(SubsystemRT, name, r.fn.Memcpy != nil); err != nil {
		return err
	}
	return r.b.check(name, r.fn.Memcpy(uintptr(dst), uintptr(src), count, kind))
}
