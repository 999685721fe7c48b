package axcl

import (
	"runtime"
	"unsafe"
)

type sysFuncs struct {
	Init          func() int32
	Deinit        func() int32
	Link          func(src, dst unsafe.Pointer) int32
	UnLink        func(src, dst unsafe.Pointer) int32
	GetLinkByDest func(dst, src unsafe.Pointer) int32
	GetLinkBySrc  func(src, dest unsafe.Pointer) int32
	GetCurPTS     func(pts unsafe.Pointer) int32
}

func (f *sysFuncs) symbols() []symbol {
	return []symbol{
		{"AXCL_SYS_Init", &f.Init},
		{"AXCL_SYS_Deinit", &f.Deinit},
		{"AXCL_SYS_Link", &f.Link},
		{"AXCL_SYS_UnLink", &f.UnLink},
		{"AXCL_SYS_GetLinkByDest", &f.GetLinkByDest},
		{"AXCL_SYS_GetLinkBySrc", &f.GetLinkBySrc},
		{"AXCL_SYS_GetCurPTS", &f.GetCurPTS},
	}
}

// Sys exposes system services and module linking (libaxcl_sys).
type Sys struct {
	b  *Binding
	fn sysFuncs
}

// Init initializes the system module.
func (s *Sys) Init() error {
	const name = "AXCL_SYS_Init"
	if err := s.b.ready(SubsystemSys, name, s.fn.Init != nil); err != nil {
		return err
	}
	return s.b.check(name, s.fn.Init())
}

// Deinit releases the system module.
func (s *Sys) Deinit() error {
	const name = "AXCL_SYS_Deinit"
	if err := s.b.ready(SubsystemSys, name, s.fn.Deinit != nil); err != nil {
		return err
	}
	return s.b.check(name, s.fn.Deinit())
}

func (s *Sys) link(name string, fn func(src, dst unsafe.Pointer) int32, src, dst Dict) error {
	if err := s.b.ready(SubsystemSys, name, fn != nil); err != nil {
		return err
	}
	rs, err := s.b.encode(name, ModInfo, src)
	if err != nil {
		return err
	}
	rd, err := s.b.encode(name, ModInfo, dst)
	if err != nil {
		return err
	}
	ret := fn(rs.Pointer(), rd.Pointer())
	runtime.KeepAlive(rs)
	runtime.KeepAlive(rd)
	return s.b.check(name, ret)
}

// Link binds the output of src to the input of dst; both are
// AX_MOD_INFO_T dicts.
func (s *Sys) Link(src, dst Dict) error {
	return s.link("AXCL_SYS_Link", s.fn.Link, src, dst)
}

// UnLink removes a link made with Link.
func (s *Sys) UnLink(src, dst Dict) error {
	return s.link("AXCL_SYS_UnLink", s.fn.UnLink, src, dst)
}

// LinkByDest returns the source linked to dst.
func (s *Sys) LinkByDest(dst Dict) (Dict, error) {
	const name = "AXCL_SYS_GetLinkByDest"
	if err := s.b.ready(SubsystemSys, name, s.fn.GetLinkByDest != nil); err != nil {
		return nil, err
	}
	rd, err := s.b.encode(name, ModInfo, dst)
	if err != nil {
		return nil, err
	}
	rs := NewRecord(ModInfo)
	ret := s.fn.GetLinkByDest(rd.Pointer(), rs.Pointer())
	runtime.KeepAlive(rd)
	runtime.KeepAlive(rs)
	if err := s.b.check(name, ret); err != nil {
		return nil, err
	}
	return s.b.decode(name, rs)
}

// LinkBySrc returns the AX_LINK_DEST_T dict of destinations fed by src.
func (s *Sys) LinkBySrc(src Dict) (Dict, error) {
	const name = "AXCL_SYS_GetLinkBySrc"
	if err := s.b.ready(SubsystemSys, name, s.fn.GetLinkBySrc != nil); err != nil {
		return nil, err
	}
	rs, err := s.b.encode(name, ModInfo, src)
	if err != nil {
		return nil, err
	}
	rd := NewRecord(LinkDest)
	ret := s.fn.GetLinkBySrc(rs.Pointer(), rd.Pointer())
	runtime.KeepAlive(rs)
	runtime.KeepAlive(rd)
	if err := s.b.check(name, ret); err != nil {
		return nil, err
	}
	return s.b.decode(name, rd)
}

// CurPTS returns the current system timestamp in microseconds.
func (s *Sys) CurPTS() (uint64, error) {
	const name = "AXCL_SYS_GetCurPTS"
	if err := s.b.ready(SubsystemSys, name, s.fn.GetCurPTS != nil); err != nil {
		return 0, err
	}
	pts := new(uint64)
	if err := s.b.check(name, s.fn.GetCurPTS(unsafe.Pointer(pts))); err != nil {
		return 0, err
	}
	return *pts, nil
}
