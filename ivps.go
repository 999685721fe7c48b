package axcl

import (
	"runtime"
	"unsafe"
)

type ivpsFuncs struct {
	Init            func() int32
	Deinit          func() int32
	CreateGrp       func(grp int32, attr unsafe.Pointer) int32
	DestoryGrp      func(grp int32) int32
	SetPipelineAttr func(grp int32, attr unsafe.Pointer) int32
	GetPipelineAttr func(grp int32, attr unsafe.Pointer) int32
	StartGrp        func(grp int32) int32
	StopGrp         func(grp int32) int32
	EnableChn       func(grp, chn int32) int32
	DisableChn      func(grp, chn int32) int32
	SendFrame       func(grp int32, frame unsafe.Pointer, timeoutMs int32) int32
	GetChnFrame     func(grp, chn int32, frame unsafe.Pointer, timeoutMs int32) int32
	ReleaseChnFrame func(grp, chn int32, frame unsafe.Pointer) int32
	SetGrpCrop      func(grp int32, crop unsafe.Pointer) int32
	GetGrpCrop      func(grp int32, crop unsafe.Pointer) int32
	GetEngineDuty   func(duty unsafe.Pointer) int32
	RgnCreate       func() int32
	RgnDestroy      func(region int32) int32
	RgnAttachFilter func(region, grp, filter int32) int32
	RgnDetachFilter func(region, grp, filter int32) int32
	RgnUpdate       func(region int32, disp unsafe.Pointer) int32
	GdcWorkCreate   func(handle unsafe.Pointer) int32
	GdcWorkAttrSet  func(handle int32, attr unsafe.Pointer) int32
	GdcWorkRun      func(handle int32, src, dst unsafe.Pointer) int32
	GdcWorkDestroy  func(handle int32) int32
	CropResizeTdp   func(src, dst, aspect unsafe.Pointer) int32
}

func (f *ivpsFuncs) symbols() []symbol {
	return []symbol{
		{"AXCL_IVPS_Init", &f.Init},
		{"AXCL_IVPS_Deinit", &f.Deinit},
		{"AXCL_IVPS_CreateGrp", &f.CreateGrp},
		{"AXCL_IVPS_DestoryGrp", &f.DestoryGrp},
		{"AXCL_IVPS_SetPipelineAttr", &f.SetPipelineAttr},
		{"AXCL_IVPS_GetPipelineAttr", &f.GetPipelineAttr},
		{"AXCL_IVPS_StartGrp", &f.StartGrp},
		{"AXCL_IVPS_StopGrp", &f.StopGrp},
		{"AXCL_IVPS_EnableChn", &f.EnableChn},
		{"AXCL_IVPS_DisableChn", &f.DisableChn},
		{"AXCL_IVPS_SendFrame", &f.SendFrame},
		{"AXCL_IVPS_GetChnFrame", &f.GetChnFrame},
		{"AXCL_IVPS_ReleaseChnFrame", &f.ReleaseChnFrame},
		{"AXCL_IVPS_SetGrpCrop", &f.SetGrpCrop},
		{"AXCL_IVPS_GetGrpCrop", &f.GetGrpCrop},
		{"AXCL_IVPS_GetEngineDutyCycle", &f.GetEngineDuty},
		{"AXCL_IVPS_RGN_Create", &f.RgnCreate},
		{"AXCL_IVPS_RGN_Destroy", &f.RgnDestroy},
		{"AXCL_IVPS_RGN_AttachToFilter", &f.RgnAttachFilter},
		{"AXCL_IVPS_RGN_DetachFromFilter", &f.RgnDetachFilter},
		{"AXCL_IVPS_RGN_Update", &f.RgnUpdate},
		{"AXCL_IVPS_GdcWorkCreate", &f.GdcWorkCreate},
		{"AXCL_IVPS_GdcWorkAttrSet", &f.GdcWorkAttrSet},
		{"AXCL_IVPS_GdcWorkRun", &f.GdcWorkRun},
		{"AXCL_IVPS_GdcWorkDestroy", &f.GdcWorkDestroy},
		{"AXCL_IVPS_CropResizeTdp", &f.CropResizeTdp},
	}
}

// InvalidRegion is returned by the region allocator on failure.
const InvalidRegion = -1

// IVPS exposes the image processing subsystem (libaxcl_ivps).
type IVPS struct {
	b  *Binding
	fn ivpsFuncs
}

func (v *IVPS) call0(name string, fn func() int32) error {
	if err := v.b.ready(SubsystemIVPS, name, fn != nil); err != nil {
		return err
	}
	return v.b.check(name, fn())
}

func (v *IVPS) callGrp(name string, fn func(int32) int32, grp int32) error {
	if err := v.b.ready(SubsystemIVPS, name, fn != nil); err != nil {
		return err
	}
	return v.b.check(name, fn(grp))
}

// setRecord marshals d and passes it with grp to an input-only call.
func (v *IVPS) setRecord(name string, fn func(int32, unsafe.Pointer) int32, grp int32, t *Type, d Dict) error {
	if err := v.b.ready(SubsystemIVPS, name, fn != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, t, d)
	if err != nil {
		return err
	}
	ret := fn(grp, r.Pointer())
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// getRecord reads an output-only record of type t for grp.
func (v *IVPS) getRecord(name string, fn func(int32, unsafe.Pointer) int32, grp int32, t *Type) (Dict, error) {
	if err := v.b.ready(SubsystemIVPS, name, fn != nil); err != nil {
		return nil, err
	}
	r := NewRecord(t)
	ret := fn(grp, r.Pointer())
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// Init initializes the subsystem.
func (v *IVPS) Init() error { return v.call0("AXCL_IVPS_Init", v.fn.Init) }

// Deinit releases the subsystem.
func (v *IVPS) Deinit() error { return v.call0("AXCL_IVPS_Deinit", v.fn.Deinit) }

// CreateGrp creates group grp from an AX_IVPS_GRP_ATTR_T dict.
func (v *IVPS) CreateGrp(grp int32, attr Dict) error {
	return v.setRecord("AXCL_IVPS_CreateGrp", v.fn.CreateGrp, grp, IVPSGrpAttr, attr)
}

// DestroyGrp destroys group grp.
func (v *IVPS) DestroyGrp(grp int32) error {
	return v.callGrp("AXCL_IVPS_DestoryGrp", v.fn.DestoryGrp, grp)
}

// SetPipelineAttr configures the filters of a group from an
// AX_IVPS_PIPELINE_ATTR_T dict.
func (v *IVPS) SetPipelineAttr(grp int32, attr Dict) error {
	return v.setRecord("AXCL_IVPS_SetPipelineAttr", v.fn.SetPipelineAttr, grp, PipelineAttr, attr)
}

// PipelineAttr reads the filter configuration of a group.
func (v *IVPS) PipelineAttr(grp int32) (Dict, error) {
	return v.getRecord("AXCL_IVPS_GetPipelineAttr", v.fn.GetPipelineAttr, grp, PipelineAttr)
}

// StartGrp starts group grp.
func (v *IVPS) StartGrp(grp int32) error {
	return v.callGrp("AXCL_IVPS_StartGrp", v.fn.StartGrp, grp)
}

// StopGrp stops group grp.
func (v *IVPS) StopGrp(grp int32) error {
	return v.callGrp("AXCL_IVPS_StopGrp", v.fn.StopGrp, grp)
}

// EnableChn enables an output channel.
func (v *IVPS) EnableChn(grp, chn int32) error {
	const name = "AXCL_IVPS_EnableChn"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.EnableChn != nil); err != nil {
		return err
	}
	return v.b.check(name, v.fn.EnableChn(grp, chn))
}

// DisableChn disables an output channel.
func (v *IVPS) DisableChn(grp, chn int32) error {
	const name = "AXCL_IVPS_DisableChn"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.DisableChn != nil); err != nil {
		return err
	}
	return v.b.check(name, v.fn.DisableChn(grp, chn))
}

// SendFrame queues an AX_VIDEO_FRAME_T dict to group grp, waiting up to
// timeoutMs (-1 blocks).
func (v *IVPS) SendFrame(grp int32, frame Dict, timeoutMs int32) error {
	const name = "AXCL_IVPS_SendFrame"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.SendFrame != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VideoFrame, frame)
	if err != nil {
		return err
	}
	ret := v.fn.SendFrame(grp, r.Pointer(), timeoutMs)
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// ChnFrame takes a processed frame from an output channel. The frame must
// be returned with ReleaseChnFrame.
func (v *IVPS) ChnFrame(grp, chn, timeoutMs int32) (Dict, error) {
	const name = "AXCL_IVPS_GetChnFrame"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.GetChnFrame != nil); err != nil {
		return nil, err
	}
	r := NewRecord(VideoFrame)
	ret := v.fn.GetChnFrame(grp, chn, r.Pointer(), timeoutMs)
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// ReleaseChnFrame returns a frame obtained from ChnFrame.
func (v *IVPS) ReleaseChnFrame(grp, chn int32, frame Dict) error {
	const name = "AXCL_IVPS_ReleaseChnFrame"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.ReleaseChnFrame != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VideoFrame, frame)
	if err != nil {
		return err
	}
	ret := v.fn.ReleaseChnFrame(grp, chn, r.Pointer())
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// SetGrpCrop sets the input crop of a group from an AX_IVPS_CROP_INFO_T dict.
func (v *IVPS) SetGrpCrop(grp int32, crop Dict) error {
	return v.setRecord("AXCL_IVPS_SetGrpCrop", v.fn.SetGrpCrop, grp, CropInfo, crop)
}

// GrpCrop reads the input crop of a group.
func (v *IVPS) GrpCrop(grp int32) (Dict, error) {
	return v.getRecord("AXCL_IVPS_GetGrpCrop", v.fn.GetGrpCrop, grp, CropInfo)
}

// EngineDutyCycle reads the load of every engine.
func (v *IVPS) EngineDutyCycle() (Dict, error) {
	const name = "AXCL_IVPS_GetEngineDutyCycle"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.GetEngineDuty != nil); err != nil {
		return nil, err
	}
	r := NewRecord(IVPSDutyCycle)
	ret := v.fn.GetEngineDuty(r.Pointer())
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// RgnCreate allocates an overlay region handle.
func (v *IVPS) RgnCreate() (int32, error) {
	const name = "AXCL_IVPS_RGN_Create"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.RgnCreate != nil); err != nil {
		return InvalidRegion, err
	}
	h := v.fn.RgnCreate()
	if h == InvalidRegion {
		return InvalidRegion, &NativeError{Func: name, Ret: h}
	}
	return h, nil
}

// RgnDestroy frees a region handle.
func (v *IVPS) RgnDestroy(region int32) error {
	return v.callGrp("AXCL_IVPS_RGN_Destroy", v.fn.RgnDestroy, region)
}

// RgnAttach attaches a region to a filter of a group.
func (v *IVPS) RgnAttach(region, grp, filter int32) error {
	const name = "AXCL_IVPS_RGN_AttachToFilter"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.RgnAttachFilter != nil); err != nil {
		return err
	}
	return v.b.check(name, v.fn.RgnAttachFilter(region, grp, filter))
}

// RgnDetach detaches a region from a filter of a group.
func (v *IVPS) RgnDetach(region, grp, filter int32) error {
	const name = "AXCL_IVPS_RGN_DetachFromFilter"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.RgnDetachFilter != nil); err != nil {
		return err
	}
	return v.b.check(name, v.fn.RgnDetachFilter(region, grp, filter))
}

// RgnUpdate draws the given AX_IVPS_RGN_DISP_T dicts with the channel
// attributes chnAttr. The region count is taken from len(disps).
func (v *IVPS) RgnUpdate(region int32, chnAttr Dict, disps []Dict) error {
	return v.setRecord("AXCL_IVPS_RGN_Update", v.fn.RgnUpdate, region, RgnDispGroup, Dict{
		"channel_attr":       chnAttr,
		"display_attr_array": disps,
	})
}

// GdcWorkCreate allocates a standalone GDC job handle.
func (v *IVPS) GdcWorkCreate() (int32, error) {
	const name = "AXCL_IVPS_GdcWorkCreate"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.GdcWorkCreate != nil); err != nil {
		return 0, err
	}
	h := new(int32)
	if err := v.b.check(name, v.fn.GdcWorkCreate(unsafe.Pointer(h))); err != nil {
		return 0, err
	}
	return *h, nil
}

// GdcWorkAttrSet configures a GDC job from an AX_IVPS_GDC_ATTR_T dict.
func (v *IVPS) GdcWorkAttrSet(handle int32, attr Dict) error {
	return v.setRecord("AXCL_IVPS_GdcWorkAttrSet", v.fn.GdcWorkAttrSet, handle, GDCAttr, attr)
}

// GdcWorkRun runs a GDC job from src into dst and returns the filled dst.
func (v *IVPS) GdcWorkRun(handle int32, src, dst Dict) (Dict, error) {
	const name = "AXCL_IVPS_GdcWorkRun"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.GdcWorkRun != nil); err != nil {
		return nil, err
	}
	rs, err := v.b.encode(name, VideoFrame, src)
	if err != nil {
		return nil, err
	}
	rd, err := v.b.encode(name, VideoFrame, dst)
	if err != nil {
		return nil, err
	}
	ret := v.fn.GdcWorkRun(handle, rs.Pointer(), rd.Pointer())
	runtime.KeepAlive(rs)
	runtime.KeepAlive(rd)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, rd)
}

// GdcWorkDestroy frees a GDC job handle.
func (v *IVPS) GdcWorkDestroy(handle int32) error {
	return v.callGrp("AXCL_IVPS_GdcWorkDestroy", v.fn.GdcWorkDestroy, handle)
}

// CropResizeTdp crops and scales src into dst on the TDP engine and
// returns the filled dst.
func (v *IVPS) CropResizeTdp(src, dst, aspect Dict) (Dict, error) {
	const name = "AXCL_IVPS_CropResizeTdp"
	if err := v.b.ready(SubsystemIVPS, name, v.fn.CropResizeTdp != nil); err != nil {
		return nil, err
	}
	rs, err := v.b.encode(name, VideoFrame, src)
	if err != nil {
		return nil, err
	}
	rd, err := v.b.encode(name, VideoFrame, dst)
	if err != nil {
		return nil, err
	}
	ra, err := v.b.encode(name, AspectRatio, aspect)
	if err != nil {
		return nil, err
	}
	ret := v.fn.CropResizeTdp(rs.Pointer(), rd.Pointer(), ra.Pointer())
	runtime.KeepAlive(rs)
	runtime.KeepAlive(rd)
	runtime.KeepAlive(ra)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, rd)
}
