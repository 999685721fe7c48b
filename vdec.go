package axcl

import (
	"fmt"
	"runtime"
	"unsafe"
)

type vdecFuncs struct {
	Init            func(attr unsafe.Pointer) int32
	Deinit          func() int32
	CreateGrp       func(grp int32, attr unsafe.Pointer) int32
	DestroyGrp      func(grp int32) int32
	StartRecvStream func(grp int32, param unsafe.Pointer) int32
	StopRecvStream  func(grp int32) int32
	ResetGrp        func(grp int32) int32
	SetGrpParam     func(grp int32, param unsafe.Pointer) int32
	GetGrpParam     func(grp int32, param unsafe.Pointer) int32
	SendStream      func(grp int32, stream unsafe.Pointer, timeoutMs int32) int32
	GetChnFrame     func(grp, chn int32, frame unsafe.Pointer, timeoutMs int32) int32
	ReleaseChnFrame func(grp, chn int32, frame unsafe.Pointer) int32
	SetChnAttr      func(grp, chn int32, attr unsafe.Pointer) int32
	GetChnAttr      func(grp, chn int32, attr unsafe.Pointer) int32
	EnableChn       func(grp, chn int32) int32
	DisableChn      func(grp, chn int32) int32
}

func (f *vdecFuncs) symbols() []symbol {
	return []symbol{
		{"AXCL_VDEC_Init", &f.Init},
		{"AXCL_VDEC_Deinit", &f.Deinit},
		{"AXCL_VDEC_CreateGrp", &f.CreateGrp},
		{"AXCL_VDEC_DestroyGrp", &f.DestroyGrp},
		{"AXCL_VDEC_StartRecvStream", &f.StartRecvStream},
		{"AXCL_VDEC_StopRecvStream", &f.StopRecvStream},
		{"AXCL_VDEC_ResetGrp", &f.ResetGrp},
		{"AXCL_VDEC_SetGrpParam", &f.SetGrpParam},
		{"AXCL_VDEC_GetGrpParam", &f.GetGrpParam},
		{"AXCL_VDEC_SendStream", &f.SendStream},
		{"AXCL_VDEC_GetChnFrame", &f.GetChnFrame},
		{"AXCL_VDEC_ReleaseChnFrame", &f.ReleaseChnFrame},
		{"AXCL_VDEC_SetChnAttr", &f.SetChnAttr},
		{"AXCL_VDEC_GetChnAttr", &f.GetChnAttr},
		{"AXCL_VDEC_EnableChn", &f.EnableChn},
		{"AXCL_VDEC_DisableChn", &f.DisableChn},
	}
}

// VDEC exposes the video decoder (libaxcl_vdec).
type VDEC struct {
	b  *Binding
	fn vdecFuncs
}

func (v *VDEC) grpCall(name string, fn func(int32) int32, grp int32) error {
	if err := v.b.ready(SubsystemVDEC, name, fn != nil); err != nil {
		return err
	}
	return v.b.check(name, fn(grp))
}

func (v *VDEC) chnCall(name string, fn func(int32, int32) int32, grp, chn int32) error {
	if err := v.b.ready(SubsystemVDEC, name, fn != nil); err != nil {
		return err
	}
	return v.b.check(name, fn(grp, chn))
}

// Init initializes the decoder module from an AX_VDEC_MOD_ATTR_T dict.
func (v *VDEC) Init(attr Dict) error {
	const name = "AXCL_VDEC_Init"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.Init != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VdecModAttr, attr)
	if err != nil {
		return err
	}
	ret := v.fn.Init(r.Pointer())
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// Deinit releases the decoder module.
func (v *VDEC) Deinit() error {
	const name = "AXCL_VDEC_Deinit"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.Deinit != nil); err != nil {
		return err
	}
	return v.b.check(name, v.fn.Deinit())
}

func (v *VDEC) setGrp(name string, fn func(int32, unsafe.Pointer) int32, grp int32, t *Type, d Dict) error {
	if err := v.b.ready(SubsystemVDEC, name, fn != nil); err != nil {
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

// CreateGrp creates decoder group grp from an AX_VDEC_GRP_ATTR_T dict.
func (v *VDEC) CreateGrp(grp int32, attr Dict) error {
	return v.setGrp("AXCL_VDEC_CreateGrp", v.fn.CreateGrp, grp, VdecGrpAttr, attr)
}

// DestroyGrp destroys decoder group grp.
func (v *VDEC) DestroyGrp(grp int32) error {
	return v.grpCall("AXCL_VDEC_DestroyGrp", v.fn.DestroyGrp, grp)
}

// StartRecvStream starts a group. recvPicNum is the number of pictures to
// decode; -1 decodes until stopped.
func (v *VDEC) StartRecvStream(grp, recvPicNum int32) error {
	return v.setGrp("AXCL_VDEC_StartRecvStream", v.fn.StartRecvStream, grp, VdecRecvPicParam,
		Dict{"recv_pic_num": recvPicNum})
}

// StopRecvStream stops a group.
func (v *VDEC) StopRecvStream(grp int32) error {
	return v.grpCall("AXCL_VDEC_StopRecvStream", v.fn.StopRecvStream, grp)
}

// ResetGrp drops the queued streams and frames of a stopped group.
func (v *VDEC) ResetGrp(grp int32) error {
	return v.grpCall("AXCL_VDEC_ResetGrp", v.fn.ResetGrp, grp)
}

// SetGrpParam sets the AX_VDEC_GRP_PARAM_T of a group.
func (v *VDEC) SetGrpParam(grp int32, param Dict) error {
	return v.setGrp("AXCL_VDEC_SetGrpParam", v.fn.SetGrpParam, grp, VdecGrpParam, param)
}

// GrpParam reads the AX_VDEC_GRP_PARAM_T of a group.
func (v *VDEC) GrpParam(grp int32) (Dict, error) {
	const name = "AXCL_VDEC_GetGrpParam"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.GetGrpParam != nil); err != nil {
		return nil, err
	}
	r := NewRecord(VdecGrpParam)
	ret := v.fn.GetGrpParam(grp, r.Pointer())
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// SendStream queues an AX_VDEC_STREAM_T dict. The memory at its addr must
// stay valid until SendStream returns.
func (v *VDEC) SendStream(grp int32, stream Dict, timeoutMs int32) error {
	const name = "AXCL_VDEC_SendStream"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.SendStream != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VdecStream, stream)
	if err != nil {
		return err
	}
	ret := v.fn.SendStream(grp, r.Pointer(), timeoutMs)
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// SendPacket queues an assembled access unit.
func (v *VDEC) SendPacket(grp int32, p *StreamPacket, timeoutMs int32) error {
	if p == nil {
		return fmt.Errorf("AXCL_VDEC_SendStream: %w: nil packet", ErrTypeConversion)
	}
	err := v.SendStream(grp, p.Dict(), timeoutMs)
	runtime.KeepAlive(p.Data)
	return err
}

// ChnFrame takes a decoded AX_VIDEO_FRAME_INFO_T from a channel. The frame
// must be returned with ReleaseChnFrame.
func (v *VDEC) ChnFrame(grp, chn, timeoutMs int32) (Dict, error) {
	const name = "AXCL_VDEC_GetChnFrame"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.GetChnFrame != nil); err != nil {
		return nil, err
	}
	r := NewRecord(VideoFrameInfo)
	ret := v.fn.GetChnFrame(grp, chn, r.Pointer(), timeoutMs)
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// ReleaseChnFrame returns a frame obtained from ChnFrame.
func (v *VDEC) ReleaseChnFrame(grp, chn int32, frame Dict) error {
	const name = "AXCL_VDEC_ReleaseChnFrame"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.ReleaseChnFrame != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VideoFrameInfo, frame)
	if err != nil {
		return err
	}
	ret := v.fn.ReleaseChnFrame(grp, chn, r.Pointer())
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// SetChnAttr configures an output channel from an AX_VDEC_CHN_ATTR_T dict.
func (v *VDEC) SetChnAttr(grp, chn int32, attr Dict) error {
	const name = "AXCL_VDEC_SetChnAttr"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.SetChnAttr != nil); err != nil {
		return err
	}
	r, err := v.b.encode(name, VdecChnAttr, attr)
	if err != nil {
		return err
	}
	ret := v.fn.SetChnAttr(grp, chn, r.Pointer())
	runtime.KeepAlive(r)
	return v.b.check(name, ret)
}

// ChnAttr reads the configuration of an output channel.
func (v *VDEC) ChnAttr(grp, chn int32) (Dict, error) {
	const name = "AXCL_VDEC_GetChnAttr"
	if err := v.b.ready(SubsystemVDEC, name, v.fn.GetChnAttr != nil); err != nil {
		return nil, err
	}
	r := NewRecord(VdecChnAttr)
	ret := v.fn.GetChnAttr(grp, chn, r.Pointer())
	runtime.KeepAlive(r)
	if err := v.b.check(name, ret); err != nil {
		return nil, err
	}
	return v.b.decode(name, r)
}

// EnableChn enables an output channel.
func (v *VDEC) EnableChn(grp, chn int32) error {
	return v.chnCall("AXCL_VDEC_EnableChn", v.fn.EnableChn, grp, chn)
}

// DisableChn disables an output channel.
func (v *VDEC) DisableChn(grp, chn int32) error {
	return v.chnCall("AXCL_VDEC_DisableChn", v.fn.DisableChn, grp, chn)
}
