package axcl

import "fmt"

// ModID identifies the native module that raised an error or owns a link.
type ModID uint8

const (
	ModISP   ModID = 0x01
	ModCE    ModID = 0x02
	ModVO    ModID = 0x03
	ModVDSP  ModID = 0x04
	ModEFUSE ModID = 0x05
	ModNPU   ModID = 0x06
	ModVENC  ModID = 0x07
	ModVDEC  ModID = 0x08
	ModJENC  ModID = 0x09
	ModJDEC  ModID = 0x0a
	ModSYS   ModID = 0x0b
	ModAENC  ModID = 0x0c
	ModIVPS  ModID = 0x0d
	ModMIPI  ModID = 0x0e
	ModADEC  ModID = 0x0f
	ModDMA   ModID = 0x10
	ModVIN   ModID = 0x11
	ModUSER  ModID = 0x12
	ModIVE   ModID = 0x15
	ModAXCL  ModID = 0x30
)

var modNames = map[ModID]string{
	ModISP: "ISP", ModCE: "CE", ModVO: "VO", ModVDSP: "VDSP", ModEFUSE: "EFUSE",
	ModNPU: "NPU", ModVENC: "VENC", ModVDEC: "VDEC", ModJENC: "JENC", ModJDEC: "JDEC",
	ModSYS: "SYS", ModAENC: "AENC", ModIVPS: "IVPS", ModMIPI: "MIPI", ModADEC: "ADEC",
	ModDMA: "DMA", ModVIN: "VIN", ModUSER: "USER", ModIVE: "IVE", ModAXCL: "AXCL",
}

func (m ModID) String() string {
	if s, ok := modNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MOD(0x%02x)", uint8(m))
}

// ErrCode is the low byte of a native error code.
type ErrCode uint8

const (
	ErrCodeIllegalParam ErrCode = 0x0a
	ErrCodeNullPtr      ErrCode = 0x0b
	ErrCodeBadAddr      ErrCode = 0x0c
	ErrCodeSysNotReady  ErrCode = 0x10
	ErrCodeBusy         ErrCode = 0x11
	ErrCodeNotInit      ErrCode = 0x12
	ErrCodeNotConfig    ErrCode = 0x13
	ErrCodeNotSupport   ErrCode = 0x14
	ErrCodeNotPerm      ErrCode = 0x15
	ErrCodeExist        ErrCode = 0x16
	ErrCodeUnexist      ErrCode = 0x17
	ErrCodeNoMem        ErrCode = 0x18
	ErrCodeNoBuf        ErrCode = 0x19
	ErrCodeNotMatch     ErrCode = 0x1a
	ErrCodeBufEmpty     ErrCode = 0x20
	ErrCodeBufFull      ErrCode = 0x21
	ErrCodeQueueEmpty   ErrCode = 0x22
	ErrCodeQueueFull    ErrCode = 0x23
	ErrCodeTimedOut     ErrCode = 0x27
	ErrCodeFlowEnd      ErrCode = 0x28
	ErrCodeUnknown      ErrCode = 0x29
	ErrCodeOSFail       ErrCode = 0x30
)

var errCodeNames = map[ErrCode]string{
	ErrCodeIllegalParam: "illegal parameter",
	ErrCodeNullPtr:      "null pointer",
	ErrCodeBadAddr:      "bad address",
	ErrCodeSysNotReady:  "system not ready",
	ErrCodeBusy:         "busy",
	ErrCodeNotInit:      "not initialized",
	ErrCodeNotConfig:    "not configured",
	ErrCodeNotSupport:   "not supported",
	ErrCodeNotPerm:      "not permitted",
	ErrCodeExist:        "already exists",
	ErrCodeUnexist:      "does not exist",
	ErrCodeNoMem:        "out of memory",
	ErrCodeNoBuf:        "no buffer",
	ErrCodeNotMatch:     "mismatch",
	ErrCodeBufEmpty:     "buffer empty",
	ErrCodeBufFull:      "buffer full",
	ErrCodeQueueEmpty:   "queue empty",
	ErrCodeQueueFull:    "queue full",
	ErrCodeTimedOut:     "timed out",
	ErrCodeFlowEnd:      "end of flow",
	ErrCodeUnknown:      "unknown error",
	ErrCodeOSFail:       "os call failed",
}

func (e ErrCode) String() string {
	if s, ok := errCodeNames[e]; ok {
		return s
	}
	if e >= 0x01 && e <= 0x06 {
		return fmt.Sprintf("invalid id %d", uint8(e))
	}
	return fmt.Sprintf("code 0x%02x", uint8(e))
}

// DefErr builds a native error code: 0x80000000 | mod<<16 | sub<<8 | code.
func DefErr(mod ModID, sub uint8, code ErrCode) int32 {
	return int32(0x80000000 | uint32(mod)<<16 | uint32(sub)<<8 | uint32(code))
}

// NativeError is a non-zero return code of a native function.
type NativeError struct {
	Func string
	Ret  int32
}

// Module returns the module that raised the error.
func (e *NativeError) Module() ModID { return ModID(uint32(e.Ret) >> 16 & 0xff) }

// Sub returns the sub-module byte.
func (e *NativeError) Sub() uint8 { return uint8(uint32(e.Ret) >> 8) }

// Code returns the error id.
func (e *NativeError) Code() ErrCode { return ErrCode(uint32(e.Ret)) }

// Is matches another *NativeError by module and code, so callers can test
// with errors.Is(err, &NativeError{Ret: DefErr(ModIVPS, 0, ErrCodeTimedOut)}).
func (e *NativeError) Is(target error) bool {
	t, ok := target.(*NativeError)
	if !ok {
		return false
	}
	return t.Module() == e.Module() && t.Code() == e.Code()
}

func (e *NativeError) Error() string {
	if uint32(e.Ret)&0x80000000 == 0 {
		return fmt.Sprintf("%s: returned %d", e.Func, e.Ret)
	}
	return fmt.Sprintf("%s: %s: %s (0x%08x)", e.Func, e.Module(), e.Code(), uint32(e.Ret))
}

// checkRet converts a native return code into an error, nil on success.
func checkRet(fn string, ret int32) error {
	if ret == 0 {
		return nil
	}
	return &NativeError{Func: fn, Ret: ret}
}
