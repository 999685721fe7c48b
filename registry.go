package axcl

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// typeRegistry indexes record types by native name.
type typeRegistry struct {
	types map[string]*Type
	mu    sync.RWMutex
}

var globalTypeRegistry = &typeRegistry{types: make(map[string]*Type)}

// RegisterType makes t available to LookupType under its native name.
func RegisterType(t *Type) {
	globalTypeRegistry.mu.Lock()
	defer globalTypeRegistry.mu.Unlock()
	globalTypeRegistry.types[t.Name()] = t
}

// LookupType returns the registered type with the given native name. The
// match ignores case and an optional "_T" suffix.
func LookupType(name string) (*Type, error) {
	globalTypeRegistry.mu.RLock()
	defer globalTypeRegistry.mu.RUnlock()

	if t, ok := globalTypeRegistry.types[name]; ok {
		return t, nil
	}
	want := foldTypeName(name)
	for n, t := range globalTypeRegistry.types {
		if foldTypeName(n) == want {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown record type: %s", name)
}

func foldTypeName(s string) string {
	return strings.TrimSuffix(strings.ToUpper(s), "_T")
}

// Types returns every registered type sorted by name.
func Types() []*Type {
	globalTypeRegistry.mu.RLock()
	out := make([]*Type, 0, len(globalTypeRegistry.types))
	for _, t := range globalTypeRegistry.types {
		out = append(out, t)
	}
	globalTypeRegistry.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func init() {
	for _, t := range []*Type{
		FrameRateCtrl, FrameCompressInfo, VideoFrame, VideoFrameInfo, AudioFrame,
		AudioFrameInfo, ModInfo, LinkDest, MemoryAddr, OSDBmpAttr, Point, BgColor,
		ColorKey, BitColor, Overlay, PyraFrame, WarpMode,

		IVPSRect, IVPSPoint, IVPSPointNice, IVPSSize, FisheyeRgnAttr, FisheyeAttr,
		MapUserAttr, UnionGDCAttr, GDCAttr, PerspectiveAttr, LDCAttr, LDCV2Attr,
		UnionDewarpAttr, GDCCfg, IVPSPoolAttr, UserFrameRateCtrl, CropInfo,
		CornerRect, ScaleStep, AspectRatio, TDPCfg, UnionFilterCfg, IVPSFilter,
		PipelineAttr, IVPSGrpAttr, IVPSChnAttr, IVPSDutyCycle, RgnChnAttr,
		RgnLine, RgnPolygonU, RgnPolygon, RgnMosaic, RgnDispU, RgnDisp,
		RgnDispGroup, GDIAttr, CanvasInfo, DewarpAttr, AlphaLUT, ScaleRange,
		ScaleCoefLevel,

		VdecModAttr, VdecGrpAttr, VdecStream, VdecParamVideo, VdecGrpParam,
		VdecRecvPicParam, VdecFrameRateCtrl, VdecChnAttr, VdecDecodeError,
		VdecGrpStatus, VdecUserData, VdecGrpChnSet, VdecGrpSetInfo, VdecDecOneFrm,
		VdecStreamBufInfo, VdecVuiAspectRatio, VdecVuiTimeInfo, VdecVuiVideoSignal,
		VdecVuiBitstreamRestric, VdecVuiParam, VdecUsrPic, VdecBitstreamInfo,

		DeviceProperties, DeviceList, PoolConfig, PoolFloorplan,
	} {
		RegisterType(t)
	}
}
