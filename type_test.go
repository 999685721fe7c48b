package axcl

import (
	"strings"
	"testing"
)

var testFrame = Struct("TEST_FRAME_T", []Field{
	{Name: "u32Width", Type: U32, Alias: "width"},
	{Name: "u32Height", Type: U32, Alias: "height"},
	{Name: "enFormat", Type: Enum, Alias: "format"},
	{Name: "stCompress", Type: Struct("TEST_COMPRESS_T", []Field{
		{Name: "enMode", Type: Enum, Alias: "mode"},
		{Name: "u32Level", Type: U32, Alias: "level"},
	}), Alias: "compress"},
})

func TestStructLayout(t *testing.T) {
	if testFrame.Size() != 20 {
		t.Errorf("Size = %d, want 20", testFrame.Size())
	}
	if testFrame.Align() != 4 {
		t.Errorf("Align = %d, want 4", testFrame.Align())
	}
	for _, tc := range []struct {
		native string
		offset uintptr
	}{
		{"u32Width", 0},
		{"u32Height", 4},
		{"enFormat", 8},
		{"stCompress", 12},
	} {
		f, ok := testFrame.FieldByName(tc.native)
		if !ok {
			t.Fatalf("field %s missing", tc.native)
		}
		if f.Offset != tc.offset {
			t.Errorf("%s offset = %d, want %d", tc.native, f.Offset, tc.offset)
		}
	}
}

func TestPaddingAndTailAlignment(t *testing.T) {
	typ := Struct("PAD_T", []Field{
		{Name: "a", Type: U8},
		{Name: "b", Type: U64},
		{Name: "c", Type: U16},
	})
	b, _ := typ.FieldByName("b")
	c, _ := typ.FieldByName("c")
	if b.Offset != 8 || c.Offset != 16 {
		t.Errorf("offsets b=%d c=%d, want 8 16", b.Offset, c.Offset)
	}
	if typ.Size() != 24 {
		t.Errorf("Size = %d, want 24", typ.Size())
	}
}

func TestSDKRecordSizes(t *testing.T) {
	tests := []struct {
		typ  *Type
		size uintptr
	}{
		{IVPSRect, 8},
		{ModInfo, 12},
		{LinkDest, 4 + 6*12},
		{FrameCompressInfo, 8},
		{VideoFrame, 232},
		{VideoFrameInfo, 240},
		{MemoryAddr, 16},
		{VdecStream, 56},
		{IVPSDutyCycle, 56},
		{WarpMode, 4},
		{RgnPolygonU, 40},
		{AudioFrame, 56},
		{AudioFrameInfo, 64},
		{MapUserAttr, 32},
		{DewarpAttr, 144},
		{AlphaLUT, 16},
		{ScaleRange, 8},
		{ScaleCoefLevel, 16},
		{VdecDecodeError, 32},
		{VdecGrpStatus, 80},
		{VdecUserData, 112},
		{VdecGrpChnSet, 48},
		{VdecGrpSetInfo, 8 + VdecMaxGrp*48},
		{VdecDecOneFrm, 296},
		{VdecStreamBufInfo, 40},
		{VdecVuiAspectRatio, 8},
		{VdecVuiTimeInfo, 20},
		{VdecVuiVideoSignal, 7},
		{VdecVuiBitstreamRestric, 1},
		{VdecVuiParam, 36},
		{VdecUsrPic, 736},
		{VdecBitstreamInfo, 20},
	}
	for _, tt := range tests {
		if tt.typ.Size() != tt.size {
			t.Errorf("%s size = %d, want %d", tt.typ, tt.typ.Size(), tt.size)
		}
	}
}

func TestSDKRecordOffsets(t *testing.T) {
	tests := []struct {
		typ    *Type
		native string
		offset uintptr
	}{
		{AudioFrameInfo, "enModId", 56},
		{DewarpAttr, "nDstStride", 16},
		{DewarpAttr, "tPerspectiveAttr", 32},
		{DewarpAttr, "eDewarpType", 104},
		{DewarpAttr, "tMapUserAttr", 112},
		{AlphaLUT, "u64PhyAddr", 8},
		{VdecGrpStatus, "u32LeftPics", 12},
		{VdecGrpStatus, "bStartRecvStream", 24},
		{VdecGrpStatus, "stVdecDecErr", 48},
		{VdecUserData, "bValid", 100},
		{VdecUserData, "pu8Addr", 104},
		{VdecGrpChnSet, "u64ChnFrameNum", 24},
		{VdecGrpSetInfo, "stChnSet", 8},
		{VdecDecOneFrm, "stFrame", 56},
		{VdecDecOneFrm, "enImgFormat", 292},
		{VdecStreamBufInfo, "writeOffset", 32},
		{VdecVuiTimeInfo, "num_units_in_tick", 4},
		{VdecVuiTimeInfo, "num_ticks_poc_diff_one_minus1", 16},
		{VdecVuiParam, "stVuiTimeInfo", 8},
		{VdecVuiParam, "stVuiVideoSignal", 28},
		{VdecVuiParam, "stVuiBitstreamRestric", 35},
		{VdecUsrPic, "bInstant", 720},
		{VdecUsrPic, "bEnable", 724},
	}
	for _, tt := range tests {
		f, ok := tt.typ.FieldByName(tt.native)
		if !ok {
			t.Errorf("%s has no field %s", tt.typ, tt.native)
			continue
		}
		if f.Offset != tt.offset {
			t.Errorf("%s.%s offset = %d, want %d", tt.typ, tt.native, f.Offset, tt.offset)
		}
	}
}

func TestVideoFrameOffsets(t *testing.T) {
	for native, want := range map[string]uintptr{
		"stCompressInfo": 16,
		"u32PicStride":   32,
		"u64PhyAddr":     56,
		"u32BlkId":       164,
		"s16CropX":       176,
		"u32TimeRef":     184,
		"u64PTS":         192,
		"u32FrameSize":   228,
	} {
		f, ok := VideoFrame.FieldByName(native)
		if !ok {
			t.Fatalf("field %s missing", native)
		}
		if f.Offset != want {
			t.Errorf("%s offset = %d, want %d", native, f.Offset, want)
		}
	}
}

func TestUnionLayout(t *testing.T) {
	// The map-user member carries a pointer, so the union is 8-aligned.
	if UnionGDCAttr.Align() != 8 {
		t.Errorf("UnionGDCAttr align = %d, want 8", UnionGDCAttr.Align())
	}
	if UnionGDCAttr.Size() < FisheyeAttr.Size() || UnionGDCAttr.Size() < MapUserAttr.Size() {
		t.Errorf("UnionGDCAttr size %d smaller than a member", UnionGDCAttr.Size())
	}
	u, _ := GDCAttr.FieldByName("tUnionGdcAttr")
	if u.Offset != 8 {
		t.Errorf("tUnionGdcAttr offset = %d, want 8", u.Offset)
	}
	for i := 0; i < UnionGDCAttr.NumField(); i++ {
		if off := UnionGDCAttr.Field(i).Offset; off != 0 {
			t.Errorf("member %d offset = %d, want 0", i, off)
		}
	}
}

func TestArrayAndChars(t *testing.T) {
	a := Array(Array(U16, 3), 2)
	if a.Size() != 12 || a.Align() != 2 || a.Len() != 2 || a.Elem().Len() != 3 {
		t.Errorf("nested array: size=%d align=%d len=%d", a.Size(), a.Align(), a.Len())
	}
	c := Chars(32)
	if c.Size() != 32 || c.Align() != 1 || c.Kind() != KindChars {
		t.Errorf("chars: size=%d align=%d kind=%s", c.Size(), c.Align(), c.Kind())
	}
}

func TestVariantLookup(t *testing.T) {
	name, inactive, ok := RgnDispU.Variant(RegionRect)
	if !ok || inactive || name != "tPolygon" {
		t.Errorf("Variant(rect) = %q %v %v", name, inactive, ok)
	}
	_, inactive, ok = UnionFilterCfg.Variant(EngineVPP)
	if !ok || !inactive {
		t.Errorf("Variant(vpp) inactive=%v ok=%v, want true true", inactive, ok)
	}
	if _, _, ok := UnionGDCAttr.Variant(99); ok {
		t.Error("Variant(99) should not resolve")
	}
	got := RgnDispU.Values("tPolygon")
	if len(got) != 2 || got[0] != RegionRect || got[1] != RegionPolygon {
		t.Errorf("Values(tPolygon) = %v", got)
	}
	if d, ok := RgnDisp.Discriminant("uDisp"); !ok || d != "eType" {
		t.Errorf("Discriminant(uDisp) = %q %v", d, ok)
	}
	if WarpMode.Mapped() {
		t.Error("WarpMode should be untagged")
	}
}

func TestMalformedDeclarationsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"empty union", func() { Union("U", nil) }},
		{"unknown variant", func() {
			Union("U", []Field{{Name: "a", Type: U32}}, SelectBy(map[int64]string{1: "b"}))
		}},
		{"mapped and inactive", func() {
			Union("U", []Field{{Name: "a", Type: U32}}, SelectBy(map[int64]string{1: "a"}), Inactive(1))
		}},
		{"discriminate non-union", func() {
			Struct("S", []Field{{Name: "a", Type: U32}}, DiscriminateBy("a", "b"))
		}},
		{"count of scalar", func() {
			Struct("S", []Field{{Name: "n", Type: U32, CountOf: "a"}, {Name: "a", Type: U32}})
		}},
		{"duplicate field", func() {
			Struct("S", []Field{{Name: "a", Type: U32}, {Name: "a", Type: U8}})
		}},
		{"duplicate alias", func() {
			Struct("S", []Field{{Name: "a", Type: U32, Alias: "x"}, {Name: "b", Type: U8, Alias: "x"}})
		}},
		{"zero array", func() { Array(U8, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestLayoutRows(t *testing.T) {
	rows := RgnDispGroup.Layout()
	find := func(path string) (LayoutRow, bool) {
		for _, r := range rows {
			if r.Path == path {
				return r, true
			}
		}
		return LayoutRow{}, false
	}

	r, ok := find("display_attr_array[0].display.polygon_attr.rgn_polygon.points")
	if !ok {
		t.Fatal("nested union path missing from layout")
	}
	if !strings.HasSuffix(r.Native, "tPolygon.uRgnPolygon.tPTs") {
		t.Errorf("native path = %q", r.Native)
	}
	if r.Kind != KindArray {
		t.Errorf("kind = %s, want array", r.Kind)
	}

	line, _ := find("display_attr_array[0].display.line_attr")
	poly, _ := find("display_attr_array[0].display.polygon_attr")
	if line.Offset != poly.Offset {
		t.Errorf("union members at %d and %d, want shared offset", line.Offset, poly.Offset)
	}
}
