package axcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fisheyeDict() Dict {
	return Dict{
		"enable_bg_color": true,
		"bg_color":        0x108080,
		"fisheye_rgn_attr": []any{
			Dict{"view_mode": 1, "nPan": 90, "out_rect": Dict{"width": 640, "height": 480}},
		},
	}
}

func TestUnionSelectedByDiscriminant(t *testing.T) {
	rec, err := ToRecord(GDCAttr, Dict{
		"gdc_type":       GDCTypeFisheye,
		"union_gdc_attr": Dict{"fisheye_attr": fisheyeDict()},
	})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	u, ok := out["union_gdc_attr"].(Dict)
	require.True(t, ok)
	require.Len(t, u, 1)

	fe := u["fisheye_attr"].(Dict)
	assert.Equal(t, true, fe["enable_bg_color"])
	assert.Equal(t, int64(0x108080), fe["bg_color"])
	assert.Equal(t, int64(1), fe["region_num"], "count filled from the region list")

	rgns := fe["fisheye_rgn_attr"].([]any)
	require.Len(t, rgns, IVPSMaxFisheyeRgn)
	first := rgns[0].(Dict)
	assert.Equal(t, int64(90), first["nPan"])
	assert.Equal(t, int64(640), first["out_rect"].(Dict)["width"])
}

func TestUnmappedDiscriminant(t *testing.T) {
	_, err := ToRecord(GDCAttr, Dict{
		"gdc_type":       99,
		"union_gdc_attr": Dict{"fisheye_attr": fisheyeDict()},
	})
	require.ErrorIs(t, err, ErrUnresolvedUnion)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "union_gdc_attr", fe.Path)

	// The same holds when reading a record the device filled in.
	rec := NewRecord(GDCAttr)
	native.PutUint32(rec.Bytes(), 99)
	_, err = FromRecord(rec)
	assert.ErrorIs(t, err, ErrUnresolvedUnion)
}

func TestInactiveDiscriminant(t *testing.T) {
	rec, err := ToRecord(GDCAttr, Dict{"gdc_type": GDCTypeBypass, "nSrcWidth": 1920})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.NotContains(t, out, "union_gdc_attr")
	assert.Equal(t, int64(1920), out["nSrcWidth"])

	_, err = ToRecord(GDCAttr, Dict{
		"gdc_type":       GDCTypeBypass,
		"union_gdc_attr": Dict{"fisheye_attr": fisheyeDict()},
	})
	assert.ErrorIs(t, err, ErrUnresolvedUnion)

	// An empty union dict is fine for an unused union.
	_, err = ToRecord(GDCAttr, Dict{"gdc_type": GDCTypeBypass, "union_gdc_attr": Dict{}})
	assert.NoError(t, err)
}

func TestOnlyActiveMemberDecoded(t *testing.T) {
	rec := NewRecord(GDCAttr)
	u, _ := GDCAttr.FieldByName("tUnionGdcAttr")
	b := rec.Bytes()[u.Offset : u.Offset+UnionGDCAttr.Size()]
	for i := range b {
		b[i] = 0xff
	}
	native.PutUint32(rec.Bytes(), GDCTypeMapUser)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	ud := out["union_gdc_attr"].(Dict)
	require.Len(t, ud, 1)
	mu := ud["map_user_attr"].(Dict)
	assert.Equal(t, int64(0xffff), mu["nMeshStartX"])
	assert.Equal(t, Addr(^uintptr(0)), mu["user_map_pointer"])
}

func TestConflictingMemberRejected(t *testing.T) {
	_, err := ToRecord(GDCAttr, Dict{
		"gdc_type":       GDCTypeFisheye,
		"union_gdc_attr": Dict{"map_user_attr": Dict{"nMeshWidth": 16}},
	})
	assert.ErrorIs(t, err, ErrUnresolvedUnion)
}

func TestDiscriminantFromGrandparent(t *testing.T) {
	points := []any{
		Dict{"nX": 1, "nY": 2},
		Dict{"nX": 3, "nY": 4},
		Dict{"nX": 5, "nY": 6},
	}
	rec, err := ToRecord(RgnDispGroup, Dict{
		"channel_attr": Dict{"z_index": 1, "format": FormatARGB8888},
		"display_attr_array": []any{
			Dict{
				"show": true,
				"type": RegionPolygon,
				"display": Dict{"polygon_attr": Dict{
					"point_number": 3,
					"rgn_polygon":  Dict{"points": points},
				}},
			},
			Dict{
				"show": 1,
				"type": RegionRect,
				"display": Dict{"polygon_attr": Dict{
					"rgn_polygon": Dict{"rect": Dict{"x": 10, "y": 20, "width": 30, "height": 40}},
					"solid_fill":  true,
				}},
			},
		},
	})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out["number_of_regions"])

	disps := out["display_attr_array"].([]any)
	require.Len(t, disps, IVPSMaxRgnDisp)

	poly := disps[0].(Dict)["display"].(Dict)["polygon_attr"].(Dict)
	gotPts := poly["rgn_polygon"].(Dict)["points"].([]any)
	require.Len(t, gotPts, IVPSMaxPolygonPts)
	want := []any{
		Dict{"nX": int64(1), "nY": int64(2)},
		Dict{"nX": int64(3), "nY": int64(4)},
		Dict{"nX": int64(5), "nY": int64(6)},
	}
	if diff := cmp.Diff(want, gotPts[:3]); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}

	rect := disps[1].(Dict)["display"].(Dict)["polygon_attr"].(Dict)["rgn_polygon"].(Dict)
	require.Len(t, rect, 1)
	assert.Equal(t, Dict{"x": int64(10), "y": int64(20), "width": int64(30), "height": int64(40)}, rect["rect"])

	// Unused slots decode as lines, the zero region type.
	_, isLine := disps[2].(Dict)["display"].(Dict)["line_attr"]
	assert.True(t, isLine)
}

func TestGrandparentMismatchReported(t *testing.T) {
	_, err := ToRecord(RgnDisp, Dict{
		"type": RegionRect,
		"display": Dict{"polygon_attr": Dict{
			"rgn_polygon": Dict{"points": []any{Dict{"nX": 1}}},
		}},
	})
	require.ErrorIs(t, err, ErrUnresolvedUnion)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "display.polygon_attr.rgn_polygon", fe.Path)
}

func TestNestedArrayUnionPaths(t *testing.T) {
	gdc := Dict{
		"engaged": true,
		"engine":  EngineGDC,
		"engine_cfg": Dict{"gdc_cfg": Dict{
			"dewarp_type": DewarpLDC,
			"dewarp_attr": Dict{"ldc_attr": Dict{"aspect_ratio_kept": true, "nXRatio": -12}},
		}},
	}
	in := Dict{
		"out_channel_num": 1,
		"filters":         []any{[]any{Dict{}, gdc}},
	}
	rec, err := ToRecord(PipelineAttr, in)
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	filters := out["filters"].([]any)
	require.Len(t, filters, IVPSMaxFilterChn)
	row := filters[0].([]any)
	require.Len(t, row, IVPSMaxFilterPerGrp)

	assert.NotContains(t, row[0].(Dict), "engine_cfg", "subsidiary engine carries no config")
	cfg := row[1].(Dict)["engine_cfg"].(Dict)["gdc_cfg"].(Dict)
	ldc := cfg["dewarp_attr"].(Dict)["ldc_attr"].(Dict)
	assert.Equal(t, true, ldc["aspect_ratio_kept"])
	assert.Equal(t, int64(-12), ldc["nXRatio"])

	gdc["engine"] = EngineTDP
	_, err = ToRecord(PipelineAttr, in)
	require.ErrorIs(t, err, ErrUnresolvedUnion)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "filters[0][1].engine_cfg", fe.Path)
}

func TestInactiveDewarp(t *testing.T) {
	rec, err := ToRecord(GDCCfg, Dict{
		"dewarp_type":      DewarpPerspective,
		"perspective_attr": Dict{"matrix": []any{1, 0, 0, 0, 1, 0, 0, 0, 1}},
	})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.NotContains(t, out, "dewarp_attr")
	m := out["perspective_attr"].(Dict)["matrix"].([]any)
	assert.Equal(t, int64(1), m[4])
}

func TestLDCWithPerspective(t *testing.T) {
	rec, err := ToRecord(GDCCfg, Dict{
		"dewarp_type":      DewarpLDCPerspective,
		"dewarp_attr":      Dict{"ldc_attr": Dict{"aspect_ratio_kept": true, "nXRatio": 80}},
		"perspective_attr": Dict{"matrix": []any{1, 0, 0, 0, 1, 0, 0, 0, 1}},
	})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	d := out["dewarp_attr"].(Dict)
	require.Len(t, d, 1)
	ldc := d["ldc_attr"].(Dict)
	assert.Equal(t, true, ldc["aspect_ratio_kept"])
	assert.Equal(t, int64(80), ldc["nXRatio"])
	assert.Equal(t, int64(1), out["perspective_attr"].(Dict)["matrix"].([]any)[8])

	// Members other than the LDC one still conflict with the discriminant.
	_, err = ToRecord(GDCCfg, Dict{
		"dewarp_type": DewarpLDCPerspective,
		"dewarp_attr": Dict{"ldc_v2_attr": Dict{"nXFocus": 1}},
	})
	assert.ErrorIs(t, err, ErrUnresolvedUnion)
}

func TestUntaggedUnion(t *testing.T) {
	rec, err := ToRecord(WarpMode, Dict{"eVdspMode": 3})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"eGdcMode": int64(3)}, out)

	_, err = ToRecord(WarpMode, Dict{"eVdspMode": 3, "eGdcMode": 1})
	assert.ErrorIs(t, err, ErrUnresolvedUnion)

	_, err = ToRecord(WarpMode, Dict{})
	assert.NoError(t, err)
}

func TestExternalDiscriminant(t *testing.T) {
	in := Dict{"map_user_attr": Dict{"nMeshWidth": 32, "mesh_num_horizontal": 4}}

	_, err := ToRecord(UnionGDCAttr, in)
	require.ErrorIs(t, err, ErrUnresolvedUnion)

	opt := WithDiscriminant("UNION_GDC_ATTR", GDCTypeMapUser)
	rec, err := ToRecord(UnionGDCAttr, in, opt)
	require.NoError(t, err)

	_, err = FromRecord(rec)
	assert.ErrorIs(t, err, ErrUnresolvedUnion)

	out, err := FromRecord(rec, opt)
	require.NoError(t, err)
	mu := out["map_user_attr"].(Dict)
	assert.Equal(t, int64(32), mu["nMeshWidth"])
	assert.Equal(t, int64(4), mu["mesh_num_horizontal"])

	out, err = FromRecord(rec, WithDiscriminant("UNION_GDC_ATTR", GDCTypeBypass))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExternalDiscriminantForField(t *testing.T) {
	holder := Struct("HOLDER_T", []Field{
		{Name: "nPad", Type: U32},
		{Name: "uAttr", Type: UnionGDCAttr, Alias: "attr"},
	})
	in := Dict{"attr": Dict{"fisheye_attr": Dict{"bg_color": 7}}}

	for _, key := range []string{"uAttr", "attr", "UNION_GDC_ATTR"} {
		rec, err := ToRecord(holder, in, WithDiscriminant(key, GDCTypeFisheye))
		require.NoError(t, err, key)
		out, err := FromRecord(rec, WithDiscriminant(key, GDCTypeFisheye))
		require.NoError(t, err, key)
		assert.Contains(t, out["attr"].(Dict), "fisheye_attr", key)
	}

	missing := Struct("MISSING_T", []Field{
		{Name: "uAttr", Type: UnionGDCAttr},
	}, DiscriminateBy("uAttr", "eKind"))
	_, err := ToRecord(missing, Dict{"uAttr": Dict{}})
	assert.ErrorIs(t, err, ErrUnresolvedUnion)
	_, err = ToRecord(missing, Dict{"uAttr": Dict{}}, WithDiscriminant("eKind", GDCTypeBypass))
	assert.NoError(t, err)
}

func TestDiscriminantWrittenBeforeUnion(t *testing.T) {
	// The discriminant is declared after the union it tags.
	late := Struct("LATE_T", []Field{
		{Name: "uAttr", Type: UnionGDCAttr, Alias: "attr"},
		{Name: "eType", Type: Enum, Alias: "type"},
	}, DiscriminateBy("uAttr", "eType"))

	rec, err := ToRecord(late, Dict{
		"attr": Dict{"map_user_attr": Dict{"nMeshHeight": 9}},
		"type": GDCTypeMapUser,
	})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(9), out["attr"].(Dict)["map_user_attr"].(Dict)["nMeshHeight"])
}
