package axcl

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripConcreteRecord(t *testing.T) {
	in := Dict{
		"width":  1920,
		"height": 1080,
		"format": 3,
		"compress": Dict{
			"mode":  2,
			"level": 4,
		},
	}
	rec, err := ToRecord(testFrame, in)
	require.NoError(t, err)
	require.Len(t, rec.Bytes(), 20)

	b := rec.Bytes()
	assert.Equal(t, uint32(1920), native.Uint32(b[0:]))
	assert.Equal(t, uint32(1080), native.Uint32(b[4:]))
	assert.Equal(t, uint32(4), native.Uint32(b[16:]))

	out, err := FromRecord(rec)
	require.NoError(t, err)
	want := Dict{
		"width":  int64(1920),
		"height": int64(1080),
		"format": int64(3),
		"compress": Dict{
			"mode":  int64(2),
			"level": int64(4),
		},
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("FromRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestNativeNamesAccepted(t *testing.T) {
	rec, err := ToRecord(IVPSRect, Dict{"nX": 5, "height": 7})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"x": int64(5), "y": int64(0), "width": int64(0), "height": int64(7)}, out)
}

func TestPublicKeyWinsOverNative(t *testing.T) {
	rec, err := ToRecord(IVPSRect, Dict{"x": 1, "nX": 2})
	require.NoError(t, err)
	assert.Equal(t, int16(1), int16(native.Uint16(rec.Bytes())))
}

func TestAbsentKeysKeepBytes(t *testing.T) {
	rec, err := ToRecord(IVPSRect, Dict{"x": 1, "y": 2, "width": 3, "height": 4})
	require.NoError(t, err)

	require.NoError(t, rec.Fill(Dict{"width": 30}))
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"x": int64(1), "y": int64(2), "width": int64(30), "height": int64(4)}, out)
}

func TestDefaultApplied(t *testing.T) {
	rec, err := ToRecord(VideoFrameInfo, Dict{"video_frame": Dict{"width": 64}})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, ModIDUser, out["mod_id"])

	rec, err = ToRecord(VideoFrameInfo, Dict{"mod_id": int64(ModIVPS)})
	require.NoError(t, err)
	out, err = FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(ModIVPS), out["mod_id"])
}

func TestCountCompanionFilled(t *testing.T) {
	rec, err := ToRecord(LinkDest, Dict{
		"dest_mod": []any{
			Dict{"mod_id": int64(ModIVPS), "grp_id": 1},
			Dict{"mod_id": int64(ModVDEC), "grp_id": 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(2), native.Uint32(rec.Bytes()))

	// An explicit count is kept as given.
	rec, err = ToRecord(LinkDest, Dict{"dest_num": 5, "dest_mod": []any{}})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), native.Uint32(rec.Bytes()))
}

func TestGrpSetInfoRoundTrip(t *testing.T) {
	rec, err := ToRecord(VdecGrpSetInfo, Dict{
		"chn_set": []any{
			Dict{"grp": 3, "chn_count": 1, "chn": []any{0}, "chn_frame_num": []any{uint64(7)}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), native.Uint32(rec.Bytes()))

	out, err := FromRecord(rec)
	require.NoError(t, err)
	set := out["chn_set"].([]any)[0].(Dict)
	assert.Equal(t, int64(3), set["grp"])
	assert.Equal(t, uint64(7), set["chn_frame_num"].([]any)[0])
}

func TestDecodedValueTypes(t *testing.T) {
	rec, err := ToRecord(VdecStream, Dict{
		"pts":             uint64(math.MaxUint64),
		"end_of_frame":    true,
		"end_of_stream":   0,
		"stream_pack_len": 1024,
		"addr":            Addr(0xdeadbeef),
	})
	require.NoError(t, err)

	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), out["pts"])
	assert.Equal(t, true, out["end_of_frame"])
	assert.Equal(t, false, out["end_of_stream"])
	assert.Equal(t, int64(1024), out["stream_pack_len"])
	assert.Equal(t, Addr(0xdeadbeef), out["addr"])

	rec, err = ToRecord(IVPSPointNice, Dict{"fX": 1.5, "fY": float32(-2.25)})
	require.NoError(t, err)
	out, err = FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"fX": 1.5, "fY": -2.25}, out)
}

func TestCharsRoundTrip(t *testing.T) {
	rec, err := ToRecord(PoolConfig, Dict{"partition_name": "anonymous", "pool_name": "vdec"})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, "anonymous", out["partition_name"])
	assert.Equal(t, "vdec", out["pool_name"])

	long := make([]byte, 33)
	for i := range long {
		long[i] = 'a'
	}
	_, err = ToRecord(PoolConfig, Dict{"pool_name": string(long)})
	assert.ErrorIs(t, err, ErrTypeConversion)
}

func TestConversionErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		in   Dict
		path string
	}{
		{"float for int", IVPSRect, Dict{"x": 1.5}, "x"},
		{"bool for int", IVPSRect, Dict{"width": true}, "width"},
		{"string for int", IVPSRect, Dict{"y": "1"}, "y"},
		{"u16 overflow", IVPSRect, Dict{"width": 70000}, "width"},
		{"u16 negative", IVPSRect, Dict{"height": -1}, "height"},
		{"s16 underflow", IVPSRect, Dict{"x": -40000}, "x"},
		{"bool out of range", VdecStream, Dict{"end_of_frame": 2}, "end_of_frame"},
		{"scalar for struct", VideoFrameInfo, Dict{"video_frame": 3}, "video_frame"},
		{"scalar for array", VideoFrame, Dict{"pic_stride": 3}, "pic_stride"},
		{"nested field", VideoFrameInfo, Dict{"video_frame": Dict{"compress_info": Dict{"compress_level": "x"}}},
			"video_frame.compress_info.compress_level"},
		{"array element", VideoFrame, Dict{"pic_stride": []any{1, -2}}, "pic_stride[1]"},
		{"string for chars only", PoolConfig, Dict{"pool_name": 7}, "pool_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToRecord(tt.typ, tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeConversion)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.path, fe.Path)
			assert.Equal(t, tt.typ.Name(), fe.Type)
		})
	}
}

func TestIntegerBounds(t *testing.T) {
	_, err := ToRecord(IVPSRect, Dict{"x": math.MaxInt16, "y": math.MinInt16, "width": math.MaxUint16})
	assert.NoError(t, err)

	_, err = ToRecord(MemoryAddr, Dict{"phy_addr": uint64(math.MaxUint64)})
	assert.NoError(t, err)

	_, err = ToRecord(MemoryAddr, Dict{"phy_addr": -1})
	assert.ErrorIs(t, err, ErrTypeConversion)
}

func TestFloatOverflowRejected(t *testing.T) {
	_, err := ToRecord(FrameRateCtrl, Dict{"src_frame_rate": math.MaxFloat64})
	assert.ErrorIs(t, err, ErrTypeConversion)

	_, err = ToRecord(FrameRateCtrl, Dict{"src_frame_rate": 30, "dst_frame_rate": 15.0})
	assert.NoError(t, err)
}

func TestJSONNumbers(t *testing.T) {
	var in Dict
	dec := json.NewDecoder(strings.NewReader(`{"x": -3, "width": 640, "nH": 480}`))
	dec.UseNumber()
	require.NoError(t, dec.Decode(&in))

	rec, err := ToRecord(IVPSRect, in)
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"x": int64(-3), "y": int64(0), "width": int64(640), "height": int64(480)}, out)
}

func TestGenericMapsAccepted(t *testing.T) {
	rec, err := ToRecord(VideoFrameInfo, Dict{
		"video_frame": map[any]any{"width": 16, "height": 8},
	})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	vf := out["video_frame"].(Dict)
	assert.Equal(t, int64(16), vf["width"])
	assert.Equal(t, int64(8), vf["height"])

	_, err = ToRecord(VideoFrameInfo, Dict{"video_frame": map[any]any{1: 2}})
	assert.ErrorIs(t, err, ErrTypeConversion)
}

func TestStrictKeys(t *testing.T) {
	in := Dict{"x": 1, "colour": "red"}

	_, err := ToRecord(IVPSRect, in)
	assert.NoError(t, err, "unknown keys are ignored by default")

	_, err = ToRecord(IVPSRect, in, WithStrictKeys())
	require.ErrorIs(t, err, ErrUnknownField)
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "colour", fe.Path)

	_, err = ToRecord(VideoFrameInfo, Dict{"video_frame": Dict{"bogus": 1}}, WithStrictKeys())
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "video_frame.bogus", fe.Path)
}

func TestNilValuesAreAbsent(t *testing.T) {
	rec, err := ToRecord(VideoFrameInfo, Dict{"video_frame": nil, "mod_id": nil})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, ModIDUser, out["mod_id"])
}

func TestRecordFromBytes(t *testing.T) {
	_, err := RecordFromBytes(IVPSRect, make([]byte, 7))
	assert.ErrorIs(t, err, ErrRecordSize)

	rec, err := RecordFromBytes(IVPSRect, []byte{0xff, 0xff, 2, 0, 3, 0, 4, 0})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, Dict{"x": int64(-1), "y": int64(2), "width": int64(3), "height": int64(4)}, out)

	c := rec.Clone()
	rec.Reset()
	assert.Equal(t, "ffff020003000400", c.Hex())
	assert.Equal(t, "0000000000000000", rec.Hex())
}

func TestRecordPointerAligned(t *testing.T) {
	rec := NewRecord(VideoFrame)
	assert.Zero(t, uintptr(rec.Pointer())%8)
	assert.Equal(t, uintptr(232), rec.Size())
	assert.Same(t, VideoFrame, rec.Type())
}

func TestRecordAddrInPointerField(t *testing.T) {
	frame := NewRecord(VideoFrame)
	require.NotZero(t, frame.Addr())
	assert.Equal(t, AddrOf(frame.Bytes()), frame.Addr())

	rec, err := ToRecord(MemoryAddr, Dict{"phy_addr": 0x1000, "vir_addr": frame.Addr()})
	require.NoError(t, err)
	out, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, frame.Addr(), out["vir_addr"])
}

func TestNonRecordRejected(t *testing.T) {
	_, err := ToRecord(U32, Dict{})
	assert.ErrorIs(t, err, ErrTypeConversion)
	_, err = FromRecord(NewRecord(Array(U8, 4)))
	assert.ErrorIs(t, err, ErrTypeConversion)
}
