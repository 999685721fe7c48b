package axcl

import (
	"bytes"
	"testing"

	"github.com/pion/rtp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rtpPacket(ts uint32, marker bool, payload ...byte) *rtp.Packet {
	return &rtp.Packet{
		Header:  rtp.Header{Version: 2, PayloadType: 96, Timestamp: ts, Marker: marker},
		Payload: payload,
	}
}

func TestAssembleSingleNAL(t *testing.T) {
	a := NewStreamAssembler()

	// SPS then IDR slice, marker on the slice
	out, err := a.Push(rtpPacket(3000, false, 0x67, 0x42, 0x00))
	require.NoError(t, err)
	assert.Nil(t, out)

	out, err = a.Push(rtpPacket(3000, true, 0x65, 0x88, 0x84))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []byte{0, 0, 0, 1, 0x67, 0x42, 0x00, 0, 0, 0, 1, 0x65, 0x88, 0x84}, out.Data)
	assert.Equal(t, uint64(3000), out.PTS)
	assert.True(t, out.Key)

	out, err = a.Push(rtpPacket(6000, true, 0x41, 0x9a))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.Key)
	assert.Equal(t, []byte{0, 0, 0, 1, 0x41, 0x9a}, out.Data)
}

func TestAssembleSTAPA(t *testing.T) {
	a := NewStreamAssembler()
	payload := []byte{
		0x18,
		0x00, 0x02, 0x67, 0x42,
		0x00, 0x02, 0x68, 0xce,
	}
	out, err := a.Push(rtpPacket(90, true, payload...))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []byte{0, 0, 0, 1, 0x67, 0x42, 0, 0, 0, 1, 0x68, 0xce}, out.Data)
	assert.False(t, out.Key)
}

func TestAssembleFUA(t *testing.T) {
	a := NewStreamAssembler()

	// IDR (nri 3) split in three fragments
	_, err := a.Push(rtpPacket(90, false, 0x7c, 0x85, 0x01, 0x02))
	require.NoError(t, err)
	_, err = a.Push(rtpPacket(90, false, 0x7c, 0x05, 0x03))
	require.NoError(t, err)
	out, err := a.Push(rtpPacket(90, true, 0x7c, 0x45, 0x04))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []byte{0, 0, 0, 1, 0x65, 0x01, 0x02, 0x03, 0x04}, out.Data)
	assert.True(t, out.Key)
}

func TestAssembleFUAWithoutStart(t *testing.T) {
	a := NewStreamAssembler()
	out, err := a.Push(rtpPacket(90, true, 0x7c, 0x45, 0x04))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestTimestampChangeDropsPartialUnit(t *testing.T) {
	a := NewStreamAssembler()
	_, err := a.Push(rtpPacket(90, false, 0x7c, 0x85, 0x01))
	require.NoError(t, err)

	out, err := a.Push(rtpPacket(180, true, 0x41, 0x01))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []byte{0, 0, 0, 1, 0x41, 0x01}, out.Data)
	assert.False(t, out.Key)
}

func TestAssemblerErrors(t *testing.T) {
	a := NewStreamAssembler()
	_, err := a.Push(rtpPacket(90, true, 0x7c))
	assert.ErrorIs(t, err, errShortFUA)

	_, err = a.Push(rtpPacket(90, true, 0x19, 0x00))
	assert.EqualError(t, err, "unsupported NAL type: 25")

	out, err := a.Push(rtpPacket(90, true))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestPushBytes(t *testing.T) {
	raw, err := rtpPacket(4500, true, 0x65, 0x01).Marshal()
	require.NoError(t, err)

	a := NewStreamAssembler()
	out, err := a.PushBytes(raw)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, uint64(4500), out.PTS)

	_, err = a.PushBytes([]byte{0x80})
	assert.Error(t, err)
}

func TestAssemblerReset(t *testing.T) {
	a := NewStreamAssembler()
	_, err := a.Push(rtpPacket(90, false, 0x67, 0x42))
	require.NoError(t, err)
	a.Reset()

	out, err := a.Push(rtpPacket(90, true, 0x41, 0x01))
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, bytes.Contains(out.Data, []byte{0x67, 0x42}))
}

func TestStreamPacketDict(t *testing.T) {
	p := &StreamPacket{Data: []byte{0, 0, 0, 1, 0x65}, PTS: 42}
	rec, err := ToRecord(VdecStream, p.Dict())
	require.NoError(t, err)

	d, err := FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), d["pts"])
	assert.Equal(t, true, d["end_of_frame"])
	assert.Equal(t, false, d["end_of_stream"])
	assert.Equal(t, int64(5), d["stream_pack_len"])
	assert.Equal(t, AddrOf(p.Data), d["addr"])

	eos := EndOfStreamPacket().Dict()
	assert.Equal(t, true, eos["end_of_stream"])
	assert.Equal(t, Addr(0), eos["addr"])
}
