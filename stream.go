package axcl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pion/rtp"
)

// H.264 NAL unit types the assembler inspects.
const (
	nalTypeIDR   = 5
	nalTypeSTAPA = 24
	nalTypeFUA   = 28
)

var errShortFUA = errors.New("FU-A packet too short")

// StreamPacket is one Annex-B access unit ready for the decoder.
type StreamPacket struct {
	Data []byte
	// PTS is the RTP timestamp of the access unit.
	PTS uint64
	Key bool
	// EndOfStream marks the final packet sent to a group.
	EndOfStream bool
}

// Dict returns the AX_VDEC_STREAM_T dict describing p. The address points
// into p.Data, which must stay reachable until the native call returns.
func (p *StreamPacket) Dict() Dict {
	return Dict{
		"pts":             p.PTS,
		"end_of_frame":    true,
		"end_of_stream":   p.EndOfStream,
		"stream_pack_len": uint32(len(p.Data)),
		"addr":            AddrOf(p.Data),
	}
}

// EndOfStreamPacket returns the packet that flushes a decoder group.
func EndOfStreamPacket() *StreamPacket {
	return &StreamPacket{EndOfStream: true}
}

// StreamAssembler reassembles H.264 access units from RTP packets.
type StreamAssembler struct {
	mu          sync.Mutex
	au          []byte
	fua         []byte
	fragmenting bool
	timestamp   uint32
	started     bool
	key         bool
}

// NewStreamAssembler returns an empty assembler.
func NewStreamAssembler() *StreamAssembler {
	return &StreamAssembler{}
}

// Push consumes one RTP packet and returns the access unit it completes,
// or nil while the unit is still partial. A timestamp change discards any
// partial unit.
func (a *StreamAssembler) Push(pkt *rtp.Packet) (*StreamPacket, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(pkt.Payload) == 0 {
		return nil, nil
	}
	if a.started && a.timestamp != pkt.Timestamp {
		a.reset()
	}
	a.timestamp = pkt.Timestamp
	a.started = true

	switch nal := pkt.Payload[0] & 0x1F; {
	case nal >= 1 && nal <= 23:
		a.appendNAL(pkt.Payload)
	case nal == nalTypeSTAPA:
		a.unpackSTAPA(pkt.Payload)
	case nal == nalTypeFUA:
		if err := a.unpackFUA(pkt.Payload); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported NAL type: %d", nal)
	}

	if !pkt.Marker || len(a.au) == 0 {
		return nil, nil
	}
	out := &StreamPacket{
		Data: append([]byte(nil), a.au...),
		PTS:  uint64(a.timestamp),
		Key:  a.key,
	}
	a.au = a.au[:0]
	a.key = false
	return out, nil
}

// PushBytes parses a raw RTP packet and calls Push.
func (a *StreamAssembler) PushBytes(data []byte) (*StreamPacket, error) {
	var pkt rtp.Packet
	if err := pkt.Unmarshal(data); err != nil {
		return nil, err
	}
	return a.Push(&pkt)
}

// Reset drops any partial access unit.
func (a *StreamAssembler) Reset() {
	a.mu.Lock()
	a.reset()
	a.started = false
	a.timestamp = 0
	a.mu.Unlock()
}

func (a *StreamAssembler) reset() {
	a.au = a.au[:0]
	a.fua = a.fua[:0]
	a.fragmenting = false
	a.key = false
}

func (a *StreamAssembler) appendNAL(nalu []byte) {
	if nalu[0]&0x1F == nalTypeIDR {
		a.key = true
	}
	a.au = append(a.au, 0, 0, 0, 1)
	a.au = append(a.au, nalu...)
}

func (a *StreamAssembler) unpackSTAPA(payload []byte) {
	for off := 1; off+2 <= len(payload); {
		n := int(binary.BigEndian.Uint16(payload[off:]))
		off += 2
		if n == 0 || off+n > len(payload) {
			return
		}
		a.appendNAL(payload[off : off+n])
		off += n
	}
}

func (a *StreamAssembler) unpackFUA(payload []byte) error {
	if len(payload) < 2 {
		return errShortFUA
	}
	indicator, header := payload[0], payload[1]
	if header&0x80 != 0 {
		a.fua = append(a.fua[:0], indicator&0xE0|header&0x1F)
		a.fragmenting = true
	}
	if !a.fragmenting {
		return nil
	}
	a.fua = append(a.fua, payload[2:]...)
	if header&0x40 != 0 {
		a.appendNAL(a.fua)
		a.fua = a.fua[:0]
		a.fragmenting = false
	}
	return nil
}
