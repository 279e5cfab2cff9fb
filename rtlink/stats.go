package rtlink

import (
	"bytes"
	"encoding/binary"

	"github.com/inetkit/rtnl/nlwire"
)

// Stats32 is the IFLA_STATS (tag 7) fixed-layout interface statistics
// struct: 24 u32 counters, decoded as a single read of the exact width per
// spec.md §4.3.
type Stats32 struct {
	RxPackets, TxPackets     uint32
	RxBytes, TxBytes         uint32
	RxErrors, TxErrors       uint32
	RxDropped, TxDropped     uint32
	Multicast, Collisions    uint32
	RxLengthErrors           uint32
	RxOverErrors             uint32
	RxCRCErrors              uint32
	RxFrameErrors            uint32
	RxFIFOErrors             uint32
	RxMissedErrors           uint32
	TxAbortedErrors          uint32
	TxCarrierErrors          uint32
	TxFIFOErrors             uint32
	TxHeartbeatErrors        uint32
	TxWindowErrors           uint32
	RxCompressed             uint32
	TxCompressed             uint32
	RxNoHandler              uint32
}

const stats32Fields = 24

// DecodeStats32 decodes a tag-7 IFLA_STATS payload.
func DecodeStats32(b []byte) (*Stats32, error) {
	if len(b) < stats32Fields*4 {
		return nil, nlwire.ErrUnexpectedEOF
	}
	var s Stats32
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Stats64 is the IFLA_STATS64 (tag 23) fixed-layout interface statistics
// struct: 25 u64 counters.
type Stats64 struct {
	RxPackets, TxPackets     uint64
	RxBytes, TxBytes         uint64
	RxErrors, TxErrors       uint64
	RxDropped, TxDropped     uint64
	Multicast, Collisions    uint64
	RxLengthErrors           uint64
	RxOverErrors             uint64
	RxCRCErrors              uint64
	RxFrameErrors            uint64
	RxFIFOErrors             uint64
	RxMissedErrors           uint64
	TxAbortedErrors          uint64
	TxCarrierErrors          uint64
	TxFIFOErrors             uint64
	TxHeartbeatErrors        uint64
	TxWindowErrors           uint64
	RxCompressed             uint64
	TxCompressed             uint64
	RxNoHandler              uint64
	RxOtherHostDropped       uint64
}

const stats64Fields = 25

// DecodeStats64 decodes a tag-23 IFLA_STATS64 payload, one field at a time
// via nlwire.Uint64 rather than a struct-shaped binary.Read, since the
// fields are plain sequential u64 counters with no alignment padding
// between them.
func DecodeStats64(b []byte) (*Stats64, error) {
	if len(b) < stats64Fields*8 {
		return nil, nlwire.ErrUnexpectedEOF
	}
	vals := make([]uint64, stats64Fields)
	for i := range vals {
		v, err := nlwire.Uint64(b[i*8 : i*8+8])
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &Stats64{
		RxPackets: vals[0], TxPackets: vals[1],
		RxBytes: vals[2], TxBytes: vals[3],
		RxErrors: vals[4], TxErrors: vals[5],
		RxDropped: vals[6], TxDropped: vals[7],
		Multicast: vals[8], Collisions: vals[9],
		RxLengthErrors:     vals[10],
		RxOverErrors:       vals[11],
		RxCRCErrors:        vals[12],
		RxFrameErrors:      vals[13],
		RxFIFOErrors:       vals[14],
		RxMissedErrors:     vals[15],
		TxAbortedErrors:    vals[16],
		TxCarrierErrors:    vals[17],
		TxFIFOErrors:       vals[18],
		TxHeartbeatErrors:  vals[19],
		TxWindowErrors:     vals[20],
		RxCompressed:       vals[21],
		TxCompressed:       vals[22],
		RxNoHandler:        vals[23],
		RxOtherHostDropped: vals[24],
	}, nil
}
