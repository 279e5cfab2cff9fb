// Package rtlink implements the route-netlink link message family: the
// fixed link header, its attribute tag space (including the nested
// LINK_INFO sub-family and the fixed-layout statistics payloads), and the
// high-level Link record assembled from the two.
package rtlink

import (
	"encoding/binary"

	"github.com/inetkit/rtnl/nlwire"
)

// HeaderLen is the size of a link header payload; it is already a multiple
// of 4, so no padding is needed between it and the first attribute.
const HeaderLen = 16

// ChangeAll is the "apply every bit" value for the Change field. spec.md
// §9 open question (a): several source variants disagree on the initial
// value for dump requests, but modify requests must use this value to
// apply all bits, so this module always emits it for consistency.
const ChangeAll uint32 = 0xFFFFFFFF

// Header is the fixed-layout link-header payload that precedes a link
// message's attribute stream.
type Header struct {
	Family uint8
	Type   uint16
	Index  int32
	Flags  uint32
	Change uint32
}

// Encode serializes h into its 16-byte wire representation.
func (h Header) Encode() []byte {
	b := make([]byte, HeaderLen)
	b[0] = h.Family
	// b[1] is the reserved pad byte, always zero.
	binary.LittleEndian.PutUint16(b[2:4], h.Type)
	binary.LittleEndian.PutUint32(b[4:8], uint32(h.Index))
	binary.LittleEndian.PutUint32(b[8:12], h.Flags)
	binary.LittleEndian.PutUint32(b[12:16], h.Change)
	return b
}

// DecodeHeader parses the link header from the front of b, returning the
// header and the remaining bytes (the attribute stream).
func DecodeHeader(b []byte) (Header, []byte, error) {
	if len(b) < HeaderLen {
		return Header{}, nil, nlwire.ErrUnexpectedEOF
	}
	h := Header{
		Family: b[0],
		Type:   binary.LittleEndian.Uint16(b[2:4]),
		Index:  int32(binary.LittleEndian.Uint32(b[4:8])),
		Flags:  binary.LittleEndian.Uint32(b[8:12]),
		Change: binary.LittleEndian.Uint32(b[12:16]),
	}
	return h, b[HeaderLen:], nil
}
