// Package rtroute implements the route-netlink route message family: the
// fixed route header, its attribute tag space, and the high-level Route
// record assembled from the two.
package rtroute

import "github.com/inetkit/rtnl/nlwire"

// HeaderLen is the unpadded size of a route header payload.
const HeaderLen = 9

// AF_INET is the address family value used for IPv4 route dumps.
const AF_INET uint8 = 2

// Header is the fixed-layout route-header payload that precedes a route
// message's attribute stream.
type Header struct {
	Family   uint8
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    uint8
	Protocol uint8
	Scope    uint8
	Type     uint8
	Flags    uint8
}

// Encode serializes h, padded to a 4-byte boundary as spec.md §3 requires.
func (h Header) Encode() []byte {
	raw := []byte{h.Family, h.DstLen, h.SrcLen, h.Tos, h.Table, h.Protocol, h.Scope, h.Type, h.Flags}
	return nlwire.PadToAlign4(raw)
}

// DecodeHeader parses the route header from the front of b, returning the
// header and the remaining bytes (the attribute stream).
func DecodeHeader(b []byte) (Header, []byte, error) {
	if len(b) < HeaderLen {
		return Header{}, nil, nlwire.ErrUnexpectedEOF
	}
	h := Header{
		Family:   b[0],
		DstLen:   b[1],
		SrcLen:   b[2],
		Tos:      b[3],
		Table:    b[4],
		Protocol: b[5],
		Scope:    b[6],
		Type:     b[7],
		Flags:    b[8],
	}
	rest := nlwire.Align4(HeaderLen)
	if rest > len(b) {
		return Header{}, nil, nlwire.ErrUnexpectedEOF
	}
	return h, b[rest:], nil
}
