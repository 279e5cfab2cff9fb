package rtroute

import (
	"fmt"
	"net"
	"time"

	"github.com/inetkit/rtnl/nlwire"
	"github.com/m-lab/go/logx"
)

var unknownAttrLog = logx.NewLogEvery(nil, time.Second)

// Route is the high-level projection of a decoded route message: the
// fields spec.md §3 names directly, plus the header fields a complete
// client needs to tell routes apart (Family, DstLen, SrcLen, Tos, Protocol,
// Type, Flags) and the remaining typed route attributes (Pref, EncapType,
// Metrics) spec.md's tag table defines but its minimal record omits.
type Route struct {
	Family   uint8
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    uint8
	Protocol uint8
	Scope    uint8
	Type     uint8
	Flags    uint8

	Priority            *int32
	Gateway             net.IP
	Dest                net.IP
	Source              net.IP
	PreferredSource     net.IP
	OutputInterfaceIndex *int32

	Pref      *int8
	EncapType *int16
	Metrics   *int32
	Expires   *int32
}

// ToRoute projects a decoded route header and its attributes into a Route
// record. Unknown attributes have already been set aside by
// DecodeAttributes; this function logs them once here, at the point where
// the caller is about to receive a finished record, matching the
// log-and-drop policy spec.md §4.6 specifies.
func ToRoute(hdr Header, attrs Attributes) Route {
	for tag := range attrs.Unknown {
		unknownAttrLog.Println(fmt.Sprintf("rtroute: dropping unrecognized route attribute tag %d", tag))
	}
	r := Route{
		Family:   hdr.Family,
		DstLen:   hdr.DstLen,
		SrcLen:   hdr.SrcLen,
		Tos:      hdr.Tos,
		Table:    hdr.Table,
		Protocol: hdr.Protocol,
		Scope:    hdr.Scope,
		Type:     hdr.Type,
		Flags:    hdr.Flags,

		Priority:             attrs.Priority,
		Gateway:              attrs.Gateway,
		Dest:                 attrs.Dest,
		Source:               attrs.Source,
		PreferredSource:      attrs.PrefSrc,
		OutputInterfaceIndex: attrs.OutIface,

		Pref:      attrs.Pref,
		EncapType: attrs.EncapType,
		Metrics:   attrs.Metrics,
		Expires:   attrs.Expires,
	}
	return r
}

// BuildGetRouteDump constructs the message type, flags, and payload for a
// GET_ROUTE dump request: an empty route header with Family set to
// AF_INET, per spec.md §4.6 and §8 scenario 1.
func BuildGetRouteDump() (nlwire.MessageType, nlwire.Flags, []byte) {
	hdr := Header{Family: AF_INET}
	flags := nlwire.REQUEST | nlwire.Flags(nlwire.DUMP)
	return nlwire.GET_ROUTE, flags, hdr.Encode()
}
