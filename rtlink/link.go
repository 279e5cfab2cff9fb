package rtlink

import (
	"fmt"
	"net"
	"time"

	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlwire"
	"github.com/m-lab/go/logx"
)

var unknownAttrLog = logx.NewLogEvery(nil, time.Second)

// Link is the high-level projection of a decoded link message: the fields
// spec.md §3 names directly (Family, Type, Index, Name, Kind, Address,
// Promiscuity, ParentDevName) plus the remaining attributes the complete
// kernel interface carries (SPEC_FULL.md §3.1).
type Link struct {
	Family uint8
	Type   uint16
	Index  int32
	Flags  uint32

	Name             string
	Kind             string
	Address          net.IP
	Broadcast        []byte
	Promiscuity      *uint32
	ParentDevName    string
	ParentDevBusName string

	MTU          *uint32
	MinMTU       *uint32
	MaxMTU       *uint32
	ExtMask      *uint32
	PhysPortName string
	AltIfName    string
	PermAddress  net.IP
	Stats        *Stats32
	Stats64      *Stats64
}

// ToLink projects a decoded link header and its attributes into a Link
// record. Unknown attributes are logged and dropped, matching spec.md
// §4.6's policy.
func ToLink(hdr Header, attrs Attributes) Link {
	for tag := range attrs.Unknown {
		unknownAttrLog.Println(fmt.Sprintf("rtlink: dropping unrecognized link attribute tag %d", tag))
	}
	l := Link{
		Family: hdr.Family,
		Type:   hdr.Type,
		Index:  hdr.Index,
		Flags:  hdr.Flags,

		Name:             attrs.IfName,
		Address:          attrs.Address,
		Broadcast:        attrs.Broadcast,
		Promiscuity:      attrs.Promiscuity,
		ParentDevName:    attrs.ParentDevName,
		ParentDevBusName: attrs.ParentDevBusName,

		MTU:          attrs.MTU,
		MinMTU:       attrs.MinMTU,
		MaxMTU:       attrs.MaxMTU,
		ExtMask:      attrs.ExtMask,
		PhysPortName: attrs.PhysPortName,
		AltIfName:    attrs.AltIfName,
		PermAddress:  attrs.PermAddress,
		Stats:        attrs.Stats,
		Stats64:      attrs.Stats64,
	}
	if attrs.LinkInfo != nil {
		l.Kind = attrs.LinkInfo.Kind
	}
	return l
}

// BuildGetLinkDump constructs the message type, flags, and payload for a
// GET_LINK dump request: an empty link header, per spec.md §4.6.
func BuildGetLinkDump() (nlwire.MessageType, nlwire.Flags, []byte) {
	hdr := Header{Change: ChangeAll}
	flags := nlwire.REQUEST | nlwire.Flags(nlwire.DUMP)
	return nlwire.GET_LINK, flags, hdr.Encode()
}

// BuildGetLinkByName constructs the message type, flags, and payload for a
// GET_LINK-by-name request: a link header with zero family and index (and
// Change set to ChangeAll) plus IFNAME and EXT_MASK
// attributes, per spec.md §4.6 and §8 scenario 6.
func BuildGetLinkByName(name string, extMask uint32) (nlwire.MessageType, nlwire.Flags, []byte) {
	hdr := Header{Change: ChangeAll}
	payload := hdr.Encode()
	nameBytes := append([]byte(name), 0)
	payload = append(payload, nlattr.Encode(uint16(TagIfName), nameBytes)...)
	extBytes := make([]byte, 4)
	extBytes[0] = byte(extMask)
	extBytes[1] = byte(extMask >> 8)
	extBytes[2] = byte(extMask >> 16)
	extBytes[3] = byte(extMask >> 24)
	payload = append(payload, nlattr.Encode(uint16(TagExtMask), extBytes)...)
	return nlwire.GET_LINK, nlwire.REQUEST, payload
}
