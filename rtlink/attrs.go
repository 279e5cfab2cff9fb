package rtlink

import (
	"net"

	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlwire"
)

// Tag identifies a link attribute, per spec.md's link attribute tag space
// (0..61 inclusive).
type Tag uint16

const (
	TagAddress          Tag = 1
	TagBroadcast        Tag = 2
	TagIfName           Tag = 3
	TagMTU              Tag = 4
	TagStats            Tag = 7
	TagLinkInfo         Tag = 18
	TagStats64          Tag = 23
	TagExtMask          Tag = 29
	TagPromiscuity      Tag = 30
	TagPhysPortName     Tag = 38
	TagGSOMaxSegs       Tag = 40
	TagGSOMaxSize       Tag = 41
	TagMinMTU           Tag = 50
	TagMaxMTU           Tag = 51
	TagAltIfName        Tag = 53
	TagPermAddress      Tag = 54
	TagParentDevName    Tag = 56
	TagParentDevBusName Tag = 57
)

// Attributes is the decoded, typed view of a link message's attribute
// stream. Tags this package does not recognize are preserved verbatim in
// Unknown; an unrecognized tag never fails decoding of its siblings.
//
// Per spec.md §3's literal payload annotations (and the original source's
// own deserialize_ip_addr use for these exact tags), ADDRESS and
// PERM_ADDRESS are decoded with the same length-discriminated v4/v6
// decoder as route attributes, not as raw link-layer byte strings.
type Attributes struct {
	Address      net.IP
	Broadcast    []byte
	IfName       string
	MTU          *uint32
	Stats        *Stats32
	LinkInfo     *LinkInfo
	Stats64      *Stats64
	ExtMask      *uint32
	Promiscuity  *uint32
	PhysPortName string
	GSOMaxSegs   *uint32
	GSOMaxSize   *uint32
	MinMTU       *uint32
	MaxMTU       *uint32
	AltIfName    string
	PermAddress  net.IP
	ParentDevName    string
	ParentDevBusName string

	Unknown map[uint16][]byte
}

// DecodeAttributes dispatches each decoded attribute into its typed field,
// per the link attribute tag table in spec.md §3.
func DecodeAttributes(attrs []nlattr.Attribute) (Attributes, error) {
	var a Attributes
	for _, attr := range attrs {
		switch Tag(attr.Type) {
		case TagAddress:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Address = ip
		case TagBroadcast:
			a.Broadcast = attr.Data
		case TagIfName:
			a.IfName = nlwire.ASCIIZ(attr.Data)
		case TagMTU:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.MTU = &v
		case TagStats:
			s, err := DecodeStats32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Stats = s
		case TagLinkInfo:
			info, err := DecodeLinkInfo(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.LinkInfo = info
		case TagStats64:
			s, err := DecodeStats64(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Stats64 = s
		case TagExtMask:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.ExtMask = &v
		case TagPromiscuity:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Promiscuity = &v
		case TagPhysPortName:
			a.PhysPortName = nlwire.ASCIIZ(attr.Data)
		case TagGSOMaxSegs:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.GSOMaxSegs = &v
		case TagGSOMaxSize:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.GSOMaxSize = &v
		case TagMinMTU:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.MinMTU = &v
		case TagMaxMTU:
			v, err := nlwire.Uint32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.MaxMTU = &v
		case TagAltIfName:
			a.AltIfName = nlwire.ASCIIZ(attr.Data)
		case TagPermAddress:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.PermAddress = ip
		case TagParentDevName:
			a.ParentDevName = nlwire.ASCIIZ(attr.Data)
		case TagParentDevBusName:
			a.ParentDevBusName = nlwire.ASCIIZ(attr.Data)
		default:
			if a.Unknown == nil {
				a.Unknown = make(map[uint16][]byte)
			}
			a.Unknown[attr.Type] = attr.Data
		}
	}
	return a, nil
}
