package rtroute

import (
	"net"

	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlwire"
)

// Tag identifies a route attribute, per spec.md's route attribute tag
// space.
type Tag uint16

const (
	TagDest      Tag = 1
	TagSource    Tag = 2
	TagInIface   Tag = 3
	TagOutIface  Tag = 4
	TagGateway   Tag = 5
	TagPriority  Tag = 6
	TagPrefSrc   Tag = 7
	TagMetrics   Tag = 8
	TagTable     Tag = 15
	TagPref      Tag = 20
	TagEncapType Tag = 21
	TagExpires   Tag = 23
)

// Attributes is the decoded, typed view of a route message's attribute
// stream. Every field is a pointer so "absent from the reply" can be
// distinguished from "present with zero value." Tags this package does not
// recognize are preserved verbatim in Unknown so callers can still inspect
// them; an unrecognized tag never fails decoding of its siblings.
type Attributes struct {
	Dest       net.IP
	Source     net.IP
	InIface    *int32
	OutIface   *int32
	Gateway    net.IP
	Priority   *int32
	PrefSrc    net.IP
	Metrics    *int32
	Table      *int32
	Pref       *int8
	EncapType  *int16
	Expires    *int32
	Unknown    map[uint16][]byte
}

// DecodeAttributes dispatches each decoded attribute into its typed field,
// per the route attribute tag table in spec.md §3.
func DecodeAttributes(attrs []nlattr.Attribute) (Attributes, error) {
	var a Attributes
	for _, attr := range attrs {
		switch Tag(attr.Type) {
		case TagDest:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Dest = ip
		case TagSource:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Source = ip
		case TagInIface:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.InIface = &v
		case TagOutIface:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.OutIface = &v
		case TagGateway:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Gateway = ip
		case TagPriority:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Priority = &v
		case TagPrefSrc:
			ip, err := nlwire.IP(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.PrefSrc = ip
		case TagMetrics:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Metrics = &v
		case TagTable:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Table = &v
		case TagPref:
			v, err := nlwire.Int8(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Pref = &v
		case TagEncapType:
			v, err := nlwire.Int16(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.EncapType = &v
		case TagExpires:
			v, err := nlwire.Int32(attr.Data)
			if err != nil {
				return a, &nlattr.DeserializeAttrError{Tag: attr.Type, Err: err}
			}
			a.Expires = &v
		default:
			if a.Unknown == nil {
				a.Unknown = make(map[uint16][]byte)
			}
			a.Unknown[attr.Type] = attr.Data
		}
	}
	return a, nil
}
