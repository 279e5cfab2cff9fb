package rtlink

import (
	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlwire"
)

// LinkInfoTag identifies an attribute nested inside IFLA_LINKINFO, per
// spec.md's link-info sub-tag space.
type LinkInfoTag uint16

const (
	LinkInfoUnspec    LinkInfoTag = 0
	LinkInfoKind      LinkInfoTag = 1
	LinkInfoData      LinkInfoTag = 2
	LinkInfoXStats    LinkInfoTag = 3
	LinkInfoSlaveKind LinkInfoTag = 4
	LinkInfoSlaveData LinkInfoTag = 5
)

// LinkInfo is the decoded IFLA_LINKINFO nested attribute stream.
type LinkInfo struct {
	Kind      string
	Data      []byte
	SlaveKind string
	SlaveData []byte
}

// DecodeLinkInfo decodes the nested attribute stream carried by an
// IFLA_LINKINFO (tag 18) attribute.
func DecodeLinkInfo(b []byte) (*LinkInfo, error) {
	var info LinkInfo
	err := nlattr.Nested(b, func(attrs []nlattr.Attribute) error {
		for _, a := range attrs {
			switch LinkInfoTag(a.Type) {
			case LinkInfoKind:
				info.Kind = nlwire.ASCIIZ(a.Data)
			case LinkInfoData:
				info.Data = a.Data
			case LinkInfoSlaveKind:
				info.SlaveKind = nlwire.ASCIIZ(a.Data)
			case LinkInfoSlaveData:
				info.SlaveData = a.Data
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}
