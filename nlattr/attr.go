// Package nlattr implements the generic tag-length-value attribute codec
// shared by every route-netlink attribute family (route, link, link-info).
// It knows nothing about what any particular tag means; callers dispatch
// on Attribute.Type themselves.
package nlattr

import (
	"encoding/binary"
	"fmt"

	"github.com/inetkit/rtnl/nlwire"
)

// HeaderLen is the fixed size of an attribute header: 2 bytes length, 2
// bytes type.
const HeaderLen = 4

// Attribute is one decoded tag-length-value entry: the raw, unpadded
// payload bytes (trailing alignment padding has already been stripped).
type Attribute struct {
	Type uint16
	Data []byte
}

// Encode builds the wire representation of a single attribute: a 4-byte
// header whose Length field counts the header plus the unpadded payload,
// followed by the payload, followed by zero padding out to a 4-byte
// boundary.
func Encode(tag uint16, payload []byte) []byte {
	hdrLen := HeaderLen + len(payload)
	out := make([]byte, nlwire.Align4(hdrLen))
	binary.LittleEndian.PutUint16(out[0:2], uint16(hdrLen))
	binary.LittleEndian.PutUint16(out[2:4], tag)
	copy(out[HeaderLen:], payload)
	return out
}

// Decode walks b as a concatenation of attributes, per the algorithm in
// spec.md §4.3: a malformed header length fails the whole stream, but an
// attribute whose tag is unknown to the caller is still returned — only
// the generic codec layer can fail parsing, never an unrecognized tag.
func Decode(b []byte) ([]Attribute, error) {
	var attrs []Attribute
	for len(b) > 0 {
		if len(b) < HeaderLen {
			return nil, nlwire.ErrUnexpectedEOF
		}
		length := binary.LittleEndian.Uint16(b[0:2])
		tag := binary.LittleEndian.Uint16(b[2:4])
		if int(length) < HeaderLen {
			return nil, &nlwire.DeserializeError{Detail: "attribute length shorter than header"}
		}
		payloadLen := int(length) - HeaderLen
		total := nlwire.Align4(int(length))
		if total > len(b) {
			return nil, nlwire.ErrUnexpectedEOF
		}
		attrs = append(attrs, Attribute{Type: tag, Data: b[HeaderLen : HeaderLen+payloadLen]})
		b = b[total:]
	}
	return attrs, nil
}

// DeserializeAttrError wraps a decode failure that occurred while turning
// one specific attribute's raw bytes into its typed value. The sibling
// attributes in the same stream may still be perfectly well-formed; this
// error reports which tag failed rather than letting the caller blame the
// whole stream on one bad field. Callers that dispatch on Attribute.Type
// (rtroute, rtlink) construct this at the point where a typed decode call
// returns an error.
type DeserializeAttrError struct {
	Tag uint16
	Err error
}

func (e *DeserializeAttrError) Error() string {
	return fmt.Sprintf("nlattr: attribute tag %d: %v", e.Tag, e.Err)
}

func (e *DeserializeAttrError) Unwrap() error { return e.Err }

// Nested decodes b (the raw payload of an attribute known to itself carry
// a nested attribute stream, e.g. IFLA_LINKINFO) and hands
// the resulting attributes to fn.
func Nested(b []byte, fn func([]Attribute) error) error {
	attrs, err := Decode(b)
	if err != nil {
		return err
	}
	return fn(attrs)
}
