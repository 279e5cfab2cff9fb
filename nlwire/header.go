package nlwire

import "encoding/binary"

// HeaderLen is the fixed, unpadded size of an envelope header.
const HeaderLen = 16

// Header is the 16-byte envelope header that prefixes every message
// exchanged with the kernel's route-netlink endpoint. Length reflects the
// total on-wire byte count of the envelope, header included, after the
// payload has been padded to a 4-byte boundary.
type Header struct {
	Length   uint32
	Type     MessageType
	Flags    Flags
	Sequence uint32
	PID      uint32
}

// Encode serializes h into its 16-byte wire representation.
func (h Header) Encode() [HeaderLen]byte {
	var b [HeaderLen]byte
	binary.LittleEndian.PutUint32(b[0:4], h.Length)
	binary.LittleEndian.PutUint16(b[4:6], uint16(h.Type))
	binary.LittleEndian.PutUint16(b[6:8], uint16(h.Flags))
	binary.LittleEndian.PutUint32(b[8:12], h.Sequence)
	binary.LittleEndian.PutUint32(b[12:16], h.PID)
	return b
}

// DecodeHeader parses the 16-byte envelope header from b.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, ErrUnexpectedEOF
	}
	return Header{
		Length:   binary.LittleEndian.Uint32(b[0:4]),
		Type:     MessageType(binary.LittleEndian.Uint16(b[4:6])),
		Flags:    Flags(binary.LittleEndian.Uint16(b[6:8])),
		Sequence: binary.LittleEndian.Uint32(b[8:12]),
		PID:      binary.LittleEndian.Uint32(b[12:16]),
	}, nil
}

// HasType reports whether h.Type equals t.
func (h Header) HasType(t MessageType) bool {
	return h.Type == t
}

// HasFlags reports whether every bit in mask is set in h.Flags.
func (h Header) HasFlags(mask Flags) bool {
	return h.Flags.HasFlags(mask)
}
