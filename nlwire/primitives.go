package nlwire

import (
	"encoding/binary"
	"fmt"
	"net"
)

// ErrUnexpectedEOF is returned when a decoder needs more bytes than the
// input slice holds.
var ErrUnexpectedEOF = fmt.Errorf("nlwire: unexpected end of input")

// DeserializeError wraps a decode failure with a human-readable detail,
// matching spec.md's DESERIALIZE error kind.
type DeserializeError struct {
	Detail string
}

func (e *DeserializeError) Error() string {
	return "nlwire: deserialize: " + e.Detail
}

func deserializeErrorf(format string, args ...interface{}) error {
	return &DeserializeError{Detail: fmt.Sprintf(format, args...)}
}

// Int8 decodes a single signed byte.
func Int8(b []byte) (int8, error) {
	if len(b) < 1 {
		return 0, ErrUnexpectedEOF
	}
	return int8(b[0]), nil
}

// Int16 decodes a little-endian signed 16-bit integer.
func Int16(b []byte) (int16, error) {
	if len(b) < 2 {
		return 0, ErrUnexpectedEOF
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

// Int32 decodes a little-endian signed 32-bit integer.
func Int32(b []byte) (int32, error) {
	if len(b) < 4 {
		return 0, ErrUnexpectedEOF
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// Uint32 decodes a little-endian unsigned 32-bit integer.
func Uint32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint64 decodes a little-endian unsigned 64-bit integer.
func Uint64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ASCIIZ interprets b as a UTF-8 string and strips any trailing NUL bytes.
// The kernel frequently NUL-terminates (and pads) ASCII attribute payloads.
func ASCIIZ(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

// IP decodes b into a net.IP, discriminating IPv4 from IPv6 purely by
// length: 4 bytes is a v4 address, 16 bytes is a v6 address, anything else
// is malformed.
func IP(b []byte) (net.IP, error) {
	switch len(b) {
	case net.IPv4len:
		ip := make(net.IP, net.IPv4len)
		copy(ip, b)
		return ip, nil
	case net.IPv6len:
		ip := make(net.IP, net.IPv6len)
		copy(ip, b)
		return ip, nil
	default:
		return nil, deserializeErrorf("invalid IP address length %d", len(b))
	}
}
