// Package nlwire implements the wire-level codec for route-netlink
// messages: 4-byte alignment, little-endian primitive decoding, and the
// 16-byte envelope header that prefixes every message exchanged with the
// kernel's route-netlink endpoint.
package nlwire

// nlAlignTo is the alignment boundary netlink uses for messages and
// attributes alike.
const nlAlignTo = 4

// Align4 rounds n up to the next multiple of 4.
func Align4(n int) int {
	return (n + nlAlignTo - 1) &^ (nlAlignTo - 1)
}

// PadToAlign4 appends zero bytes to b until its length is a multiple of 4,
// returning the padded slice.
func PadToAlign4(b []byte) []byte {
	padded := Align4(len(b))
	if padded == len(b) {
		return b
	}
	out := make([]byte, padded)
	copy(out, b)
	return out
}
