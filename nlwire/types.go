package nlwire

import "fmt"

// MessageType identifies the kind of envelope: a control message (NOOP,
// ERROR, DONE, OVERRUN) or a routing-family domain message (NEW_LINK,
// GET_ROUTE, ...).
type MessageType uint16

// Control message types, common to every netlink family.
const (
	NOOP    MessageType = 1
	ERROR   MessageType = 2
	DONE    MessageType = 3
	OVERRUN MessageType = 4
)

// Routing-family domain message types.
const (
	NEW_LINK  MessageType = 16
	DEL_LINK  MessageType = 17
	GET_LINK  MessageType = 18
	SET_LINK  MessageType = 19
	NEW_ADDR  MessageType = 20
	DEL_ADDR  MessageType = 21
	GET_ADDR  MessageType = 22
	NEW_ROUTE MessageType = 24
	DEL_ROUTE MessageType = 25
	GET_ROUTE MessageType = 26
)

var messageTypeNames = map[MessageType]string{
	NOOP: "NOOP", ERROR: "ERROR", DONE: "DONE", OVERRUN: "OVERRUN",
	NEW_LINK: "NEW_LINK", DEL_LINK: "DEL_LINK", GET_LINK: "GET_LINK", SET_LINK: "SET_LINK",
	NEW_ADDR: "NEW_ADDR", DEL_ADDR: "DEL_ADDR", GET_ADDR: "GET_ADDR",
	NEW_ROUTE: "NEW_ROUTE", DEL_ROUTE: "DEL_ROUTE", GET_ROUTE: "GET_ROUTE",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", uint16(t))
}

// Flags is the raw 16-bit envelope flags bitfield. The bit positions common
// to every request (REQUEST, MULTI, ACK) live here; the overlaid
// dump-family and modify-family bits are exposed as separate typed
// namespaces (DumpFlags, ModifyFlags) below so a caller can't accidentally
// combine bits that mean different things depending on context.
type Flags uint16

const (
	REQUEST Flags = 0x1
	MULTI   Flags = 0x2
	ACK     Flags = 0x4
)

// DumpFlags are the extra bits meaningful on dump-style (GET_*) requests.
type DumpFlags uint16

const (
	ROOT   DumpFlags = 0x100
	MATCH  DumpFlags = 0x200
	ATOMIC DumpFlags = 0x400
	DUMP   DumpFlags = ROOT | MATCH
)

// AsFlags converts a DumpFlags value into the underlying envelope Flags
// bitfield, optionally combined with base flags such as REQUEST.
func (d DumpFlags) AsFlags(base Flags) Flags {
	return base | Flags(d)
}

// ModifyFlags are the extra bits meaningful on modify-style (NEW_*/SET_*)
// requests. They share numeric values with DumpFlags but mean something
// different; the two types are never implicitly convertible.
type ModifyFlags uint16

const (
	REPLACE ModifyFlags = 0x100
	EXCL    ModifyFlags = 0x200
	CREATE  ModifyFlags = 0x400
	APPEND  ModifyFlags = 0x800
)

// AsFlags converts a ModifyFlags value into the underlying envelope Flags
// bitfield, optionally combined with base flags such as REQUEST|ACK.
func (m ModifyFlags) AsFlags(base Flags) Flags {
	return base | Flags(m)
}

// HasFlags reports whether every bit in mask is set in f.
func (f Flags) HasFlags(mask Flags) bool {
	return f&mask == mask
}
