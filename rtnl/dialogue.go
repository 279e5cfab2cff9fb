package rtnl

import (
	"encoding/binary"
	"fmt"
	"log"

	"github.com/inetkit/rtnl/nlsock"
	"github.com/inetkit/rtnl/nlwire"
)

// Envelope is one decoded reply: its header plus the unpadded payload
// bytes that follow it. Errno is populated only when Header.Type is
// nlwire.ERROR, decoded from the payload's leading signed 32-bit integer
// per spec.md §9 open question (c); zero means ACK.
type Envelope struct {
	Header  nlwire.Header
	Payload []byte
	Errno   int32
}

// Dialogue is a stateful request/reply session over one transport
// endpoint: a monotonic sequence counter, the process identifier stamped
// on outgoing envelopes, and the multi-part-reply continuation flag.
// A Dialogue is not safe for concurrent use; distinct Dialogues are
// independent.
type Dialogue struct {
	conn              nlsock.Conn
	sequence          uint32
	pid               uint32
	hasRemainingReads bool

	buf    []byte
	logger *log.Logger
}

// NewDialogue wraps conn in a Dialogue. The Dialogue takes ownership of
// conn; closing the Dialogue closes conn, mirroring spec.md §4.4's "no
// cyclic ownership" note (the Dialogue owns the Transport).
func NewDialogue(conn nlsock.Conn, opts ...Option) *Dialogue {
	return newDialogue(conn, newOptions(opts))
}

func newDialogue(conn nlsock.Conn, o options) *Dialogue {
	return &Dialogue{
		conn:              conn,
		pid:               conn.PID(),
		hasRemainingReads: true,
		buf:               make([]byte, 0, o.readBufferSize),
		logger:            o.logger,
	}
}

// logf writes a diagnostic line through the configured logger, if any. A
// Dialogue with no WithLogger option produces no diagnostic output.
func (d *Dialogue) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

// knownMessageTypes restricts Send to the values spec.md §3 enumerates, so
// a caller that passes a type this library never built can't silently
// address the kernel with an unrecognized request.
var knownMessageTypes = map[nlwire.MessageType]bool{
	nlwire.NOOP: true, nlwire.ERROR: true, nlwire.DONE: true, nlwire.OVERRUN: true,
	nlwire.NEW_LINK: true, nlwire.DEL_LINK: true, nlwire.GET_LINK: true, nlwire.SET_LINK: true,
	nlwire.NEW_ADDR: true, nlwire.DEL_ADDR: true, nlwire.GET_ADDR: true,
	nlwire.NEW_ROUTE: true, nlwire.DEL_ROUTE: true, nlwire.GET_ROUTE: true,
}

// Send assembles an envelope around payload (already padded by the caller
// when it concatenates multiple attributes), stamps it with this
// Dialogue's sequence counter and process identifier, and writes it to the
// transport. On success the sequence counter advances and multi-part
// reading resets, per spec.md §4.5.
func (d *Dialogue) Send(msgType nlwire.MessageType, flags nlwire.Flags, payload []byte) error {
	if !knownMessageTypes[msgType] {
		return fmt.Errorf("%w: message type %d", ErrCastEnum, msgType)
	}
	hdr := nlwire.Header{
		Length:   uint32(nlwire.HeaderLen + len(payload)),
		Type:     msgType,
		Flags:    flags,
		Sequence: d.sequence,
		PID:      d.pid,
	}
	encoded := hdr.Encode()
	msg := append(encoded[:], payload...)
	if _, err := d.conn.Write(msg); err != nil {
		return &WriteSocketError{Err: err}
	}
	d.sequence++
	d.hasRemainingReads = true
	return nil
}

// fill grows d.buf until it holds at least n bytes, pulling more from the
// transport as needed. This is the exact-read-loop spec.md §9 open
// question (b) calls for: callers of take never see a short read.
func (d *Dialogue) fill(n int) error {
	for len(d.buf) < n {
		more, err := d.conn.Drain()
		if err != nil {
			return &ReadSocketError{Err: err}
		}
		d.buf = append(d.buf, more...)
	}
	return nil
}

func (d *Dialogue) take(n int) ([]byte, error) {
	if err := d.fill(n); err != nil {
		return nil, err
	}
	b := d.buf[:n:n]
	d.buf = d.buf[n:]
	return b, nil
}

// Recv returns the next envelope of the current reply, or (nil, nil) once
// a DONE terminator has been observed (or the reply has been stopped),
// until the next Send. A Dialogue built by NewDialogue starts out
// expecting replies, so Recv before the first Send reads from conn. It
// reads exactly 16 header bytes and exactly the declared payload length,
// never a single bare read, per spec.md §4.5 and §9 open question (b).
// An ERROR envelope is returned like any other; Recv does not interpret
// its payload beyond decoding Envelope.Errno.
func (d *Dialogue) Recv() (*Envelope, error) {
	if !d.hasRemainingReads {
		return nil, nil
	}
	hdrBytes, err := d.take(nlwire.HeaderLen)
	if err != nil {
		return nil, err
	}
	h, err := nlwire.DecodeHeader(hdrBytes)
	if err != nil {
		return nil, err
	}
	if h.Length < nlwire.HeaderLen {
		return nil, ErrValueConversion
	}
	if h.HasType(nlwire.DONE) {
		d.hasRemainingReads = false
		return nil, nil
	}
	payloadLen := int(h.Length) - nlwire.HeaderLen
	payload, err := d.take(payloadLen)
	if err != nil {
		return nil, err
	}
	env := &Envelope{Header: h, Payload: payload}
	if h.HasType(nlwire.ERROR) && len(payload) >= 4 {
		env.Errno = int32(binary.LittleEndian.Uint32(payload[0:4]))
		if env.Errno != 0 {
			d.logf("rtnl: kernel returned ERROR envelope, sequence=%d errno=%d", h.Sequence, env.Errno)
		}
	}
	return env, nil
}

// stop marks the current reply as finished without waiting for a DONE
// terminator, for request kinds the kernel never terminates that way (a
// single-reply GET_LINK-by-name, as opposed to a GET_LINK dump).
func (d *Dialogue) stop() {
	d.hasRemainingReads = false
}

// Close releases the underlying transport.
func (d *Dialogue) Close() error {
	return d.conn.Close()
}
