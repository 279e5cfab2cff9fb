package rtnl

import (
	"encoding/binary"
	"testing"

	"github.com/go-test/deep"
	"github.com/inetkit/rtnl/internal/rtx"
	"github.com/inetkit/rtnl/nlwire"
)

// fakeConn is a scripted nlsock.Conn: Drain pops chunks off a queue,
// simulating a kernel reply arriving across several non-blocking reads.
type fakeConn struct {
	pid    uint32
	chunks [][]byte
	writes [][]byte
	closed bool
}

func (f *fakeConn) PID() uint32 { return f.pid }

func (f *fakeConn) Write(b []byte) (int, error) {
	cp := append([]byte(nil), b...)
	f.writes = append(f.writes, cp)
	return len(b), nil
}

func (f *fakeConn) Read(b []byte) (int, error) {
	n, err := f.Drain()
	if err != nil {
		return 0, err
	}
	return copy(b, n), nil
}

func (f *fakeConn) Drain() ([]byte, error) {
	if len(f.chunks) == 0 {
		return nil, nil
	}
	c := f.chunks[0]
	f.chunks = f.chunks[1:]
	return c, nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func encodeEnvelope(t nlwire.MessageType, flags nlwire.Flags, seq, pid uint32, payload []byte) []byte {
	hdr := nlwire.Header{
		Length:   uint32(nlwire.HeaderLen + len(payload)),
		Type:     t,
		Flags:    flags,
		Sequence: seq,
		PID:      pid,
	}
	b := hdr.Encode()
	return append(b[:], payload...)
}

func TestSendFillsHeaderAndAdvancesSequence(t *testing.T) {
	conn := &fakeConn{pid: 4242}
	d := NewDialogue(conn)

	for i := uint32(0); i < 3; i++ {
		rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "send %d failed", i)
		if len(conn.writes) != int(i)+1 {
			t.Fatalf("expected %d writes, got %d", i+1, len(conn.writes))
		}
		hdr, err := nlwire.DecodeHeader(conn.writes[i])
		rtx.Must(err, "decode header")
		if hdr.Sequence != i {
			t.Errorf("send %d: sequence = %d, want %d", i, hdr.Sequence, i)
		}
		if hdr.PID != 4242 {
			t.Errorf("send %d: pid = %d, want 4242", i, hdr.PID)
		}
		if hdr.Length != nlwire.HeaderLen {
			t.Errorf("send %d: length = %d, want %d", i, hdr.Length, nlwire.HeaderLen)
		}
	}
}

func TestSendRejectsUnknownMessageType(t *testing.T) {
	conn := &fakeConn{pid: 1}
	d := NewDialogue(conn)
	if err := d.Send(nlwire.MessageType(9999), nlwire.REQUEST, nil); err == nil {
		t.Fatal("expected an error for an unrecognized message type")
	}
}

func TestRecvDoneTerminatesMultiPartReply(t *testing.T) {
	conn := &fakeConn{pid: 1}
	d := NewDialogue(conn)
	rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "send")

	done := encodeEnvelope(nlwire.DONE, 0, 2, 1, nil)
	conn.chunks = [][]byte{done}

	env, err := d.Recv()
	rtx.Must(err, "recv")
	if env != nil {
		t.Fatalf("expected nil envelope at DONE, got %+v", env)
	}
	if d.hasRemainingReads {
		t.Error("hasRemainingReads should be false after DONE")
	}
}

func TestRecvReturnsNilAfterDoneUntilNextSend(t *testing.T) {
	conn := &fakeConn{pid: 1}
	d := NewDialogue(conn)
	rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "send")
	conn.chunks = [][]byte{encodeEnvelope(nlwire.DONE, 0, 0, 1, nil)}

	if _, err := d.Recv(); err != nil {
		t.Fatalf("recv done: %v", err)
	}

	for i := 0; i < 3; i++ {
		env, err := d.Recv()
		rtx.Must(err, "recv after done")
		if env != nil {
			t.Fatalf("call %d: expected nil envelope after DONE with no new Send, got %+v", i, env)
		}
	}

	rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "second send")
	conn.chunks = [][]byte{encodeEnvelope(nlwire.DONE, 0, 1, 1, nil)}
	env, err := d.Recv()
	rtx.Must(err, "recv after second send")
	if env != nil {
		t.Fatalf("expected nil at DONE, got %+v", env)
	}
}

func TestRecvAssemblesHeaderAcrossFragmentedDrains(t *testing.T) {
	conn := &fakeConn{pid: 7}
	d := NewDialogue(conn)
	rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "send")

	payload := []byte{1, 2, 3, 4}
	full := encodeEnvelope(nlwire.NEW_LINK, nlwire.MULTI, 0, 7, payload)
	// Feed the envelope back one byte at a time to prove Recv never
	// consumes less than the exact byte count it asked for.
	for _, b := range full {
		conn.chunks = append(conn.chunks, []byte{b})
	}

	env, err := d.Recv()
	rtx.Must(err, "recv")
	if env == nil {
		t.Fatal("expected a non-nil envelope")
	}
	if diff := deep.Equal(env.Payload, payload); diff != nil {
		t.Error(diff)
	}
	if !d.hasRemainingReads {
		t.Error("hasRemainingReads should stay true after a MULTI, non-DONE envelope")
	}
}

func TestRecvDecodesErrnoOnErrorEnvelope(t *testing.T) {
	conn := &fakeConn{pid: 1}
	d := NewDialogue(conn)
	rtx.Must(d.Send(nlwire.GET_LINK, nlwire.REQUEST, nil), "send")

	errPayload := make([]byte, 4)
	binary.LittleEndian.PutUint32(errPayload, uint32(int32(-19))) // -ENODEV
	conn.chunks = [][]byte{encodeEnvelope(nlwire.ERROR, 0, 0, 1, errPayload)}

	env, err := d.Recv()
	rtx.Must(err, "recv")
	if env == nil {
		t.Fatal("expected a non-nil ERROR envelope")
	}
	if env.Errno != -19 {
		t.Errorf("errno = %d, want -19", env.Errno)
	}
}

func TestRecvOnZeroValueDialogueReturnsNil(t *testing.T) {
	conn := &fakeConn{pid: 1}
	d := &Dialogue{conn: conn}
	env, err := d.Recv()
	rtx.Must(err, "recv")
	if env != nil {
		t.Fatalf("expected nil from a zero-value Dialogue, got %+v", env)
	}
}
