package nlsock_test

import (
	"encoding/binary"
	"runtime"
	"testing"

	"github.com/inetkit/rtnl/nlsock"
	"github.com/inetkit/rtnl/nlwire"
	"github.com/inetkit/rtnl/rtlink"
)

// TestConnectAndDumpLinks opens a real NETLINK_ROUTE socket, requests a
// link dump, and verifies at least one envelope comes back with the
// sequence this test sent. The loopback interface always exists, so a
// dump is guaranteed to return something to drain.
func TestConnectAndDumpLinks(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("AF_NETLINK is only available on Linux")
	}
	c, err := nlsock.Connect(0)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	msgType, flags, payload := rtlink.BuildGetLinkDump()
	seq := uint32(1)
	hdr := nlwire.Header{
		Length:   uint32(nlwire.HeaderLen + len(payload)),
		Type:     msgType,
		Flags:    flags,
		Sequence: seq,
		PID:      c.PID(),
	}
	encoded := hdr.Encode()
	req := append(encoded[:], payload...)
	if _, err := c.Write(req); err != nil {
		t.Fatalf("Write: %v", err)
	}

	envelopeCount := 0
	sawDone := false
	for !sawDone {
		raw, err := c.Drain()
		if err != nil {
			t.Fatalf("Drain: %v", err)
		}
		for len(raw) > 0 {
			h, err := nlwire.DecodeHeader(raw)
			if err != nil {
				t.Fatalf("DecodeHeader: %v", err)
			}
			total := nlwire.Align4(int(h.Length))
			envelopeCount++
			if h.Type == nlwire.DONE {
				sawDone = true
			}
			if h.Sequence != seq {
				t.Errorf("Sequence = %d, want %d", h.Sequence, seq)
			}
			raw = raw[total:]
		}
	}
	if envelopeCount == 0 {
		t.Error("expected at least one envelope from a link dump")
	}
}

func TestDecodeHeaderLen(t *testing.T) {
	var b [nlwire.HeaderLen]byte
	binary.LittleEndian.PutUint32(b[0:4], nlwire.HeaderLen)
	if _, err := nlwire.DecodeHeader(b[:]); err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
}
