package nlattr_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/inetkit/rtnl/nlattr"
	"github.com/inetkit/rtnl/nlwire"
)

func TestEncodeDecodeSingleAttribute(t *testing.T) {
	cases := []struct {
		tag     uint16
		payload []byte
	}{
		{5, []byte{192, 168, 1, 1}},
		{3, []byte("lo\x00")},
		{0xff, nil},
		{1, []byte{1, 2, 3, 4, 5, 6, 7}},
	}
	for _, c := range cases {
		enc := nlattr.Encode(c.tag, c.payload)
		wantLen := nlwire.Align4(nlattr.HeaderLen + len(c.payload))
		if len(enc) != wantLen {
			t.Errorf("Encode(%d, %v): len = %d, want %d", c.tag, c.payload, len(enc), wantLen)
		}
		attrs, err := nlattr.Decode(enc)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if len(attrs) != 1 {
			t.Fatalf("Decode returned %d attributes, want 1", len(attrs))
		}
		if attrs[0].Type != c.tag {
			t.Errorf("Type = %d, want %d", attrs[0].Type, c.tag)
		}
		if diff := deep.Equal(attrs[0].Data, c.payload); diff != nil && len(c.payload) > 0 {
			t.Error(diff)
		}
	}
}

func TestDecodeStreamDeterminism(t *testing.T) {
	for n := 0; n <= 5; n++ {
		var buf []byte
		for i := 0; i < n; i++ {
			buf = append(buf, nlattr.Encode(uint16(i), []byte{byte(i)})...)
		}
		attrs, err := nlattr.Decode(buf)
		if err != nil {
			t.Fatalf("n=%d: Decode: %v", n, err)
		}
		if len(attrs) != n {
			t.Fatalf("n=%d: got %d attributes, want %d", n, len(attrs), n)
		}
		for i, a := range attrs {
			if a.Type != uint16(i) {
				t.Errorf("n=%d: attrs[%d].Type = %d, want %d", n, i, a.Type, i)
			}
		}
	}
}

func TestDecodeMalformedLength(t *testing.T) {
	// length field (2 bytes) claims 2, which is less than the 4-byte header.
	b := []byte{0x02, 0x00, 0x01, 0x00}
	if _, err := nlattr.Decode(b); err == nil {
		t.Error("expected error for length < 4")
	}
}

func TestDecodeOverrun(t *testing.T) {
	// claims a length of 100 but only 4 bytes follow.
	b := []byte{100, 0, 1, 0}
	if _, err := nlattr.Decode(b); err != nlwire.ErrUnexpectedEOF {
		t.Errorf("got %v, want ErrUnexpectedEOF", err)
	}
}

func TestUnknownTagDoesNotFailSiblings(t *testing.T) {
	var buf []byte
	buf = append(buf, nlattr.Encode(0x00ff, []byte{0xde, 0xad, 0xbe, 0xef})...)
	buf = append(buf, nlattr.Encode(3, []byte("lo\x00"))...)
	attrs, err := nlattr.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(attrs) != 2 {
		t.Fatalf("got %d attrs, want 2", len(attrs))
	}
	if attrs[0].Type != 0x00ff {
		t.Errorf("attrs[0].Type = %x, want 0xff", attrs[0].Type)
	}
	if nlwire.ASCIIZ(attrs[1].Data) != "lo" {
		t.Errorf("attrs[1] decoded as %q, want \"lo\"", nlwire.ASCIIZ(attrs[1].Data))
	}
}

func TestGatewayAttributeScenario(t *testing.T) {
	// From spec.md §8 scenario 3: 08 00 05 00 C0 A8 01 01
	b := []byte{0x08, 0x00, 0x05, 0x00, 0xc0, 0xa8, 0x01, 0x01}
	attrs, err := nlattr.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(attrs) != 1 || attrs[0].Type != 5 {
		t.Fatalf("got %+v", attrs)
	}
	ip, err := nlwire.IP(attrs[0].Data)
	if err != nil {
		t.Fatalf("IP: %v", err)
	}
	if ip.String() != "192.168.1.1" {
		t.Errorf("ip = %v, want 192.168.1.1", ip)
	}
}

func TestIfnameAttributeScenario(t *testing.T) {
	// From spec.md §8 scenario 4.
	b := []byte{0x09, 0x00, 0x03, 0x00, 0x6c, 0x6f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	attrs, err := nlattr.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(attrs) != 1 {
		t.Fatalf("got %d attrs, want 1", len(attrs))
	}
	if nlwire.ASCIIZ(attrs[0].Data) != "lo" {
		t.Errorf("got %q, want \"lo\"", nlwire.ASCIIZ(attrs[0].Data))
	}
}

func TestNested(t *testing.T) {
	inner := append(nlattr.Encode(1, []byte("vlan\x00\x00\x00\x00")), nlattr.Encode(2, []byte{1, 2, 3, 4})...)
	var gotTags []uint16
	err := nlattr.Nested(inner, func(attrs []nlattr.Attribute) error {
		for _, a := range attrs {
			gotTags = append(gotTags, a.Type)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Nested: %v", err)
	}
	if diff := deep.Equal(gotTags, []uint16{1, 2}); diff != nil {
		t.Error(diff)
	}
}
