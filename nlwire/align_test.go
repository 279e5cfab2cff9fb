package nlwire_test

import (
	"testing"

	"github.com/inetkit/rtnl/nlwire"
)

func TestAlign4(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, 0}, {1, 4}, {2, 4}, {3, 4}, {4, 4},
		{5, 8}, {8, 8}, {9, 12}, {28, 28},
	}
	for _, c := range cases {
		got := nlwire.Align4(c.in)
		if got != c.want {
			t.Errorf("Align4(%d) = %d, want %d", c.in, got, c.want)
		}
		if got < c.in {
			t.Errorf("Align4(%d) = %d, should be >= input", c.in, got)
		}
		if got%4 != 0 {
			t.Errorf("Align4(%d) = %d, not a multiple of 4", c.in, got)
		}
		if got >= c.in+4 {
			t.Errorf("Align4(%d) = %d, should be < input+4", c.in, got)
		}
	}
}

func TestPadToAlign4(t *testing.T) {
	in := []byte{1, 2, 3}
	out := nlwire.PadToAlign4(in)
	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	if out[3] != 0 {
		t.Errorf("padding byte should be zero, got %d", out[3])
	}
	already := []byte{1, 2, 3, 4}
	out2 := nlwire.PadToAlign4(already)
	if len(out2) != 4 {
		t.Errorf("already-aligned input should be unchanged in length, got %d", len(out2))
	}
}
