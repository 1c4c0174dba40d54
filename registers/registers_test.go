package registers

import (
	"testing"

	"github.com/go-test/deep"
)

func TestFlags(t *testing.T) {
	r := &Registers{}
	r.ClearFlags()
	if r.P != Unused {
		t.Fatalf("ClearFlags: got P=%02X want %02X", r.P, Unused)
	}

	tests := []uint8{Negative, Overflow, Break, Decimal, Interrupt, Zero, Carry}
	for _, bit := range tests {
		r.ClearFlags()
		r.SetFlag(bit)
		if !r.GetFlag(bit) {
			t.Errorf("SetFlag(%02X) then GetFlag: got false want true", bit)
		}
		r.ClearFlag(bit)
		if r.GetFlag(bit) {
			t.Errorf("ClearFlag(%02X) then GetFlag: got true want false", bit)
		}
	}
}

func TestUpdateNZ(t *testing.T) {
	tests := []struct {
		val      uint8
		wantZ    bool
		wantN    bool
	}{
		{0x00, true, false},
		{0x01, false, false},
		{0x7F, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}
	for _, test := range tests {
		r := &Registers{}
		r.UpdateNZ(test.val)
		if got := r.GetFlag(Zero); got != test.wantZ {
			t.Errorf("UpdateNZ(%02X) Z: got %v want %v", test.val, got, test.wantZ)
		}
		if got := r.GetFlag(Negative); got != test.wantN {
			t.Errorf("UpdateNZ(%02X) N: got %v want %v", test.val, got, test.wantN)
		}
	}
}

func TestBCDRoundTrip(t *testing.T) {
	for b := 0; b <= 99; b++ {
		packed := ToBCD(b)
		if got := FromBCD(packed); got != b {
			t.Errorf("FromBCD(ToBCD(%d)) = %d, want %d", b, got, b)
		}
	}
	// FromBCD/ToBCD round-trip for any byte whose nibbles are both <= 9.
	for hi := 0; hi <= 9; hi++ {
		for lo := 0; lo <= 9; lo++ {
			b := uint8(hi<<4 | lo)
			if got := ToBCD(FromBCD(b)); got != b {
				t.Errorf("ToBCD(FromBCD(%02X)) = %02X, want %02X", b, got, b)
			}
		}
	}
}

func TestFromBCDExamples(t *testing.T) {
	tests := []struct {
		in   uint8
		want int
	}{
		{0x00, 0},
		{0x05, 5},
		{0x11, 11},
		{0x99, 99},
	}
	for _, test := range tests {
		if got := FromBCD(test.in); got != test.want {
			t.Errorf("FromBCD(%02X) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestToBCDExamples(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{0, 0x00},
		{5, 0x05},
		{11, 0x11},
		{99, 0x99},
	}
	for _, test := range tests {
		if got := ToBCD(test.in); got != test.want {
			t.Errorf("ToBCD(%d) = %02X, want %02X", test.in, got, test.want)
		}
	}
}

func TestFromTwosComplement(t *testing.T) {
	tests := []struct {
		in   uint8
		want int
	}{
		{0x00, 0},
		{0x01, 1},
		{0x7F, 127},
		{0xFF, -1},
		{0x80, -128},
	}
	for _, test := range tests {
		if got := FromTwosComplement(test.in); got != test.want {
			t.Errorf("FromTwosComplement(%02X) = %d, want %d", test.in, got, test.want)
		}
	}
}

func TestFromTwosComplementRange(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		got := FromTwosComplement(uint8(b))
		if got < -128 || got > 127 {
			t.Errorf("FromTwosComplement(%02X) = %d, out of range [-128,127]", b, got)
		}
	}
}

func TestReset(t *testing.T) {
	r := &Registers{A: 1, X: 2, Y: 3, SP: 0x80, P: 0xFF, PC: 0x1234}
	r.Reset()
	want := &Registers{A: 0, X: 0, Y: 0, SP: 0xFD, P: Unused | Interrupt, PC: 0x1234}
	if diff := deep.Equal(r, want); diff != nil {
		t.Errorf("Reset() diff: %v", diff)
	}
}

func TestStackAddr(t *testing.T) {
	r := &Registers{SP: 0xFD}
	addr := r.PushAddr()
	if addr != 0x01FD {
		t.Errorf("PushAddr() = %04X, want 01FD", addr)
	}
	if r.SP != 0xFC {
		t.Errorf("after PushAddr SP = %02X, want FC", r.SP)
	}
	addr = r.PopAddr()
	if addr != 0x01FD {
		t.Errorf("PopAddr() = %04X, want 01FD", addr)
	}
	if r.SP != 0xFD {
		t.Errorf("after PopAddr SP = %02X, want FD", r.SP)
	}
}
