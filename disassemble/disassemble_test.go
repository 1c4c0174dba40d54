package disassemble

import (
	"strings"
	"testing"

	"github.com/sixfiveohtwo/mos6502/mmu"
)

func rom(t *testing.T, image []uint8) *mmu.MMU {
	t.Helper()
	m, err := mmu.NewFlat(0x0000, 0x0200, 0x1000, len(image), image)
	if err != nil {
		t.Fatalf("NewFlat: %v", err)
	}
	return m
}

func TestStepModes(t *testing.T) {
	tests := []struct {
		name     string
		image    []uint8
		wantCnt  int
		wantOp   string
		wantMode string // substring that must appear in the rendered operand
	}{
		{"implied", []uint8{0xEA}, 1, "NOP", ""},
		{"acc", []uint8{0x0A}, 1, "ASL", "A"},
		{"imm", []uint8{0xA9, 0x42}, 2, "LDA", "#42"},
		{"zp", []uint8{0xA5, 0x10}, 2, "LDA", "10"},
		{"zpx", []uint8{0xB5, 0x10}, 2, "LDA", "10,X"},
		{"abs", []uint8{0x4C, 0x34, 0x12}, 3, "JMP", "1234"},
		{"absx", []uint8{0xBD, 0x34, 0x12}, 3, "LDA", "1234,X"},
		{"ind", []uint8{0x6C, 0x34, 0x12}, 3, "JMP", "(1234)"},
		{"izx", []uint8{0xA1, 0x10}, 2, "LDA", "(10,X)"},
		{"izy", []uint8{0xB1, 0x10}, 2, "LDA", "(10),Y"},
		{"relative forward", []uint8{0x10, 0x02}, 2, "BPL", "1004"},
		{"undocumented", []uint8{0xFF}, 1, "UNIMPLEMENTED", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := rom(t, tc.image)
			out, n := Step(0x1000, m)
			if n != tc.wantCnt {
				t.Errorf("byte count = %d, want %d", n, tc.wantCnt)
			}
			if !strings.Contains(out, tc.wantOp) {
				t.Errorf("output %q missing mnemonic %q", out, tc.wantOp)
			}
			if tc.wantMode != "" && !strings.Contains(out, tc.wantMode) {
				t.Errorf("output %q missing operand %q", out, tc.wantMode)
			}
		})
	}
}

func TestStepDoesNotFollowJMP(t *testing.T) {
	// JMP $9999 followed immediately by an LDA: disassembling at 0x1000
	// must print the JMP literally and not chase its target.
	m := rom(t, []uint8{0x4C, 0x99, 0x99, 0xA9, 0x01})
	out, n := Step(0x1000, m)
	if n != 3 {
		t.Fatalf("byte count = %d, want 3", n)
	}
	if !strings.Contains(out, "JMP") || !strings.Contains(out, "9999") {
		t.Errorf("output %q, want literal JMP 9999", out)
	}
}
