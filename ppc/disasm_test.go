package ppc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want Instruction
	}{
		{
			name: "offset form load",
			word: 0x80630004,
			want: Instruction{
				Mnemonic: "lwz",
				Operands: []Operand{
					{Kind: OperandGPR, Index: 3},
					{Kind: OperandImmediate, Value: 0x4},
					{Kind: OperandGPR, Index: 3},
				},
				OffsetForm: true,
			},
		},
		{
			name: "simplified register move",
			word: 0x7C601B78,
			want: Instruction{
				Mnemonic: "mr",
				Operands: []Operand{
					{Kind: OperandGPR, Index: 0},
					{Kind: OperandGPR, Index: 3},
				},
			},
		},
		{
			name: "conditional branch with negative displacement",
			word: 0x4182FFF8,
			want: Instruction{
				Mnemonic: "beq",
				Operands: []Operand{
					{Kind: OperandImmediate, Value: 0xFFF8},
				},
			},
		},
		{
			name: "exact word",
			word: 0x4E800020,
			want: Instruction{Mnemonic: "blr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decode(tt.word)
			if !ok {
				t.Fatalf("Decode(0x%08X) did not match", tt.word)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(0x%08X) mismatch (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}

func TestDecodeNoMatch(t *testing.T) {
	words := []uint32{0x00000000, 0x12345678, 0xFFFFFFFF}
	for _, word := range words {
		if in, ok := Decode(word); ok {
			t.Errorf("Decode(0x%08X) = %q, want no match", word, in)
		}
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word uint32
		want string
	}{
		{0x60000000, "nop"},
		{0x4E800020, "blr"},
		{0x38600001, "li r3, 0x1"},
		{0x3C808000, "lis r4, 0x8000"},
		{0x7C601B78, "mr r0, r3"},
		{0x7C0802A6, "mflr r0"},
		{0x80630004, "lwz r3, 0x4(r3)"},
		{0x9421FFF8, "stwu r1, 0xFFF8(r1)"},
		{0x3821FFF8, "addi r1, r1, 0xFFF8"},
		{0x60000001, "ori r0, r0, 0x1"},
		{0x2C030000, "cmpwi r3, 0x0"},
		{0x4182FFF8, "beq 0xFFF8"},
		{0x7C642A14, "add r3, r4, r5"},
		{0xC0230010, "lfs f1, 0x10(r3)"},
		{0x12345678, ".word 0x12345678"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Disassemble(tt.word); got != tt.want {
				t.Errorf("Disassemble(0x%08X) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}
