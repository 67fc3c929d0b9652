package ppc

import "testing"

func TestAssemble(t *testing.T) {
	tests := []struct {
		line string
		want uint32
	}{
		{"blr", 0x4E800020},
		{"nop", 0x60000000},
		{"li r3, 0x1", 0x38600001},
		{"lis r4, 0x8000", 0x3C808000},
		{"lwz r3, 0x4(r3)", 0x80630004},
		{"stw r0, 8(r1)", 0x90010008},
		{"stwu r1, -8(r1)", 0x9421FFF8},
		{"addi r1, r1, -8", 0x3821FFF8},
		{"mr r0, r3", 0x7C601B78},
		{"mflr r0", 0x7C0802A6},
		{"mtlr r0", 0x7C0803A6},
		{"cmpwi r3, 0", 0x2C030000},
		{"beq 0xFFF8", 0x4182FFF8},
		{"beq -8", 0x4182FFF8},
		{"add r3, r4, r5", 0x7C642A14},
		{"or r3, r4, r5", 0x7C832B78},
		{"lfs f1, 0x10(r3)", 0xC0230010},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := Assemble(tt.line)
			if !ok {
				t.Fatalf("Assemble(%q) did not match", tt.line)
			}
			if got != tt.want {
				t.Errorf("Assemble(%q) = 0x%08X, want 0x%08X", tt.line, got, tt.want)
			}
		})
	}
}

func TestAssembleNoMatch(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"unknown mnemonic", "frob r1, r2"},
		{"operands on zero-operand mnemonic", "blr r3"},
		{"too few operands", "lwz r3, r4"},
		{"too many operands", "mflr r0, r1"},
		{"register out of range", "mr r0, r40"},
		{"immediate where register expected", "mr r0, 3"},
		{"register where immediate expected", "li r3, r4"},
		{"immediate out of range", "addi r1, r1, 0x10000"},
		{"negative immediate out of range", "addi r1, r1, -40000"},
		{"unbalanced offset paren", "lwz r3, 4(r3"},
		{"misaligned branch displacement", "beq 0x3"},
		{"garbage register index", "li rx, 1"},
		{"wrong register class", "lfs r1, 0x10(r3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if word, ok := Assemble(tt.line); ok {
				t.Errorf("Assemble(%q) = 0x%08X, want no match", tt.line, word)
			}
		})
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	lines := []string{
		"blr",
		"nop",
		"li r3, 0x1",
		"lwz r3, 0x4(r3)",
		"stwu r1, 0xFFF8(r1)",
		"mr r0, r3",
		"mflr r0",
		"cmpwi r3, 0x0",
		"beq 0xFFF8",
		"add r3, r4, r5",
		"rlwinm r3, r4, 0x2, 0x0, 0x1D",
		"srawi r3, r4, 0x10",
		"fmr f1, f2",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			word, ok := Assemble(line)
			if !ok {
				t.Fatalf("Assemble(%q) did not match", line)
			}
			if got := Disassemble(word); got != line {
				t.Errorf("Disassemble(0x%08X) = %q, want %q", word, got, line)
			}
		})
	}
}
