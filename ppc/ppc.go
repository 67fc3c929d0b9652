// Package ppc provides a bidirectional mapping between 32-bit PowerPC
// machine-code words and their textual mnemonic form, for the fixed set of
// instructions commonly found embedded in cheat-code assembly blocks.
package ppc

import (
	"fmt"
	"strings"
)

// MaxOperands is the most operands any supported instruction takes.
const MaxOperands = 5

// OperandKind identifies the variant an Operand carries.
type OperandKind int

const (
	OperandAbsent OperandKind = iota
	OperandGPR
	OperandFPR
	OperandImmediate
)

// Operand is one textual operand: a general-purpose register, a
// floating-point register, or a 16-bit immediate (signed values are
// reinterpreted as unsigned).
type Operand struct {
	Kind  OperandKind
	Index uint8  // register index for OperandGPR/OperandFPR
	Value uint16 // immediate value for OperandImmediate
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandGPR:
		return fmt.Sprintf("r%d", o.Index)
	case OperandFPR:
		return fmt.Sprintf("f%d", o.Index)
	case OperandImmediate:
		return fmt.Sprintf("0x%X", o.Value)
	default:
		return ""
	}
}

// Instruction is the textual form of one machine word: a mnemonic plus an
// ordered list of operands.
type Instruction struct {
	Mnemonic string
	Operands []Operand

	// OffsetForm marks load/store style syntax where the final two operands
	// print as a single imm(reg) token.
	OffsetForm bool
}

func (in Instruction) String() string {
	if len(in.Operands) == 0 {
		return in.Mnemonic
	}

	parts := make([]string, 0, len(in.Operands))
	if in.OffsetForm && len(in.Operands) >= 2 {
		n := len(in.Operands)
		for _, op := range in.Operands[:n-2] {
			parts = append(parts, op.String())
		}
		parts = append(parts, fmt.Sprintf("%s(%s)", in.Operands[n-2], in.Operands[n-1]))
	} else {
		for _, op := range in.Operands {
			parts = append(parts, op.String())
		}
	}

	return in.Mnemonic + " " + strings.Join(parts, ", ")
}
