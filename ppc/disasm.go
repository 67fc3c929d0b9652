package ppc

import "fmt"

// Decode matches an instruction word against the table and extracts its
// operands. ok is false when no definition matches.
func Decode(word uint32) (Instruction, bool) {
	for i := range instrTable {
		def := &instrTable[i]
		if word&def.mask != def.match {
			continue
		}
		if def.extra != nil && !def.extra(word) {
			continue
		}

		in := Instruction{Mnemonic: def.mnemonic, OffsetForm: def.offsetForm}
		if len(def.operands) > 0 {
			in.Operands = make([]Operand, 0, len(def.operands))
		}
		for _, f := range def.operands {
			raw := (word >> f.shift) & ((1 << f.width) - 1)
			switch f.kind {
			case fieldGPR:
				in.Operands = append(in.Operands, Operand{Kind: OperandGPR, Index: uint8(raw)})
			case fieldFPR:
				in.Operands = append(in.Operands, Operand{Kind: OperandFPR, Index: uint8(raw)})
			case fieldImm:
				in.Operands = append(in.Operands, Operand{Kind: OperandImmediate, Value: uint16(raw << f.scale)})
			}
		}

		return in, true
	}

	return Instruction{}, false
}

// Disassemble renders an instruction word as text. Words that match no table
// entry render as a raw .word directive.
func Disassemble(word uint32) string {
	in, ok := Decode(word)
	if !ok {
		return fmt.Sprintf(".word 0x%08X", word)
	}
	return in.String()
}
