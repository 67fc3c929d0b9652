package ppc

// fieldKind identifies how an operand field is parsed and rendered.
type fieldKind int

const (
	fieldGPR fieldKind = iota
	fieldFPR
	fieldImm
)

// field describes where one operand lives inside the instruction word, in
// textual operand order.
type field struct {
	kind  fieldKind
	shift uint // bit position of the field's least significant bit
	width uint // field width in bits
	scale uint // left shift applied to the raw field value in textual form
	dup   int  // second bit position the value is replicated at, -1 if none
}

func gpr(shift uint) field { return field{kind: fieldGPR, shift: shift, width: 5, dup: -1} }
func fpr(shift uint) field { return field{kind: fieldFPR, shift: shift, width: 5, dup: -1} }
func imm16() field         { return field{kind: fieldImm, shift: 0, width: 16, dup: -1} }

func immAt(shift, width uint) field {
	return field{kind: fieldImm, shift: shift, width: width, dup: -1}
}

// branchDisp is the 14-bit conditional-branch displacement, stored shifted
// right by two. The textual value is the byte offset.
func branchDisp() field {
	return field{kind: fieldImm, shift: 2, width: 14, scale: 2, dup: -1}
}

// instrDef ties a mnemonic to its encoding: fixed bits (match under mask)
// plus operand field positions in textual operand order. Definitions are
// scanned in order when disassembling, so entries with tighter masks come
// before the general families they specialize.
type instrDef struct {
	mnemonic   string
	match      uint32
	mask       uint32
	operands   []field
	offsetForm bool
	extra      func(word uint32) bool // match constraint beyond the mask
}

var instrTable = []instrDef{
	// Exact words.
	{mnemonic: "nop", match: 0x60000000, mask: 0xFFFFFFFF},
	{mnemonic: "blr", match: 0x4E800020, mask: 0xFFFFFFFF},
	{mnemonic: "bctr", match: 0x4E800420, mask: 0xFFFFFFFF},
	{mnemonic: "bctrl", match: 0x4E800421, mask: 0xFFFFFFFF},
	{mnemonic: "sc", match: 0x44000002, mask: 0xFFFFFFFF},
	{mnemonic: "sync", match: 0x7C0004AC, mask: 0xFFFFFFFF},
	{mnemonic: "isync", match: 0x4C00012C, mask: 0xFFFFFFFF},
	{mnemonic: "eieio", match: 0x7C0006AC, mask: 0xFFFFFFFF},
	{mnemonic: "rfi", match: 0x4C000064, mask: 0xFFFFFFFF},

	// Simplified mnemonics.
	{mnemonic: "li", match: 0x38000000, mask: 0xFC1F0000, operands: []field{gpr(21), imm16()}},
	{mnemonic: "lis", match: 0x3C000000, mask: 0xFC1F0000, operands: []field{gpr(21), imm16()}},
	{
		mnemonic: "mr",
		match:    0x7C000378,
		mask:     0xFC0007FF,
		operands: []field{gpr(16), {kind: fieldGPR, shift: 21, width: 5, dup: 11}},
		extra:    func(w uint32) bool { return (w>>21)&0x1F == (w>>11)&0x1F },
	},
	{mnemonic: "mflr", match: 0x7C0802A6, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mtlr", match: 0x7C0803A6, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mfctr", match: 0x7C0902A6, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mtctr", match: 0x7C0903A6, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mfcr", match: 0x7C000026, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mfmsr", match: 0x7C0000A6, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},
	{mnemonic: "mtmsr", match: 0x7C000124, mask: 0xFC1FFFFF, operands: []field{gpr(21)}},

	// Compares against cr0.
	{mnemonic: "cmpwi", match: 0x2C000000, mask: 0xFFE00000, operands: []field{gpr(16), imm16()}},
	{mnemonic: "cmplwi", match: 0x28000000, mask: 0xFFE00000, operands: []field{gpr(16), imm16()}},
	{mnemonic: "cmpw", match: 0x7C000000, mask: 0xFFE007FF, operands: []field{gpr(16), gpr(11)}},
	{mnemonic: "cmplw", match: 0x7C000040, mask: 0xFFE007FF, operands: []field{gpr(16), gpr(11)}},

	// Conditional branches on cr0 (relative, not taking the link).
	{mnemonic: "beq", match: 0x41820000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "bne", match: 0x40820000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "blt", match: 0x41800000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "bgt", match: 0x41810000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "bge", match: 0x40800000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "ble", match: 0x40810000, mask: 0xFFFF0003, operands: []field{branchDisp()}},
	{mnemonic: "bdnz", match: 0x42000000, mask: 0xFFFF0003, operands: []field{branchDisp()}},

	// D-form loads and stores, imm(reg) syntax.
	{mnemonic: "lwz", match: 0x80000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lwzu", match: 0x84000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lbz", match: 0x88000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lbzu", match: 0x8C000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stw", match: 0x90000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stwu", match: 0x94000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stb", match: 0x98000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stbu", match: 0x9C000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lhz", match: 0xA0000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lhzu", match: 0xA4000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lha", match: 0xA8000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lhau", match: 0xAC000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "sth", match: 0xB0000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "sthu", match: 0xB4000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lmw", match: 0xB8000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stmw", match: 0xBC000000, mask: 0xFC000000, operands: []field{gpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lfs", match: 0xC0000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lfsu", match: 0xC4000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lfd", match: 0xC8000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "lfdu", match: 0xCC000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stfs", match: 0xD0000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stfsu", match: 0xD4000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stfd", match: 0xD8000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},
	{mnemonic: "stfdu", match: 0xDC000000, mask: 0xFC000000, operands: []field{fpr(21), imm16(), gpr(16)}, offsetForm: true},

	// D-form arithmetic.
	{mnemonic: "mulli", match: 0x1C000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},
	{mnemonic: "subfic", match: 0x20000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},
	{mnemonic: "addic", match: 0x30000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},
	{mnemonic: "addic.", match: 0x34000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},
	{mnemonic: "addi", match: 0x38000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},
	{mnemonic: "addis", match: 0x3C000000, mask: 0xFC000000, operands: []field{gpr(21), gpr(16), imm16()}},

	// D-form logical.
	{mnemonic: "ori", match: 0x60000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},
	{mnemonic: "oris", match: 0x64000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},
	{mnemonic: "xori", match: 0x68000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},
	{mnemonic: "xoris", match: 0x6C000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},
	{mnemonic: "andi.", match: 0x70000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},
	{mnemonic: "andis.", match: 0x74000000, mask: 0xFC000000, operands: []field{gpr(16), gpr(21), imm16()}},

	// Rotate-and-mask.
	{mnemonic: "rlwimi", match: 0x50000000, mask: 0xFC000001, operands: []field{gpr(16), gpr(21), immAt(11, 5), immAt(6, 5), immAt(1, 5)}},
	{mnemonic: "rlwinm", match: 0x54000000, mask: 0xFC000001, operands: []field{gpr(16), gpr(21), immAt(11, 5), immAt(6, 5), immAt(1, 5)}},
	{mnemonic: "rlwnm", match: 0x5C000000, mask: 0xFC000001, operands: []field{gpr(16), gpr(21), gpr(11), immAt(6, 5), immAt(1, 5)}},

	// XO-form arithmetic.
	{mnemonic: "add", match: 0x7C000214, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "addc", match: 0x7C000014, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "adde", match: 0x7C000114, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "subf", match: 0x7C000050, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "subfc", match: 0x7C000010, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "subfe", match: 0x7C000110, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "mullw", match: 0x7C0001D6, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "mulhw", match: 0x7C000096, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "mulhwu", match: 0x7C000016, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "divw", match: 0x7C0003D6, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "divwu", match: 0x7C000396, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "neg", match: 0x7C0000D0, mask: 0xFC00FFFF, operands: []field{gpr(21), gpr(16)}},

	// X-form logical and shifts.
	{mnemonic: "and", match: 0x7C000038, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "andc", match: 0x7C000078, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "or", match: 0x7C000378, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "orc", match: 0x7C000338, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "xor", match: 0x7C000278, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "nand", match: 0x7C0003B8, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "nor", match: 0x7C0000F8, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "eqv", match: 0x7C000238, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "slw", match: 0x7C000030, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "srw", match: 0x7C000430, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "sraw", match: 0x7C000630, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), gpr(11)}},
	{mnemonic: "srawi", match: 0x7C000670, mask: 0xFC0007FF, operands: []field{gpr(16), gpr(21), immAt(11, 5)}},
	{mnemonic: "cntlzw", match: 0x7C000034, mask: 0xFC00FFFF, operands: []field{gpr(16), gpr(21)}},
	{mnemonic: "extsb", match: 0x7C000774, mask: 0xFC00FFFF, operands: []field{gpr(16), gpr(21)}},
	{mnemonic: "extsh", match: 0x7C000734, mask: 0xFC00FFFF, operands: []field{gpr(16), gpr(21)}},

	// X-form indexed loads and stores.
	{mnemonic: "lwzx", match: 0x7C00002E, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "lbzx", match: 0x7C0000AE, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "lhzx", match: 0x7C00022E, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "stwx", match: 0x7C00012E, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "stbx", match: 0x7C0001AE, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},
	{mnemonic: "sthx", match: 0x7C00032E, mask: 0xFC0007FF, operands: []field{gpr(21), gpr(16), gpr(11)}},

	// Floating point.
	{mnemonic: "fmr", match: 0xFC000090, mask: 0xFC1F07FF, operands: []field{fpr(21), fpr(11)}},
	{mnemonic: "fneg", match: 0xFC000050, mask: 0xFC1F07FF, operands: []field{fpr(21), fpr(11)}},
	{mnemonic: "fabs", match: 0xFC000210, mask: 0xFC1F07FF, operands: []field{fpr(21), fpr(11)}},
	{mnemonic: "frsp", match: 0xFC000018, mask: 0xFC1F07FF, operands: []field{fpr(21), fpr(11)}},
	{mnemonic: "fctiwz", match: 0xFC00001E, mask: 0xFC1F07FF, operands: []field{fpr(21), fpr(11)}},
	{mnemonic: "fadd", match: 0xFC00002A, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fsub", match: 0xFC000028, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fdiv", match: 0xFC000024, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fadds", match: 0xEC00002A, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fsubs", match: 0xEC000028, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fdivs", match: 0xEC000024, mask: 0xFC0007FF, operands: []field{fpr(21), fpr(16), fpr(11)}},
	{mnemonic: "fmul", match: 0xFC000032, mask: 0xFC00F83F, operands: []field{fpr(21), fpr(16), fpr(6)}},
	{mnemonic: "fmuls", match: 0xEC000032, mask: 0xFC00F83F, operands: []field{fpr(21), fpr(16), fpr(6)}},
}

// mnemonicIndex resolves a mnemonic to its definition for the assembly
// direction. Built once at init and never mutated afterwards, so it is safe
// to share across concurrent calls.
var mnemonicIndex = make(map[string]*instrDef, len(instrTable))

func init() {
	for i := range instrTable {
		def := &instrTable[i]
		if _, dup := mnemonicIndex[def.mnemonic]; !dup {
			mnemonicIndex[def.mnemonic] = def
		}
	}
}
