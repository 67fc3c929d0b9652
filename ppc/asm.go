package ppc

import (
	"strconv"
	"strings"
)

// opToken is one parsed operand token: either a register of a given class or
// a numeric immediate.
type opToken struct {
	isReg bool
	class byte  // 'r' or 'f' when isReg
	value int64 // register index or immediate value
}

// Assemble converts one instruction line to its machine word. ok is false
// when the line does not resolve to a supported encoding: unknown mnemonic,
// operand count mismatch, an unparseable operand token, or field values out
// of range for the instruction.
func Assemble(line string) (word uint32, ok bool) {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(tokens) == 0 {
		return 0, false
	}

	def, found := mnemonicIndex[tokens[0]]
	if !found {
		return 0, false
	}
	args := tokens[1:]

	// An imm(reg) token is one syntactic unit carrying two logical operands,
	// so each one present bumps the resolved operand count by one.
	count := len(args)
	for _, tok := range args {
		off, valid := isOffset(tok)
		if !valid {
			return 0, false
		}
		if off {
			count++
		}
	}
	if count != len(def.operands) {
		return 0, false
	}

	vals := make([]opToken, 0, len(def.operands))
	for _, tok := range args {
		if off, _ := isOffset(tok); off {
			immTok, regTok, splitOK := splitOffset(tok)
			if !splitOK {
				return 0, false
			}
			imm, immOK := parseToken(immTok)
			reg, regOK := parseToken(regTok)
			if !immOK || !regOK {
				return 0, false
			}
			vals = append(vals, imm, reg)
			continue
		}

		v, tokOK := parseToken(tok)
		if !tokOK {
			return 0, false
		}
		vals = append(vals, v)
	}

	word = def.match
	for i, f := range def.operands {
		enc, encOK := encodeField(f, vals[i])
		if !encOK {
			return 0, false
		}
		word |= enc
	}

	return word, true
}

// isOffset reports whether a token uses the imm(reg) offset syntax. valid is
// false when only one side of the parenthesis pair is present.
func isOffset(tok string) (off, valid bool) {
	left := strings.Contains(tok, "(")
	right := strings.HasSuffix(tok, ")")

	switch {
	case left && right:
		return true, true
	case !left && !right:
		return false, true
	default:
		return false, false
	}
}

// splitOffset splits an imm(reg) token into its two operand tokens.
func splitOffset(tok string) (immTok, regTok string, ok bool) {
	idx := strings.Index(tok, "(")
	if idx < 0 {
		return "", "", false
	}
	return tok[:idx], strings.TrimSuffix(tok[idx+1:], ")"), true
}

// parseToken parses one operand token: r<N> or f<N> registers, or a decimal
// or 0x-prefixed hexadecimal immediate with an optional leading minus.
func parseToken(tok string) (opToken, bool) {
	if rest, isR := strings.CutPrefix(tok, "r"); isR {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return opToken{}, false
		}
		return opToken{isReg: true, class: 'r', value: int64(n)}, true
	}
	if rest, isF := strings.CutPrefix(tok, "f"); isF {
		n, err := strconv.ParseUint(rest, 10, 8)
		if err != nil {
			return opToken{}, false
		}
		return opToken{isReg: true, class: 'f', value: int64(n)}, true
	}

	neg := false
	if rest, isNeg := strings.CutPrefix(tok, "-"); isNeg {
		neg = true
		tok = rest
	}

	var n uint64
	var err error
	if hex, isHex := strings.CutPrefix(tok, "0x"); isHex {
		n, err = strconv.ParseUint(hex, 16, 16)
	} else {
		n, err = strconv.ParseUint(tok, 10, 16)
	}
	if err != nil {
		return opToken{}, false
	}

	v := int64(n)
	if neg {
		v = -v
		if v < -0x8000 {
			return opToken{}, false
		}
	}

	return opToken{value: v}, true
}

// encodeField places one operand value into its instruction field,
// validating range and operand class against the field descriptor.
func encodeField(f field, t opToken) (uint32, bool) {
	switch f.kind {
	case fieldGPR, fieldFPR:
		class := byte('r')
		if f.kind == fieldFPR {
			class = 'f'
		}
		if !t.isReg || t.class != class || t.value > 31 {
			return 0, false
		}
		enc := uint32(t.value) << f.shift
		if f.dup >= 0 {
			enc |= uint32(t.value) << uint(f.dup)
		}
		return enc, true

	case fieldImm:
		if t.isReg {
			return 0, false
		}
		v := uint16(t.value & 0xFFFF)
		if f.width == 16 && f.scale == 0 {
			return uint32(v) << f.shift, true
		}
		if f.scale > 0 {
			// Displacement fields drop their low scale bits.
			if v%(1<<f.scale) != 0 {
				return 0, false
			}
			raw := (uint32(v) >> f.scale) & ((1 << f.width) - 1)
			return raw << f.shift, true
		}
		// Small unsigned fields (shift amounts, mask bounds).
		if t.value < 0 || t.value >= 1<<f.width {
			return 0, false
		}
		return uint32(t.value) << f.shift, true
	}

	return 0, false
}
