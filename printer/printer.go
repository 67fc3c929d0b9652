// Package printer renders decoded Gecko records as a text report.
package printer

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/arch/ppc64/ppc64asm"

	"geckodec/gecko"
)

// Options controls report rendering. The zero value produces the default
// report: the standard record separator and the built-in mnemonic syntax.
type Options struct {
	// Separator is placed after every record. Empty means the default
	// gecko.RecordSeparator.
	Separator string

	// GNUSyntax renders embedded assembly with the GNU assembler syntax of
	// the full PowerPC disassembler instead of the built-in subset.
	GNUSyntax bool
}

// Report renders the records one after another, each followed by the
// separator.
func Report(records []gecko.Record, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = gecko.RecordSeparator
	}

	var sb strings.Builder
	for i := range records {
		if opts.GNUSyntax && isASMRecord(records[i].Type) {
			sb.WriteString(describeASMGNU(&records[i]))
		} else {
			sb.WriteString(records[i].Description())
		}
		sb.WriteString(sep)
	}
	return sb.String()
}

func isASMRecord(t gecko.RecordType) bool {
	return t == gecko.RecordTypeExecuteASM || t == gecko.RecordTypeInsertASM
}

// describeASMGNU mirrors the record's own assembly rendering but routes each
// instruction word through the full disassembler.
func describeASMGNU(r *gecko.Record) string {
	var sb strings.Builder
	switch r.Type {
	case gecko.RecordTypeExecuteASM:
		fmt.Fprintf(&sb, "// - Execute Assembly - \n// Target address: 0x%08X\n\n", r.Address)
	case gecko.RecordTypeInsertASM:
		fmt.Fprintf(&sb, "// - Insert Assembly -\n// Target address: 0x%08X\n\n", r.Address)
	}
	for _, word := range r.Instructions {
		sb.WriteString(gnuInstruction(word))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// gnuInstruction disassembles one word with GNU assembler syntax, falling
// back to a raw data directive when the word does not decode.
func gnuInstruction(word uint32) string {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], word)
	inst, err := ppc64asm.Decode(buf[:], binary.BigEndian)
	if err != nil {
		return fmt.Sprintf(".word 0x%08X", word)
	}
	return ppc64asm.GNUSyntax(inst, 0)
}
