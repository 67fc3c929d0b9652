// Package gecko decodes the Gecko binary cheat-code format, a sequence of
// 32-bit words grouped into tagged records describing memory patches for a
// PowerPC-based game runtime, into annotated, human-readable records.
package gecko

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"geckodec/ppc"
)

// RecordType identifies the record family selected by a tag byte. Unknown
// tags map to the explicit RecordTypeUnsupported arm.
type RecordType int

const (
	RecordTypeUnsupported   RecordType = iota
	RecordTypeFill16                   // 0x02/0x03 constant 16-bit fill
	RecordTypeWrite32                  // 0x04/0x05 constant 32-bit write
	RecordTypeWriteString              // 0x06 string/byte write
	RecordTypeSetRegister              // 0x80 set Gecko register
	RecordTypeLoadRegister             // 0x82 load into Gecko register
	RecordTypeStoreRegister            // 0x84/0x94 store Gecko register
	RecordTypeExecuteASM               // 0xC0 execute assembly
	RecordTypeInsertASM                // 0xC2/0xC3 insert assembly
	RecordTypeBranch                   // 0xC6/0xC7 create a branch
)

func (t RecordType) String() string {
	switch t {
	case RecordTypeFill16:
		return "FILL16"
	case RecordTypeWrite32:
		return "WRITE32"
	case RecordTypeWriteString:
		return "WRITE_STRING"
	case RecordTypeSetRegister:
		return "SET_REGISTER"
	case RecordTypeLoadRegister:
		return "LOAD_REGISTER"
	case RecordTypeStoreRegister:
		return "STORE_REGISTER"
	case RecordTypeExecuteASM:
		return "EXECUTE_ASM"
	case RecordTypeInsertASM:
		return "INSERT_ASM"
	case RecordTypeBranch:
		return "BRANCH"
	default:
		return "UNSUPPORTED"
	}
}

// recordTypeForTag maps a tag byte to its record family.
func recordTypeForTag(tag byte) RecordType {
	switch tag {
	case 0x02, 0x03:
		return RecordTypeFill16
	case 0x04, 0x05:
		return RecordTypeWrite32
	case 0x06:
		return RecordTypeWriteString
	case 0x80:
		return RecordTypeSetRegister
	case 0x82:
		return RecordTypeLoadRegister
	case 0x84, 0x94:
		return RecordTypeStoreRegister
	case 0xC0:
		return RecordTypeExecuteASM
	case 0xC2, 0xC3:
		return RecordTypeInsertASM
	case 0xC6, 0xC7:
		return RecordTypeBranch
	default:
		return RecordTypeUnsupported
	}
}

// AddressOffset names the extra offset source a store-register record adds
// to its address.
type AddressOffset int

const (
	OffsetNone        AddressOffset = iota
	OffsetBaseAddress               // base address register
	OffsetPointer                   // pointer offset register
)

func (o AddressOffset) String() string {
	switch o {
	case OffsetBaseAddress:
		return "ba"
	case OffsetPointer:
		return "po"
	default:
		return ""
	}
}

// Record is one decoded Gecko code record.
type Record struct {
	Type  RecordType
	Index int      // 1-based record ordinal within the code list
	Raw   []uint32 // words consumed by this record

	Address  uint32 // target address
	Value    uint32 // written value (16-bit fills keep it in the low half)
	Count    uint32 // fill repeat count
	Register uint8  // Gecko register index

	Bytes []byte // string-write payload, truncated to the declared count

	ValueSize   uint8         // store-register element size in bytes
	Consecutive uint16        // store-register consecutive value count
	Offset      AddressOffset // store-register extra offset source

	Target uint32 // branch target

	LineCount    uint32   // declared assembly line count; read but not trusted
	Instructions []uint32 // embedded instruction words up to the terminator
	Terminated   bool     // a terminator word closed the assembly block
}

// Description returns the annotated text for the record.
func (r *Record) Description() string {
	switch r.Type {
	case RecordTypeFill16:
		return fmt.Sprintf("// - Constant 16-bit RAM Fill -\n// Range: 0x%08X to 0x%08X\n// Value: 0x%04X",
			r.Address, r.Address+r.Count+1, uint16(r.Value))

	case RecordTypeWrite32:
		return fmt.Sprintf("// - Constant 32-bit RAM Write -\n// Target address: 0x%08X\n// Value: 0x%08X",
			r.Address, r.Value)

	case RecordTypeWriteString:
		return r.describeWriteString()

	case RecordTypeSetRegister:
		return fmt.Sprintf("// gr%d = 0x%08X", r.Register, r.Value)

	case RecordTypeLoadRegister:
		return fmt.Sprintf("// - Load value 0x%08X into register %d", r.Value, r.Register)

	case RecordTypeStoreRegister:
		at := fmt.Sprintf("0x%08X", r.Address)
		if r.Offset != OffsetNone {
			at += " + " + r.Offset.String()
		}
		return fmt.Sprintf("// - Store register %d starting at address %s with %d consecutive written %d-byte values -",
			r.Register, at, r.Consecutive, r.ValueSize)

	case RecordTypeExecuteASM:
		var sb strings.Builder
		fmt.Fprintf(&sb, "// - Execute Assembly - \n// Target address: 0x%08X\n\n", r.Address)
		for _, word := range r.Instructions {
			sb.WriteString(ppc.Disassemble(word))
			sb.WriteByte('\n')
		}
		return sb.String()

	case RecordTypeInsertASM:
		var sb strings.Builder
		fmt.Fprintf(&sb, "// - Insert Assembly -\n// Target address: 0x%08X\n\n", r.Address)
		for _, word := range r.Instructions {
			sb.WriteString(ppc.Disassemble(word))
			sb.WriteByte('\n')
		}
		return sb.String()

	case RecordTypeBranch:
		return fmt.Sprintf("// - Create a Branch -\n// Target address: 0x%08X\n// Branch to: 0x%08X\n",
			r.Address, r.Target)

	default:
		return "// - Unsupported -"
	}
}

func (r *Record) describeWriteString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// - String RAM Write - \n// Target address: 0x%08X\n", r.Address)

	if isPrintableString(r.Bytes) {
		fmt.Fprintf(&sb, "// String contents: %q\n", string(r.Bytes[:len(r.Bytes)-1]))
		return sb.String()
	}

	// Not a string, or not printable: dump the raw bytes, eight per line.
	sb.WriteString("// Byte contents:\n// [")
	const bytesPerLine = 8
	for i, b := range r.Bytes {
		if i != 0 && i%bytesPerLine == 0 {
			sb.WriteString("\n// ")
		}
		if i == len(r.Bytes)-1 {
			fmt.Fprintf(&sb, "0x%02X]", b)
		} else {
			fmt.Fprintf(&sb, "0x%02X, ", b)
		}
	}
	return sb.String()
}

// isPrintableString reports whether a byte-write payload renders as a quoted
// string: the sole zero byte is the final byte and everything before it is
// printable text.
func isPrintableString(b []byte) bool {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return false
	}
	body := b[:len(b)-1]
	if !utf8.Valid(body) {
		return false
	}
	for _, r := range string(body) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
