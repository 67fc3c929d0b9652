package gecko

import (
	"encoding/binary"
	"strings"

	"geckodec/common"
)

// Terminator words for embedded-assembly blocks.
const (
	// terminatorBLR is the branch-to-link-register word closing 0xC0 blocks.
	terminatorBLR = 0x4E800020
	// wordNOP is the no-op word closing 0xC2 blocks.
	wordNOP = 0x60000000
)

// RecordSeparator is the line emitted between record renderings in the
// single-blob text output.
const RecordSeparator = "\n\n// ---\n\n"

// asmBlockState tracks termination of an embedded-assembly block. A block
// starts active and closes the moment a terminator condition is seen; the
// historically inconsistent conditions that close a block live in the
// per-family decoders.
type asmBlockState int

const (
	blockActive asmBlockState = iota
	blockClosed
)

// Decoder decodes Gecko code word sequences into records. The zero value is
// not usable; construct with NewDecoder.
type Decoder struct {
	Log common.Logger
}

// NewDecoder creates a decoder with logging disabled.
func NewDecoder() *Decoder {
	return &Decoder{Log: common.NewNoOpLogger()}
}

// NewDecoderWithLogger creates a decoder with a custom logger.
func NewDecoderWithLogger(logger common.Logger) *Decoder {
	return &Decoder{Log: logger}
}

// Convert decodes an entire word sequence to the annotated text report, one
// record rendering per record followed by the record separator.
func Convert(words []uint32) (string, error) {
	records, err := NewDecoder().Decode(words)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := range records {
		sb.WriteString(records[i].Description())
		sb.WriteString(RecordSeparator)
	}
	return sb.String(), nil
}

// Decode validates and decodes an entire word sequence. The call is
// all-or-nothing: on the first unrecoverable condition it returns one
// structured error and no records.
func (d *Decoder) Decode(words []uint32) ([]Record, error) {
	if len(words) == 0 {
		return nil, errEmpty()
	}
	if len(words)%2 != 0 {
		return nil, errMalformed()
	}

	cur := newCursor(words)
	var records []Record

	for cur.remaining() > 0 {
		word, err := cur.peek()
		if err != nil {
			return nil, err
		}
		tag := byte(word >> 24)
		larger := tag&1 != 0
		index := cur.position()/2 + 1
		start := cur.position()

		recType := recordTypeForTag(tag)
		var rec Record
		switch recType {
		case RecordTypeFill16:
			rec, err = d.decodeFill16(cur, larger)
		case RecordTypeWrite32:
			rec, err = d.decodeWrite32(cur, larger)
		case RecordTypeWriteString:
			rec, err = d.decodeWriteString(cur, larger)
		case RecordTypeSetRegister:
			rec, err = d.decodeSetRegister(cur)
		case RecordTypeLoadRegister:
			rec, err = d.decodeLoadRegister(cur)
		case RecordTypeStoreRegister:
			rec, err = d.decodeStoreRegister(cur)
		case RecordTypeExecuteASM:
			rec, err = d.decodeExecuteASM(cur, larger)
		case RecordTypeInsertASM:
			rec, err = d.decodeInsertASM(cur, larger)
		case RecordTypeBranch:
			rec, err = d.decodeBranch(cur, larger)
		default:
			return nil, errInvalidType(index, word)
		}
		if err != nil {
			return nil, err
		}

		rec.Type = recType
		rec.Index = index
		rec.Raw = words[start:cur.position()]
		d.Log.Logf(common.SeverityDebug, "record %d: %s, %d words", index, recType, cur.position()-start)

		records = append(records, rec)
	}

	return records, nil
}

// readAddress consumes the tag/address word and resolves it.
func (d *Decoder) readAddress(cur *cursor, larger bool) (uint32, error) {
	raw, err := cur.readAndAdvance()
	if err != nil {
		return 0, err
	}
	return resolveAddress(raw, larger), nil
}

// decodeFill16 decodes a 0x02/0x03 record: the 16-bit value constantly
// fills the range address to address+count+1.
func (d *Decoder) decodeFill16(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	packed, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	return Record{
		Address: addr,
		Count:   packed >> 16,
		Value:   packed & 0xFFFF,
	}, nil
}

// decodeWrite32 decodes a 0x04/0x05 record: the value is constantly written
// to the address.
func (d *Decoder) decodeWrite32(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	value, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	return Record{Address: addr, Value: value}, nil
}

// decodeWriteString decodes a 0x06 record: the declared number of bytes,
// packed big-endian across the following words, written to the address.
// There is no guarantee the payload is actually text.
func (d *Decoder) decodeWriteString(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	byteCount, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	wordCount := (int(byteCount) + 3) / 4
	raw := make([]byte, 0, wordCount*4)
	for i := 0; i < wordCount; i++ {
		w, err := cur.readAndAdvance()
		if err != nil {
			return Record{}, err
		}
		raw = binary.BigEndian.AppendUint32(raw, w)
	}

	// Discard the padding in the final word.
	return Record{Address: addr, Count: byteCount, Bytes: raw[:byteCount]}, nil
}

// decodeSetRegister decodes a 0x80 record: gr<N> = value.
func (d *Decoder) decodeSetRegister(cur *cursor) (Record, error) {
	code, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}
	value, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	return Record{Register: uint8(code & 0xFF), Value: value}, nil
}

// decodeLoadRegister decodes a 0x82 record: load value into gr<N>.
func (d *Decoder) decodeLoadRegister(cur *cursor) (Record, error) {
	code, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}
	value, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	return Record{Register: uint8(code & 0xFF), Value: value}, nil
}

// decodeStoreRegister decodes a 0x84/0x94 record: store gr<N> at an address,
// optionally offset by the base address or pointer offset register, for a
// run of consecutive values of the selected element size.
func (d *Decoder) decodeStoreRegister(cur *cursor) (Record, error) {
	code, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	var valueSize uint8
	switch (code >> 20) & 0xF {
	case 0:
		valueSize = 1
	case 1:
		valueSize = 2
	case 2:
		valueSize = 4
	default:
		return Record{}, errParse("Invalid T type. Must be 0 (1 byte), 1 (2 bytes), or 2 (4 bytes).")
	}

	// The total number of consecutive written values is the 12-bit field
	// plus one.
	consecutive := uint16((code>>4)&0xFFF) + 1
	register := uint8(code & 0xF)

	// The address occupies the whole second word and is used verbatim.
	addr, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	offset := OffsetNone
	switch byte(code >> 24) {
	case 0x84:
		switch (code >> 16) & 0xF {
		case 0:
			offset = OffsetNone
		case 1:
			offset = OffsetBaseAddress
		default:
			return Record{}, errParse("Invalid store subtype. Must be 0 (plain address) or 1 (base address offset).")
		}
	case 0x94:
		offset = OffsetPointer
	}

	return Record{
		Address:     addr,
		Register:    register,
		ValueSize:   valueSize,
		Consecutive: consecutive,
		Offset:      offset,
	}, nil
}

// decodeExecuteASM decodes a 0xC0 record: a block of instruction-word pairs
// bounded by the declared line count. The block must end with a
// branch-to-link-register word; consumption stops the instant that word is
// seen in either half of a pair, whatever the declared count says.
func (d *Decoder) decodeExecuteASM(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	lineCount, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	var instrs []uint32
	state := blockActive
	for i := uint32(0); i < lineCount && state == blockActive; i++ {
		left, err := cur.readAndAdvance()
		if err != nil {
			return Record{}, err
		}
		right, err := cur.readAndAdvance()
		if err != nil {
			return Record{}, err
		}

		if left == terminatorBLR {
			instrs = append(instrs, left)
			state = blockClosed
			break
		}
		instrs = append(instrs, left)

		if right == terminatorBLR {
			instrs = append(instrs, right)
			state = blockClosed
			break
		}
		instrs = append(instrs, right)
	}

	return Record{
		Address:      addr,
		LineCount:    lineCount,
		Instructions: instrs,
		Terminated:   state == blockClosed,
	}, nil
}

// decodeInsertASM decodes a 0xC2/0xC3 record. The declared line count is
// read but not trusted: codes in the wild routinely violate it, and the
// block instead ends on the documented nop/zero pair or on a lone nop in
// the second half of a pair. Both conditions are checked deliberately.
func (d *Decoder) decodeInsertASM(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	lineCount, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	var instrs []uint32
	state := blockActive
	for cur.remaining() > 0 && state == blockActive {
		left, err := cur.readAndAdvance()
		if err != nil {
			return Record{}, err
		}
		right, err := cur.readAndAdvance()
		if err != nil {
			return Record{}, err
		}

		if left == wordNOP && right == 0 {
			state = blockClosed
			break
		}
		instrs = append(instrs, left)

		if right == wordNOP {
			state = blockClosed
			break
		}
		instrs = append(instrs, right)
	}

	return Record{
		Address:      addr,
		LineCount:    lineCount,
		Instructions: instrs,
		Terminated:   state == blockClosed,
	}, nil
}

// decodeBranch decodes a 0xC6/0xC7 record: a branch to the target is placed
// at the address.
func (d *Decoder) decodeBranch(cur *cursor, larger bool) (Record, error) {
	addr, err := d.readAddress(cur, larger)
	if err != nil {
		return Record{}, err
	}
	target, err := cur.readAndAdvance()
	if err != nil {
		return Record{}, err
	}

	return Record{Address: addr, Target: target}, nil
}
