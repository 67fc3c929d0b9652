package gecko

import "fmt"

// ErrKind identifies one member of the closed decode-error set.
type ErrKind int

const (
	// ErrEmpty reports a zero-length input sequence.
	ErrEmpty ErrKind = iota
	// ErrMalformed reports an odd word count or an inner record
	// inconsistency.
	ErrMalformed
	// ErrInvalidType reports a tag byte outside the supported set.
	ErrInvalidType
	// ErrParse reports a recognized tag with a field value outside its
	// defined range.
	ErrParse
	// ErrTruncated reports a cursor read attempted past the end of the
	// sequence: the input ran out of data mid-record.
	ErrTruncated
)

func (k ErrKind) String() string {
	switch k {
	case ErrEmpty:
		return "EMPTY"
	case ErrMalformed:
		return "MALFORMED"
	case ErrInvalidType:
		return "INVALID_TYPE"
	case ErrParse:
		return "PARSE_ERROR"
	case ErrTruncated:
		return "TRUNCATED"
	default:
		return "UNKNOWN"
	}
}

// Error is the structured decode error. Every decode failure is terminal for
// the call and surfaces exactly one of these.
type Error struct {
	Kind   ErrKind
	Record int    // 1-based record ordinal in word pairs, ErrInvalidType
	Word   uint32 // offending tag word, ErrInvalidType
	Pos    int    // cursor position of the failed read, ErrTruncated
	Reason string // human-readable detail, ErrParse
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrEmpty:
		return "empty gecko code"
	case ErrMalformed:
		return "malformed gecko code"
	case ErrInvalidType:
		return fmt.Sprintf("invalid gecko code type. Line number: %d, found value: 0x%08X", e.Record, e.Word)
	case ErrParse:
		return fmt.Sprintf("failed to parse gecko code. %s", e.Reason)
	case ErrTruncated:
		return fmt.Sprintf("truncated gecko code: read past end of sequence at word %d", e.Pos)
	default:
		return "unknown gecko code error"
	}
}

func errEmpty() *Error     { return &Error{Kind: ErrEmpty} }
func errMalformed() *Error { return &Error{Kind: ErrMalformed} }

func errInvalidType(record int, word uint32) *Error {
	return &Error{Kind: ErrInvalidType, Record: record, Word: word}
}

func errParse(reason string) *Error {
	return &Error{Kind: ErrParse, Reason: reason}
}

func errTruncated(pos int) *Error {
	return &Error{Kind: ErrTruncated, Pos: pos}
}
