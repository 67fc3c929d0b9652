package printer

import (
	"strings"
	"testing"

	"geckodec/gecko"
)

func decodeWords(t *testing.T, words []uint32) []gecko.Record {
	t.Helper()
	records, err := gecko.NewDecoder().Decode(words)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	return records
}

func TestReportDefaults(t *testing.T) {
	records := decodeWords(t, []uint32{0x04001040, 0x3F800000, 0x80000003, 0xDEADBEEF})

	out := Report(records, Options{})

	if n := strings.Count(out, gecko.RecordSeparator); n != 2 {
		t.Errorf("output has %d record separators, want 2", n)
	}
	if !strings.Contains(out, "// Target address: 0x80001040") {
		t.Errorf("output missing write record, got:\n%s", out)
	}
}

func TestReportCustomSeparator(t *testing.T) {
	records := decodeWords(t, []uint32{0x04001040, 0x3F800000})

	out := Report(records, Options{Separator: "\n===\n"})

	if !strings.HasSuffix(out, "\n===\n") {
		t.Errorf("output missing custom separator, got:\n%s", out)
	}
	if strings.Contains(out, gecko.RecordSeparator) {
		t.Errorf("output still contains the default separator, got:\n%s", out)
	}
}

func TestReportGNUSyntax(t *testing.T) {
	records := decodeWords(t, []uint32{0xC0001500, 0x00000002, 0x38600001, 0x4E800020})

	out := Report(records, Options{GNUSyntax: true})

	if !strings.Contains(out, "// - Execute Assembly - ") {
		t.Errorf("output missing record header, got:\n%s", out)
	}
	if !strings.Contains(out, "li") || !strings.Contains(out, "blr") {
		t.Errorf("output missing disassembly, got:\n%s", out)
	}
}

func TestGNUInstructionFallback(t *testing.T) {
	// All-zero words do not decode as any PowerPC instruction.
	if got := gnuInstruction(0); got != ".word 0x00000000" {
		t.Errorf("gnuInstruction(0) = %q, want raw data directive", got)
	}
}
