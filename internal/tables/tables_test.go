package tables

import (
	"bytes"
	"testing"
)

func TestPackUnpackEntryRoundTrips(t *testing.T) {
	cases := []Entry{
		{Distance: 0, Wait: 0, Discard: 0},
		{Distance: 8, Wait: 0x1FF, Discard: 0x1FF},
		{Distance: 3, Wait: 0b101010101, Discard: 0b010101010},
	}
	for _, e := range cases {
		got := unpackEntry(packEntry(e))
		if got != e {
			t.Errorf("round trip mismatch: want %+v, got %+v", e, got)
		}
	}
}

func TestWriteReadTableRoundTrips(t *testing.T) {
	rows := []Row{
		{Key: 12345, Slots: [SlotsPerKey]Entry{{Distance: 2, Wait: 5, Discard: 9}}},
		{Key: 67890, Slots: [SlotsPerKey]Entry{{Distance: 0, Wait: 0, Discard: 0}}},
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, rows); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got, err := ReadTable(&buf)
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("want %d keys, got %d", len(rows), len(got))
	}
	for _, row := range rows {
		slots, ok := got[row.Key]
		if !ok {
			t.Fatalf("missing key %d", row.Key)
		}
		if slots[0] != row.Slots[0] {
			t.Errorf("key %d: want %+v, got %+v", row.Key, row.Slots[0], slots[0])
		}
	}
}

func TestParsePatternDecodesTokens(t *testing.T) {
	tokens, err := ParsePattern("0k3s6z")
	if err != nil {
		t.Fatalf("ParsePattern: %v", err)
	}
	want := []PatternToken{{0, CodeTriplet}, {3, CodeSequence}, {6, CodePair}}
	if len(tokens) != len(want) {
		t.Fatalf("want %d tokens, got %d", len(want), len(tokens))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: want %+v, got %+v", i, want[i], tokens[i])
		}
	}
}

func TestParsePatternRejectsUnknownCode(t *testing.T) {
	if _, err := ParsePattern("0x"); err == nil {
		t.Fatal("expected error for unknown block code")
	}
}

func TestWriteReadDecompositionFileRoundTrips(t *testing.T) {
	file := DecompositionFile{
		100: {"0k3s6z", "1s4s7z"},
		200: {"2z"},
	}
	var buf bytes.Buffer
	if err := WriteDecompositionFile(&buf, file); err != nil {
		t.Fatalf("WriteDecompositionFile: %v", err)
	}
	got, err := ReadDecompositionFile(&buf)
	if err != nil {
		t.Fatalf("ReadDecompositionFile: %v", err)
	}
	if len(got[100]) != 2 || len(got[200]) != 1 {
		t.Fatalf("unexpected decoded file: %+v", got)
	}
}

func TestWriteReadUradoraTableRoundTrips(t *testing.T) {
	var want UradoraTable
	want[0][0] = 0.53
	want[5][12] = 0.0001
	want[2][6] = 0.125

	var buf bytes.Buffer
	if err := WriteUradoraTable(&buf, want); err != nil {
		t.Fatalf("WriteUradoraTable: %v", err)
	}
	got, err := ReadUradoraTable(&buf)
	if err != nil {
		t.Fatalf("ReadUradoraTable: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: want %+v, got %+v", want, got)
	}
}

func TestUradoraTableLookupClampsOutOfRange(t *testing.T) {
	var tbl UradoraTable
	tbl[5][12] = 0.42
	if got := tbl.Lookup(99, 99); got != 0.42 {
		t.Errorf("want clamped lookup to return table[5][12]=0.42, got %f", got)
	}
}
