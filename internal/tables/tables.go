// Package tables implements the exact external binary/text layouts of
// spec §6 for the suits/honors distance-wait-discard tables and the
// uradora probability matrix: a writer/reader pair around the packed
// word format. The shanten search does not load the suits/honors
// tables; it computes its results in-process, as described in
// ARCHITECTURE NOTE — precomputed tables.
package tables

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Slot count per key: pair-exclusive meld counts 0..4 at index m, and
// pair-inclusive meld counts 0..4 at index 5+m, per spec §4.1.
const SlotsPerKey = 10

// Entry is one decoded 32-bit packed word: distance:4 | wait:9 | discard:9.
type Entry struct {
	Distance int
	Wait     uint16
	Discard  uint16
}

func packEntry(e Entry) uint32 {
	return uint32(e.Distance&0xF) | uint32(e.Wait&0x1FF)<<4 | uint32(e.Discard&0x1FF)<<13
}

func unpackEntry(w uint32) Entry {
	return Entry{
		Distance: int(w & 0xF),
		Wait:     uint16((w >> 4) & 0x1FF),
		Discard:  uint16((w >> 13) & 0x1FF),
	}
}

// Row is one key plus its ten packed slots.
type Row struct {
	Key   uint32
	Slots [SlotsPerKey]Entry
}

// WriteTable writes rows in the binary layout of spec §6: each record
// is a 32-bit key followed by ten 32-bit packed words. Rows are
// written in the order given; sparse keys are simply omitted, matching
// "need not be encoded if the loader pre-zeros."
func WriteTable(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 4)
	for _, row := range rows {
		binary.LittleEndian.PutUint32(buf, row.Key)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("tables: write key %d: %w", row.Key, err)
		}
		for _, e := range row.Slots {
			binary.LittleEndian.PutUint32(buf, packEntry(e))
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("tables: write slot for key %d: %w", row.Key, err)
			}
		}
	}
	return bw.Flush()
}

// ReadTable reads the binary layout back into a key-indexed map. It
// reads until EOF, per spec §6's "the file extends until EOF."
func ReadTable(r io.Reader) (map[uint32][SlotsPerKey]Entry, error) {
	br := bufio.NewReader(r)
	out := make(map[uint32][SlotsPerKey]Entry)
	buf := make([]byte, 4)

	for {
		if _, err := io.ReadFull(br, buf); err != nil {
			if err == io.EOF {
				return out, nil
			}
			return nil, fmt.Errorf("tables: read key: %w", err)
		}
		key := binary.LittleEndian.Uint32(buf)

		var slots [SlotsPerKey]Entry
		for i := 0; i < SlotsPerKey; i++ {
			if _, err := io.ReadFull(br, buf); err != nil {
				return nil, fmt.Errorf("tables: truncated record for key %d: %w", key, err)
			}
			slots[i] = unpackEntry(binary.LittleEndian.Uint32(buf))
		}
		out[key] = slots
	}
}
