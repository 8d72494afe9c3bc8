package tables

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// UradoraIndicators and UradoraHanRange bound the 6x13 matrix of spec
// §6: k in 0..5 uradora indicators, n in 0..12 additional han.
const (
	UradoraIndicators = 6
	UradoraHanRange   = 13
)

// UradoraTable is P(n additional han | k uradora indicators), indexed
// table[k][n].
type UradoraTable [UradoraIndicators][UradoraHanRange]float64

// WriteUradoraTable writes the matrix as 78 little-endian float64s, k
// major, n minor — matching table[k][n] indexing read back by
// ReadUradoraTable.
func WriteUradoraTable(w io.Writer, t UradoraTable) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 8)
	for k := 0; k < UradoraIndicators; k++ {
		for n := 0; n < UradoraHanRange; n++ {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(t[k][n]))
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("tables: write uradora[%d][%d]: %w", k, n, err)
			}
		}
	}
	return bw.Flush()
}

// ReadUradoraTable reads the matrix back.
func ReadUradoraTable(r io.Reader) (UradoraTable, error) {
	var t UradoraTable
	br := bufio.NewReader(r)
	buf := make([]byte, 8)
	for k := 0; k < UradoraIndicators; k++ {
		for n := 0; n < UradoraHanRange; n++ {
			if _, err := io.ReadFull(br, buf); err != nil {
				return t, fmt.Errorf("tables: read uradora[%d][%d]: %w", k, n, err)
			}
			t[k][n] = math.Float64frombits(binary.LittleEndian.Uint64(buf))
		}
	}
	return t, nil
}

// Lookup returns P(n | k), clamping out-of-range n to the table edges
// since a hand can in principle draw more uradora han than the table's
// modeled range.
func (t UradoraTable) Lookup(k, n int) float64 {
	if k < 0 {
		k = 0
	}
	if k >= UradoraIndicators {
		k = UradoraIndicators - 1
	}
	if n < 0 {
		n = 0
	}
	if n >= UradoraHanRange {
		n = UradoraHanRange - 1
	}
	return t[k][n]
}
