// Package separator enumerates every way a complete hand can be
// decomposed into four melds plus a pair under the regular grammar, and
// classifies how the winning tile completed its block (Seven Pairs is
// covered only by SevenPairsWait; Thirteen Orphans is not decomposed),
// per spec §4.4. It generalizes the teacher's canFormMelds/IsAgariNormal
// recursion (internal/legacyengine/searcher_reference.go.txt) from a
// yes/no agari check into a full decomposition enumerator.
package separator

import (
	"mahjongev/internal/tile"
)

func isNumberKind(k int) bool { return k >= int(tile.Man1) && k <= int(tile.Sou9) }

func suitOf(k int) int {
	switch {
	case k >= int(tile.Man1) && k <= int(tile.Man9):
		return 0
	case k >= int(tile.Pin1) && k <= int(tile.Pin9):
		return 1
	case k >= int(tile.Sou1) && k <= int(tile.Sou9):
		return 2
	default:
		return -1
	}
}

// Decomposition is one full parse of a winning hand: a pair plus four
// groups (for the regular grammar), with the winning-tile block and
// wait kind identified. Blocks holds the concealed groups only; fixed
// (called) melds are not included and callers carry them separately.
type Decomposition struct {
	Blocks []tile.Block
}

// Separate enumerates every regular-grammar decomposition of a 14-tile
// hand (13 concealed + winning tile, fixedMelds already excluded from
// h) that is a valid win, classifying the wait kind of the block the
// winning tile completed. Returns nil if h is not a regular-grammar
// winning shape.
func Separate(h tile.Hand34, fixedMelds int, winningTile int) []Decomposition {
	need := 4 - fixedMelds
	if need < 0 {
		return nil
	}

	var out []Decomposition
	seen := make(map[string]bool)

	for j := 0; j < tile.NumKinds; j++ {
		if h[j] < 2 {
			continue
		}
		work := h
		work[j] -= 2
		var groups []tile.Block
		collect(&work, need, &groups, &out, seen, tile.Block{Type: tile.BlockPair, Kind34: j}, winningTile)
	}
	return out
}

func collect(h *tile.Hand34, need int, groups *[]tile.Block, out *[]Decomposition, seen map[string]bool, pair tile.Block, winningTile int) {
	if need == 0 {
		for i := 0; i < tile.NumKinds; i++ {
			if (*h)[i] != 0 {
				return
			}
		}
		blocks := make([]tile.Block, 0, len(*groups)+1)
		pair.WinningTile = pair.Kind34 == winningTile
		pair.Concealed = true
		if pair.WinningTile {
			pair.Wait = tile.WaitPair
		}
		blocks = append(blocks, pair)
		blocks = append(blocks, *groups...)
		markShanpon(blocks, winningTile)

		key := decompKey(blocks)
		if seen[key] {
			return
		}
		seen[key] = true
		*out = append(*out, Decomposition{Blocks: append([]tile.Block(nil), blocks...)})
		return
	}

	i := -1
	for k := 0; k < tile.NumKinds; k++ {
		if (*h)[k] > 0 {
			i = k
			break
		}
	}
	if i == -1 {
		return
	}

	if (*h)[i] >= 3 {
		(*h)[i] -= 3
		*groups = append(*groups, tile.Block{Type: tile.BlockTriplet, Kind34: i, Concealed: true, WinningTile: i == winningTile})
		collect(h, need-1, groups, out, seen, pair, winningTile)
		*groups = (*groups)[:len(*groups)-1]
		(*h)[i] += 3
	}

	if isNumberKind(i) && i+2 < tile.NumKinds && suitOf(i) == suitOf(i+1) && suitOf(i) == suitOf(i+2) {
		if (*h)[i] > 0 && (*h)[i+1] > 0 && (*h)[i+2] > 0 {
			(*h)[i]--
			(*h)[i+1]--
			(*h)[i+2]--
			wait := sequenceWait(i, i, i+1, i+2, winningTile)
			*groups = append(*groups, tile.Block{Type: tile.BlockSequence, Kind34: i, Concealed: true, WinningTile: wait != tile.WaitNone, Wait: wait})
			collect(h, need-1, groups, out, seen, pair, winningTile)
			*groups = (*groups)[:len(*groups)-1]
			(*h)[i]++
			(*h)[i+1]++
			(*h)[i+2]++
		}
	}
}

// sequenceWait classifies the wait kind for a completed 1-2-3 shaped
// sequence (lo=i..i+2), IF winningTile is one of its three members;
// otherwise returns WaitNone. Edge waits are 1-2 waiting on 3, or
// 8-9 waiting on 7 (within-suit, absolute tile numbers 1-indexed).
func sequenceWait(lo, a, b, c, winningTile int) tile.WaitKind {
	if winningTile != a && winningTile != b && winningTile != c {
		return tile.WaitNone
	}
	num := winningTile - lo // 0,1,2 within the run
	switch num {
	case 1:
		return tile.WaitClosed // middle tile: kanchan
	case 0, 2:
		// Distinguish edge (12->3 or 89->7) from a two-sided ryanmen.
		loNum := lo % 9 // lo's within-suit number, 0-indexed
		if loNum == 0 && num == 2 {
			return tile.WaitEdge // 1-2 waiting on 3
		}
		if loNum == 6 && num == 0 {
			return tile.WaitEdge // 8-9 waiting on 7
		}
		return tile.WaitTwoSided
	default:
		return tile.WaitNone
	}
}

// markShanpon rewrites the wait classification when the winning tile
// completed either of two pairs-turned-triplets-or-pair (shanpon): the
// pair block and a triplet block both match the winning tile's kind
// and the triplet was only just formed by the third copy.
func markShanpon(blocks []tile.Block, winningTile int) {
	pairIdx, tripletIdx := -1, -1
	for idx, b := range blocks {
		if b.Type == tile.BlockPair {
			pairIdx = idx
		}
		if b.Type == tile.BlockTriplet && b.Kind34 == winningTile && b.WinningTile {
			tripletIdx = idx
		}
	}
	// A triplet completed by the winning tile, alongside an untouched
	// pair of a different kind, means both were pairs before the win —
	// a shanpon wait on either.
	if pairIdx >= 0 && tripletIdx >= 0 && blocks[pairIdx].Kind34 != winningTile {
		blocks[pairIdx].Wait = tile.WaitShanpon
		blocks[tripletIdx].Wait = tile.WaitShanpon
	}
}

func decompKey(blocks []tile.Block) string {
	b := make([]byte, 0, len(blocks)*4)
	for _, blk := range blocks {
		b = append(b, byte(blk.Type), byte(blk.Kind34), byte(blk.Wait))
		if blk.WinningTile {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	}
	return string(b)
}

// SevenPairsWait returns WaitPair when h (13 tiles, the tenpai hand
// before the winning tile) plus winningTile forms seven pairs: the
// winning tile always completes a tanki-style single-pair wait under
// this grammar.
func SevenPairsWait(h tile.Hand34, winningTile int) tile.WaitKind {
	work := h
	work[winningTile]++
	pairs, unique := 0, 0
	for _, c := range work {
		if c > 0 {
			unique++
		}
		pairs += int(c) / 2
	}
	if pairs == 7 && unique == 7 {
		return tile.WaitPair
	}
	return tile.WaitNone
}
