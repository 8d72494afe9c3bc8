package score

import "mahjongev/internal/tile"

// Fu computes the fu total for a hand, per spec §4.5 "Fu computation",
// generalizing the teacher's calculateFu/calculatePairFu/
// calculateMeldFu/calculateWaitFu (internal/legacyengine/
// score_calculator.go, all stubbed there) into full implementations.
func Fu(ctx *Context, matched []Yaku) int {
	if hasYaku(matched, Chiitoitsu) {
		return 25 // fixed, never rounded
	}
	if hasYaku(matched, Pinfu) {
		if ctx.IsTsumo {
			return 20
		}
		return 30 // pinfu ron: the 20 base + 10 menzen-ron bonus
	}

	fu := 20 // base

	if ctx.IsMenzen && !ctx.IsTsumo {
		fu += 10 // menzen ron bonus
	}
	if ctx.IsTsumo {
		fu += 2
	}

	fu += pairFu(ctx)
	fu += meldFu(ctx)
	fu += waitFu(ctx)

	return roundUpTo10(fu)
}

func hasYaku(matched []Yaku, y Yaku) bool {
	for _, m := range matched {
		if m == y {
			return true
		}
	}
	return false
}

func pairFu(ctx *Context) int {
	for _, b := range ctx.Decomp.Blocks {
		if b.Type != tile.BlockPair {
			continue
		}
		fu := 0
		if b.Kind34 == int(ctx.Round.RoundWind) {
			fu += 2
		}
		if b.Kind34 == int(ctx.Round.SeatWind) {
			fu += 2
		}
		if b.Kind34 == int(tile.White) || b.Kind34 == int(tile.Green) || b.Kind34 == int(tile.Red) {
			fu += 2
		}
		return fu
	}
	return 0
}

func meldFu(ctx *Context) int {
	fu := 0
	for _, b := range ctx.Decomp.Blocks {
		switch b.Type {
		case tile.BlockTriplet:
			yaochu := isTerminalOrHonor(b.Kind34)
			concealed := b.Concealed && !(b.WinningTile && !ctx.IsTsumo)
			switch {
			case concealed && yaochu:
				fu += 8
			case concealed:
				fu += 4
			case yaochu:
				fu += 4
			default:
				fu += 2
			}
		case tile.BlockKong:
			// Regular-grammar decomposition never emits kongs directly;
			// kongs arrive as FixedMelds. Present for completeness.
		}
	}
	for _, m := range ctx.FixedMelds {
		yaochu := isTerminalOrHonor(m.Kind34())
		switch m.Type {
		case tile.MeldPong:
			if yaochu {
				fu += 4
			} else {
				fu += 2
			}
		case tile.MeldKongClosed:
			if yaochu {
				fu += 32
			} else {
				fu += 16
			}
		case tile.MeldKongOpen, tile.MeldKongAdded:
			if yaochu {
				fu += 16
			} else {
				fu += 8
			}
		}
	}
	return fu
}

func waitFu(ctx *Context) int {
	for _, b := range ctx.Decomp.Blocks {
		if !b.WinningTile {
			continue
		}
		switch b.Wait {
		case tile.WaitPair, tile.WaitClosed, tile.WaitEdge:
			return 2
		}
	}
	return 0
}

func roundUpTo10(n int) int { return ((n + 9) / 10) * 10 }
