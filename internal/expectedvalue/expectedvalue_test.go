package expectedvalue

import (
	"testing"

	"mahjongev/internal/shanten"
	"mahjongev/internal/tile"
)

func handOf(kinds ...tile.ID) tile.Hand37 {
	var h tile.Hand37
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestSearchOneAwayHandProducesMonotoneTenpai(t *testing.T) {
	se := shanten.NewEngine()
	// Tenpai-plus-one hand: 123m 123p 123s 78m + EE + extra 9m.
	start := handOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man7, tile.Man8,
		tile.East, tile.East,
		tile.Man9,
	)
	wall := tile.NewWall(start.Reduce())
	cfg := Config{TMin: 0, TMax: 3, Sum: 50, EnableTegawari: true}
	round := tile.Round{RoundWind: tile.East, SeatWind: tile.South}

	res := Search(cfg, se, start, nil, wall, round, 0, nil)
	if len(res.Discards) == 0 {
		t.Fatal("expected at least one discard result")
	}

	for _, d := range res.Discards {
		for tIdx := 0; tIdx < len(d.TenpaiProb)-1; tIdx++ {
			if d.TenpaiProb[tIdx] > d.TenpaiProb[tIdx+1]+1e-9 {
				t.Fatalf("discard %d: tenpai_prob[%d]=%f > tenpai_prob[%d]=%f, expected monotone non-decreasing with horizon",
					d.Discard, tIdx, d.TenpaiProb[tIdx], tIdx+1, d.TenpaiProb[tIdx+1])
			}
			if d.WinProb[tIdx] > 1.0001 || d.WinProb[tIdx] < -0.0001 {
				t.Fatalf("discard %d: win_prob[%d]=%f out of [0,1] after clamping", d.Discard, tIdx, d.WinProb[tIdx])
			}
		}
	}
}

func TestSearchDiscardingTheNinthManTileReachesTenpai(t *testing.T) {
	se := shanten.NewEngine()
	start := handOf(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man7, tile.Man8,
		tile.East, tile.East,
		tile.Man9,
	)
	wall := tile.NewWall(start.Reduce())
	cfg := Config{TMin: 0, TMax: 2, Sum: 50}
	round := tile.Round{RoundWind: tile.East, SeatWind: tile.South}

	res := Search(cfg, se, start, nil, wall, round, 0, nil)
	found := false
	for _, d := range res.Discards {
		if d.Discard == int(tile.Man9) && d.Shanten == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected discarding 9m to leave a tenpai (shanten=0) hand, got %+v", res.Discards)
	}
}
