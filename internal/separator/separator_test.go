package separator

import (
	"testing"

	"mahjongev/internal/tile"
)

func hand(kinds ...tile.ID) tile.Hand34 {
	var h tile.Hand34
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestSeparateTankiWait(t *testing.T) {
	// 123m 123p 123s 789m + EE, winning tile East (tanki).
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man7, tile.Man8, tile.Man9,
		tile.East, tile.East,
	)
	decomps := Separate(h, 0, int(tile.East))
	if len(decomps) == 0 {
		t.Fatal("expected at least one decomposition")
	}
	found := false
	for _, d := range decomps {
		for _, b := range d.Blocks {
			if b.Type == tile.BlockPair && b.WinningTile && b.Wait == tile.WaitPair {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected a tanki-wait pair block")
	}
}

func TestSeparateEdgeWait(t *testing.T) {
	// 12m waiting on 3m (edge wait): 123m(edge via 12+3) 456p 789s 456m EE
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin4, tile.Pin5, tile.Pin6,
		tile.Sou7, tile.Sou8, tile.Sou9,
		tile.Man4, tile.Man5, tile.Man6,
		tile.East, tile.East,
	)
	decomps := Separate(h, 0, int(tile.Man3))
	found := false
	for _, d := range decomps {
		for _, b := range d.Blocks {
			if b.Type == tile.BlockSequence && b.Kind34 == int(tile.Man1) && b.Wait == tile.WaitEdge {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected an edge-wait sequence block on 1-2m completed by 3m")
	}
}

func TestSeparateShanpon(t *testing.T) {
	// 123m 123p 123s + White pair + Green triplet, winning tile Green
	// (shanpon White/Green).
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.White, tile.White,
		tile.Green, tile.Green, tile.Green,
	)
	decomps := Separate(h, 0, int(tile.Green))
	found := false
	for _, d := range decomps {
		for _, b := range d.Blocks {
			if b.Wait == tile.WaitShanpon {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected a shanpon-wait classification")
	}
}
