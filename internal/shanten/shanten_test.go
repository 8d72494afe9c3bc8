package shanten

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

func TestKokushiTenpaiAndWin(t *testing.T) {
	e := NewEngine()
	h := hand(
		tile.Man1, tile.Man9,
		tile.Pin1, tile.Pin9,
		tile.Sou1, tile.Sou9,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red,
	)
	if got := e.Calc(h, 0, GrammarAll).Distance; got != 0 {
		t.Fatalf("kokushi shanten expected 0, got %d", got)
	}
	h[tile.Man1]++
	if got := e.Calc(h, 0, GrammarAll).Distance; got != -1 {
		t.Fatalf("kokushi win expected distance -1, got %d", got)
	}
}

func TestChiitoiTenpaiAndWaits(t *testing.T) {
	e := NewEngine()
	h := hand(
		tile.Man1, tile.Man1,
		tile.Man2, tile.Man2,
		tile.Man3, tile.Man3,
		tile.Pin1, tile.Pin1,
		tile.Pin2, tile.Pin2,
		tile.Sou1, tile.Sou1,
		tile.East,
	)
	if got := e.Calc(h, 0, GrammarAll).Distance; got != 0 {
		t.Fatalf("chiitoi shanten expected 0, got %d", got)
	}
	mask := e.NecessaryMask(h, 0, GrammarAll)
	if mask != 1<<uint(tile.East) {
		t.Fatalf("chiitoi necessary mask expected East only, got %b", mask)
	}
}

func TestRegularTenpaiTankiWait(t *testing.T) {
	e := NewEngine()
	// 123m 123p 123s 789m + E (tanki wait on East)
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man7, tile.Man8, tile.Man9,
		tile.East,
	)
	if got := e.Calc(h, 0, GrammarAll).Distance; got != 0 {
		t.Fatalf("regular tanki tenpai expected 0, got %d", got)
	}
	h[tile.East]++
	if got := e.Calc(h, 0, GrammarAll).Distance; got != -1 {
		t.Fatalf("regular win expected distance -1, got %d", got)
	}
}

func TestRegularWithFixedMeldsExcludesSpecialGrammars(t *testing.T) {
	e := NewEngine()
	h := hand(
		tile.Man1, tile.Man9,
		tile.Pin1, tile.Pin9,
		tile.Sou1, tile.Sou9,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red,
	)
	res := e.Calc(h, 1, GrammarAll)
	if res.Matched&(GrammarSevenPairs|GrammarThirteenOrphans) != 0 {
		t.Fatalf("fixed melds present but special grammar matched: %v", res.Matched)
	}
}

func TestNecessaryMaskStrictlyDecreasesDistance(t *testing.T) {
	e := NewEngine()
	h := hand(
		tile.Man1, tile.Man2, tile.Man4,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man7, tile.Man8, tile.Man9,
		tile.East,
	)
	base := e.Calc(h, 0, GrammarRegular).Distance
	mask := e.NecessaryMask(h, 0, GrammarRegular)
	for k := 0; k < tile.NumKinds; k++ {
		if mask&(1<<uint(k)) == 0 {
			continue
		}
		h[k]++
		if e.Calc(h, 0, GrammarRegular).Distance >= base {
			t.Fatalf("kind %d flagged necessary but distance did not decrease", k)
		}
		h[k]--
	}
}
