package score

import (
	"testing"

	"mahjongev/internal/separator"
	"mahjongev/internal/tile"
)

func hand(kinds ...tile.ID) tile.Hand34 {
	var h tile.Hand34
	for _, k := range kinds {
		h[k]++
	}
	return h
}

func TestPinfuTsumoRyanmenTwentyFu(t *testing.T) {
	// 123m 123p 123s 456m + WW(non-yakuhai pair), ryanmen wait on 6m
	// (completing 45m + 6m), tsumo, fully concealed.
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man4, tile.Man5, tile.Man6,
		tile.West, tile.West,
	)
	decomps := separator.Separate(h, 0, int(tile.Man6))
	if len(decomps) == 0 {
		t.Fatal("expected a decomposition")
	}
	var chosen separator.Decomposition
	for _, d := range decomps {
		for _, b := range d.Blocks {
			if b.Kind34 == int(tile.Man4) && b.Wait == tile.WaitTwoSided {
				chosen = d
			}
		}
	}
	if chosen.Blocks == nil {
		t.Fatal("expected a ryanmen decomposition on the 4-5-6m run")
	}

	ctx := &Context{
		Hand34:      h,
		WinningTile: int(tile.Man6),
		IsTsumo:     true,
		IsMenzen:    true,
		Decomp:      chosen,
		Round: tile.Round{
			RoundWind: tile.East,
			SeatWind:  tile.South,
		},
	}
	han, yakumanMult, matched := Evaluate(ctx)
	if yakumanMult != 0 {
		t.Fatalf("expected no yakuman, got multiplier %d", yakumanMult)
	}
	if !hasYaku(matched, Pinfu) {
		t.Fatalf("expected pinfu among matched yaku, got %v", matched)
	}
	if !hasYaku(matched, MenzenTsumo) {
		t.Fatalf("expected menzen tsumo among matched yaku, got %v", matched)
	}
	if han < 2 {
		t.Fatalf("expected at least 2 han (pinfu + tsumo), got %d", han)
	}
	fu := Fu(ctx, matched)
	if fu != 20 {
		t.Fatalf("pinfu tsumo fu expected 20, got %d", fu)
	}
}

func TestChiitoitsuFixedTwentyFiveFu(t *testing.T) {
	h := hand(
		tile.Man1, tile.Man1,
		tile.Man2, tile.Man2,
		tile.Man3, tile.Man3,
		tile.Pin1, tile.Pin1,
		tile.Pin2, tile.Pin2,
		tile.Sou1, tile.Sou1,
		tile.East, tile.East,
	)
	ctx := &Context{
		Hand34:   h,
		IsMenzen: true,
	}
	han, _, matched := Evaluate(ctx)
	if !hasYaku(matched, Chiitoitsu) {
		t.Fatalf("expected chiitoitsu, got %v", matched)
	}
	if han < 2 {
		t.Fatalf("expected at least 2 han for chiitoitsu, got %d", han)
	}
	if fu := Fu(ctx, matched); fu != 25 {
		t.Fatalf("chiitoitsu fu expected 25, got %d", fu)
	}
}

func TestKokushiYakumanSettlement(t *testing.T) {
	h := hand(
		tile.Man1, tile.Man9,
		tile.Pin1, tile.Pin9,
		tile.Sou1, tile.Sou9,
		tile.East, tile.South, tile.West, tile.North,
		tile.White, tile.Green, tile.Red, tile.Red,
	)
	// Winning on 1m (the Red pair was already held) is the single-wait
	// kokushi; winning on the pair tile would be the 13-wait double.
	ctx := &Context{
		Hand34:      h,
		WinningTile: int(tile.Man1),
		IsMenzen:    true,
		Round:       tile.Round{IsDealer: false},
	}
	p := Calculate(ctx, 0)
	if p.Yakuman == 0 {
		t.Fatalf("expected a yakuman settlement, got %+v", p)
	}
	if p.Ron != 32000 {
		t.Fatalf("expected non-dealer ron yakuman payout 32000, got %d", p.Ron)
	}
}

func TestMeldedHandScoresOpenWithFixedMeld(t *testing.T) {
	// Dealer tsumo: 123m 123p 123s concealed + 99m pair (tanki wait on
	// the second 9m) + a called Pong of East. Round wind and seat wind
	// both East (dealer), so the called pong earns yakuhai twice over.
	h := hand(
		tile.Man1, tile.Man2, tile.Man3,
		tile.Pin1, tile.Pin2, tile.Pin3,
		tile.Sou1, tile.Sou2, tile.Sou3,
		tile.Man9, tile.Man9,
	)
	melds := []tile.Meld{{Type: tile.MeldPong, Tiles: []tile.ID{tile.East, tile.East, tile.East}, FromSeat: -1}}

	decomps := separator.Separate(h, len(melds), int(tile.Man9))
	if len(decomps) == 0 {
		t.Fatal("expected a decomposition")
	}
	chosen := decomps[0]

	ctx := &Context{
		Hand34:      h,
		FixedMelds:  melds,
		WinningTile: int(tile.Man9),
		IsTsumo:     true,
		IsMenzen:    false,
		Decomp:      chosen,
		Round: tile.Round{
			RoundWind: tile.East,
			SeatWind:  tile.East,
			IsDealer:  true,
		},
	}
	han, yakumanMult, matched := Evaluate(ctx)
	if yakumanMult != 0 {
		t.Fatalf("expected no yakuman, got multiplier %d", yakumanMult)
	}
	if !hasYaku(matched, YakuhaiRoundWind) || !hasYaku(matched, YakuhaiSeatWind) {
		t.Fatalf("expected both round-wind and seat-wind yakuhai from the double-east pong, got %v", matched)
	}
	if !hasYaku(matched, SanshokuDoujun) {
		t.Fatalf("expected open sanshoku doujun (123 in all three suits), got %v", matched)
	}
	if hasYaku(matched, Tanyao) {
		t.Fatalf("tanyao must not apply: the hand holds terminal 9m and honor East tiles, got %v", matched)
	}
	if han != 3 {
		t.Fatalf("expected 3 han (round wind + seat wind + open sanshoku), got %d", han)
	}
	fu := Fu(ctx, matched)
	if fu != 30 {
		t.Fatalf("expected 20 base + 2 tsumo + 2 tanki + 4 open honor pong = 28, rounded to 30, got %d", fu)
	}
}

func TestNonDealerTsumoPaymentSplit(t *testing.T) {
	p := Settle(3, 30, 0, nil, false, true, 0)
	// 3 han 30 fu: base = 30 * 2^5 = 960 -> rounds up to 1000.
	if p.TsumoFromDealer != 2000 || p.TsumoFromNonDealer != 1000 {
		t.Fatalf("expected dealer payer 2000 / non-dealer payer 1000, got %+v", p)
	}
	if p.Total() != 4000 {
		t.Fatalf("expected total 4000, got %d", p.Total())
	}
}
