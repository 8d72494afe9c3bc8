// Package score computes han, fu, and final points for a completed
// hand, per spec §4.5. The yaku registry generalizes the teacher's
// Yaku enum/YakuChecker pattern (internal/legacyengine/yaku.go) from a
// mostly-stubbed table into full implementations, supplemented with
// the complete yaku list from original_source (see SPEC_FULL.md
// SUPPLEMENTED FEATURES).
package score

import (
	"mahjongev/internal/separator"
	"mahjongev/internal/tile"
)

// Yaku identifies one scoring condition.
type Yaku int

const (
	Riichi Yaku = iota
	DoubleRiichi
	Ippatsu
	MenzenTsumo
	Pinfu
	Tanyao
	YakuhaiRoundWind
	YakuhaiSeatWind
	YakuhaiWhite
	YakuhaiGreen
	YakuhaiRed
	Ippeiko
	SanshokuDoujun
	SanshokuDoukou
	Ittsu
	Chanta
	Junchan
	Toitoi
	Sanankou
	Sankantsu
	Honroutou
	Shousangen
	Honitsu
	Chinitsu
	Ryanpeikou
	Chiitoitsu
	RinshanKaihou
	Chankan
	HaiteiRaoyue
	HouteiRaoyui
	NagashiMangan

	// Yakuman (value carried separately as a multiplier, not han).
	KokushiMusou
	KokushiMusou13
	Suuankou
	SuuankouTanki
	Daisangen
	Shousuushi
	Daisuushi
	Tsuuiisou
	Chinroutou
	Ryuuiisou
	ChuurenPoutou
	JunseiChuurenPoutou
	Suukantsu
	Tenhou
	Chiihou
)

// Context carries everything a yaku check needs: the closed-hand
// shape, any fixed melds, the decomposition chosen, and table state.
type Context struct {
	Hand34      tile.Hand34 // concealed tiles only (fixed melds excluded)
	FixedMelds  []tile.Meld
	WinningTile int
	IsTsumo     bool
	IsMenzen    bool // no open (non-kong) meld called
	Decomp      separator.Decomposition
	Round       tile.Round
	RinshanWin  bool // won on a kong replacement draw
	ChankanWin  bool // won by robbing a kong
	HaiteiWin   bool // won on the last wall tile
	HouteiWin   bool // won on the last discard
	NagashiMangan bool // own discards all terminal/honor, untouched, to exhaustive draw
	IsFirstTurnUncalledWin bool // tenhou/chiihou eligibility
	RedFives    int // count of red-five tiles held (0..3), each worth one dora han
}

// Checker evaluates one yaku; han is 0 if it doesn't apply. A yaku that
// scores one more han when fully concealed folds that bonus into the
// han it returns.
type Checker func(ctx *Context) (han int, applies bool)

// registry lists every non-yakuman yaku this engine recognizes, each
// with the checker that returns its han; IsMenzen raises the han by one
// where the yaku distinguishes it (Sanshoku/Chanta/Junchan/Ittsu/
// Honitsu/Chinitsu all score one less when open; Pinfu/MenzenTsumo/
// Riichi/Ippeiko/Ryanpeikou require a closed hand outright).
var registry = []struct {
	id    Yaku
	check Checker
}{
	{Riichi, checkRiichi},
	{DoubleRiichi, checkDoubleRiichi},
	{Ippatsu, checkIppatsu},
	{MenzenTsumo, checkMenzenTsumo},
	{Pinfu, checkPinfu},
	{Tanyao, checkTanyao},
	{YakuhaiRoundWind, checkYakuhaiRoundWind},
	{YakuhaiSeatWind, checkYakuhaiSeatWind},
	{YakuhaiWhite, checkYakuhaiDragon(tile.White)},
	{YakuhaiGreen, checkYakuhaiDragon(tile.Green)},
	{YakuhaiRed, checkYakuhaiDragon(tile.Red)},
	{Ippeiko, checkIppeiko},
	{SanshokuDoujun, checkSanshokuDoujun},
	{SanshokuDoukou, checkSanshokuDoukou},
	{Ittsu, checkIttsu},
	{Chanta, checkChanta},
	{Junchan, checkJunchan},
	{Toitoi, checkToitoi},
	{Sanankou, checkSanankou},
	{Sankantsu, checkSankantsu},
	{Honroutou, checkHonroutou},
	{Shousangen, checkShousangen},
	{Honitsu, checkHonitsu},
	{Chinitsu, checkChinitsu},
	{Ryanpeikou, checkRyanpeikou},
	{Chiitoitsu, checkChiitoitsu},
	{RinshanKaihou, checkRinshanKaihou},
	{Chankan, checkChankan},
	{HaiteiRaoyue, checkHaitei},
	{HouteiRaoyui, checkHoutei},
	{NagashiMangan, checkNagashiMangan},
}

// yakumanRegistry lists every yakuman, each with its multiplier (2 for
// "double" yakuman).
var yakumanRegistry = []struct {
	id    Yaku
	mult  int
	check func(ctx *Context) bool
}{
	{KokushiMusou13, 2, checkKokushi13},
	{KokushiMusou, 1, checkKokushiSingle},
	{SuuankouTanki, 2, checkSuuankouTanki},
	{Suuankou, 1, checkSuuankouNonTanki},
	{Daisangen, 1, checkDaisangen},
	{Daisuushi, 2, checkDaisuushi},
	{Shousuushi, 1, checkShousuushiSingle},
	{Tsuuiisou, 1, checkTsuuiisou},
	{Chinroutou, 1, checkChinroutou},
	{Ryuuiisou, 1, checkRyuuiisou},
	{JunseiChuurenPoutou, 2, checkJunseiChuuren},
	{ChuurenPoutou, 1, checkChuurenSingle},
	{Suukantsu, 1, checkSuukantsu},
	{Tenhou, 1, checkTenhou},
	{Chiihou, 1, checkChiihou},
}

func isHonor(k int) bool { return k >= int(tile.East) && k <= int(tile.Red) }
func isTerminal(k int) bool {
	return k == int(tile.Man1) || k == int(tile.Man9) ||
		k == int(tile.Pin1) || k == int(tile.Pin9) ||
		k == int(tile.Sou1) || k == int(tile.Sou9)
}
func isTerminalOrHonor(k int) bool { return isHonor(k) || isTerminal(k) }

func suitOfKind(k int) int {
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

// fullHand34 merges concealed counts with fixed-meld tiles for checks
// that need the whole 14-tile shape regardless of concealment.
func fullHand34(ctx *Context) tile.Hand34 {
	h := ctx.Hand34
	for _, m := range ctx.FixedMelds {
		for _, t := range m.Tiles {
			h[t.Kind34()]++
		}
	}
	return h
}

func checkRiichi(ctx *Context) (int, bool) {
	if ctx.Round.Riichi && ctx.IsMenzen && !ctx.Round.DoubleRiichi {
		return 1, true
	}
	return 0, false
}

func checkDoubleRiichi(ctx *Context) (int, bool) {
	if ctx.Round.DoubleRiichi && ctx.IsMenzen {
		return 2, true
	}
	return 0, false
}

func checkIppatsu(ctx *Context) (int, bool) {
	if ctx.Round.Ippatsu && ctx.IsMenzen && (ctx.Round.Riichi || ctx.Round.DoubleRiichi) {
		return 1, true
	}
	return 0, false
}

func checkMenzenTsumo(ctx *Context) (int, bool) {
	if ctx.IsMenzen && ctx.IsTsumo {
		return 1, true
	}
	return 0, false
}

// checkPinfu: fully concealed, all four groups are sequences, the
// pair is not a yakuhai tile, and the winning wait was two-sided.
func checkPinfu(ctx *Context) (int, bool) {
	if !ctx.IsMenzen || len(ctx.FixedMelds) > 0 {
		return 0, false
	}
	twoSided := false
	for _, b := range ctx.Decomp.Blocks {
		switch b.Type {
		case tile.BlockTriplet, tile.BlockKong:
			return 0, false
		case tile.BlockPair:
			if isYakuhaiPairKind(ctx, b.Kind34) {
				return 0, false
			}
		case tile.BlockSequence:
			if b.WinningTile && b.Wait != tile.WaitTwoSided {
				return 0, false
			}
			if b.WinningTile {
				twoSided = true
			}
		}
	}
	if !twoSided {
		return 0, false
	}
	return 1, true
}

func isYakuhaiPairKind(ctx *Context, k int) bool {
	if k == int(ctx.Round.RoundWind) || k == int(ctx.Round.SeatWind) {
		return true
	}
	return k == int(tile.White) || k == int(tile.Green) || k == int(tile.Red)
}

func checkTanyao(ctx *Context) (int, bool) {
	h := fullHand34(ctx)
	for k, c := range h {
		if c > 0 && isTerminalOrHonor(k) {
			return 0, false
		}
	}
	return 1, true
}

func countTripletsOfKind(ctx *Context, k int) int {
	n := 0
	for _, b := range ctx.Decomp.Blocks {
		if (b.Type == tile.BlockTriplet || b.Type == tile.BlockKong) && b.Kind34 == k {
			n++
		}
	}
	for _, m := range ctx.FixedMelds {
		if (m.Type == tile.MeldPong || m.Type == tile.MeldKongOpen || m.Type == tile.MeldKongClosed || m.Type == tile.MeldKongAdded) && m.Kind34() == k {
			n++
		}
	}
	return n
}

func checkYakuhaiRoundWind(ctx *Context) (int, bool) {
	if countTripletsOfKind(ctx, int(ctx.Round.RoundWind)) > 0 {
		return 1, true
	}
	return 0, false
}

func checkYakuhaiSeatWind(ctx *Context) (int, bool) {
	if countTripletsOfKind(ctx, int(ctx.Round.SeatWind)) > 0 {
		return 1, true
	}
	return 0, false
}

func checkYakuhaiDragon(dragon tile.ID) Checker {
	return func(ctx *Context) (int, bool) {
		if countTripletsOfKind(ctx, int(dragon)) > 0 {
			return 1, true
		}
		return 0, false
	}
}

// sequenceKinds returns the lowest-kind of each sequence block, from
// both the decomposition and fixed chows.
func sequenceKinds(ctx *Context) []int {
	var out []int
	for _, b := range ctx.Decomp.Blocks {
		if b.Type == tile.BlockSequence {
			out = append(out, b.Kind34)
		}
	}
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldChow {
			out = append(out, m.Kind34())
		}
	}
	return out
}

func checkIppeiko(ctx *Context) (int, bool) {
	if !ctx.IsMenzen {
		return 0, false
	}
	seqs := sequenceKinds(ctx)
	seen := map[int]int{}
	for _, k := range seqs {
		seen[k]++
	}
	for _, n := range seen {
		if n >= 2 {
			return 1, true
		}
	}
	return 0, false
}

func checkRyanpeikou(ctx *Context) (int, bool) {
	if !ctx.IsMenzen {
		return 0, false
	}
	seqs := sequenceKinds(ctx)
	seen := map[int]int{}
	for _, k := range seqs {
		seen[k]++
	}
	pairs := 0
	for _, n := range seen {
		pairs += n / 2
	}
	if pairs >= 2 {
		return 3, true
	}
	return 0, false
}

func checkSanshokuDoujun(ctx *Context) (int, bool) {
	seqs := sequenceKinds(ctx)
	byNumber := map[int]map[int]bool{}
	for _, k := range seqs {
		suit := suitOfKind(k)
		num := k % 9
		if byNumber[num] == nil {
			byNumber[num] = map[int]bool{}
		}
		byNumber[num][suit] = true
	}
	for _, suits := range byNumber {
		if len(suits) == 3 {
			if ctx.IsMenzen {
				return 2, true
			}
			return 1, true
		}
	}
	return 0, false
}

func checkSanshokuDoukou(ctx *Context) (int, bool) {
	byNumber := map[int]map[int]bool{}
	for k := 0; k < tile.NumKinds; k++ {
		if isHonor(k) {
			continue
		}
		if countTripletsOfKind(ctx, k) > 0 {
			num := k % 9
			if byNumber[num] == nil {
				byNumber[num] = map[int]bool{}
			}
			byNumber[num][suitOfKind(k)] = true
		}
	}
	for _, suits := range byNumber {
		if len(suits) == 3 {
			return 2, true
		}
	}
	return 0, false
}

func checkIttsu(ctx *Context) (int, bool) {
	seqs := sequenceKinds(ctx)
	bySuit := map[int]map[int]bool{}
	for _, k := range seqs {
		s := suitOfKind(k)
		if bySuit[s] == nil {
			bySuit[s] = map[int]bool{}
		}
		bySuit[s][k%9] = true
	}
	for _, nums := range bySuit {
		if nums[0] && nums[3] && nums[6] {
			if ctx.IsMenzen {
				return 2, true
			}
			return 1, true
		}
	}
	return 0, false
}

// blockHasTerminalOrHonor reports whether a block includes a terminal
// or honor tile: for a sequence that means its first or last tile.
func blockHasTerminalOrHonor(b tile.Block) bool {
	switch b.Type {
	case tile.BlockSequence:
		return isTerminalOrHonor(b.Kind34) || isTerminalOrHonor(b.Kind34+2)
	default:
		return isTerminalOrHonor(b.Kind34)
	}
}

func checkChanta(ctx *Context) (int, bool) {
	hasSequence := false
	for _, b := range ctx.Decomp.Blocks {
		if !blockHasTerminalOrHonor(b) {
			return 0, false
		}
		if b.Type == tile.BlockSequence {
			hasSequence = true
		}
	}
	for _, m := range ctx.FixedMelds {
		if !isTerminalOrHonor(m.Kind34()) {
			return 0, false
		}
		if m.Type == tile.MeldChow {
			hasSequence = true
		}
	}
	if !hasSequence {
		return 0, false // all-triplet terminal/honor hands score Honroutou/Toitoi instead
	}
	if ctx.IsMenzen {
		return 2, true
	}
	return 1, true
}

func checkJunchan(ctx *Context) (int, bool) {
	hasSequence := false
	for _, b := range ctx.Decomp.Blocks {
		k := b.Kind34
		last := k
		if b.Type == tile.BlockSequence {
			last = k + 2
		}
		if isHonor(k) || isHonor(last) || !(isTerminal(k) || isTerminal(last)) {
			return 0, false
		}
		if b.Type == tile.BlockSequence {
			hasSequence = true
		}
	}
	for _, m := range ctx.FixedMelds {
		if !isTerminal(m.Kind34()) {
			return 0, false
		}
		if m.Type == tile.MeldChow {
			hasSequence = true
		}
	}
	if !hasSequence {
		return 0, false
	}
	if ctx.IsMenzen {
		return 3, true
	}
	return 2, true
}

func checkToitoi(ctx *Context) (int, bool) {
	for _, b := range ctx.Decomp.Blocks {
		if b.Type == tile.BlockSequence {
			return 0, false
		}
	}
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldChow {
			return 0, false
		}
	}
	return 2, true
}

func checkSanankou(ctx *Context) (int, bool) {
	n := 0
	for _, b := range ctx.Decomp.Blocks {
		if b.Type != tile.BlockTriplet || !b.Concealed {
			continue
		}
		if b.WinningTile && !ctx.IsTsumo {
			continue
		}
		n++
	}
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldKongClosed {
			n++
		}
	}
	if n >= 3 {
		return 2, true
	}
	return 0, false
}

func checkSankantsu(ctx *Context) (int, bool) {
	n := 0
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldKongOpen || m.Type == tile.MeldKongClosed || m.Type == tile.MeldKongAdded {
			n++
		}
	}
	if n >= 3 {
		return 2, true
	}
	return 0, false
}

func checkHonroutou(ctx *Context) (int, bool) {
	h := fullHand34(ctx)
	for k, c := range h {
		if c > 0 && !isTerminalOrHonor(k) {
			return 0, false
		}
	}
	return 2, true
}

func checkShousangen(ctx *Context) (int, bool) {
	triplets := 0
	pair := false
	for _, d := range []tile.ID{tile.White, tile.Green, tile.Red} {
		if countTripletsOfKind(ctx, int(d)) > 0 {
			triplets++
		}
	}
	for _, b := range ctx.Decomp.Blocks {
		if b.Type == tile.BlockPair && (b.Kind34 == int(tile.White) || b.Kind34 == int(tile.Green) || b.Kind34 == int(tile.Red)) {
			pair = true
		}
	}
	if triplets == 2 && pair {
		return 2, true
	}
	return 0, false
}

func checkHonitsu(ctx *Context) (int, bool) {
	h := fullHand34(ctx)
	suits := map[int]bool{}
	for k, c := range h {
		if c == 0 {
			continue
		}
		if isHonor(k) {
			continue
		}
		suits[suitOfKind(k)] = true
	}
	if len(suits) != 1 {
		return 0, false
	}
	if ctx.IsMenzen {
		return 3, true
	}
	return 2, true
}

func checkChinitsu(ctx *Context) (int, bool) {
	h := fullHand34(ctx)
	suits := map[int]bool{}
	for k, c := range h {
		if c == 0 {
			continue
		}
		if isHonor(k) {
			return 0, false
		}
		suits[suitOfKind(k)] = true
	}
	if len(suits) != 1 {
		return 0, false
	}
	if ctx.IsMenzen {
		return 6, true
	}
	return 5, true
}

func checkChiitoitsu(ctx *Context) (int, bool) {
	pairs := 0
	unique := 0
	for _, c := range ctx.Hand34 {
		if c > 0 {
			unique++
		}
		pairs += int(c) / 2
	}
	if pairs == 7 && unique == 7 {
		return 2, true
	}
	return 0, false
}

func checkRinshanKaihou(ctx *Context) (int, bool) {
	if ctx.RinshanWin {
		return 1, true
	}
	return 0, false
}

func checkChankan(ctx *Context) (int, bool) {
	if ctx.ChankanWin {
		return 1, true
	}
	return 0, false
}

func checkHaitei(ctx *Context) (int, bool) {
	if ctx.HaiteiWin && ctx.IsTsumo {
		return 1, true
	}
	return 0, false
}

func checkHoutei(ctx *Context) (int, bool) {
	if ctx.HouteiWin && !ctx.IsTsumo {
		return 1, true
	}
	return 0, false
}

func checkNagashiMangan(ctx *Context) (int, bool) {
	if ctx.NagashiMangan {
		return 5, true
	}
	return 0, false
}

// -------- yakuman checks --------

var kokushiKinds = [13]int{
	int(tile.Man1), int(tile.Man9), int(tile.Pin1), int(tile.Pin9),
	int(tile.Sou1), int(tile.Sou9), int(tile.East), int(tile.South),
	int(tile.West), int(tile.North), int(tile.White), int(tile.Green), int(tile.Red),
}

func isKokushiShape(ctx *Context) bool {
	h := fullHand34(ctx)
	unique, pair := 0, false
	for _, k := range kokushiKinds {
		if h[k] > 0 {
			unique++
			if h[k] >= 2 {
				pair = true
			}
		}
	}
	return unique == 13 && pair
}

// checkKokushi13 requires the winning tile completed the pair (the
// rarer thirteen-sided wait): the winning kind holds two copies in
// the completed hand, meaning all 13 other kinds were already present
// singly before the win.
func checkKokushi13(ctx *Context) bool {
	if !isKokushiShape(ctx) {
		return false
	}
	h := fullHand34(ctx)
	return h[ctx.WinningTile] == 2
}

// checkKokushiSingle is the ordinary (non-13-wait) kokushi: mutually
// exclusive with checkKokushi13, since the registry scores both as
// separate entries with different multipliers.
func checkKokushiSingle(ctx *Context) bool {
	return isKokushiShape(ctx) && !checkKokushi13(ctx)
}

func isSuuankouShape(ctx *Context) bool {
	n := 0
	for _, b := range ctx.Decomp.Blocks {
		if b.Type != tile.BlockTriplet || !b.Concealed {
			continue
		}
		// A triplet completed by ron is scored as open for ankou purposes.
		if b.WinningTile && !ctx.IsTsumo {
			continue
		}
		n++
	}
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldKongClosed {
			n++
		}
	}
	return n >= 4
}

// checkSuuankouTanki requires the wait was tanki (the rarer double
// yakuman); checkSuuankouNonTanki is mutually exclusive with it.
func checkSuuankouTanki(ctx *Context) bool {
	if !isSuuankouShape(ctx) {
		return false
	}
	for _, b := range ctx.Decomp.Blocks {
		if b.Type == tile.BlockPair {
			return b.WinningTile
		}
	}
	return false
}

func checkSuuankouNonTanki(ctx *Context) bool {
	return isSuuankouShape(ctx) && !checkSuuankouTanki(ctx)
}

func checkDaisangen(ctx *Context) bool {
	n := 0
	for _, d := range []tile.ID{tile.White, tile.Green, tile.Red} {
		if countTripletsOfKind(ctx, int(d)) > 0 {
			n++
		}
	}
	return n == 3
}

func windTripletCount(ctx *Context) int {
	n := 0
	for _, w := range []tile.ID{tile.East, tile.South, tile.West, tile.North} {
		if countTripletsOfKind(ctx, int(w)) > 0 {
			n++
		}
	}
	return n
}

func checkDaisuushi(ctx *Context) bool { return windTripletCount(ctx) == 4 }

func checkShousuushiSingle(ctx *Context) bool {
	if windTripletCount(ctx) != 3 {
		return false
	}
	for _, b := range ctx.Decomp.Blocks {
		if b.Type == tile.BlockPair {
			w := tile.ID(b.Kind34)
			if w == tile.East || w == tile.South || w == tile.West || w == tile.North {
				return true
			}
		}
	}
	return false
}

func checkTsuuiisou(ctx *Context) bool {
	h := fullHand34(ctx)
	for k, c := range h {
		if c > 0 && !isHonor(k) {
			return false
		}
	}
	return true
}

func checkChinroutou(ctx *Context) bool {
	h := fullHand34(ctx)
	for k, c := range h {
		if c > 0 && !isTerminal(k) {
			return false
		}
	}
	return true
}

var ryuuiisouKinds = map[int]bool{
	int(tile.Sou2): true, int(tile.Sou3): true, int(tile.Sou4): true,
	int(tile.Sou6): true, int(tile.Sou8): true, int(tile.Green): true,
}

func checkRyuuiisou(ctx *Context) bool {
	h := fullHand34(ctx)
	for k, c := range h {
		if c > 0 && !ryuuiisouKinds[k] {
			return false
		}
	}
	return true
}

// isChuurenShape: one suit, shape 1112345678999 plus any one more
// tile of that suit.
func isChuurenShape(ctx *Context) bool {
	h := fullHand34(ctx)
	suit := -1
	for k, c := range h {
		if c == 0 {
			continue
		}
		if isHonor(k) {
			return false
		}
		s := suitOfKind(k)
		if suit == -1 {
			suit = s
		} else if suit != s {
			return false
		}
	}
	if suit == -1 {
		return false
	}
	base := suit * 9
	required := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	extra := 0
	for i := 0; i < 9; i++ {
		c := int(h[base+i])
		if c < required[i] {
			return false
		}
		extra += c - required[i]
	}
	return extra == 1
}

func checkJunseiChuuren(ctx *Context) bool {
	if !isChuurenShape(ctx) {
		return false
	}
	h := fullHand34(ctx)
	suit := suitOfKind(ctx.WinningTile)
	base := suit * 9
	required := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	for i := 0; i < 9; i++ {
		want := required[i]
		if base+i == ctx.WinningTile {
			want++ // the hand before the win was exactly 1112345678999
		}
		if int(h[base+i]) != want {
			return false
		}
	}
	return true
}

// checkChuurenSingle is mutually exclusive with the "pure" (junsei)
// variant, since the registry scores both as separate entries.
func checkChuurenSingle(ctx *Context) bool {
	return isChuurenShape(ctx) && !checkJunseiChuuren(ctx)
}

func checkSuukantsu(ctx *Context) bool {
	n := 0
	for _, m := range ctx.FixedMelds {
		if m.Type == tile.MeldKongOpen || m.Type == tile.MeldKongClosed || m.Type == tile.MeldKongAdded {
			n++
		}
	}
	return n == 4
}

func checkTenhou(ctx *Context) bool {
	return ctx.IsFirstTurnUncalledWin && ctx.Round.IsDealer && ctx.IsTsumo
}

func checkChiihou(ctx *Context) bool {
	return ctx.IsFirstTurnUncalledWin && !ctx.Round.IsDealer && ctx.IsTsumo
}

// Evaluate runs every yaku/yakuman check and returns the total han
// (capped and converted to a yakuman multiplier when any yakuman
// applies) and the list of matched yaku. Step ordering follows spec
// §4.5 step 4: yakuman short-circuits regular han counting.
func Evaluate(ctx *Context) (han int, yakumanMult int, matched []Yaku) {
	for _, e := range yakumanRegistry {
		if e.check(ctx) {
			yakumanMult += e.mult
			matched = append(matched, e.id)
		}
	}
	if yakumanMult > 0 {
		return 0, yakumanMult, matched
	}

	for _, e := range registry {
		if h, ok := e.check(ctx); ok && h > 0 {
			han += h
			matched = append(matched, e.id)
		}
	}
	han += doraCount(ctx)
	return han, 0, matched
}

// doraCount tallies dora, uradora, and red-five dora per spec §4.5.
func doraCount(ctx *Context) int {
	h := fullHand34(ctx)
	n := 0
	for _, ind := range ctx.Round.DoraIndicators {
		target := tile.NextTile(ind)
		n += int(h[target.Kind34()])
	}
	if ctx.Round.Riichi || ctx.Round.DoubleRiichi {
		for _, ind := range ctx.Round.UraDoraIndicators {
			target := tile.NextTile(ind)
			n += int(h[target.Kind34()])
		}
	}
	n += ctx.RedFives
	return n
}
