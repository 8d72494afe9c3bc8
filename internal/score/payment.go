package score

// Payment is the settlement for one completed hand: who pays what.
// For ron, only Ron is populated (paid once by the discarder). For
// tsumo, DealerPart/NonDealerPart are each payer's contribution.
type Payment struct {
	Han, Fu int
	Yaku    []Yaku
	Yakuman int // multiplier; 0 if this is a regular (non-yakuman) hand

	Ron             int // total paid by the single discarder
	TsumoFromDealer int // paid by the dealer (or, if winner is dealer, by each of the 3 others)
	TsumoFromNonDealer int // paid by each non-dealer (only relevant when winner is not the dealer)
	Honba           int // per-honba addition already folded into the totals above
}

// Total returns the grand total points the winner collects.
func (p Payment) Total() int {
	if p.Ron > 0 {
		return p.Ron
	}
	if p.TsumoFromDealer > 0 && p.TsumoFromNonDealer > 0 {
		return p.TsumoFromDealer + 2*p.TsumoFromNonDealer
	}
	// winner is dealer: three equal payments
	return 3 * p.TsumoFromDealer
}

// Settle converts (han, fu, yakuman) plus table state into a full
// Payment, following spec §4.5's fixed-point bands for han>=5 and the
// base*2^(2+han) formula (rounded up to 100) otherwise — grounded on
// the teacher's calculateBasePoints/getFixedPoints
// (internal/legacyengine/score_calculator.go), generalized to split
// tsumo payments correctly between the dealer-payer and non-dealer-
// payers (the teacher's version conflated "winner is dealer" with
// "payer is dealer" and paid every payer the same amount on a
// non-dealer tsumo, which real scoring does not do).
func Settle(han, fu, yakumanMult int, matched []Yaku, isDealer, isTsumo bool, honba int) Payment {
	p := Payment{Han: han, Fu: fu, Yaku: matched, Yakuman: yakumanMult}

	var base int
	switch {
	case yakumanMult > 0:
		base = 8000 * yakumanMult
	case han >= 13: // kazoe yakuman
		base = 8000
	case han >= 11:
		base = 6000
	case han >= 8:
		base = 4000
	case han >= 6:
		base = 3000
	case han >= 5:
		base = 2000
	default:
		base = roundUpTo100(fu * (1 << uint(2+han)))
		if base > 2000 {
			base = 2000 // kiriage-free cap: a >2000 base at <5 han is itself the mangan band
		}
	}

	if isTsumo {
		if isDealer {
			p.TsumoFromDealer = base * 2
			p.TsumoFromDealer += 100 * honba
		} else {
			p.TsumoFromDealer = base * 2
			p.TsumoFromNonDealer = base
			p.TsumoFromDealer += 100 * honba
			p.TsumoFromNonDealer += 100 * honba
		}
	} else {
		if isDealer {
			p.Ron = base * 6
		} else {
			p.Ron = base * 4
		}
		p.Ron += 300 * honba
	}
	p.Honba = honba
	return p
}

func roundUpTo100(n int) int { return ((n + 99) / 100) * 100 }
