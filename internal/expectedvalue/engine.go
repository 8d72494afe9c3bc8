package expectedvalue

import (
	"mahjongev/internal/score"
	"mahjongev/internal/separator"
	"mahjongev/internal/shanten"
	"mahjongev/internal/tables"
	"mahjongev/internal/tile"
)

// Engine runs one DAG search request. Construct a fresh Engine per
// request (per spec §5: graph caches and vertex buffers are
// per-request, dropped on completion); the Shanten engine underneath
// may be shared and process-lifetime-lived.
type Engine struct {
	cfg     Config
	shanten *shanten.Engine
	wall    tile.Wall
	round   tile.Round
	honba   int

	// melds are the caller's already-called/declared groups, fixed for
	// the whole search: numMelds is threaded into every shanten.Calc
	// call so the DAG explores only the concealed portion of the hand,
	// and scoreWin appends melds unchanged to score.Context.FixedMelds.
	melds    []tile.Meld
	numMelds int

	afterDrawIndex    map[vertexKey]int
	afterDraw         []afterDrawNode
	afterDiscardIndex map[vertexKey]int
	afterDiscard      []afterDiscardNode

	// uradora is the optional P(n | k) matrix used by scoreWin to fold
	// uradora's expectation into win_payment when EnableUraDora is set;
	// nil means "score with zero uradora han", matching a riichi-less
	// or uradora-disabled request.
	uradora *tables.UradoraTable

	searched int
}

// SetUradoraTable attaches the probability matrix a caller loaded via
// internal/tables, used only when cfg.EnableUraDora and the search's
// round has Riichi active.
func (e *Engine) SetUradoraTable(t *tables.UradoraTable) {
	e.uradora = t
}

// vertexKey wraps the hand key, whose red-five flags keep two hands
// with identical shape but different red-five membership apart, since
// they score differently.
type vertexKey struct {
	hash tile.HandKey
}

func NewEngine(cfg Config, shantenEngine *shanten.Engine, wall tile.Wall, round tile.Round, honba int, melds []tile.Meld) *Engine {
	return &Engine{
		cfg:               cfg,
		shanten:           shantenEngine,
		wall:              wall,
		round:             round,
		honba:             honba,
		melds:             melds,
		numMelds:          len(melds),
		afterDrawIndex:    make(map[vertexKey]int, 1024),
		afterDiscard:      nil,
		afterDiscardIndex: make(map[vertexKey]int, 1024),
	}
}

func keyOf(h tile.Hand37) vertexKey {
	h34 := h.Reduce()
	man, pin, sou := h.RedCount()
	return vertexKey{hash: tile.NewHandKey(h34, man > 0, pin > 0, sou > 0)}
}

// steps converts the configured turn window into a recursion-depth
// budget: each full draw+discard round is one "step".
func (e *Engine) steps() int {
	if e.cfg.TMax < e.cfg.TMin {
		return 0
	}
	return e.cfg.TMax - e.cfg.TMin
}

func (e *Engine) getOrBuildAfterDiscard(hand tile.Hand37, stepsRemaining int) int {
	key := keyOf(hand)
	if idx, ok := e.afterDiscardIndex[key]; ok {
		return idx
	}
	idx := len(e.afterDiscard)
	e.afterDiscardIndex[key] = idx
	e.afterDiscard = append(e.afterDiscard, afterDiscardNode{hand: hand, key: key.hash})
	e.searched++

	h34 := hand.Reduce()
	dist := e.shanten.Calc(h34, e.numMelds, shanten.GrammarAll).Distance
	e.afterDiscard[idx].distance = dist

	if stepsRemaining <= 0 {
		return idx
	}

	budget := e.cfg.shantenBudget(dist)
	var draws []drawEdge
	for k := 0; k < tile.NumKinds; k++ {
		wc := e.wall.Remaining[k]
		if wc <= 0 {
			continue
		}
		nh := hand
		nh[k]++
		nDist := e.shanten.Calc(nh.Reduce(), e.numMelds, shanten.GrammarAll).Distance

		switch {
		case nDist < dist:
			// Always allowed: the draw improves or completes the hand.
		case nDist == dist:
			if !e.cfg.EnableTegawari {
				continue
			}
		default: // nDist > dist
			if !withinBudget(dist, nDist, budget) {
				continue
			}
		}

		isWin := nDist < 0
		var payment float64
		if isWin {
			payment = float64(e.scoreWin(hand, k))
		}

		destIdx := e.getOrBuildAfterDraw(nh, stepsRemaining-1)
		draws = append(draws, drawEdge{
			Kind:       k,
			DestIndex:  destIdx,
			WallCount:  wc,
			WinPayment: payment,
			IsWin:      isWin,
		})
	}
	e.afterDiscard[idx].draws = draws
	return idx
}

func withinBudget(base, candidate, budget int) bool {
	return candidate-base <= budget
}

func (e *Engine) getOrBuildAfterDraw(hand tile.Hand37, stepsRemaining int) int {
	key := keyOf(hand)
	if idx, ok := e.afterDrawIndex[key]; ok {
		return idx
	}
	idx := len(e.afterDraw)
	e.afterDrawIndex[key] = idx
	e.afterDraw = append(e.afterDraw, afterDrawNode{hand: hand, key: key.hash})
	e.searched++

	h34 := hand.Reduce()
	dist := e.shanten.Calc(h34, e.numMelds, shanten.GrammarAll).Distance
	e.afterDraw[idx].distance = dist

	if stepsRemaining <= 0 {
		return idx
	}

	var discards []discardEdge
	for k := 0; k < tile.NumKinds; k++ {
		if hand.Reduce()[k] == 0 {
			continue
		}
		nh := hand
		if !removeOneOfKind(&nh, k) {
			continue
		}
		destIdx := e.getOrBuildAfterDiscard(nh, stepsRemaining)
		discards = append(discards, discardEdge{Kind: k, DestIndex: destIdx})
	}
	e.afterDraw[idx].discards = discards
	return idx
}

// removeOneOfKind removes one tile of shape kind k from h, preferring
// to keep a red five if present (discarding the plain copy first) so
// red-dora value is not thrown away gratuitously by the search.
func removeOneOfKind(h *tile.Hand37, k int) bool {
	switch tile.ID(k) {
	case tile.Man5:
		if h[tile.Man5] > 0 {
			h[tile.Man5]--
			return true
		}
		if h[tile.RedMan5] > 0 {
			h[tile.RedMan5]--
			return true
		}
	case tile.Pin5:
		if h[tile.Pin5] > 0 {
			h[tile.Pin5]--
			return true
		}
		if h[tile.RedPin5] > 0 {
			h[tile.RedPin5]--
			return true
		}
	case tile.Sou5:
		if h[tile.Sou5] > 0 {
			h[tile.Sou5]--
			return true
		}
		if h[tile.RedSou5] > 0 {
			h[tile.RedSou5]--
			return true
		}
	}
	if h[tile.ID(k)] > 0 {
		h[tile.ID(k)]--
		return true
	}
	return false
}

// scoreWin invokes the score calculator for a self-draw completing
// hand (13-3*numMelds concealed tiles in discardHand13 + drawn tile
// winKind, plus e.melds fixed unchanged), per spec §4.6's "win_flags =
// SelfDraw | Riichi if riichi is enabled ... else SelfDraw" rule.
func (e *Engine) scoreWin(discardHand13 tile.Hand37, winKind int) int {
	h14 := discardHand13
	h14[winKind]++
	h34 := h14.Reduce()

	decomps := separator.Separate(h34, e.numMelds, winKind)
	best := 0

	var reds int
	if e.cfg.EnableRedDora {
		man, pin, sou := h14.RedCount()
		reds = man + pin + sou
	}

	round := e.round
	round.Riichi = e.cfg.EnableRiichi
	round.UraDoraIndicators = nil // unknown at search time; folded in below as expectation

	menzen := isMenzen(e.melds)

	settle := func(ctx *score.Context) float64 {
		p := score.Calculate(ctx, e.honba)
		return e.expectedTotal(p, round.IsDealer)
	}

	for _, d := range decomps {
		ctx := &score.Context{
			Hand34:      h34,
			FixedMelds:  e.melds,
			WinningTile: winKind,
			IsTsumo:     true,
			IsMenzen:    menzen,
			Decomp:      d,
			Round:       round,
			RedFives:    reds,
		}
		if v := settle(ctx); v > float64(best) {
			best = int(v)
		}
	}
	if len(decomps) == 0 {
		// Seven Pairs / Thirteen Orphans shape: synthesize a minimal
		// decomposition-free context since those grammars have no
		// meld/pair blocks for Fu() to walk (handled by Chiitoitsu's
		// fixed 25 fu and Kokushi's fu-irrelevant yakuman path). Both
		// grammars require numMelds == 0, so FixedMelds is always empty
		// here in practice.
		ctx := &score.Context{
			Hand34:      h34,
			FixedMelds:  e.melds,
			WinningTile: winKind,
			IsTsumo:     true,
			IsMenzen:    menzen,
			Round:       round,
			RedFives:    reds,
		}
		if v := settle(ctx); v > float64(best) {
			best = int(v)
		}
	}
	return best
}

// isMenzen reports whether a hand holding melds is still fully
// concealed: only a closed kong (ankan) leaves the hand menzen, since
// forming it never reveals tiles to the other players the way a chow,
// pong, or open/added kong does.
func isMenzen(melds []tile.Meld) bool {
	for _, m := range melds {
		if m.Type != tile.MeldKongClosed {
			return false
		}
	}
	return true
}

// expectedTotal folds the uradora probability matrix into a hand's
// settlement when the search's configuration enables it: uradora is
// only live under riichi, and its contribution (each indicator's
// match is +1 han) is unknown until the wall's dead-wall tiles are
// revealed at win time, so the search scores the probability-weighted
// average over n = 0..12 additional han rather than a single
// deterministic value.
func (e *Engine) expectedTotal(base score.Payment, isDealer bool) float64 {
	if !e.cfg.EnableUraDora || !e.cfg.EnableRiichi || e.uradora == nil || base.Yakuman > 0 {
		return float64(base.Total())
	}
	k := 1 // one uradora indicator revealed per standard riichi win
	var sum float64
	for n := 0; n < tables.UradoraHanRange; n++ {
		w := e.uradora.Lookup(k, n)
		if w <= 0 {
			continue
		}
		p := score.Settle(base.Han+n, base.Fu, base.Yakuman, base.Yaku, isDealer, true, e.honba)
		sum += w * float64(p.Total())
	}
	return sum
}
