package expectedvalue

import (
	"mahjongev/internal/shanten"
	"mahjongev/internal/tables"
	"mahjongev/internal/tile"
)

// DiscardResult is the per-first-discard statistics block of spec §6's
// Response JSON.
type DiscardResult struct {
	Discard       int
	TenpaiProb    []float64
	WinProb       []float64
	ExpScore      []float64
	NecessaryMask uint64
	Shanten       int
}

// SearchResult is the full response payload for one request.
type SearchResult struct {
	Discards []DiscardResult
	Shanten  shanten.Result
	Searched int
}

// Search runs the DAG search for a concealed starting hand (start
// holds 14-3*len(melds) tiles; melds are the caller's already-called/
// declared fixed groups, excluded from the search and appended
// unchanged at scoring time), returning per-first-discard statistics
// for every legal discard, per spec §4.6's "Final result per root".
// uradora may be nil, meaning uradora's contribution always scores as
// zero regardless of cfg.EnableUraDora.
func Search(cfg Config, shantenEngine *shanten.Engine, start tile.Hand37, melds []tile.Meld, wall tile.Wall, round tile.Round, honba int, uradora *tables.UradoraTable) SearchResult {
	e := NewEngine(cfg, shantenEngine, wall, round, honba, melds)
	if uradora != nil {
		e.SetUradoraTable(uradora)
	}
	numMelds := len(melds)

	overall := shantenEngine.Calc(start.Reduce(), numMelds, shanten.GrammarAll)

	seenDiscard := map[int]bool{}
	var results []DiscardResult

	for k := 0; k < tile.NumIDs; k++ {
		if start[k] == 0 {
			continue
		}
		kind := tile.ID(k).Kind34()
		if seenDiscard[kind] {
			continue
		}
		seenDiscard[kind] = true

		h13 := start
		if !removeOneOfKind(&h13, kind) {
			continue
		}

		rootIdx := e.getOrBuildAfterDiscard(h13, e.steps())
		// Recomputed per root rather than incrementally: simpler and
		// still correct since the shared engine's vertex cache grows
		// monotonically across roots, so later roots reuse earlier work.
		adStats, discStats := e.recurrence()

		s := discStats[rootIdx]
		tMax := cfg.TMax
		tenpai := make([]float64, tMax+1)
		win := make([]float64, tMax+1)
		exp := make([]float64, tMax+1)
		for t := 0; t <= tMax; t++ {
			tenpai[t] = clamp01(s.tenpai[t])
			win[t] = clamp01(s.win[t])
			exp[t] = s.exp[t]
		}
		_ = adStats

		mask := shantenEngine.NecessaryMask(h13.Reduce(), numMelds, shanten.GrammarAll)

		results = append(results, DiscardResult{
			Discard:       kind,
			TenpaiProb:    tenpai,
			WinProb:       win,
			ExpScore:      exp,
			NecessaryMask: mask,
			Shanten:       e.afterDiscard[rootIdx].distance,
		})
	}

	return SearchResult{Discards: results, Shanten: overall, Searched: e.searched}
}
