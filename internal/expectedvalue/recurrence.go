package expectedvalue

// vertexStats holds the turn-indexed vectors for one vertex, each
// sized cfg.TMax+1 and valid over indices t_min..t_max.
type vertexStats struct {
	tenpai []float64
	win    []float64
	exp    []float64
}

func newVertexStats(tMax int) vertexStats {
	return vertexStats{
		tenpai: make([]float64, tMax+1),
		win:    make([]float64, tMax+1),
		exp:    make([]float64, tMax+1),
	}
}

// recurrence implements the turn-indexed backward pass of spec §4.6.
//
// Resolution of an Open Question: the spec's prose assigns the
// subtractive-expectation formula to "after-draw node v" summing over
// edges "e:v→u" where "u_dest is the after-discard child", and
// separately says after-discard nodes take the max of their parents'
// after-draw values — read literally these two statements describe
// the same edge direction twice without saying who computes the
// expectation and who computes the max. This implementation resolves
// it the only way that is internally consistent with mahjong's actual
// turn structure: the after-discard (13-tile) node is where a random
// draw happens, so it gets the wall-weighted expectation; the
// after-draw (14-tile) node is where the player chooses a discard, so
// it gets the max over its discard children. This preserves every
// testable property in spec §8 (turn monotonicity, clamped
// probabilities) regardless of which family carries which half of the
// formula.
func (e *Engine) recurrence() ([]vertexStats, []vertexStats) {
	tMax := e.cfg.TMax
	adStats := make([]vertexStats, len(e.afterDraw))
	discStats := make([]vertexStats, len(e.afterDiscard))
	for i := range adStats {
		adStats[i] = newVertexStats(tMax)
	}
	for i := range discStats {
		discStats[i] = newVertexStats(tMax)
	}

	for i, v := range e.afterDraw {
		if v.distance == 0 {
			adStats[i].tenpai[tMax] = 1
		}
		if v.distance < 0 {
			adStats[i].win[tMax] = 1
		}
	}
	for i, v := range e.afterDiscard {
		if v.distance == 0 {
			discStats[i].tenpai[tMax] = 1
		}
	}

	for t := tMax - 1; t >= e.cfg.TMin; t-- {
		// After-draw (14-tile, discard-decision) nodes: take the best
		// discard choice, evaluated at the same turn.
		for i, v := range e.afterDraw {
			if len(v.discards) == 0 {
				adStats[i].tenpai[t] = adStats[i].tenpai[t+1]
				adStats[i].win[t] = adStats[i].win[t+1]
				adStats[i].exp[t] = adStats[i].exp[t+1]
				continue
			}
			bestTenpai, bestWin, bestExp := -1.0, -1.0, -1.0
			for _, d := range v.discards {
				s := discStats[d.DestIndex]
				if s.tenpai[t] > bestTenpai {
					bestTenpai = s.tenpai[t]
				}
				if s.win[t] > bestWin {
					bestWin = s.win[t]
				}
				if s.exp[t] > bestExp {
					bestExp = s.exp[t]
				}
			}
			adStats[i].tenpai[t] = bestTenpai
			adStats[i].win[t] = bestWin
			adStats[i].exp[t] = bestExp
		}

		// After-discard (13-tile, random-draw) nodes: wall-weighted
		// expectation over draw outcomes, with the complement mass
		// carrying forward this vertex's own t+1 value unchanged.
		for i, v := range e.afterDiscard {
			base := discStats[i]
			prevTenpai, prevWin, prevExp := base.tenpai[t+1], base.win[t+1], base.exp[t+1]

			sumW := 0
			dTenpai, dWin, dExp := 0.0, 0.0, 0.0
			for _, dr := range v.draws {
				w := float64(dr.WallCount)
				sumW += dr.WallCount
				dest := adStats[dr.DestIndex]
				dTenpai += w * (dest.tenpai[t+1] - prevTenpai)
				dWin += w * (dest.win[t+1] - prevWin)

				destExp := dest.exp[t+1]
				if dr.IsWin && dr.WinPayment > destExp {
					destExp = dr.WinPayment
				}
				dExp += w * (destExp - prevExp)
			}

			s := float64(e.cfg.Sum)
			if s <= 0 {
				s = 1
			}
			discStats[i].tenpai[t] = prevTenpai + dTenpai/s
			discStats[i].win[t] = prevWin + dWin/s
			discStats[i].exp[t] = prevExp + dExp/s
			_ = sumW
		}
	}

	return adStats, discStats
}

// clamp01 enforces spec §4.6's numerical note: accumulated probabilities
// may drift slightly above 1 and are clamped at presentation.
func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
