// Package api wires the Request/Response JSON contract of spec §6 to
// the shanten/expectedvalue core, following common/http's
// gin-gonic/gin wrapper shape (here internal/httpx).
package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"mahjongev/internal/expectedvalue"
	"mahjongev/internal/httpx"
	"mahjongev/internal/logging"
	"mahjongev/internal/request"
	"mahjongev/internal/response"
	"mahjongev/internal/shanten"
	"mahjongev/internal/store"
	"mahjongev/internal/tables"
	"mahjongev/internal/tile"
)

// Server holds the shared, process-lifetime dependencies a request
// handler needs: the reusable shanten engine (read-only after
// warm-up), the optional result cache, the optional audit repository,
// the optional uradora probability table, and the implementation
// version Request.Version must match per spec §6/§7.
type Server struct {
	Shanten      *shanten.Engine
	Cache        *store.ResultCache
	Repository   store.AnalysisRepository
	UradoraTable *tables.UradoraTable
	Version      string
}

// Register wires the given httpx.Server with this service's one
// route.
func (s *Server) Register(h *httpx.Server) {
	h.Use(httpx.RequestID())
	h.Use(httpx.Logger())
	h.POST("/v1/analyze", s.handleAnalyze)
}

func (s *Server) handleAnalyze(c *httpx.Context) {
	start := time.Now()

	var req request.Analysis
	if err := c.BindJSON(&req); err != nil {
		s.writeError(c, http.StatusBadRequest, "schema violation: "+err.Error(), nil)
		return
	}

	if err := req.Validate(s.Version); err != nil {
		logging.Warn("validation failed: %v", err)
		s.writeError(c, http.StatusBadRequest, err.Error(), req)
		return
	}

	hash := requestHash(req)
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(hash); ok {
			c.Success(cached)
			return
		}
	}

	resp, err := s.analyze(req)
	if err != nil {
		logging.Error("analyze failed: %v", err)
		s.writeError(c, http.StatusUnprocessableEntity, err.Error(), req)
		return
	}
	resp.TimeMicro = time.Since(start).Microseconds()
	logging.Info("analyze done: searched=%d time=%dus", resp.Searched, resp.TimeMicro)

	if s.Cache != nil {
		s.Cache.Set(hash, resp)
	}
	if s.Repository != nil {
		go func() {
			rec := store.NewAnalysisRecord(hash, s.Version, resp.Shanten.Best, resp.Searched, resp.TimeMicro)
			if err := s.Repository.Save(context.Background(), rec); err != nil {
				logging.Warn("analysis audit save failed: %v", err)
			}
		}()
	}

	c.Success(resp)
}

func (s *Server) writeError(c *httpx.Context, status int, msg string, echo any) {
	c.JSON(status, response.Error{Success: false, ErrMsg: msg, Request: echo})
}

// analyze converts the validated wire request into core types, runs
// the shanten/expected-value pipeline, and converts the result back to
// the wire Response shape.
func (s *Server) analyze(req request.Analysis) (*response.Analysis, error) {
	var hand tile.Hand37
	for _, t := range req.Hand {
		hand[t]++
	}

	melds := meldsFromRequest(req.Melds)
	numMelds := len(melds)

	h34 := hand.Reduce()

	var wall tile.Wall
	if len(req.Wall) == tile.NumIDs {
		visible := foldWall37(req.Wall)
		wall = tile.Wall{Remaining: visible}
	} else {
		visible := h34
		for _, m := range melds {
			for _, t := range m.Tiles {
				visible[t.Kind34()]++
			}
		}
		for _, d := range req.DoraIndicators {
			visible[tile.ID(d).Kind34()]++
		}
		wall = tile.NewWall(visible)
	}

	round := tile.Round{
		RoundWind: tile.ID(req.RoundWind),
		SeatWind:  tile.ID(req.SeatWind),
		Riichi:    req.EnableRiichi,
		IsDealer:  req.RoundWind == req.SeatWind,
	}
	for _, d := range req.DoraIndicators {
		round.DoraIndicators = append(round.DoraIndicators, tile.ID(d))
	}

	regular := s.Shanten.Calc(h34, numMelds, shanten.GrammarRegular)
	sevenPairs := s.Shanten.Calc(h34, numMelds, shanten.GrammarSevenPairs)
	thirteen := s.Shanten.Calc(h34, numMelds, shanten.GrammarThirteenOrphans)

	cfg := expectedvalue.DefaultConfig()
	cfg.EnableShantenDown = req.EnableShantenDown
	cfg.EnableTegawari = req.EnableTegawari
	cfg.EnableRedDora = req.EnableRedDora
	cfg.EnableUraDora = req.EnableUraDora
	cfg.EnableRiichi = req.EnableRiichi

	result := expectedvalue.Search(cfg, s.Shanten, hand, melds, wall, round, req.Honba, s.UradoraTable)

	discards := make([]response.Discard, 0, len(result.Discards))
	for _, d := range result.Discards {
		var handCounts [tile.NumKinds]int
		for k := 0; k < tile.NumKinds; k++ {
			handCounts[k] = int(h34[k])
		}
		discards = append(discards, response.Discard{
			Tile:          d.Discard,
			TenpaiProb:    d.TenpaiProb,
			WinProb:       d.WinProb,
			ExpScore:      d.ExpScore,
			Necessary:     response.NecessaryTilesFromMask(d.NecessaryMask, handCounts),
			ResultShanten: d.Shanten,
		})
	}

	return &response.Analysis{
		Success:  true,
		Discards: discards,
		Shanten:  response.ShantenBreakdown(regular.Distance, sevenPairs.Distance, thirteen.Distance),
		Searched: result.Searched,
	}, nil
}

// meldsFromRequest converts the wire meld list into the core's fixed-
// group representation. The wire format carries no seat information,
// so FromSeat is always -1, whatever the meld type; nothing in the
// core reads FromSeat.
func meldsFromRequest(in []request.Meld) []tile.Meld {
	if len(in) == 0 {
		return nil
	}
	out := make([]tile.Meld, len(in))
	for i, m := range in {
		tiles := make([]tile.ID, len(m.Tiles))
		for j, t := range m.Tiles {
			tiles[j] = tile.ID(t)
		}
		out[i] = tile.Meld{
			Type:     meldTypeFromRequest(m.Type),
			Tiles:    tiles,
			FromSeat: -1,
		}
	}
	return out
}

func meldTypeFromRequest(t request.MeldType) tile.MeldType {
	switch t {
	case request.MeldChow:
		return tile.MeldChow
	case request.MeldPong:
		return tile.MeldPong
	case request.MeldKongOpen:
		return tile.MeldKongOpen
	case request.MeldKongClosed:
		return tile.MeldKongClosed
	case request.MeldKongAdded:
		return tile.MeldKongAdded
	default:
		return tile.MeldPong
	}
}

func foldWall37(wall []int) [tile.NumKinds]int {
	var out [tile.NumKinds]int
	for id, c := range wall {
		out[tile.ID(id).Kind34()] += c
	}
	return out
}

// requestHash derives a stable cache/audit key from the wire request.
func requestHash(req request.Analysis) string {
	b, _ := json.Marshal(req)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
