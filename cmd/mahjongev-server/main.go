// Command mahjongev-server starts the HTTP front end for the Riichi
// mahjong expected-score engine, wiring config, logging, the shared
// shanten engine, the optional result cache/audit store, and the
// analyze route together, mirroring the teacher's app.Run entry points
// (one per node type) collapsed to this service's single role.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mahjongev/internal/api"
	"mahjongev/internal/config"
	"mahjongev/internal/httpx"
	"mahjongev/internal/logging"
	"mahjongev/internal/shanten"
	"mahjongev/internal/store"
	"mahjongev/internal/tables"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	if err := config.Load(*configFile, func() {
		logging.SetLevel(config.Conf.LogConf.Level)
		logging.Info("config reloaded")
	}); err != nil {
		// config.Load failing before logging is initialized: print and
		// exit, matching ERROR HANDLING DESIGN's "table-load errors at
		// startup: fatal" extended to the config dependency itself.
		os.Stderr.WriteString("config load failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Init(config.Conf.ID)
	logging.SetLevel(config.Conf.LogConf.Level)

	shantenEngine := shanten.NewEngine()

	var resultCache *store.ResultCache
	if config.Conf.CacheConf.MaxCostBytes > 0 {
		ttl := time.Duration(config.Conf.CacheConf.TTLSeconds) * time.Second
		cache, err := store.NewResultCache(config.Conf.CacheConf.MaxCostBytes, ttl)
		if err != nil {
			logging.Fatal("result cache init failed: %v", err)
		}
		resultCache = cache
		defer resultCache.Close()
	}

	var analysisRepo store.AnalysisRepository
	if config.Conf.MongoConf.Url != "" {
		mongoMgr := store.NewMongo()
		defer mongoMgr.Close()
		analysisRepo = store.NewAnalysisRepository(mongoMgr)
	}

	var uradoraTable *tables.UradoraTable
	if path := config.Conf.TableConf.UradoraPath; path != "" {
		f, err := os.Open(path)
		if err != nil {
			logging.Fatal("uradora table load failed: %v", err)
		}
		t, err := tables.ReadUradoraTable(f)
		f.Close()
		if err != nil {
			// Table-load errors at startup are fatal per spec §7: the
			// process cannot serve without the probability data its
			// enable_uradora requests depend on.
			logging.Fatal("uradora table parse failed: %v", err)
		}
		uradoraTable = &t
	}

	apiServer := &api.Server{
		Shanten:      shantenEngine,
		Cache:        resultCache,
		Repository:   analysisRepo,
		UradoraTable: uradoraTable,
		Version:      config.Conf.Version,
	}

	httpServer := httpx.NewServer(config.Conf.HttpPort)
	apiServer.Register(httpServer)

	go func() {
		logging.Info("mahjongev-server listening on port %d", config.Conf.HttpPort)
		if err := httpServer.Start(); err != nil {
			logging.Error("http server stopped: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logging.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logging.Error("graceful shutdown failed: %v", err)
	}
}
