// Package config loads this service's YAML configuration with
// github.com/spf13/viper and watches it for changes with
// github.com/fsnotify/fsnotify, mirroring common/config/app_config.go's
// mapstructure-tagged nested struct style, collapsed to the sections a
// single stateless scoring service needs.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf is the process-wide loaded configuration, populated by Load.
var Conf Configuration

// Configuration is the root config shape for the mahjong expected-value
// server.
type Configuration struct {
	ServerConf `mapstructure:",squash"`
	LogConf    LogConf    `mapstructure:"log"`
	TableConf  TableConf  `mapstructure:"table"`
	MongoConf  MongoConf  `mapstructure:"mongo"`
	RedisConf  RedisConf  `mapstructure:"redis"`
	CacheConf  CacheConf  `mapstructure:"cache"`
}

// ServerConf is the HTTP front end and engine-wide settings.
type ServerConf struct {
	ID            string `mapstructure:"id"`
	HttpPort      int    `mapstructure:"httpPort"`
	Version       string `mapstructure:"version"`
	WorkerPoolSize int   `mapstructure:"workerPoolSize"`
}

// LogConf controls the logging package's verbosity.
type LogConf struct {
	Level string `mapstructure:"level"`
}

// TableConf points at the on-disk precomputed table files of spec §6.
// Only UradoraPath is read (by main); the suits/honors/decomposition
// paths are not read, and those tables are always computed in-process.
type TableConf struct {
	SuitsPath      string `mapstructure:"suitsPath"`
	HonorsPath     string `mapstructure:"honorsPath"`
	DecompSuits    string `mapstructure:"decompSuitsPath"`
	DecompHonors   string `mapstructure:"decompHonorsPath"`
	UradoraPath    string `mapstructure:"uradoraPath"`
}

// MongoConf is the analysis-audit persistence connection.
type MongoConf struct {
	Url         string `mapstructure:"url"`
	Db          string `mapstructure:"db"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MinPoolSize int    `mapstructure:"minPoolSize"`
	MaxPoolSize int    `mapstructure:"maxPoolSize"`
}

// RedisConf is the optional distributed table cache.
type RedisConf struct {
	Addr         string   `mapstructure:"addr"`
	ClusterAddrs []string `mapstructure:"clusterAddrs"`
	Password     string   `mapstructure:"password"`
	PoolSize     int      `mapstructure:"poolSize"`
	MinIdleConns int      `mapstructure:"minIdleConns"`
	Enabled      bool     `mapstructure:"enabled"`
}

// CacheConf is the local ristretto response cache.
type CacheConf struct {
	MaxCostBytes int64 `mapstructure:"maxCostBytes"`
	TTLSeconds   int   `mapstructure:"ttlSeconds"`
}

// Load reads the YAML config at configFile into Conf and arms a
// watcher that replaces Conf and calls onChange when the file changes,
// matching the teacher's v.WatchConfig use. Values read only at
// startup (such as the cache sizing) still take a restart.
func Load(configFile string, onChange func()) error {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", configFile, err)
	}
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", configFile, err)
	}
	Conf = cfg

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var reloaded Configuration
		if err := v.Unmarshal(&reloaded); err != nil {
			return
		}
		Conf = reloaded
		if onChange != nil {
			onChange()
		}
	})
	return nil
}
