package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mahjongev/internal/config"
	"mahjongev/internal/logging"
)

// RedisManager is the optional distributed cache for precomputed
// shanten-table entries shared across worker processes, mirroring
// common/database/redis.go's RedisManager (client-or-cluster shape).
type RedisManager struct {
	Cli        *redis.Client
	ClusterCli *redis.ClusterClient
}

// NewRedis connects using config.Conf.RedisConf. Returns nil without
// erroring if the cache is disabled in config, since it is optional
// per SPEC_FULL.md's domain-stack table.
func NewRedis() *RedisManager {
	rc := config.Conf.RedisConf
	if !rc.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cli *redis.Client
	var clusterCli *redis.ClusterClient

	if len(rc.ClusterAddrs) == 0 {
		cli = redis.NewClient(&redis.Options{
			Addr:         rc.Addr,
			Password:     rc.Password,
			PoolSize:     rc.PoolSize,
			MinIdleConns: rc.MinIdleConns,
		})
		if err := cli.Ping(ctx).Err(); err != nil {
			logging.Fatal("redis connect failed: %v", err)
			return nil
		}
	} else {
		clusterCli = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        rc.ClusterAddrs,
			Password:     rc.Password,
			PoolSize:     rc.PoolSize,
			MinIdleConns: rc.MinIdleConns,
		})
		if err := clusterCli.Ping(ctx).Err(); err != nil {
			logging.Fatal("redis cluster connect failed: %v", err)
			return nil
		}
	}

	return &RedisManager{Cli: cli, ClusterCli: clusterCli}
}

func (r *RedisManager) client() (redis.Cmdable, error) {
	if r.Cli != nil {
		return r.Cli, nil
	}
	if r.ClusterCli != nil {
		return r.ClusterCli, nil
	}
	return nil, fmt.Errorf("store: redis client not initialized")
}

// GetTableBlob fetches a cached raw table-file byte blob by cache key
// (e.g. "tables:suits", "tables:honors"), for worker processes that
// share a precomputed-table cache instead of each recomputing in
// process.
func (r *RedisManager) GetTableBlob(ctx context.Context, key string) ([]byte, error) {
	cli, err := r.client()
	if err != nil {
		return nil, err
	}
	return cli.Get(ctx, key).Bytes()
}

// SetTableBlob caches a raw table-file byte blob with no expiry, since
// the tables are immutable for the process group's lifetime.
func (r *RedisManager) SetTableBlob(ctx context.Context, key string, blob []byte) error {
	cli, err := r.client()
	if err != nil {
		return err
	}
	return cli.Set(ctx, key, blob, 0).Err()
}

func (r *RedisManager) Close() error {
	if r == nil {
		return nil
	}
	if r.Cli != nil {
		return r.Cli.Close()
	}
	if r.ClusterCli != nil {
		return r.ClusterCli.Close()
	}
	return nil
}
