package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"mahjongev/internal/config"
	"mahjongev/internal/logging"
)

// MongoManager owns the process-lifetime mongo connection, mirroring
// common/database/mongo.go's MongoManager.
type MongoManager struct {
	Cli *mongo.Client
	Db  *mongo.Database
}

// NewMongo connects using config.Conf.MongoConf, fataling per spec §7's
// "table-load errors at startup: fatal" treatment extended to any
// startup dependency the process cannot serve without.
func NewMongo() *MongoManager {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mc := config.Conf.MongoConf
	opts := options.Client().ApplyURI(mc.Url)
	opts.SetMinPoolSize(uint64(mc.MinPoolSize))
	opts.SetMaxPoolSize(uint64(mc.MaxPoolSize))
	if mc.Username != "" && mc.Password != "" {
		opts.SetAuth(options.Credential{Username: mc.Username, Password: mc.Password})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logging.Fatal("mongo connect failed: %v", err)
		return nil
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logging.Fatal("mongo ping failed: %v", err)
		return nil
	}

	return &MongoManager{Cli: client, Db: client.Database(mc.Db)}
}

func (m *MongoManager) Close() error {
	if m == nil || m.Cli == nil {
		return nil
	}
	return m.Cli.Disconnect(context.TODO())
}
