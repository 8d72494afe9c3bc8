package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mahjongev/internal/logging"
)

// AnalysisRecord audits one computed analysis, mirroring the
// aggregate-root shape of core/domain/entity's GameRecord (ID +
// bson-tagged fields + a CreatedAt timestamp), collapsed to what one
// stateless scoring request needs to record.
type AnalysisRecord struct {
	ID            primitive.ObjectID `bson:"_id"`
	RequestHash   string             `bson:"request_hash"`
	Version       string             `bson:"version"`
	Shanten       int                `bson:"shanten"`
	SearchedCount int                `bson:"searched_count"`
	TimeMicros    int64              `bson:"time_micros"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// NewAnalysisRecord starts a record for one completed request.
func NewAnalysisRecord(requestHash, version string, shanten, searched int, timeMicros int64) *AnalysisRecord {
	return &AnalysisRecord{
		ID:            primitive.NewObjectID(),
		RequestHash:   requestHash,
		Version:       version,
		Shanten:       shanten,
		SearchedCount: searched,
		TimeMicros:    timeMicros,
		CreatedAt:     time.Now(),
	}
}

// AnalysisRepository persists and retrieves AnalysisRecords, mirroring
// GameRecordRepository's interface-over-mongo shape.
type AnalysisRepository interface {
	Save(ctx context.Context, rec *AnalysisRecord) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*AnalysisRecord, error)
	FindByRequestHash(ctx context.Context, requestHash string) (*AnalysisRecord, error)
}

type mongoAnalysisRepository struct {
	mongo *MongoManager
}

// NewAnalysisRepository builds a mongo-backed AnalysisRepository.
func NewAnalysisRepository(m *MongoManager) AnalysisRepository {
	return &mongoAnalysisRepository{mongo: m}
}

func (r *mongoAnalysisRepository) collection() *mongo.Collection {
	return r.mongo.Db.Collection("analysis_records")
}

func (r *mongoAnalysisRepository) Save(ctx context.Context, rec *AnalysisRecord) error {
	_, err := r.collection().InsertOne(ctx, rec)
	if err != nil {
		logging.Error("save analysis record failed: %v", err)
		return err
	}
	return nil
}

func (r *mongoAnalysisRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logging.Error("find analysis record by id failed: %v", err)
		return nil, err
	}
	return &rec, nil
}

func (r *mongoAnalysisRepository) FindByRequestHash(ctx context.Context, requestHash string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	err := r.collection().FindOne(ctx, bson.M{"request_hash": requestHash}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logging.Error("find analysis record by hash failed: %v", err)
		return nil, err
	}
	return &rec, nil
}
