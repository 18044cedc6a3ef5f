package sequenceRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepository hands out gapless human-readable display IDs such as
// "P00001". Counters are incremented atomically in MongoDB so concurrent
// creates cannot mint the same ID.
type SequenceRepository interface {
	Next(name, prefix string) (string, error)
}

// MongoSequenceRepo implements SequenceRepository on a counters collection.
type MongoSequenceRepo struct {
	coll *mongo.Collection
}

// NewMongoSequenceRepo creates a new SequenceRepository using MongoDB.
func NewMongoSequenceRepo() SequenceRepository {
	coll := database.DB().Collection("counters")
	return &MongoSequenceRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Next increments the named counter and returns the formatted display ID.
func (r *MongoSequenceRepo) Next(name, prefix string) (string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return "", fmt.Errorf("failed to advance %s counter: %w", name, err)
	}

	return fmt.Sprintf("%s%05d", prefix, doc.Seq), nil
}
