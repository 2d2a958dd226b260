package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/iliyamo/aura-journal/internal/model"
)

// InsightRepo stores analysis results as documents in the `insights`
// collection.  Entries themselves live in MySQL; the document side carries
// the flexible analysis payload.
type InsightRepo struct{ coll *mongo.Collection }

func NewInsightRepo(db *mongo.Database) *InsightRepo {
	return &InsightRepo{coll: db.Collection("insights")}
}

// Store writes one insight document for an entry.
func (r *InsightRepo) Store(ctx context.Context, entryID, userID string, a model.AnalysisPayload) error {
	_, err := r.coll.InsertOne(ctx, bson.M{
		"entry_id": entryID,
		"user_id":  userID,
		"sentiment": bson.M{
			"label": a.Sentiment.Label,
			"score": a.Sentiment.Score,
		},
		"topics":     a.Topics,
		"created_at": time.Now().UTC(),
	})
	return err
}
