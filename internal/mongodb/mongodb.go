// Package mongodb keeps the history of AI insights in MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartguider/internal/logger"
	"smartguider/internal/models"
)

// InsightCollection is the collection insights are written to.
const InsightCollection = "insights"

// Store is an insight history backed by a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// Connect opens a client for uri, checks it with a ping and ensures the
// user/time index exists.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error connecting to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging MongoDB: %w", err)
	}

	s := &Store{client: client, collection: client.Database(database).Collection(InsightCollection)}
	if err := s.ensureIndexes(ctx); err != nil {
		logger.Get().Warnw("failed to create insight indexes", "error", err)
	}

	logger.Get().Infow("connected to MongoDB", "database", database)
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// Save inserts an insight.
func (s *Store) Save(ctx context.Context, insight *models.Insight) error {
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now().UTC()
	}
	if _, err := s.collection.InsertOne(ctx, insight); err != nil {
		return fmt.Errorf("error saving insight: %w", err)
	}
	return nil
}

// ListByUser returns up to limit insights of userID, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string, limit int) ([]models.Insight, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching insights: %w", err)
	}
	defer cursor.Close(ctx)

	insights := []models.Insight{}
	for cursor.Next(ctx) {
		var insight models.Insight
		if err := cursor.Decode(&insight); err != nil {
			return nil, fmt.Errorf("error decoding insight: %w", err)
		}
		insights = append(insights, insight)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return insights, nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) {
	if err := s.client.Disconnect(ctx); err != nil {
		logger.Get().Errorw("failed to disconnect from MongoDB", "error", err)
		return
	}
	logger.Get().Info("disconnected from MongoDB")
}
