package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// StatsRepository counts documents per collection.
type StatsRepository interface {
	CountDocuments(ctx context.Context, collections []string) (map[string]int64, error)
}

type statsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &statsRepository{db: db}
}

// CountDocuments runs the per-collection counts concurrently. Any single
// failure fails the whole call; no partial result map is returned.
func (r *statsRepository) CountDocuments(ctx context.Context, collections []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(collections))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range collections {
		g.Go(func() error {
			count, err := r.db.Collection(name).CountDocuments(gctx, bson.M{})
			if err != nil {
				return err
			}
			mu.Lock()
			counts[name] = count
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}
