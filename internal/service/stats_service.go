package service

import (
	"context"

	"backend/internal/database"
	"backend/internal/repository"
)

// StatsService reports per-collection document counts. A failed count on
// any collection fails the whole call; no partial map is returned.
type StatsService interface {
	InstructorStats(ctx context.Context) (map[string]int64, error)
	AdminStats(ctx context.Context) (map[string]int64, error)
}

type statsService struct {
	stats repository.StatsRepository
}

func NewStatsService(stats repository.StatsRepository) StatsService {
	return &statsService{stats: stats}
}

func (s *statsService) InstructorStats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.stats.CountDocuments(ctx, database.InstructorStatsCollections)
	if err != nil {
		return nil, storeFailure("count instructor stats", err)
	}
	return counts, nil
}

func (s *statsService) AdminStats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.stats.CountDocuments(ctx, database.AllCollections)
	if err != nil {
		return nil, storeFailure("count admin stats", err)
	}
	return counts, nil
}
