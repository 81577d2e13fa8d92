package service

import (
	"context"

	"yatube/internal/repository"
)

type StatsService interface {
	TableCounts(ctx context.Context) (map[string]int, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) TableCounts(ctx context.Context) (map[string]int, error) {
	return s.statsRepo.TableCounts(ctx)
}
