package usecase

import (
	"context"

	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/readmodel"
)

type StatsRepository interface {
	Dashboard(ctx context.Context) (*readmodel.DashboardStatsRM, error)
	SystemCounts(ctx context.Context) (*readmodel.SystemCountsRM, error)
}

type StatsUseCase interface {
	Dashboard(ctx context.Context) (*readmodel.DashboardStatsRM, error)
	SystemCounts(ctx context.Context) (*readmodel.SystemCountsRM, error)
}

type statsUseCaseImpl struct {
	statsRepo StatsRepository
}

func NewStatsUseCase(statsRepo StatsRepository) StatsUseCase {
	return &statsUseCaseImpl{statsRepo: statsRepo}
}

func (s *statsUseCaseImpl) Dashboard(ctx context.Context) (*readmodel.DashboardStatsRM, error) {
	rm, err := s.statsRepo.Dashboard(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}

func (s *statsUseCaseImpl) SystemCounts(ctx context.Context) (*readmodel.SystemCountsRM, error) {
	rm, err := s.statsRepo.SystemCounts(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return rm, nil
}
