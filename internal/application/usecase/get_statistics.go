package usecase

import (
	"context"
	"fmt"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/port"
)

// GetStatistics is the use case for summarising stored predictions.
type GetStatistics struct {
	repo port.ResultRepository
}

// NewGetStatistics creates a new GetStatistics use case.
func NewGetStatistics(repo port.ResultRepository) *GetStatistics {
	return &GetStatistics{repo: repo}
}

// Execute returns the store summary.
func (uc *GetStatistics) Execute(ctx context.Context) (dto.StatisticsResponse, error) {
	stats, err := uc.repo.Statistics(ctx)
	if err != nil {
		return dto.StatisticsResponse{}, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return dto.FromStatistics(stats), nil
}
