package usecase

import (
	"context"
	"fmt"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/port"
)

// ListResults is the use case for reading stored predictions.
type ListResults struct {
	repo port.ResultRepository
}

// NewListResults creates a new ListResults use case.
func NewListResults(repo port.ResultRepository) *ListResults {
	return &ListResults{repo: repo}
}

// Execute lists stored predictions matching filter. With both a city and a
// category set, the city query is narrowed to the category.
func (uc *ListResults) Execute(ctx context.Context, filter dto.ResultFilter) (dto.ResultListResponse, error) {
	var (
		records []model.PredictionRecord
		err     error
	)

	switch {
	case filter.City != "":
		records, err = uc.repo.ListByCity(ctx, filter.City)
		if err == nil && filter.Category != "" {
			records = filterCategory(records, filter.Category)
		}
	case filter.Category != "":
		records, err = uc.repo.ListByCategory(ctx, filter.Category)
	default:
		records, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return dto.ResultListResponse{}, fmt.Errorf("failed to list results: %w", err)
	}

	results := dto.FromRecords(records)
	return dto.ResultListResponse{
		City:         filter.City,
		Category:     filter.Category,
		TotalResults: len(results),
		Results:      results,
	}, nil
}

func filterCategory(records []model.PredictionRecord, category string) []model.PredictionRecord {
	out := records[:0]
	for _, r := range records {
		if r.PredictedCategory == category {
			out = append(out, r)
		}
	}
	return out
}
