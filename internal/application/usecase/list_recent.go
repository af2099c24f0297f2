package usecase

import (
	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/port"
)

// ListRecent reads the in-memory recent predictions log.
type ListRecent struct {
	recent port.RecentPredictions
}

// NewListRecent creates a new ListRecent use case.
func NewListRecent(recent port.RecentPredictions) *ListRecent {
	return &ListRecent{recent: recent}
}

// Execute returns the recent entries, most recent first.
func (uc *ListRecent) Execute() dto.RecentListResponse {
	results := dto.FromRecent(uc.recent.List())
	return dto.RecentListResponse{
		TotalResults: len(results),
		Results:      results,
	}
}
