package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/application/usecase"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/recent"
)

func seed(t *testing.T, repo *mockResultRepository, city, category string) {
	t.Helper()
	_, err := repo.Save(context.Background(), model.PredictionRecord{
		Input:             model.UserInput{City: city, Age: 30},
		PredictedCategory: category,
	})
	require.NoError(t, err)
}

func TestListResults_Execute(t *testing.T) {
	repo := &mockResultRepository{}
	seed(t, repo, "Mumbai", "High")
	seed(t, repo, "Jaipur", "Low")
	seed(t, repo, "Mumbai", "Low")
	uc := usecase.NewListResults(repo)
	ctx := context.Background()

	t.Run("all", func(t *testing.T) {
		resp, err := uc.Execute(ctx, dto.ResultFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalResults)
		assert.Equal(t, int64(1), resp.Results[0].ID)
	})

	t.Run("by city", func(t *testing.T) {
		resp, err := uc.Execute(ctx, dto.ResultFilter{City: "Mumbai"})
		require.NoError(t, err)
		assert.Equal(t, "Mumbai", resp.City)
		assert.Equal(t, 2, resp.TotalResults)
	})

	t.Run("by category", func(t *testing.T) {
		resp, err := uc.Execute(ctx, dto.ResultFilter{Category: "Low"})
		require.NoError(t, err)
		assert.Equal(t, "Low", resp.Category)
		assert.Equal(t, 2, resp.TotalResults)
	})

	t.Run("city and category", func(t *testing.T) {
		resp, err := uc.Execute(ctx, dto.ResultFilter{City: "Mumbai", Category: "Low"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalResults)
		assert.Equal(t, int64(3), resp.Results[0].ID)
	})

	t.Run("unknown city is empty", func(t *testing.T) {
		resp, err := uc.Execute(ctx, dto.ResultFilter{City: "Nonexistent"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalResults)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
	})
}

func TestListResults_StorageError(t *testing.T) {
	repo := &mockResultRepository{listErr: &model.StorageError{Op: "list_all", Err: errors.New("timeout")}}

	_, err := usecase.NewListResults(repo).Execute(context.Background(), dto.ResultFilter{})

	var se *model.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "list_all", se.Op)
}

func TestGetStatistics_Execute(t *testing.T) {
	t.Run("empty store has null average", func(t *testing.T) {
		resp, err := usecase.NewGetStatistics(&mockResultRepository{}).Execute(context.Background())
		require.NoError(t, err)
		assert.Zero(t, resp.TotalPredictions)
		assert.Nil(t, resp.AverageBMI)
	})

	t.Run("passes through the summary", func(t *testing.T) {
		avg := 24.5
		repo := &mockResultRepository{statisticsFunc: func(context.Context) (model.Statistics, error) {
			return model.Statistics{TotalPredictions: 4, UniqueCategories: 2, AverageBMI: &avg}, nil
		}}
		resp, err := usecase.NewGetStatistics(repo).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(4), resp.TotalPredictions)
		assert.Equal(t, int64(2), resp.UniqueCategories)
		require.NotNil(t, resp.AverageBMI)
		assert.Equal(t, 24.5, *resp.AverageBMI)
	})

	t.Run("error", func(t *testing.T) {
		repo := &mockResultRepository{statisticsFunc: func(context.Context) (model.Statistics, error) {
			return model.Statistics{}, errors.New("boom")
		}}
		_, err := usecase.NewGetStatistics(repo).Execute(context.Background())
		assert.Error(t, err)
	})
}

func TestListRecent_Execute(t *testing.T) {
	buf := recent.NewBuffer(3)
	uc := usecase.NewListRecent(buf)

	empty := uc.Execute()
	assert.Equal(t, 0, empty.TotalResults)
	assert.NotNil(t, empty.Results)

	buf.Push(model.RecentPrediction{ResultID: 1, PredictedCategory: "Low"})
	buf.Push(model.RecentPrediction{ResultID: 2, PredictedCategory: "High"})

	resp := uc.Execute()
	require.Equal(t, 2, resp.TotalResults)
	assert.Equal(t, int64(2), resp.Results[0].ResultID)
	assert.Equal(t, "High", resp.Results[0].PredictedCategory)
}
