package recent

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

func ids(entries []model.RecentPrediction) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ResultID
	}
	return out
}

func TestBuffer_KeepsLastThreeMostRecentFirst(t *testing.T) {
	b := NewBuffer(DefaultCapacity)

	for id := int64(1); id <= 4; id++ {
		b.Push(model.RecentPrediction{ResultID: id})
	}

	assert.Equal(t, []int64{4, 3, 2}, ids(b.List()))
}

func TestBuffer_PartiallyFilled(t *testing.T) {
	b := NewBuffer(0)
	assert.Empty(t, b.List())
	assert.NotNil(t, b.List())

	b.Push(model.RecentPrediction{ResultID: 1})
	b.Push(model.RecentPrediction{ResultID: 2})
	assert.Equal(t, []int64{2, 1}, ids(b.List()))
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_ListReturnsCopy(t *testing.T) {
	b := NewBuffer(3)
	b.Push(model.RecentPrediction{ResultID: 1, PredictedCategory: "Low"})

	got := b.List()
	got[0].PredictedCategory = "tampered"

	assert.Equal(t, "Low", b.List()[0].PredictedCategory)
}

func TestBuffer_ConcurrentPushes(t *testing.T) {
	b := NewBuffer(3)

	var wg sync.WaitGroup
	for i := 1; i <= 200; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			b.Push(model.RecentPrediction{ResultID: id})
			_ = b.List()
		}(int64(i))
	}
	wg.Wait()

	got := b.List()
	require.Len(t, got, 3)
	seen := map[int64]bool{}
	for _, e := range got {
		assert.False(t, seen[e.ResultID], "duplicate entry %d", e.ResultID)
		assert.NotZero(t, e.ResultID)
		seen[e.ResultID] = true
	}
}
