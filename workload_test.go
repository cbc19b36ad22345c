package makespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkloadCache(t *testing.T) {
	cache := NewWorkloadCache()

	w1, err := cache.Get(8)
	require.Nil(t, err)
	require.Equal(t, 8, w1.Size)
	require.Len(t, w1.Jobs, 8)
	require.Len(t, w1.Setup, 9)

	w2, err := cache.Get(8)
	require.Nil(t, err)
	require.Equal(t, w1, w2)
}

func TestWorkloadDeterministicAcrossCaches(t *testing.T) {
	w1, err := NewWorkloadCache().Get(6)
	require.Nil(t, err)
	w2, err := NewWorkloadCache().Get(6)
	require.Nil(t, err)
	require.Equal(t, w1, w2)
}

func TestWorkloadCache_InvalidSize(t *testing.T) {
	_, err := NewWorkloadCache().Get(0)
	require.ErrorIs(t, err, ErrWorkloadSize)
}

func TestWorkloadEvaluates(t *testing.T) {
	w, err := NewWorkloadCache().Get(10)
	require.Nil(t, err)

	jobs := make([]Job, len(w.Jobs))
	copy(jobs, w.Jobs)
	ordered, err := EvaluateOrderedSchedule(jobs, w.Processing, w.Setup, w.JobOrder(), w.Machines)
	require.Nil(t, err)
	require.Greater(t, ordered, 0.0)

	copy(jobs, w.Jobs)
	bin, err := EvaluateBinSchedule(jobs, w.Processing, w.Setup, w.Accelerators)
	require.Nil(t, err)
	require.Greater(t, bin, 0.0)
}
