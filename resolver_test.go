package makespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindLastCompleted(t *testing.T) {
	snapshot := []Job{
		{Name: "A", Machine: "m1", StartTime: 0, CompletionTime: 4},
		{Name: "B", Machine: "m1", StartTime: 4, CompletionTime: 6},
		{Name: "C", Machine: "m1", StartTime: 6, CompletionTime: 8},
	}

	pred, err := findLastCompleted("C", snapshot, "m1")
	require.Nil(t, err)
	require.Equal(t, JobName("B"), pred.Name)

	pred, err = findLastCompleted("B", snapshot, "m1")
	require.Nil(t, err)
	require.Equal(t, JobName("A"), pred.Name)
}

func TestFindLastCompleted_NoneQualifies(t *testing.T) {
	snapshot := []Job{
		{Name: "A", Machine: "m1", StartTime: 2, CompletionTime: 5},
		{Name: "B", Machine: "m1", StartTime: 7, CompletionTime: 9},
	}

	pred, err := findLastCompleted("A", snapshot, "m1")
	require.Nil(t, err)
	require.True(t, pred.IsDummy())
	require.Equal(t, MachineID("m1"), pred.Machine)
	require.Equal(t, 0.0, pred.CompletionTime)
}

func TestFindLastCompleted_TiesKeepFirstEntry(t *testing.T) {
	snapshot := []Job{
		{Name: "A", Machine: "m1", StartTime: 0, CompletionTime: 3},
		{Name: "B", Machine: "m1", StartTime: 1, CompletionTime: 3},
		{Name: "C", Machine: "m1", StartTime: 5, CompletionTime: 7},
	}

	pred, err := findLastCompleted("C", snapshot, "m1")
	require.Nil(t, err)
	require.Equal(t, JobName("A"), pred.Name)
}

func TestFindLastCompleted_MissingJobIsContractViolation(t *testing.T) {
	snapshot := []Job{
		{Name: "A", Machine: "m1", StartTime: 0, CompletionTime: 4},
	}

	_, err := findLastCompleted("Z", snapshot, "m1")
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestLastFinished(t *testing.T) {
	live := []*Job{
		{Name: "A", Machine: "m1", CompletionTime: 4},
		{Name: "B", Machine: "m1", CompletionTime: 9},
		{Name: "C", Machine: "m1", CompletionTime: 6},
	}

	pred := lastFinished(live, "m1")
	require.Equal(t, JobName("B"), pred.Name)

	live[0].CompletionTime = 12
	pred = lastFinished(live, "m1")
	require.Equal(t, JobName("A"), pred.Name)
}

func TestLastFinished_Empty(t *testing.T) {
	pred := lastFinished(nil, "m1")
	require.True(t, pred.IsDummy())
}
