package makespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessingTimesZeroDefault(t *testing.T) {
	times := NewProcessingTimes(
		[]JobName{"A", "B"},
		[]MachineID{"m1", "m2"},
		ProcessingRows{{1, 2}, {3, 4}},
	)

	require.Equal(t, 1.0, times.Get("A", "m1"))
	require.Equal(t, 4.0, times.Get("B", "m2"))

	// unknown keys are a silent zero, never an error
	require.Equal(t, 0.0, times.Get(DummyJobName, "m1"))
	require.Equal(t, 0.0, times.Get("A", "unknown"))
	require.Equal(t, 0.0, times.Get("Z", "m1"))
}

func TestProcessingTimesRaggedRows(t *testing.T) {
	times := NewProcessingTimes(
		[]JobName{"A", "B"},
		[]MachineID{"m1", "m2"},
		ProcessingRows{{1}},
	)

	require.Equal(t, 1.0, times.Get("A", "m1"))
	require.Equal(t, 0.0, times.Get("A", "m2"))
	require.Equal(t, 0.0, times.Get("B", "m1"))
}

func TestSetupTimesZeroDefault(t *testing.T) {
	jobs := []JobName{DummyJobName, "A", "B"}
	times := NewSetupTimes(jobs, []MachineID{"m1"}, SetupRows{
		{{0}, {1}, {0}},
		{{0}, {0}, {2}},
		{{0}, {0}, {0}},
	})

	require.Equal(t, 1.0, times.Get(DummyJobName, "A", "m1"))
	require.Equal(t, 2.0, times.Get("A", "B", "m1"))
	require.Equal(t, 0.0, times.Get("B", "A", "m1"))
	require.Equal(t, 0.0, times.Get("A", "B", "unknown"))
}

func TestParseProcessingRows(t *testing.T) {
	raw := []interface{}{
		[]interface{}{1, "2.5"},
		[]interface{}{3.5, 4},
	}

	rows, err := ParseProcessingRows(raw)
	require.Nil(t, err)
	require.Equal(t, ProcessingRows{{1, 2.5}, {3.5, 4}}, rows)
}

func TestParseProcessingRows_Invalid(t *testing.T) {
	_, err := ParseProcessingRows("not a table")
	require.ErrorIs(t, err, ErrTableShape)

	_, err = ParseProcessingRows([]interface{}{[]interface{}{"x"}})
	require.ErrorIs(t, err, ErrTableShape)
}

func TestParseSetupRows(t *testing.T) {
	raw := []interface{}{
		[]interface{}{
			[]interface{}{0, 1},
			[]interface{}{"2", 0},
		},
	}

	rows, err := ParseSetupRows(raw)
	require.Nil(t, err)
	require.Equal(t, SetupRows{{{0, 1}, {2, 0}}}, rows)
}
