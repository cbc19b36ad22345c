package makespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleEntityConverter(t *testing.T) {
	s := NewSchedule(PolicyOrdered)
	s = s.AddJob(NewJob("A", "m1", 0, 2))
	s = s.AddJob(NewJob("B", "m1", 5, 4))

	e, err := ScheduleEntityConverter{}.ToEntity(&s)
	require.Nil(t, err)
	require.Equal(t, s.ID.String(), e.ID)
	require.Equal(t, string(PolicyOrdered), e.Policy)

	m, err := ScheduleEntityConverter{}.ToModel(e)
	require.Nil(t, err)
	require.Equal(t, s, m)
}

func TestScheduleEntityConverter_InvalidPolicy(t *testing.T) {
	s := NewSchedule(PolicyBin)
	e, err := ScheduleEntityConverter{}.ToEntity(&s)
	require.Nil(t, err)

	e.Policy = "FIFO"
	_, err = ScheduleEntityConverter{}.ToModel(e)
	require.ErrorIs(t, err, ErrPolicy)
}

func TestEvaluationEntityConverter(t *testing.T) {
	ev := NewEvaluation(NewScheduleID())
	ev = ev.Complete(12.5, map[MachineID]float64{"m1": 12.5, "m2": 3})

	e, err := EvaluationEntityConverter{}.ToEntity(&ev)
	require.Nil(t, err)
	require.Equal(t, 12.5, e.Makespan)

	m, err := EvaluationEntityConverter{}.ToModel(e)
	require.Nil(t, err)
	require.Equal(t, ev, m)
}
