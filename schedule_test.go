package makespan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScheduleValidate(t *testing.T) {
	s := NewSchedule(PolicyOrdered)
	s = s.AddJob(NewJob("A", "m1", 0, 1))
	s = s.AddJob(NewJob("B", "m2", 3, 1))

	require.Nil(t, s.Validate(nil))
	require.Nil(t, s.Validate([]MachineID{"m1", "m2"}))

	err := s.Validate([]MachineID{"m1"})
	require.ErrorIs(t, err, ErrScheduleMachine)
}

func TestScheduleValidate_Names(t *testing.T) {
	s := NewSchedule(PolicyBin)
	s = s.AddJob(NewJob(DummyJobName, "m1", 0, 1))
	require.ErrorIs(t, s.Validate(nil), ErrScheduleJobs)

	s = NewSchedule(PolicyBin)
	s = s.AddJob(NewJob("A", "m1", 0, 1))
	s = s.AddJob(NewJob("A", "m1", 2, 1))
	require.ErrorIs(t, s.Validate(nil), ErrScheduleJobs)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("Ordered")
	require.Nil(t, err)
	require.Equal(t, PolicyOrdered, p)

	p, err = ParsePolicy("Bin")
	require.Nil(t, err)
	require.Equal(t, PolicyBin, p)

	_, err = ParsePolicy("FIFO")
	require.ErrorIs(t, err, ErrPolicy)
}

func TestJobNames(t *testing.T) {
	s := NewSchedule(PolicyOrdered)
	s = s.AddJob(NewJob("A", "m1", 0, 1))
	s = s.AddJob(NewJob("B", "m1", 1, 1))
	require.Equal(t, []JobName{"A", "B"}, s.JobNames())
}
