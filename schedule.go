package makespan

// Schedule is the persisted form of one assignment handed over by an
// external optimizer: the job ledger plus the policy it must be replayed
// under.
type Schedule struct {
	ID         ScheduleID
	Policy     Policy
	Jobs       []Job
	CreateTime Timestamp
	UpdateTime Timestamp
	FinishTime Timestamp
}

func NewSchedule(policy Policy) Schedule {
	return Schedule{
		ID:         NewScheduleID(),
		Policy:     policy,
		Jobs:       []Job{},
		CreateTime: NewTimestamp(),
		UpdateTime: NewTimestamp(),
		FinishTime: TimestampZero,
	}
}

func (m Schedule) AddJob(job Job) Schedule {
	m.Jobs = append(m.Jobs, job)
	return m
}

func (m Schedule) JobNames() []JobName {
	names := make([]JobName, 0, len(m.Jobs))
	for _, job := range m.Jobs {
		names = append(names, job.Name)
	}
	return names
}

func (m Schedule) Finish() Schedule {
	m.FinishTime = NewTimestamp()
	return m
}

// Validate checks the ledger invariants: job names are present, unique
// and never the reserved dummy name, and when a machine universe is
// given every job's machine belongs to it. Evaluation itself does not
// call this; missing table entries stay a silent zero default there.
func (m Schedule) Validate(machines []MachineID) error {
	seen := make(map[JobName]bool, len(m.Jobs))
	for _, job := range m.Jobs {
		if job.Name == "" || job.Name.IsDummy() {
			return wrapError(ErrScheduleJobs, "name %q", job.Name)
		}
		if seen[job.Name] {
			return wrapError(ErrScheduleJobs, "duplicate name %q", job.Name)
		}
		seen[job.Name] = true
	}
	if len(machines) == 0 {
		return nil
	}
	known := make(map[MachineID]bool, len(machines))
	for _, machine := range machines {
		known[machine] = true
	}
	for _, job := range m.Jobs {
		if !known[job.Machine] {
			return wrapError(ErrScheduleMachine, "job %s machine %s", job.Name, job.Machine)
		}
	}
	return nil
}

// Evaluation records the realized outcome of replaying one schedule.
type Evaluation struct {
	ID            EvaluationID
	ScheduleID    ScheduleID
	Makespan      float64
	MachineFinish map[MachineID]float64
	CreateTime    Timestamp
	UpdateTime    Timestamp
	FinishTime    Timestamp
}

func NewEvaluation(scheduleID ScheduleID) Evaluation {
	return Evaluation{
		ID:            NewEvaluationID(),
		ScheduleID:    scheduleID,
		MachineFinish: map[MachineID]float64{},
		CreateTime:    NewTimestamp(),
		UpdateTime:    NewTimestamp(),
		FinishTime:    TimestampZero,
	}
}

func (m Evaluation) Complete(makespan float64, finishes map[MachineID]float64) Evaluation {
	m.Makespan = makespan
	m.MachineFinish = finishes
	m.FinishTime = NewTimestamp()
	return m
}
