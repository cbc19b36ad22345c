package makespan

// Job is one ledger entry of a schedule: the assignment an external
// optimizer produced for a single unit of work. StartTime holds the
// nominal start as given by the input and is reinterpreted during
// simulation; CompletionTime starts at zero and is written exactly once
// per simulation pass. Quantity is an opaque workload-size payload and
// never enters the makespan arithmetic.
type Job struct {
	Name           JobName
	Machine        MachineID
	StartTime      float64
	CompletionTime float64
	Quantity       int
}

func NewJob(name JobName, machine MachineID, startTime float64, quantity int) Job {
	return Job{
		Name:      name,
		Machine:   machine,
		StartTime: startTime,
		Quantity:  quantity,
	}
}

// NewDummyJob returns the synthetic predecessor used when a job is first
// on its machine. It is constructed on demand and never persisted.
func NewDummyJob(machine MachineID) Job {
	return Job{Name: DummyJobName, Machine: machine}
}

func (m Job) IsDummy() bool {
	return m.Name.IsDummy()
}

func cloneJobs(jobs []*Job) []Job {
	snapshot := make([]Job, len(jobs))
	for i, job := range jobs {
		snapshot[i] = *job
	}
	return snapshot
}
