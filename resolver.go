package makespan

// findLastCompleted resolves a job's predecessor under the ordered-list
// policy. It reads only snapshot, the machine's job set as it was before
// any completion time was rewritten in the current pass. Resolving
// against the live set instead would feed half-updated completion times
// into the ordering and change which job qualifies mid-simulation.
//
// The predecessor is the job with the maximum completion time among those
// whose completion time is not later than the given job's original start
// time. When no job qualifies the dummy job is returned. A name missing
// from snapshot is a caller contract violation and fails with
// ErrJobNotFound.
func findLastCompleted(name JobName, snapshot []Job, machine MachineID) (Job, error) {
	originalStart := 0.0
	found := false
	for _, job := range snapshot {
		if job.Name == name {
			originalStart = job.StartTime
			found = true
			break
		}
	}
	if !found {
		return Job{}, wrapError(ErrJobNotFound, "job %s on machine %s", name, machine)
	}

	last := NewDummyJob(machine)
	qualified := false
	for _, job := range snapshot {
		if job.CompletionTime > originalStart {
			continue
		}
		if !qualified || job.CompletionTime > last.CompletionTime {
			last = job
			qualified = true
		}
	}
	if !qualified {
		return NewDummyJob(machine), nil
	}
	return last, nil
}

// lastFinished resolves a predecessor under the dynamic-bin policy: the
// job with the maximum completion time in the live, being-updated set,
// recomputed fresh for every job. Ties keep the earliest ledger entry.
func lastFinished(live []*Job, machine MachineID) Job {
	if len(live) == 0 {
		return NewDummyJob(machine)
	}
	last := live[0]
	for _, job := range live[1:] {
		if job.CompletionTime > last.CompletionTime {
			last = job
		}
	}
	return *last
}
