package makespan

import (
	"context"
	"sort"
	"sync"
	"time"
)

// EvaluateOrderedSchedule replays an assignment whose start times encode
// an externally fixed execution order and returns its makespan. jobOrder
// and machineOrder span the time tables; jobOrder may carry the dummy
// name "0" at its head, and gets one prepended otherwise. Completion
// times are written back into jobs in place, so callers that still need
// the pre-simulation values must copy first.
func EvaluateOrderedSchedule(jobs []Job, processing ProcessingRows, setup SetupRows, jobOrder []JobName, machineOrder []MachineID) (float64, error) {
	inst := NewLPInstance(jobOrder, machineOrder)
	makespan, _, err := calcMakespan(jobs, processing, setup, inst, PolicyOrdered, false)
	return makespan, err
}

// EvaluateBinSchedule replays a bin-packing-style assignment with no
// fixed historical order and returns its makespan. Only the machine
// identities of accelerators matter, never the capacities.
func EvaluateBinSchedule(jobs []Job, processing ProcessingRows, setup SetupRows, accelerators map[MachineID]int) (float64, error) {
	inst := binInstance(jobs, accelerators)
	makespan, _, err := calcMakespan(jobs, processing, setup, inst, PolicyBin, false)
	return makespan, err
}

func binInstance(jobs []Job, accelerators map[MachineID]int) LPInstance {
	names := make([]JobName, 0, len(jobs)+1)
	names = append(names, DummyJobName)
	for _, job := range jobs {
		names = append(names, job.Name)
	}
	machines := make([]MachineID, 0, len(accelerators))
	for machine := range accelerators {
		machines = append(machines, machine)
	}
	sort.Slice(machines, func(i, j int) bool { return machines[i] < machines[j] })
	return LPInstance{Jobs: names, Machines: machines}
}

// Evaluator runs schedule simulations and optionally records schedules
// and their evaluations through the configured repositories.
type Evaluator struct {
	ScheduleRepository   ScheduleRepository
	EvaluationRepository EvaluationRepository

	parallel bool
	mu       sync.Mutex
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{}
	for _, o := range options {
		o(e)
	}
	return e
}

// Evaluate simulates s under its own policy and returns the finished
// Evaluation. For PolicyBin the instance's machine list is the
// accelerator set and its job list may be left empty. The schedule's job
// ledger is mutated in place for the duration of the call; a schedule is
// never shared across concurrent Evaluate calls.
func (e *Evaluator) Evaluate(ctx context.Context, s *Schedule, processing ProcessingRows, setup SetupRows, inst LPInstance) (Evaluation, error) {
	start := time.Now()

	if s.Policy == PolicyBin && len(inst.Jobs) == 0 {
		names := make([]JobName, 0, len(s.Jobs))
		for _, job := range s.Jobs {
			names = append(names, job.Name)
		}
		inst.Jobs = names
	}
	inst = NewLPInstance(inst.Jobs, inst.Machines)

	makespan, finishes, err := calcMakespan(s.Jobs, processing, setup, inst, s.Policy, e.parallel)
	if err != nil {
		evaluationLogger{}.WithSchedule(s.ID).Logger().Errorf("Evaluate schedule, %v", err)
		metrics.observeEvaluation(s.Policy, time.Since(start), err)
		return Evaluation{}, err
	}

	*s = s.Finish()
	ev := NewEvaluation(s.ID).Complete(makespan, finishes)

	if err := e.record(ctx, s, &ev); err != nil {
		return Evaluation{}, err
	}

	metrics.observeEvaluation(s.Policy, time.Since(start), nil)
	metrics.observeMakespan(makespan, len(s.Jobs))

	evaluationLogger{}.WithSchedule(s.ID).WithEvaluation(ev).Logger().
		Debugf("Evaluated %d jobs on %d machines", len(s.Jobs), len(finishes))

	return ev, nil
}

func (e *Evaluator) record(ctx context.Context, s *Schedule, ev *Evaluation) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ScheduleRepository != nil {
		if err := e.ScheduleRepository.Save(ctx, s); err != nil {
			return err
		}
	}
	if e.EvaluationRepository != nil {
		if err := e.EvaluationRepository.Save(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

type machinePartition struct {
	machines  []MachineID
	byMachine map[MachineID][]*Job
}

// partitionJobs splits the ledger by machine, preserving insertion order
// within a machine. The partition holds pointers into jobs so completion
// times land back in the caller's ledger.
func partitionJobs(jobs []Job) machinePartition {
	p := machinePartition{byMachine: make(map[MachineID][]*Job)}
	for i := range jobs {
		job := &jobs[i]
		if _, ok := p.byMachine[job.Machine]; !ok {
			p.machines = append(p.machines, job.Machine)
		}
		p.byMachine[job.Machine] = append(p.byMachine[job.Machine], job)
	}
	return p
}

func calcMakespan(jobs []Job, processing ProcessingRows, setup SetupRows, inst LPInstance, policy Policy, parallel bool) (float64, map[MachineID]float64, error) {
	inst = NewLPInstance(inst.Jobs, inst.Machines)
	pTimes := NewProcessingTimes(inst.Jobs[1:], inst.Machines, processing)
	sTimes := NewSetupTimes(inst.Jobs, inst.Machines, setup)

	part := partitionJobs(jobs)
	finishes := make(map[MachineID]float64, len(part.machines))

	if parallel {
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			firstErr error
		)
		for _, machine := range part.machines {
			wg.Add(1)
			go func(machine MachineID, assigned []*Job) {
				defer wg.Done()
				finish, err := propagateMachine(machine, assigned, pTimes, sTimes, policy)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				finishes[machine] = finish
			}(machine, part.byMachine[machine])
		}
		wg.Wait()
		if firstErr != nil {
			return 0, nil, firstErr
		}
	} else {
		for _, machine := range part.machines {
			finish, err := propagateMachine(machine, part.byMachine[machine], pTimes, sTimes, policy)
			if err != nil {
				return 0, nil, err
			}
			finishes[machine] = finish
		}
	}

	makespan := 0.0
	for _, finish := range finishes {
		if finish > makespan {
			makespan = finish
		}
	}
	return makespan, finishes, nil
}

// propagateMachine realizes completion times for one machine's jobs and
// returns the machine's finish time. Machines have no cross dependencies,
// so each call is independent.
func propagateMachine(machine MachineID, assigned []*Job, pTimes ProcessingTimes, sTimes SetupTimes, policy Policy) (float64, error) {
	order := assigned
	var snapshot []Job
	if policy == PolicyOrdered {
		// The snapshot is taken once, before the first completion time of
		// this machine's pass is rewritten. Ordered resolution must never
		// observe a mutated entry.
		snapshot = cloneJobs(assigned)
		order = make([]*Job, len(assigned))
		copy(order, assigned)
		sort.SliceStable(order, func(i, j int) bool { return order[i].StartTime < order[j].StartTime })
	}

	for _, job := range order {
		var predecessor Job
		if policy == PolicyOrdered {
			p, err := findLastCompleted(job.Name, snapshot, machine)
			if err != nil {
				return 0, err
			}
			predecessor = p
			if job.StartTime == 0 {
				predecessor = NewDummyJob(machine)
			}
			job.StartTime = liveCompletion(assigned, predecessor.Name)
		} else {
			predecessor = lastFinished(assigned, machine)
			if job.StartTime == 0 {
				predecessor = NewDummyJob(machine)
			}
			job.StartTime = predecessor.CompletionTime
		}

		// predecessor's finish, then processing, then setup. Keep the
		// decomposition in this order for auditing.
		job.CompletionTime = predecessor.CompletionTime +
			pTimes.Get(job.Name, machine) +
			sTimes.Get(predecessor.Name, job.Name, machine)
	}

	finish := 0.0
	for _, job := range assigned {
		if job.CompletionTime > finish {
			finish = job.CompletionTime
		}
	}
	return finish, nil
}

// liveCompletion reads the current completion time of name out of the
// live set, 0 when absent. The dummy predecessor is never in the live
// set and so resolves to 0.
func liveCompletion(live []*Job, name JobName) float64 {
	for _, job := range live {
		if job.Name == name {
			return job.CompletionTime
		}
	}
	return 0
}
