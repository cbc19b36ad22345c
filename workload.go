package makespan

import (
	"fmt"
	"math/rand"
	"sync"
)

// Workload is a synthetic benchmark assignment: size jobs spread over a
// small accelerator set, plus matching time tables. It mimics the
// GHZ-style circuit batches the surrounding system schedules, where
// processing cost grows with circuit width.
type Workload struct {
	Size         int
	Jobs         []Job
	Machines     []MachineID
	Accelerators map[MachineID]int
	Processing   ProcessingRows
	Setup        SetupRows
}

// WorkloadCache memoizes generated workloads by size. It is an explicit
// value whose lifetime is scoped to one run; there is no package-level
// instance.
type WorkloadCache struct {
	mu        sync.Mutex
	workloads map[int]Workload
}

func NewWorkloadCache() *WorkloadCache {
	return &WorkloadCache{workloads: make(map[int]Workload)}
}

func (c *WorkloadCache) Get(size int) (Workload, error) {
	if size <= 0 {
		return Workload{}, wrapError(ErrWorkloadSize, "%d", size)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if w, ok := c.workloads[size]; ok {
		return w, nil
	}

	w := buildWorkload(size)
	c.workloads[size] = w
	return w, nil
}

const workloadMachines = 2

// buildWorkload generates a deterministic workload: the same size always
// yields the same jobs and tables.
func buildWorkload(size int) Workload {
	rng := rand.New(rand.NewSource(int64(size)))

	machines := make([]MachineID, workloadMachines)
	accelerators := make(map[MachineID]int, workloadMachines)
	for m := range machines {
		machines[m] = MachineID(fmt.Sprintf("acc-%d", m))
		accelerators[machines[m]] = size
	}

	jobs := make([]Job, size)
	widths := make([]int, size)
	for i := range jobs {
		width := 1 + rng.Intn(size)
		widths[i] = width
		jobs[i] = NewJob(
			JobName(fmt.Sprintf("ghz-%d-%d", width, i+1)),
			machines[i%workloadMachines],
			0,
			width,
		)
	}

	processing := make(ProcessingRows, size)
	for i := range processing {
		row := make([]float64, workloadMachines)
		for m := range row {
			// one layer of gates per qubit, slower on the later machines
			row[m] = float64(widths[i]) * (1 + float64(m)*0.5)
		}
		processing[i] = row
	}

	// nominal start and completion times as an optimizer would emit them
	elapsed := make(map[MachineID]float64, workloadMachines)
	for i := range jobs {
		machine := jobs[i].Machine
		jobs[i].StartTime = elapsed[machine]
		elapsed[machine] += processing[i][i%workloadMachines]
		jobs[i].CompletionTime = elapsed[machine]
	}

	setup := make(SetupRows, size+1)
	for i := range setup {
		inner := make(ProcessingRows, size+1)
		for j := range inner {
			row := make([]float64, workloadMachines)
			if i != j && i > 0 {
				for m := range row {
					row[m] = float64(1 + rng.Intn(3))
				}
			}
			inner[j] = row
		}
		setup[i] = inner
	}

	return Workload{
		Size:         size,
		Jobs:         jobs,
		Machines:     machines,
		Accelerators: accelerators,
		Processing:   processing,
		Setup:        setup,
	}
}

// JobOrder returns the workload's job names with the dummy name at the
// head, the shape the ordered entry point expects.
func (w Workload) JobOrder() []JobName {
	names := make([]JobName, 0, len(w.Jobs)+1)
	names = append(names, DummyJobName)
	for _, job := range w.Jobs {
		names = append(names, job.Name)
	}
	return names
}
