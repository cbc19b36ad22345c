package makespan

import (
	"github.com/spf13/cast"
)

// ProcessingRows is the flat tabular processing-time input: one row per
// real job, one column per machine. The dummy job has no row.
type ProcessingRows [][]float64

// SetupRows is the flat tabular setup-time input: rows[i][j][m] is the
// setup cost on machine m when job j runs right after job i. Both job
// dimensions include the dummy job at index 0.
type SetupRows [][][]float64

type processingKey struct {
	job     JobName
	machine MachineID
}

// ProcessingTimes maps (job, machine) to a processing time. Unknown
// combinations read back as 0; the dummy job and machines absent from
// the input tables rely on this default, so it is not an error.
type ProcessingTimes struct {
	times map[processingKey]float64
}

func NewProcessingTimes(jobs []JobName, machines []MachineID, rows ProcessingRows) ProcessingTimes {
	t := ProcessingTimes{times: make(map[processingKey]float64)}
	for i, job := range jobs {
		if i >= len(rows) {
			break
		}
		for j, machine := range machines {
			if j >= len(rows[i]) {
				break
			}
			t.times[processingKey{job, machine}] = rows[i][j]
		}
	}
	return t
}

func (t ProcessingTimes) Get(job JobName, machine MachineID) float64 {
	return t.times[processingKey{job, machine}]
}

type setupKey struct {
	predecessor JobName
	successor   JobName
	machine     MachineID
}

// SetupTimes maps (predecessor, successor, machine) to a setup time,
// with the same zero default as ProcessingTimes.
type SetupTimes struct {
	times map[setupKey]float64
}

func NewSetupTimes(jobs []JobName, machines []MachineID, rows SetupRows) SetupTimes {
	t := SetupTimes{times: make(map[setupKey]float64)}
	for i, predecessor := range jobs {
		if i >= len(rows) {
			break
		}
		for j, successor := range jobs {
			if j >= len(rows[i]) {
				break
			}
			for k, machine := range machines {
				if k >= len(rows[i][j]) {
					break
				}
				t.times[setupKey{predecessor, successor, machine}] = rows[i][j][k]
			}
		}
	}
	return t
}

func (t SetupTimes) Get(predecessor, successor JobName, machine MachineID) float64 {
	return t.times[setupKey{predecessor, successor, machine}]
}

// ParseProcessingRows converts the untyped row data external optimizers
// emit (JSON arrays of numbers) into ProcessingRows.
func ParseProcessingRows(raw interface{}) (ProcessingRows, error) {
	outer, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, wrapError(ErrTableShape, "%v", err)
	}
	rows := make(ProcessingRows, 0, len(outer))
	for _, r := range outer {
		cells, err := cast.ToSliceE(r)
		if err != nil {
			return nil, wrapError(ErrTableShape, "%v", err)
		}
		row := make([]float64, 0, len(cells))
		for _, c := range cells {
			v, err := cast.ToFloat64E(c)
			if err != nil {
				return nil, wrapError(ErrTableShape, "%v", err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseSetupRows converts untyped three-level row data into SetupRows.
func ParseSetupRows(raw interface{}) (SetupRows, error) {
	outer, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, wrapError(ErrTableShape, "%v", err)
	}
	rows := make(SetupRows, 0, len(outer))
	for _, r := range outer {
		inner, err := ParseProcessingRows(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, inner)
	}
	return rows, nil
}
