package makespan

import (
	"context"
	gerrors "errors"

	"gorm.io/gorm"
)

var (
	ScheduleTableName   = "schedules"
	EvaluationTableName = "evaluations"
)

type ScheduleRepository interface {
	Find(context.Context, ScheduleID) (Schedule, error)
	Save(context.Context, *Schedule) error
}

type EvaluationRepository interface {
	Find(context.Context, EvaluationID) (Evaluation, error)
	Save(context.Context, *Evaluation) error
}

func requestNewUpdateTime(old int64) int64 {
	val := NewTimestamp().Value()
	if val <= old {
		val = old + 1
	}
	return val
}

func isRecordNotFound(err error) bool {
	return err != nil && gerrors.Is(err, gorm.ErrRecordNotFound)
}
