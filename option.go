package makespan

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Option func(e *Evaluator)

// WithDatabase persists schedules and evaluations through gorm-backed
// repositories.
func WithDatabase(db *gorm.DB) Option {
	return func(e *Evaluator) {
		e.ScheduleRepository = NewScheduleDBRepository(db)
		e.EvaluationRepository = NewEvaluationDBRepository(db)
	}
}

// WithParallel evaluates machine partitions concurrently. Results are
// identical to the sequential reference order; this is a throughput
// option only.
func WithParallel() Option {
	return func(e *Evaluator) {
		e.parallel = true
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(e *Evaluator) {
		SetLogger(l)
	}
}
