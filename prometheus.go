package makespan

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metrics = prom{}

var (
	promNamespace = "makespan"
	promEvaluator = "evaluator"
	promSchedule  = "schedule"

	promHostname, _ = os.Hostname()
	promConstLabels = prometheus.Labels{"host": promHostname}

	totalEvaluationTime = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promEvaluator,
		Name:        "evaluation_time_total",
		Help:        "Evaluation time statistics with or without error conditions",
		ConstLabels: promConstLabels,
	}, []string{"policy", "error"})

	numberOfEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promEvaluator,
		Name:        "evaluations_total",
		Help:        "The number of schedule evaluations",
		ConstLabels: promConstLabels,
	}, []string{"policy", "error"})

	lastMakespan = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace:   promNamespace,
		Subsystem:   promSchedule,
		Name:        "last_makespan",
		Help:        "The makespan of the most recently evaluated schedule",
		ConstLabels: promConstLabels,
	})

	numberOfEvaluatedJobs = promauto.NewCounter(prometheus.CounterOpts{
		Namespace:   promNamespace,
		Subsystem:   promSchedule,
		Name:        "evaluated_jobs_total",
		Help:        "The number of jobs whose completion times were realized",
		ConstLabels: promConstLabels,
	})
)

type prom struct {
}

func (m prom) observeEvaluation(policy Policy, d time.Duration, err error) {
	errValue := "0"
	if err != nil {
		errValue = "1"
	}

	v := d / 1e6
	totalEvaluationTime.WithLabelValues(string(policy), errValue).Add(float64(v))
	numberOfEvaluations.WithLabelValues(string(policy), errValue).Inc()
}

func (m prom) observeMakespan(makespan float64, jobs int) {
	lastMakespan.Set(makespan)
	numberOfEvaluatedJobs.Add(float64(jobs))
}
