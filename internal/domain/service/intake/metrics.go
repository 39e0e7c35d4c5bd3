package intake

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCreated   = "created"
	outcomeResumed   = "resumed"
	outcomeCompleted = "completed"
	outcomeFailed    = "failed"
)

//nolint:gochecknoglobals
var intakeOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "intake_outcomes_total",
		Help: "Intake flow outcomes by kind.",
	},
	[]string{"outcome"},
)

func recordIntakeOutcome(outcome string) {
	intakeOutcomes.WithLabelValues(outcome).Inc()
}
