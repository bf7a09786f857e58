package agent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// plannerRounds counts tool-call rounds across all instructions.
var plannerRounds = promauto.NewCounter(prometheus.CounterOpts{
	Name: "auditagent_planner_rounds_total",
	Help: "Total planner tool-call rounds executed",
})
