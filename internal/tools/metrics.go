package tools

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// toolCalls counts dispatched tool invocations per tool.
	toolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auditagent_tool_calls_total",
			Help: "Total tool invocations dispatched by the registry",
		},
		[]string{"tool"},
	)

	// toolErrors counts failed dispatches per tool and failure kind.
	toolErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auditagent_tool_errors_total",
			Help: "Total failed tool invocations by failure kind",
		},
		[]string{"tool", "kind"},
	)
)
