package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы отправки команды на сервер Kodi.
const (
	OutcomeOK        = "ok"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
	OutcomeTimeout   = "timeout"
	OutcomeMalformed = "malformed"
	OutcomeError     = "error"
)

var (
	SkillRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skill_requests_total",
			Help: "Total number of voice platform events handled by the skill",
		},
		[]string{"event"},
	)

	SkillIntentsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skill_intents_rejected_total",
			Help: "Total number of intent requests with an unknown or missing intent",
		},
	)

	KodiCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kodi_commands_total",
			Help: "Total number of remote commands sent to Kodi by outcome",
		},
		[]string{"command", "outcome"},
	)

	KodiCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kodi_command_duration_seconds",
			Help:    "Duration of the remote command round trip in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"command"},
	)
)
