package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	votes           *prometheus.CounterVec
	rejectedVotes   prometheus.Counter
	approvals       prometheus.Counter
	submissions     prometheus.Counter
	displayFailures prometheus.Counter
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)

	return &metrics{
		votes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "funding",
			Name:      "votes_recorded_total",
			Help:      "Votes written to the ledger, by action",
		}, []string{"action"}),
		rejectedVotes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "funding",
			Name:      "votes_rejected_total",
			Help:      "Votes refused because the voter is not a board member",
		}),
		approvals: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "funding",
			Name:      "requests_approved_total",
			Help:      "Requests that reached approval",
		}),
		submissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "funding",
			Name:      "requests_submitted_total",
			Help:      "Requests created and posted for review",
		}),
		displayFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "funding",
			Name:      "display_update_failures_total",
			Help:      "Request message updates that failed after the ledger was written",
		}),
	}
}
