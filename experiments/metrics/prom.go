package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warzone/game"
)

// PromSink counts game events in Prometheus metrics.
type PromSink struct {
	ordersExecuted *prometheus.CounterVec
	ordersIssued   *prometheus.CounterVec
	transitions    *prometheus.CounterVec
	conquests      prometheus.Counter
	eliminations   prometheus.Counter
	gameRounds     prometheus.Histogram
}

// NewPromSink creates the metrics and registers them with reg.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	s := &PromSink{
		ordersExecuted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warzone_orders_executed_total",
				Help: "Total number of executed orders by kind and result",
			},
			[]string{"kind", "result"},
		),
		ordersIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warzone_orders_issued_total",
				Help: "Total number of issued orders by kind",
			},
			[]string{"kind"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "warzone_phase_transitions_total",
				Help: "Total number of phase transitions by entered state",
			},
			[]string{"state"},
		),
		conquests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warzone_conquests_total",
			Help: "Total number of territories that changed hands through orders",
		}),
		eliminations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "warzone_eliminations_total",
			Help: "Total number of players removed from the rotation",
		}),
		gameRounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "warzone_game_rounds",
			Help:    "Rounds played per finished game",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
	}
	collectors := []prometheus.Collector{s.ordersExecuted, s.ordersIssued, s.transitions, s.conquests, s.eliminations, s.gameRounds}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *PromSink) Notify(e game.Event) {
	switch e.Kind {
	case game.OrderExecutedEvent:
		result := "rejected"
		if e.OK {
			result = "ok"
		}
		s.ordersExecuted.WithLabelValues(e.Order.String(), result).Inc()
	case game.OrderIssuedEvent:
		s.ordersIssued.WithLabelValues(e.Order.String()).Inc()
	case game.PhaseChangedEvent:
		s.transitions.WithLabelValues(e.State).Inc()
		if e.State == "WIN" {
			s.gameRounds.Observe(float64(e.Round))
		}
	case game.ConquestEvent:
		s.conquests.Inc()
	case game.EliminationEvent:
		s.eliminations.Inc()
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
