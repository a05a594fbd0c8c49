package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"warzone/game"
)

func TestPromSink(t *testing.T) {
	t.Run("counts events by kind", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		sink, err := NewPromSink(reg)
		require.NoError(t, err)
		events := game.NewDispatcher(sink)

		events.Emit(game.Event{Kind: game.OrderIssuedEvent, Order: game.BombOrder})
		events.Emit(game.Event{Kind: game.OrderExecutedEvent, Order: game.BombOrder, OK: true})
		events.Emit(game.Event{Kind: game.OrderExecutedEvent, Order: game.DeployOrder, OK: false})
		events.Emit(game.Event{Kind: game.OrderExecutedEvent, Order: game.DeployOrder, OK: false})
		events.Emit(game.Event{Kind: game.ConquestEvent})
		events.Emit(game.Event{Kind: game.EliminationEvent})
		events.Emit(game.Event{Kind: game.PhaseChangedEvent, State: "ISSUE_ORDERS"})
		events.SetRound(12)
		events.Emit(game.Event{Kind: game.PhaseChangedEvent, State: "WIN"})

		require.Equal(t, 1.0, testutil.ToFloat64(sink.ordersIssued.WithLabelValues("bomb")))
		require.Equal(t, 1.0, testutil.ToFloat64(sink.ordersExecuted.WithLabelValues("bomb", "ok")))
		require.Equal(t, 2.0, testutil.ToFloat64(sink.ordersExecuted.WithLabelValues("deploy", "rejected")))
		require.Equal(t, 1.0, testutil.ToFloat64(sink.conquests))
		require.Equal(t, 1.0, testutil.ToFloat64(sink.eliminations))
		require.Equal(t, 1.0, testutil.ToFloat64(sink.transitions.WithLabelValues("WIN")))
		require.Equal(t, 1, testutil.CollectAndCount(sink.gameRounds))
	})

	t.Run("registering twice fails", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := NewPromSink(reg)
		require.NoError(t, err)

		_, err = NewPromSink(reg)
		require.Error(t, err)
	})

	t.Run("handler exposes the metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		sink, err := NewPromSink(reg)
		require.NoError(t, err)
		sink.Notify(game.Event{Kind: game.ConquestEvent})

		rec := httptest.NewRecorder()
		Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, strings.Contains(rec.Body.String(), "warzone_conquests_total 1"))
	})
}
