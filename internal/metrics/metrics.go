package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	labelReason = "reason"
	labelResult = "result"
)

// Причины отказа в спине
const (
	ReasonEmptyPool  = "empty_pool"
	ReasonInProgress = "in_progress"
)

var (
	SpinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spinner_spins_total",
		Help: "Spins that settled on a winner",
	})
	SpinRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinner_spin_rejections_total",
		Help: "Spin requests that were refused",
	}, []string{labelReason})
	SpinsAbandoned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spinner_spins_abandoned_total",
		Help: "Spins cancelled by a wheel reset before settling",
	})
	Options = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spinner_options",
		Help: "Options on the wheel",
	})
	ActiveOptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spinner_active_options",
		Help: "Options that can still be drawn",
	})
	Imports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spinner_imports_total",
		Help: "Import attempts by outcome",
	}, []string{labelResult})
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spinner_persist_failures_total",
		Help: "Failed writes to the state repository",
	})
)

// SetOptionCounts обновляет оба gauge по опциям
func SetOptionCounts(total, active int) {
	Options.Set(float64(total))
	ActiveOptions.Set(float64(active))
}

func RejectSpin(reason string) {
	SpinRejections.With(prometheus.Labels{labelReason: reason}).Inc()
}

func Import(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	Imports.With(prometheus.Labels{labelResult: result}).Inc()
}
