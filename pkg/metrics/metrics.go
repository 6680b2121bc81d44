package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome values for computation metrics
const (
	OutcomeSuccess   = "success"
	OutcomeBadInput  = "bad_input"
	OutcomeFailure   = "failure"
	OutcomeTruncated = "truncated"
)

// Metrics набор Prometheus-метрик сервиса
// Использует собственный registry, чтобы несколько экземпляров (тесты) не конфликтовали
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ComputationsTotal   *prometheus.CounterVec
	ComputationDuration prometheus.Histogram
	DaysSelected        prometheus.Histogram
	FreeSlots           prometheus.Histogram
	DroppedItemsTotal   *prometheus.CounterVec
}

// New создает и регистрирует метрики
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ComputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_computations_total",
			Help:        "Availability computations by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		ComputationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_computation_duration_seconds",
			Help:        "Time spent computing availability for one payload",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}),
		DaysSelected: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_days_selected",
			Help:        "Number of days returned per computation",
			ConstLabels: constLabels,
			Buckets:     []float64{0, 1, 3, 5, 7, 10, 15, 30, 60},
		}),
		FreeSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_free_slots",
			Help:        "Number of free slots returned per computation",
			ConstLabels: constLabels,
			Buckets:     prometheus.ExponentialBuckets(1, 2, 10),
		}),
		DroppedItemsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_dropped_items_total",
			Help:        "Payload items ignored during normalization, by kind",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ComputationsTotal,
		m.ComputationDuration,
		m.DaysSelected,
		m.FreeSlots,
		m.DroppedItemsTotal,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает registry (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveComputation фиксирует результат одного расчета доступности
func (m *Metrics) ObserveComputation(outcome string, days, slots int, duration time.Duration) {
	m.ComputationsTotal.WithLabelValues(outcome).Inc()
	m.ComputationDuration.Observe(duration.Seconds())
	if outcome == OutcomeSuccess || outcome == OutcomeTruncated {
		m.DaysSelected.Observe(float64(days))
		m.FreeSlots.Observe(float64(slots))
	}
}

// AddDroppedItems увеличивает счетчик отброшенных элементов payload
func (m *Metrics) AddDroppedItems(kind string, n int) {
	if n <= 0 {
		return
	}
	m.DroppedItemsTotal.WithLabelValues(kind).Add(float64(n))
}
