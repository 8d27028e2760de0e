package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Observer refreshes gauges that are derived from state rather than from events,
// like the number of stored sessions
type Observer interface {
	Observe(ctx context.Context, c *Collector)
}

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	LettersEncoded  prometheus.Counter
	RotorAdvances   *prometheus.CounterVec
	EncodeErrors    *prometheus.CounterVec
	EncodeDurations prometheus.Histogram

	TableCacheLookups *prometheus.CounterVec

	SessionsCreated prometheus.Counter
	SessionsRemoved prometheus.Counter
	EventStreams    prometheus.Gauge

	CleanerRemovals *prometheus.CounterVec
	CleanerErrors   *prometheus.CounterVec

	SessionRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		LettersEncoded: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "enigma_letters_encoded_total",
			Help: "The total number of key presses processed by session machines",
		}),
		RotorAdvances: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "enigma_rotor_advances_total",
			Help: "The total number of automatic rotor advances",
		}, []string{"slot"}),
		EncodeErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "enigma_encode_errors_total",
			Help: "The total number of failed encode requests",
		}, []string{"reason"}),
		EncodeDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "enigma_encode_duration_seconds",
			Help: "Duration of encode requests",
		}),
		TableCacheLookups: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "enigma_table_cache_lookups_total",
			Help: "The total number of lamp table cache lookups",
		}, []string{"result"}),
		SessionsCreated: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "sessions_created_total",
			Help: "The total number of sessions created",
		}),
		SessionsRemoved: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "sessions_removed_total",
			Help: "The total number of sessions removed on request",
		}),
		EventStreams: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "sessions_event_streams",
			Help: "The number of connected session event streams",
		}),
		CleanerRemovals: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cleaner_removals_total",
			Help: "The total number of stale items removed",
		}, []string{"kind"}),
		CleanerErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cleaner_errors_total",
			Help: "The total number of errors occurred during cleaner runs",
		}, []string{"kind"}),
		SessionRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "sessions_repository_size",
			Help: "The number of sessions stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := append([]Observer(nil), c.observers...)
	c.mutex.Unlock()
	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
