package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"careassist/internal/models"
)

// Fallback outcome labels.
const (
	OutcomeGenerated = "generated"
	OutcomeError     = "error"
)

var (
	ruleHitDesc = prometheus.NewDesc(
		"careassist_rule_hits_total",
		"Total rule matches by rule set and term",
		[]string{"rule_set", "term"},
		nil,
	)

	fallbackRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careassist_fallback_requests_total",
			Help: "Fallback responder calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	fallbackDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careassist_fallback_duration_seconds",
			Help:    "Fallback responder latency",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)
)

// HitStore persists rule hit counters.
type HitStore interface {
	IncrementRuleHit(ctx context.Context, ruleSet, term string) error
	GetAllRuleHits(ctx context.Context) ([]models.RuleHit, error)
}

// RuleHitCollector is a custom Prometheus collector that reads rule hit
// counts from the store on each scrape.
type RuleHitCollector struct {
	store HitStore
}

// NewRuleHitCollector creates a collector backed by store.
func NewRuleHitCollector(store HitStore) *RuleHitCollector {
	return &RuleHitCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *RuleHitCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- ruleHitDesc
}

// Collect queries the store for all rule hits and emits them as counters.
func (c *RuleHitCollector) Collect(ch chan<- prometheus.Metric) {
	hits, err := c.store.GetAllRuleHits(context.Background())
	if err != nil {
		slog.Error("failed to collect rule hit metrics", "error", err)
		return
	}
	for _, h := range hits {
		ch <- prometheus.MustNewConstMetric(
			ruleHitDesc,
			prometheus.CounterValue,
			float64(h.Count),
			h.RuleSet,
			h.Term,
		)
	}
}

// Recorder provides async rule hit recording.
type Recorder struct {
	store HitStore
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the fallback metrics and, when store is non-nil, the rule
// hit collector and recorder. Must be called once at startup.
func Init(store HitStore) {
	recorderOnce.Do(func() {
		prometheus.MustRegister(fallbackRequests, fallbackDuration)
		if store == nil {
			return
		}
		recorder = &Recorder{store: store}
		prometheus.MustRegister(NewRuleHitCollector(store))
	})
}

// RecordRuleHit asynchronously records a rule match.
func RecordRuleHit(ruleSet, term string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.store.IncrementRuleHit(context.Background(), ruleSet, term); err != nil {
			slog.Error("failed to record rule hit", "rule_set", ruleSet, "term", term, "error", err)
		}
	}()
}

// ObserveFallback records one fallback responder call.
func ObserveFallback(provider, outcome string, d time.Duration) {
	fallbackRequests.WithLabelValues(provider, outcome).Inc()
	fallbackDuration.WithLabelValues(provider).Observe(d.Seconds())
}
