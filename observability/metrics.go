package observability

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "shieldstake"

var (
	epochMetricsOnce sync.Once
	epochRegistry    *EpochMetrics

	validatorMetricsOnce sync.Once
	validatorRegistry    *ValidatorMetrics

	proofMetricsOnce sync.Once
	proofRegistry    *ProofMetrics

	consensusMetricsOnce sync.Once
	consensusRegistry    *consensusMetrics
)

// EpochMetrics tracks the cost and output of epoch-boundary processing.
type EpochMetrics struct {
	duration         prometheus.Histogram
	validatorsActive prometheus.Gauge
	rewardsEmitted   *prometheus.CounterVec
	transitions      *prometheus.CounterVec
}

// Epoch returns the lazily-initialised epoch metrics registry.
func Epoch() *EpochMetrics {
	epochMetricsOnce.Do(func() {
		epochRegistry = &EpochMetrics{
			duration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "epoch",
				Name:      "end_epoch_duration_seconds",
				Help:      "Latency distribution for end-of-epoch validator set processing.",
				Buckets:   prometheus.DefBuckets,
			}),
			validatorsActive: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "epoch",
				Name:      "validators_active",
				Help:      "Number of validators in the Active state after the most recent epoch transition.",
			}),
			rewardsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "epoch",
				Name:      "reward_notes_total",
				Help:      "Count of commission reward notes emitted at epoch boundaries, segmented by validator identity.",
			}, []string{"identity"}),
			transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "epoch",
				Name:      "validator_transitions_total",
				Help:      "Count of validator lifecycle transitions applied at epoch boundaries, segmented by origin and destination state.",
			}, []string{"from", "to"}),
		}
		prometheus.MustRegister(
			epochRegistry.duration,
			epochRegistry.validatorsActive,
			epochRegistry.rewardsEmitted,
			epochRegistry.transitions,
		)
	})
	return epochRegistry
}

// ObserveDuration records how long end-of-epoch processing took.
func (m *EpochMetrics) ObserveDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}

// SetActiveValidators records the size of the Active validator set.
func (m *EpochMetrics) SetActiveValidators(n int) {
	if m == nil {
		return
	}
	m.validatorsActive.Set(float64(n))
}

// RecordRewardNote increments the reward-note counter for a validator identity.
func (m *EpochMetrics) RecordRewardNote(identity string) {
	if m == nil {
		return
	}
	m.rewardsEmitted.WithLabelValues(normalizeLabel(identity)).Inc()
}

// RecordTransition increments the lifecycle transition counter for a from/to state pair.
func (m *EpochMetrics) RecordTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(normalizeLabel(from), normalizeLabel(to)).Inc()
}

// ValidatorMetrics tracks per-validator consensus-facing state.
type ValidatorMetrics struct {
	votingPower        *prometheus.GaugeVec
	definitionConflict *prometheus.CounterVec
}

// Validator returns the lazily-initialised validator metrics registry.
func Validator() *ValidatorMetrics {
	validatorMetricsOnce.Do(func() {
		validatorRegistry = &ValidatorMetrics{
			votingPower: prometheus.NewGaugeVec(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "validator",
				Name:      "voting_power",
				Help:      "Reported voting power for a validator, segmented by identity.",
			}, []string{"identity"}),
			definitionConflict: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "validator",
				Name:      "definition_conflicts_total",
				Help:      "Count of validator definition conflicts resolved by sequence number and signature ordering.",
			}, []string{"identity"}),
		}
		prometheus.MustRegister(validatorRegistry.votingPower, validatorRegistry.definitionConflict)
	})
	return validatorRegistry
}

// SetVotingPower updates the voting power gauge for a validator identity.
func (m *ValidatorMetrics) SetVotingPower(identity string, power uint64) {
	if m == nil {
		return
	}
	m.votingPower.WithLabelValues(normalizeLabel(identity)).Set(float64(power))
}

// RecordDefinitionConflict increments the conflict counter for an identity.
func (m *ValidatorMetrics) RecordDefinitionConflict(identity string) {
	if m == nil {
		return
	}
	m.definitionConflict.WithLabelValues(normalizeLabel(identity)).Inc()
}

// ProofMetrics tracks shielded spend/output proof verification outcomes.
type ProofMetrics struct {
	verifications *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// Proof returns the lazily-initialised proof verification metrics registry.
func Proof() *ProofMetrics {
	proofMetricsOnce.Do(func() {
		proofRegistry = &ProofMetrics{
			verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "proof",
				Name:      "verifications_total",
				Help:      "Count of spend/output proof verifications segmented by proof kind and outcome.",
			}, []string{"kind", "outcome"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "proof",
				Name:      "verify_duration_seconds",
				Help:      "Latency distribution for proof verification, segmented by proof kind.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"kind"}),
		}
		prometheus.MustRegister(proofRegistry.verifications, proofRegistry.latency)
	})
	return proofRegistry
}

// Observe records the outcome and duration of a single proof verification.
// kind should be "spend" or "output".
func (m *ProofMetrics) Observe(kind string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "valid"
	if err != nil {
		outcome = "invalid"
	}
	m.verifications.WithLabelValues(kind, outcome).Inc()
	m.latency.WithLabelValues(kind).Observe(d.Seconds())
}

type consensusMetrics struct {
	blockInterval prometheus.Gauge
}

// Consensus exposes the metrics registry for consensus level instrumentation.
func Consensus() *consensusMetrics {
	consensusMetricsOnce.Do(func() {
		consensusRegistry = &consensusMetrics{
			blockInterval: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "consensus",
				Name:      "block_interval_seconds",
				Help:      "Interval in seconds between the timestamps of consecutive committed blocks.",
			}),
		}
		prometheus.MustRegister(consensusRegistry.blockInterval)
	})
	return consensusRegistry
}

// RecordBlockInterval updates the block interval gauge with the supplied duration.
func (m *consensusMetrics) RecordBlockInterval(interval time.Duration) {
	if m == nil {
		return
	}
	seconds := interval.Seconds()
	if seconds < 0 {
		seconds = 0
	}
	m.blockInterval.Set(seconds)
}

func normalizeLabel(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
