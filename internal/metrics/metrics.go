package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	XPGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPGranted,
			Help: HelpTextXPGranted,
		},
	)

	LevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
		[]string{LabelClass},
	)

	CharactersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCharactersCreated,
			Help: HelpTextCharactersCreated,
		},
		[]string{LabelClass},
	)

	ChallengeJoins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChallengeJoins,
			Help: HelpTextChallengeJoins,
		},
	)

	ChallengeLeaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChallengeLeaves,
			Help: HelpTextChallengeLeaves,
		},
	)

	QuestsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCreated,
			Help: HelpTextQuestsCreated,
		},
		[]string{LabelTier},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	PlansGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlansGenerated,
			Help: HelpTextPlansGenerated,
		},
		[]string{LabelPlanType, LabelFallback},
	)
)
