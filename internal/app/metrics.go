package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	promptAnalysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "myllmmodel_prompt_analyses_total",
		Help: "Total number of prompts scored by the analyzer.",
	})

	promptScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "myllmmodel_prompt_score",
		Help:    "Distribution of prompt quality scores.",
		Buckets: prometheus.LinearBuckets(0, 1, 16),
	})

	playgroundRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "myllmmodel_playground_runs_total",
		Help: "Total number of playground runs answered.",
	})

	rateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "myllmmodel_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter, by route.",
		},
		[]string{"route"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "myllmmodel_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status code.",
		},
		[]string{"route", "method", "code"},
	)
)
