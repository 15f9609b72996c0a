package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movie_catalog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Account Metrics
	RegistrationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_registrations_total",
			Help: "Total number of successful user registrations",
		},
	)

	LoginFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_login_failures_total",
			Help: "Total number of rejected login attempts",
		},
	)

	PasswordResetsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_catalog_password_resets_total",
			Help: "Total number of password reset submissions by outcome",
		},
		[]string{"outcome"}, // "success", "wrong_answer", "invalid"
	)

	// Catalog Metrics
	RatingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movie_catalog_ratings_created_total",
			Help: "Total number of movie ratings created",
		},
	)

	WatchlistChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movie_catalog_watchlist_changes_total",
			Help: "Total number of watchlist membership changes",
		},
		[]string{"action"}, // "add", "remove"
	)
)
