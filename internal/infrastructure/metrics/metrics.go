package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transfer metrics
	TransfersSubmitted prometheus.Counter
	TransfersDeclined  prometheus.Counter
	TransferDuration   prometheus.Histogram
	TransferAmount     prometheus.Histogram
	TransferErrors     *prometheus.CounterVec

	// Quote metrics
	QuoteRequests *prometheus.CounterVec

	// Rate metrics
	RateFetches   prometheus.Counter
	RateCacheHits prometheus.Counter
	RateErrors    *prometheus.CounterVec

	// Recipient metrics
	RecipientsCreated *prometheus.CounterVec

	// User metrics
	UsersRegistered  prometheus.Counter
	OTPVerifications *prometheus.CounterVec
	KYCSubmissions   *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec

	// Payment gateway metrics
	GatewayRequests *prometheus.CounterVec
	GatewayDuration prometheus.Histogram
	GatewayRetries  prometheus.Counter

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Outbox metrics
	EventsPublished *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Transfer metrics
		TransfersSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_transfers_submitted_total",
			Help: "Total number of transfers submitted",
		}),
		TransfersDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_transfers_declined_total",
			Help: "Total number of transfers declined by the payment gateway",
		}),
		TransferDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "remitgh_transfer_duration_seconds",
			Help:    "Duration of transfer submissions",
			Buckets: prometheus.DefBuckets,
		}),
		TransferAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "remitgh_transfer_amount",
			Help:    "Send-side transfer amounts",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000, 50000},
		}),
		TransferErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_transfer_errors_total",
				Help: "Total number of transfer errors by type",
			},
			[]string{"error_type"},
		),

		// Quote metrics
		QuoteRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_quote_requests_total",
				Help: "Total quote requests by side",
			},
			[]string{"side"},
		),

		// Rate metrics
		RateFetches: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_rate_fetches_total",
			Help: "Total upstream exchange rate fetches",
		}),
		RateCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_rate_cache_hits_total",
			Help: "Total exchange rate cache hits",
		}),
		RateErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_rate_errors_total",
				Help: "Total exchange rate errors by currency",
			},
			[]string{"currency"},
		),

		// Recipient metrics
		RecipientsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_recipients_created_total",
				Help: "Total recipients created by transfer method",
			},
			[]string{"method"},
		),

		// User metrics
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_users_registered_total",
			Help: "Total users registered",
		}),
		OTPVerifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_otp_verifications_total",
				Help: "Total OTP verification attempts by status",
			},
			[]string{"status"},
		),
		KYCSubmissions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_kyc_submissions_total",
				Help: "Total KYC submissions by status",
			},
			[]string{"status"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "remitgh_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "remitgh_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "remitgh_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "remitgh_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Payment gateway metrics
		GatewayRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_gateway_requests_total",
				Help: "Total payment gateway requests by outcome",
			},
			[]string{"outcome"},
		),
		GatewayDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "remitgh_gateway_duration_seconds",
			Help:    "Payment gateway call duration",
			Buckets: prometheus.DefBuckets,
		}),
		GatewayRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remitgh_gateway_retries_total",
			Help: "Total payment gateway retries after transient failures",
		}),

		// Authentication metrics
		AuthAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),
		AuthFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		// Rate limiting metrics
		RateLimitHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		// Outbox metrics
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "remitgh_events_published_total",
				Help: "Total outbox events published",
			},
			[]string{"event_type"},
		),
	}
}
