package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sc_contact"

// unmatchedPath labels requests which did not match a registered route,
// keeping static asset paths out of the label values
const unmatchedPath = "unmatched"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	contactsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_created_total",
		Help:      "Number of contacts persisted",
	})

	storeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Number of failed document store operations",
		},
		[]string{"operation"},
	)

	databaseConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "database_connected",
		Help:      "1 when the database connection attempt succeeded, 0 otherwise",
	})
)

// Middleware records the count and duration of every request
func Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if len(path) == 0 {
			path = unmatchedPath
		}
		method := ctx.Request.Method

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the metrics in the Prometheus exposition format
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

// ContactCreated counts a persisted contact
func ContactCreated() {
	contactsCreatedTotal.Inc()
}

// StoreOperationFailed counts a failed store operation
func StoreOperationFailed(operation string) {
	storeErrorsTotal.WithLabelValues(operation).Inc()
}

// SetDatabaseConnected records the outcome of the connection attempt
func SetDatabaseConnected(connected bool) {
	if connected {
		databaseConnected.Set(1)
		return
	}
	databaseConnected.Set(0)
}
