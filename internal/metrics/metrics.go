package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	SuccessfulRequests *prometheus.CounterVec
	BadRequests        *prometheus.CounterVec
	TweetsCreated      prometheus.Counter
	CacheHits          *prometheus.CounterVec
	CacheMisses        *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the counters on the given registry. Tests use
// this with a fresh registry to avoid duplicate-registration panics.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SuccessfulRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "successful_request",
				Help: "Total number of successful (2xx) HTTP requests",
			},
			[]string{"path"},
		),
		BadRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "unsuccessful_request",
				Help: "Total number of unsuccessful (4xx) HTTP requests",
			},
			[]string{"path"},
		),
		TweetsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tweets_created",
				Help: "Total number of tweets created",
			},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits",
				Help: "Total number of cache hits",
			},
			[]string{"cache"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses",
				Help: "Total number of cache misses",
			},
			[]string{"cache"},
		),
	}

	reg.MustRegister(m.SuccessfulRequests)
	reg.MustRegister(m.BadRequests)
	reg.MustRegister(m.TweetsCreated)
	reg.MustRegister(m.CacheHits)
	reg.MustRegister(m.CacheMisses)

	return m
}

// Middleware counts finished requests by status class.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		switch {
		case status >= 200 && status < 300:
			m.SuccessfulRequests.WithLabelValues(path).Inc()
		case status >= 400 && status < 500:
			m.BadRequests.WithLabelValues(path).Inc()
		}
	}
}

// Handler exposes the prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
