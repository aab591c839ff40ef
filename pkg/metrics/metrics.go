package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var HistogramBuckets = []float64{
	// fast responses
	25, 50, 75, 100, 150, 200, 300, 400, 500,
	// medium
	750, 1000, 1500, 2000,
	// slow
	3000, 5000, 10000, 15000, 30000, 60000,
}

// URLLabelMappingFn controls the cardinality of the "url" label; the default
// in the server wiring maps concrete paths to their route template.
type URLLabelMappingFn func(c *gin.Context) string

// Prometheus records request count and latency for a gin engine and serves
// them on a dedicated listener.
type Prometheus struct {
	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec

	listenAddress string
	urlLabelFn    URLLabelMappingFn
	logger        *zap.SugaredLogger
}

type NewPrometheusOptions struct {
	Subsystem               string
	ReqCntURLLabelMappingFn URLLabelMappingFn
	Logger                  *zap.SugaredLogger
}

func NewPrometheus(opts NewPrometheusOptions) *Prometheus {
	p := &Prometheus{
		urlLabelFn: opts.ReqCntURLLabelMappingFn,
		logger:     opts.Logger,
	}
	p.reqCnt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: opts.Subsystem,
			Name:      "req_total",
			Help:      "How many HTTP requests processed, partitioned by status code, method and url.",
		},
		[]string{"code", "method", "url"},
	)
	p.reqDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Subsystem: opts.Subsystem,
			Name:      "req_dur_ms",
			Help:      "The HTTP request latencies in milliseconds.",
			Buckets:   HistogramBuckets,
		},
		[]string{"code", "method", "url"},
	)
	prometheus.MustRegister(p.reqCnt, p.reqDur)
	return p
}

func (p *Prometheus) SetListenAddress(addr string) {
	p.listenAddress = addr
}

// Use attaches the middleware to the engine and, when a listen address is
// set, starts the metrics listener.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.handlerFunc())
	if p.listenAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(p.listenAddress, mux); err != nil {
				if p.logger != nil {
					p.logger.Errorf("metrics listener error: %v", err)
				}
			}
		}()
	}
}

func (p *Prometheus) handlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		url := c.Request.URL.Path
		if p.urlLabelFn != nil {
			url = p.urlLabelFn(c)
		}
		elapsed := float64(time.Since(start).Milliseconds())

		p.reqCnt.WithLabelValues(status, c.Request.Method, url).Inc()
		p.reqDur.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
	}
}
