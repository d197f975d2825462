package statusHandler

import (
	"net/http"
	"sync"

	"github.com/multiversx/mx-chain-safe-go/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const stringMetricLabel = "value"

// PrometheusStatusHandler exports the numeric metrics as prometheus gauges. String metrics are exported as
// info gauges labeled with the current value.
type PrometheusStatusHandler struct {
	registry               *prometheus.Registry
	prometheusGaugeMetrics sync.Map
	mutStringMetrics       sync.Mutex
	stringMetrics          map[string]*prometheus.GaugeVec
}

// NewPrometheusStatusHandler will return an instance of a PrometheusStatusHandler with its own registry
func NewPrometheusStatusHandler() *PrometheusStatusHandler {
	psh := &PrometheusStatusHandler{
		registry:      prometheus.NewRegistry(),
		stringMetrics: make(map[string]*prometheus.GaugeVec),
	}
	psh.InitMetrics()

	return psh
}

// InitMetrics will declare and init all the metrics which should be used for Prometheus
func (psh *PrometheusStatusHandler) InitMetrics() {
	for _, key := range common.AllMetrics {
		psh.registerGauge(key)
	}
}

func (psh *PrometheusStatusHandler) registerGauge(key string) {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: key,
		Help: key,
	})
	err := psh.registry.Register(gauge)
	if err != nil {
		log.Warn("cannot register prometheus metric", "key", key, "error", err)
		return
	}

	psh.prometheusGaugeMetrics.Store(key, gauge)
}

func (psh *PrometheusStatusHandler) gauge(key string) (prometheus.Gauge, bool) {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if !ok {
		return nil, false
	}

	return value.(prometheus.Gauge), true
}

// Handler returns the http handler serving the registry in the prometheus text format
func (psh *PrometheusStatusHandler) Handler() http.Handler {
	return promhttp.HandlerFor(psh.registry, promhttp.HandlerOpts{})
}

// AddUint64 will increase the value of the gauge with the provided value
func (psh *PrometheusStatusHandler) AddUint64(key string, value uint64) {
	gauge, ok := psh.gauge(key)
	if ok {
		gauge.Add(float64(value))
	}
}

// Increment will increment the value of a key
func (psh *PrometheusStatusHandler) Increment(key string) {
	gauge, ok := psh.gauge(key)
	if ok {
		gauge.Inc()
	}
}

// Decrement will decrement the value of a key
func (psh *PrometheusStatusHandler) Decrement(key string) {
	gauge, ok := psh.gauge(key)
	if ok {
		gauge.Dec()
	}
}

// SetInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetInt64Value(key string, value int64) {
	gauge, ok := psh.gauge(key)
	if ok {
		gauge.Set(float64(value))
	}
}

// SetUInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetUInt64Value(key string, value uint64) {
	gauge, ok := psh.gauge(key)
	if ok {
		gauge.Set(float64(value))
	}
}

// SetStringValue exports the value as the only label of the key info gauge
func (psh *PrometheusStatusHandler) SetStringValue(key string, value string) {
	psh.mutStringMetrics.Lock()
	defer psh.mutStringMetrics.Unlock()

	gaugeVec, found := psh.stringMetrics[key]
	if !found {
		gaugeVec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: key,
			Help: key,
		}, []string{stringMetricLabel})
		err := psh.registry.Register(gaugeVec)
		if err != nil {
			log.Warn("cannot register prometheus string metric", "key", key, "error", err)
			return
		}
		psh.stringMetrics[key] = gaugeVec
	}

	gaugeVec.Reset()
	gaugeVec.WithLabelValues(value).Set(1)
}

// Close will unregister Prometheus metrics
func (psh *PrometheusStatusHandler) Close() {
	psh.prometheusGaugeMetrics.Range(func(key, value interface{}) bool {
		gauge := value.(prometheus.Gauge)
		psh.registry.Unregister(gauge)
		psh.prometheusGaugeMetrics.Delete(key)
		return true
	})

	psh.mutStringMetrics.Lock()
	for key, gaugeVec := range psh.stringMetrics {
		psh.registry.Unregister(gaugeVec)
		delete(psh.stringMetrics, key)
	}
	psh.mutStringMetrics.Unlock()
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}
