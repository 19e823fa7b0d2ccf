package core

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reportrack/reportrack/pkg/metrics"
)

type Metrics struct {
	apiResponseTime *prometheus.HistogramVec
	apiErrorCounter *prometheus.CounterVec
	aiResponseTime  *prometheus.HistogramVec
	aiRequestTime   *prometheus.HistogramVec
	aiError         *prometheus.CounterVec
	genContextTime  *prometheus.HistogramVec
	keywordResolved *prometheus.CounterVec
	mailSendCounter *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	// setup metric
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime: metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter: metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		aiResponseTime:  metrics.NewHistogramVec("ai_response_time", nil),
		aiRequestTime:   metrics.NewHistogramVec("ai_request_time", []string{"target"}),
		aiError:         metrics.NewCounterVec("ai_error", []string{"type"}),
		genContextTime:  metrics.NewHistogramVec("generate_context_time", []string{"type"}),
		keywordResolved: metrics.NewCounterVec("keyword_resolved", []string{"kind"}),
		mailSendCounter: metrics.NewCounterVec("mail_send", []string{"status"}),
	}

	return m
}

func (m *Metrics) AIRequestTimer(target string) *prometheus.Timer {
	return prometheus.NewTimer(m.aiRequestTime.WithLabelValues(target))
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) AIResponseTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.aiResponseTime.WithLabelValues())
}

func (m *Metrics) AIErrorInc(types string) {
	m.aiError.WithLabelValues(types).Inc()
}

func (m *Metrics) GenContextTimer(types string) *prometheus.Timer {
	return prometheus.NewTimer(m.genContextTime.WithLabelValues(types))
}

func (m *Metrics) KeywordResolvedInc(kind string) {
	m.keywordResolved.WithLabelValues(kind).Inc()
}

func (m *Metrics) MailSendInc(status string) {
	m.mailSendCounter.WithLabelValues(status).Inc()
}
