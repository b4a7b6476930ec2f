package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	ContactRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "contact_requests_total", Help: "Contact form submissions by outcome"},
		[]string{"outcome"},
	)
	Suppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "contact_suppressed_total", Help: "Suppressed submissions"},
		[]string{"reason"},
	)
	EmailSend = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "email_send_total", Help: "Outbound email send outcomes"},
		[]string{"result", "provider"},
	)
	EmailSendLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "email_send_latency_seconds", Help: "Outbound email send latency"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests"},
		[]string{"route", "status"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(ContactRequests, Suppressed, EmailSend, EmailSendLatency, HTTPRequests)
}
