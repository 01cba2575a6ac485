package v1

import "github.com/prometheus/client_golang/prometheus"

var billsClassified = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "billtrail_bills_classified_total",
		Help: "How many document names or bill titles were classified, partitioned by category.",
	},
	[]string{"category"},
)

var remindersGenerated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "billtrail_reminders_generated_total",
		Help: "How many smart reminders were generated.",
	},
)

// Collectors returns the Prometheus metrics of the v1 API.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		billsClassified,
		remindersGenerated,
	}
}
