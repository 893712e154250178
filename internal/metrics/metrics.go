package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OwnersApprovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_gateway_owners_approved_total",
		Help: "Total number of owner signups approved through the console.",
	})

	OwnersRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_gateway_owners_rejected_total",
		Help: "Total number of owner signups rejected through the console.",
	})

	OwnersDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_gateway_owners_deleted_total",
		Help: "Total number of owner records deleted through the console.",
	})

	ThemeUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_gateway_theme_updates_total",
		Help: "Total number of successful platform theme changes.",
	})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "admin_gateway_logins_total",
		Help: "Total number of successful admin logins.",
	})

	BackendErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "admin_gateway_backend_errors_total",
		Help: "Total number of failed calls to the marketplace backend.",
	},
		[]string{"operation"},
	)
)
