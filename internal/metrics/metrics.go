// Package metrics exposes Prometheus counters for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersCreated counts successful user creations.
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "usersvc",
		Name:      "users_created_total",
		Help:      "The total number of users created",
	})

	// UsersDeleted counts successful user deletions.
	UsersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "usersvc",
		Name:      "users_deleted_total",
		Help:      "The total number of users deleted",
	})

	// HealthChecks counts health probe outcomes by status.
	HealthChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "usersvc",
		Name:      "health_checks_total",
		Help:      "The total number of health checks by status",
	}, []string{"status"})
)
