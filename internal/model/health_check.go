package model

import "time"

// Health statuses recorded by the probe.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthCheck records the outcome of a single database health probe. Rows are
// written by the probe endpoint and the seed tool and are never updated.
type HealthCheck struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
	Status    string    `json:"status" gorm:"size:20;default:'healthy'"`
}
