package models

import "time"

// RunStatus represents the lifecycle state of a bulk ingestion run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
)

// IngestionRun records the outcome of a bulk ingestion job for auditing.
// One row per triggered job; counts are filled in when the job finishes.
type IngestionRun struct {
	Base
	Status       RunStatus  `gorm:"not null" json:"status"`
	TotalSymbols int        `gorm:"not null" json:"total_symbols"`
	SuccessCount int        `json:"success_count"`
	FailureCount int        `json:"failure_count"`
	StartedAt    time.Time  `gorm:"not null" json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
