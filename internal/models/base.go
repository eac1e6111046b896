// Package models defines the GORM models for the Quant Board API.
package models

import "time"

// Base contains common columns for all tables
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
