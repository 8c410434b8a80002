package models

import "time"

// Base contains common columns for all tables. Records are hard-deleted so
// that database-level cascades take effect; there is no soft-delete column.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
