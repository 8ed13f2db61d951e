package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is one shared household payment.
type Expense struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string          `gorm:"type:text;not null" json:"title"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Category     string          `gorm:"type:text;not null" json:"category"`
	PaidBy       string          `gorm:"type:text;not null" json:"paidBy"`
	SplitBetween []string        `gorm:"serializer:json" json:"splitBetween"`
	Date         time.Time       `gorm:"not null" json:"date"`
	Description  string          `gorm:"type:text" json:"description"`
	Settled      bool            `gorm:"not null;default:false" json:"settled"`
	CreatedAt    time.Time       `gorm:"not null" json:"createdAt"`
}
