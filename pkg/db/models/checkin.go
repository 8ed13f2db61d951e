package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn is one member's weekly household check-in. WeekOf is the Monday of
// the ISO week, formatted 2006-01-02.
type CheckIn struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WeekOf       string    `gorm:"type:text;not null;index" json:"weekOf"`
	Author       string    `gorm:"type:text;not null" json:"author"`
	Mood         int       `gorm:"not null" json:"mood"`
	StressLevel  int       `gorm:"not null" json:"stressLevel"`
	Satisfaction int       `gorm:"not null" json:"satisfaction"`
	Highlights   string    `gorm:"type:text" json:"highlights"`
	Concerns     string    `gorm:"type:text" json:"concerns"`
	Suggestions  string    `gorm:"type:text" json:"suggestions"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}
