package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

// Chore is a recurring household task. Daily chores come due every day;
// weekly chores come due on DueWeekday.
type Chore struct {
	ID              uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string               `gorm:"type:text;not null" json:"title"`
	Description     string               `gorm:"type:text" json:"description"`
	AssignedTo      string               `gorm:"type:text;not null" json:"assignedTo"`
	Frequency       enums.ChoreFrequency `gorm:"type:text;not null" json:"frequency"`
	DueWeekday      time.Weekday         `gorm:"type:integer" json:"dueWeekday"`
	Active          bool                 `gorm:"not null;default:true" json:"active"`
	LastCompletedAt *time.Time           `json:"lastCompletedAt,omitempty"`
	CreatedBy       string               `gorm:"type:text;not null" json:"createdBy"`
	CreatedAt       time.Time            `gorm:"not null" json:"createdAt"`
}

// CompletedOn reports whether the chore was last completed on the given
// calendar day in that day's location.
func (c Chore) CompletedOn(day time.Time) bool {
	if c.LastCompletedAt == nil {
		return false
	}
	completed := c.LastCompletedAt.In(day.Location())
	return completed.Year() == day.Year() && completed.YearDay() == day.YearDay()
}
