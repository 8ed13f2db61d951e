package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

// CalendarEvent is a dated household event. Kind is advisory; reminder
// extraction also keys off free text in the title.
type CalendarEvent struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	StartAt     time.Time       `gorm:"not null;index" json:"startAt"`
	EndAt       *time.Time      `json:"endAt,omitempty"`
	Kind        enums.EventKind `gorm:"type:text;not null;default:'event'" json:"kind"`
	Location    string          `gorm:"type:text" json:"location"`
	Attendees   []string        `gorm:"serializer:json" json:"attendees"`
	CreatedBy   string          `gorm:"type:text;not null" json:"createdBy"`
	CreatedAt   time.Time       `gorm:"not null" json:"createdAt"`
}
