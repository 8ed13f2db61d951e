package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

// PetCareEntry marks one daily pet-care task complete for one day. Day is a
// calendar-date string (2006-01-02) so lookups stay timezone-stable.
type PetCareEntry struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Task        enums.PetCareTask `gorm:"type:text;not null;uniqueIndex:idx_petcare_task_day" json:"task"`
	Day         string            `gorm:"type:text;not null;uniqueIndex:idx_petcare_task_day" json:"day"`
	CompletedBy string            `gorm:"type:text;not null" json:"completedBy"`
	CompletedAt time.Time         `gorm:"not null" json:"completedAt"`
}
