package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Kind affects presentation styling only.
type Kind string

const (
	KindInfo     Kind = "info"
	KindWarning  Kind = "warning"
	KindSuccess  Kind = "success"
	KindError    Kind = "error"
	KindReminder Kind = "reminder"
)

// Category routes a notification to its icon and per-category settings flag.
type Category string

const (
	CategoryChore   Category = "chore"
	CategoryExpense Category = "expense"
	CategoryPetCare Category = "pet-care"
	CategoryMeeting Category = "meeting"
	CategoryGeneral Category = "general"
)

// Priority affects visual emphasis, not delivery order.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Record is one stored notification. Records are immutable after creation
// except for the Read flag, which only moves false to true.
type Record struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Kind      Kind       `json:"kind"`
	Category  Category   `json:"category"`
	Priority  Priority   `json:"priority"`
	CreatedAt time.Time  `json:"createdAt"`
	Read      bool       `json:"read"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	ActionURL string     `json:"actionUrl,omitempty"`
}

// Draft is an unsaved notification payload. The store assigns identity and
// timestamp on create.
type Draft struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Kind      Kind       `json:"kind"`
	Category  Category   `json:"category"`
	Priority  Priority   `json:"priority"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	ActionURL string     `json:"actionUrl,omitempty"`
}

func (d Draft) normalized() Draft {
	if d.Kind == "" {
		d.Kind = KindInfo
	}
	if d.Category == "" {
		d.Category = CategoryGeneral
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	return d
}
