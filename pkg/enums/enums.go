package enums

// ChoreFrequency describes how often a recurring chore comes due.
type ChoreFrequency string

const (
	ChoreDaily  ChoreFrequency = "daily"
	ChoreWeekly ChoreFrequency = "weekly"
)

// Valid reports whether the frequency is a known value.
func (f ChoreFrequency) Valid() bool {
	return f == ChoreDaily || f == ChoreWeekly
}

// PetCareTask names one of the fixed daily pet-care tasks.
type PetCareTask string

const (
	PetCareMorningFeeding PetCareTask = "morning-feeding"
	PetCareMiddayWalk     PetCareTask = "midday-walk"
	PetCareEveningFeeding PetCareTask = "evening-feeding"
)

// Valid reports whether the task is a known value.
func (t PetCareTask) Valid() bool {
	switch t {
	case PetCareMorningFeeding, PetCareMiddayWalk, PetCareEveningFeeding:
		return true
	}
	return false
}

// EventKind classifies a calendar event.
type EventKind string

const (
	EventGeneral EventKind = "event"
	EventMeeting EventKind = "meeting"
	EventBill    EventKind = "bill"
)
