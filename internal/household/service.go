package household

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
)

// Service exposes the household CRUD surface behind the dashboard API.
type Service interface {
	ListChores(ctx context.Context) ([]models.Chore, error)
	CreateChore(ctx context.Context, input CreateChoreInput) (*models.Chore, error)
	CompleteChore(ctx context.Context, id uuid.UUID) (*models.Chore, error)
	DeleteChore(ctx context.Context, id uuid.UUID) error

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, input CreateExpenseInput) (*models.Expense, error)
	SettleExpense(ctx context.Context, id uuid.UUID) error

	PetCareToday(ctx context.Context) ([]models.PetCareEntry, error)
	CompletePetCareTask(ctx context.Context, task enums.PetCareTask, completedBy string) (*models.PetCareEntry, error)

	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListCheckins(ctx context.Context) ([]models.CheckIn, error)
	CreateCheckin(ctx context.Context, input CreateCheckinInput) (*models.CheckIn, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
}

// NewService wires the household service.
func NewService(repo Repository, cl clock.Clock) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "household repository required")
	}
	if cl == nil {
		cl = clock.System{}
	}
	return &service{repo: repo, clock: cl}, nil
}

// CreateChoreInput holds the fields for a new recurring chore.
type CreateChoreInput struct {
	Title       string
	Description string
	AssignedTo  string
	Frequency   enums.ChoreFrequency
	DueWeekday  time.Weekday
	CreatedBy   string
}

func (s *service) ListChores(ctx context.Context) ([]models.Chore, error) {
	chores, err := s.repo.ListChores(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list chores")
	}
	return chores, nil
}

func (s *service) CreateChore(ctx context.Context, input CreateChoreInput) (*models.Chore, error) {
	if !input.Frequency.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "frequency must be daily or weekly")
	}
	if input.DueWeekday < time.Sunday || input.DueWeekday > time.Saturday {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dueWeekday must be 0 through 6")
	}

	chore := &models.Chore{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Frequency:   input.Frequency,
		DueWeekday:  input.DueWeekday,
		Active:      true,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.repo.CreateChore(ctx, chore); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create chore")
	}
	return chore, nil
}

func (s *service) CompleteChore(ctx context.Context, id uuid.UUID) (*models.Chore, error) {
	chore, err := s.repo.FindChoreByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find chore")
	}
	if chore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "chore not found")
	}

	now := s.clock.Now().UTC()
	chore.LastCompletedAt = &now
	if err := s.repo.UpdateChore(ctx, chore); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update chore")
	}
	return chore, nil
}

func (s *service) DeleteChore(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.DeleteChore(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete chore")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "chore not found")
	}
	return nil
}

// CreateExpenseInput holds the fields for a new shared expense.
type CreateExpenseInput struct {
	Title        string
	Amount       decimal.Decimal
	Category     string
	PaidBy       string
	SplitBetween []string
	Date         time.Time
	Description  string
}

func (s *service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	expenses, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list expenses")
	}
	return expenses, nil
}

func (s *service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*models.Expense, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	date := input.Date
	if date.IsZero() {
		date = s.clock.Now().UTC()
	}

	expense := &models.Expense{
		ID:           uuid.New(),
		Title:        input.Title,
		Amount:       input.Amount,
		Category:     input.Category,
		PaidBy:       input.PaidBy,
		SplitBetween: input.SplitBetween,
		Date:         date,
		Description:  input.Description,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create expense")
	}
	return expense, nil
}

func (s *service) SettleExpense(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.MarkExpenseSettled(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "settle expense")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "unsettled expense not found")
	}
	return nil
}

func (s *service) PetCareToday(ctx context.Context) ([]models.PetCareEntry, error) {
	day := s.clock.Now().Format(DayFormat)
	entries, err := s.repo.ListPetCareEntries(ctx, day)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pet care entries")
	}
	return entries, nil
}

func (s *service) CompletePetCareTask(ctx context.Context, task enums.PetCareTask, completedBy string) (*models.PetCareEntry, error) {
	if !task.Valid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown pet care task")
	}

	now := s.clock.Now()
	day := now.Format(DayFormat)
	done, err := s.repo.PetCareDone(ctx, task, day)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check pet care entry")
	}
	if done {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "task already completed today")
	}

	entry := &models.PetCareEntry{
		ID:          uuid.New(),
		Task:        task,
		Day:         day,
		CompletedBy: completedBy,
		CompletedAt: now.UTC(),
	}
	if err := s.repo.CreatePetCareEntry(ctx, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create pet care entry")
	}
	return entry, nil
}

// CreateEventInput holds the fields for a new calendar event.
type CreateEventInput struct {
	Title       string
	Description string
	StartAt     time.Time
	EndAt       *time.Time
	Kind        enums.EventKind
	Location    string
	Attendees   []string
	CreatedBy   string
}

func (s *service) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	events, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list events")
	}
	return events, nil
}

func (s *service) CreateEvent(ctx context.Context, input CreateEventInput) (*models.CalendarEvent, error) {
	if input.StartAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "startAt is required")
	}
	kind := input.Kind
	if kind == "" {
		kind = enums.EventGeneral
	}

	event := &models.CalendarEvent{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
		Kind:        kind,
		Location:    input.Location,
		Attendees:   input.Attendees,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create event")
	}
	return event, nil
}

func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	found, err := s.repo.DeleteEvent(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete event")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "event not found")
	}
	return nil
}

// CreateCheckinInput holds the fields for a weekly check-in.
type CreateCheckinInput struct {
	Author       string
	Mood         int
	StressLevel  int
	Satisfaction int
	Highlights   string
	Concerns     string
	Suggestions  string
}

func (s *service) ListCheckins(ctx context.Context) ([]models.CheckIn, error) {
	checkins, err := s.repo.ListCheckins(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list checkins")
	}
	return checkins, nil
}

func (s *service) CreateCheckin(ctx context.Context, input CreateCheckinInput) (*models.CheckIn, error) {
	for _, score := range []int{input.Mood, input.StressLevel, input.Satisfaction} {
		if score < 1 || score > 5 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "scores must be 1 through 5")
		}
	}

	checkin := &models.CheckIn{
		ID:           uuid.New(),
		WeekOf:       WeekOf(s.clock.Now()),
		Author:       input.Author,
		Mood:         input.Mood,
		StressLevel:  input.StressLevel,
		Satisfaction: input.Satisfaction,
		Highlights:   input.Highlights,
		Concerns:     input.Concerns,
		Suggestions:  input.Suggestions,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.repo.CreateCheckin(ctx, checkin); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create checkin")
	}
	return checkin, nil
}
