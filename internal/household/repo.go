package household

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

// Repository exposes persistence helpers for the household data the
// dashboard features own and the reminder rules read.
type Repository interface {
	ListChores(ctx context.Context) ([]models.Chore, error)
	ListActiveChores(ctx context.Context) ([]models.Chore, error)
	FindChoreByID(ctx context.Context, id uuid.UUID) (*models.Chore, error)
	CreateChore(ctx context.Context, chore *models.Chore) error
	UpdateChore(ctx context.Context, chore *models.Chore) error
	DeleteChore(ctx context.Context, id uuid.UUID) (bool, error)

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	ExpensesBetween(ctx context.Context, from, to time.Time) ([]models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	MarkExpenseSettled(ctx context.Context, id uuid.UUID) (bool, error)

	ListPetCareEntries(ctx context.Context, day string) ([]models.PetCareEntry, error)
	PetCareDone(ctx context.Context, task enums.PetCareTask, day string) (bool, error)
	CreatePetCareEntry(ctx context.Context, entry *models.PetCareEntry) error

	ListEvents(ctx context.Context) ([]models.CalendarEvent, error)
	EventsBetween(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error)
	FindEventByID(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error)
	CreateEvent(ctx context.Context, event *models.CalendarEvent) error
	UpdateEvent(ctx context.Context, event *models.CalendarEvent) error
	DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error)

	ListCheckins(ctx context.Context) ([]models.CheckIn, error)
	CheckinExists(ctx context.Context, weekOf string) (bool, error)
	CreateCheckin(ctx context.Context, checkin *models.CheckIn) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a household repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListChores(ctx context.Context) ([]models.Chore, error) {
	var chores []models.Chore
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&chores).Error
	return chores, err
}

func (r *repositoryImpl) ListActiveChores(ctx context.Context) ([]models.Chore, error) {
	var chores []models.Chore
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("created_at ASC").Find(&chores).Error
	return chores, err
}

func (r *repositoryImpl) FindChoreByID(ctx context.Context, id uuid.UUID) (*models.Chore, error) {
	var chore models.Chore
	err := r.db.WithContext(ctx).First(&chore, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &chore, nil
}

func (r *repositoryImpl) CreateChore(ctx context.Context, chore *models.Chore) error {
	return r.db.WithContext(ctx).Create(chore).Error
}

func (r *repositoryImpl) UpdateChore(ctx context.Context, chore *models.Chore) error {
	return r.db.WithContext(ctx).Save(chore).Error
}

func (r *repositoryImpl) DeleteChore(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Chore{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *repositoryImpl) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *repositoryImpl) ExpensesBetween(ctx context.Context, from, to time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&expenses).Error
	return expenses, err
}

func (r *repositoryImpl) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *repositoryImpl) MarkExpenseSettled(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("id = ? AND settled = ?", id, false).
		UpdateColumn("settled", true)
	return result.RowsAffected > 0, result.Error
}

func (r *repositoryImpl) ListPetCareEntries(ctx context.Context, day string) ([]models.PetCareEntry, error) {
	var entries []models.PetCareEntry
	err := r.db.WithContext(ctx).Where("day = ?", day).Order("completed_at ASC").Find(&entries).Error
	return entries, err
}

func (r *repositoryImpl) PetCareDone(ctx context.Context, task enums.PetCareTask, day string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PetCareEntry{}).
		Where("task = ? AND day = ?", task, day).
		Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) CreatePetCareEntry(ctx context.Context, entry *models.PetCareEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repositoryImpl) ListEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.db.WithContext(ctx).Order("start_at ASC").Find(&events).Error
	return events, err
}

func (r *repositoryImpl) EventsBetween(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.db.WithContext(ctx).
		Where("start_at >= ? AND start_at < ?", from, to).
		Order("start_at ASC").
		Find(&events).Error
	return events, err
}

func (r *repositoryImpl) FindEventByID(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repositoryImpl) CreateEvent(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repositoryImpl) UpdateEvent(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repositoryImpl) DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.CalendarEvent{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}

func (r *repositoryImpl) ListCheckins(ctx context.Context) ([]models.CheckIn, error) {
	var checkins []models.CheckIn
	err := r.db.WithContext(ctx).Order("week_of DESC, created_at DESC").Find(&checkins).Error
	return checkins, err
}

func (r *repositoryImpl) CheckinExists(ctx context.Context, weekOf string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CheckIn{}).
		Where("week_of = ?", weekOf).
		Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) CreateCheckin(ctx context.Context, checkin *models.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkin).Error
}
