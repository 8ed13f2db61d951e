package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/api/validators"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// ListExpenses returns every shared expense, newest-first.
func ListExpenses(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		expenses, err := svc.ListExpenses(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, expenses)
	}
}

type createExpenseRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Amount       string   `json:"amount" validate:"required"`
	Category     string   `json:"category,omitempty" validate:"omitempty,max=100"`
	PaidBy       string   `json:"paidBy" validate:"required,max=100"`
	SplitBetween []string `json:"splitBetween,omitempty" validate:"omitempty,dive,required"`
	Date         string   `json:"date,omitempty"`
	Description  string   `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// CreateExpense records a shared expense. Amount arrives as a decimal string
// so cents never round through a float.
func CreateExpense(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		var payload createExpenseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		amount, err := decimal.NewFromString(payload.Amount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid amount"))
			return
		}

		var date time.Time
		if payload.Date != "" {
			date, err = time.Parse(household.DayFormat, payload.Date)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "date must be YYYY-MM-DD"))
				return
			}
		}

		expense, err := svc.CreateExpense(r.Context(), household.CreateExpenseInput{
			Title:        payload.Title,
			Amount:       amount,
			Category:     payload.Category,
			PaidBy:       payload.PaidBy,
			SplitBetween: payload.SplitBetween,
			Date:         date,
			Description:  payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, expense)
	}
}

// SettleExpense marks an expense settled. Settling twice is a not-found.
func SettleExpense(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid expense id"))
			return
		}

		if err := svc.SettleExpense(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "settled"})
	}
}
