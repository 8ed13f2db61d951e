package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/api/validators"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// ListChores returns every chore, active and retired.
func ListChores(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		chores, err := svc.ListChores(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, chores)
	}
}

type createChoreRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AssignedTo  string `json:"assignedTo,omitempty" validate:"omitempty,max=100"`
	Frequency   string `json:"frequency" validate:"required,oneof=daily weekly"`
	DueWeekday  int    `json:"dueWeekday" validate:"min=0,max=6"`
	CreatedBy   string `json:"createdBy,omitempty" validate:"omitempty,max=100"`
}

// CreateChore registers a recurring chore.
func CreateChore(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		var payload createChoreRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		chore, err := svc.CreateChore(r.Context(), household.CreateChoreInput{
			Title:       payload.Title,
			Description: payload.Description,
			AssignedTo:  payload.AssignedTo,
			Frequency:   enums.ChoreFrequency(payload.Frequency),
			DueWeekday:  time.Weekday(payload.DueWeekday),
			CreatedBy:   payload.CreatedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, chore)
	}
}

// CompleteChore stamps the chore as done now.
func CompleteChore(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid chore id"))
			return
		}

		chore, err := svc.CompleteChore(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, chore)
	}
}

// DeleteChore removes a chore permanently.
func DeleteChore(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid chore id"))
			return
		}

		if err := svc.DeleteChore(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
