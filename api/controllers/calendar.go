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

// ListEvents returns every calendar event ordered by start time.
func ListEvents(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		events, err := svc.ListEvents(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, events)
	}
}

type createEventRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=2000"`
	StartAt     string   `json:"startAt" validate:"required"`
	EndAt       string   `json:"endAt,omitempty"`
	Kind        string   `json:"kind,omitempty" validate:"omitempty,oneof=event meeting bill"`
	Location    string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Attendees   []string `json:"attendees,omitempty" validate:"omitempty,dive,required"`
	CreatedBy   string   `json:"createdBy,omitempty" validate:"omitempty,max=100"`
}

// CreateEvent adds a calendar event. Timestamps are RFC 3339.
func CreateEvent(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		var payload createEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		startAt, err := time.Parse(time.RFC3339, payload.StartAt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "startAt must be RFC 3339"))
			return
		}

		var endAt *time.Time
		if payload.EndAt != "" {
			parsed, err := time.Parse(time.RFC3339, payload.EndAt)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "endAt must be RFC 3339"))
				return
			}
			endAt = &parsed
		}

		event, err := svc.CreateEvent(r.Context(), household.CreateEventInput{
			Title:       payload.Title,
			Description: payload.Description,
			StartAt:     startAt,
			EndAt:       endAt,
			Kind:        enums.EventKind(payload.Kind),
			Location:    payload.Location,
			Attendees:   payload.Attendees,
			CreatedBy:   payload.CreatedBy,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, event)
	}
}

// DeleteEvent removes a calendar event permanently.
func DeleteEvent(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid event id"))
			return
		}

		if err := svc.DeleteEvent(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
