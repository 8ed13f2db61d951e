package controllers

import (
	"net/http"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/api/validators"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// ListCheckins returns every weekly check-in, newest-first.
func ListCheckins(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		checkins, err := svc.ListCheckins(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkins)
	}
}

type createCheckinRequest struct {
	Author       string `json:"author" validate:"required,max=100"`
	Mood         int    `json:"mood" validate:"required,min=1,max=5"`
	StressLevel  int    `json:"stressLevel" validate:"required,min=1,max=5"`
	Satisfaction int    `json:"satisfaction" validate:"required,min=1,max=5"`
	Highlights   string `json:"highlights,omitempty" validate:"omitempty,max=2000"`
	Concerns     string `json:"concerns,omitempty" validate:"omitempty,max=2000"`
	Suggestions  string `json:"suggestions,omitempty" validate:"omitempty,max=2000"`
}

// CreateCheckin records a weekly check-in for the current ISO week.
func CreateCheckin(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		var payload createCheckinRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		checkin, err := svc.CreateCheckin(r.Context(), household.CreateCheckinInput{
			Author:       payload.Author,
			Mood:         payload.Mood,
			StressLevel:  payload.StressLevel,
			Satisfaction: payload.Satisfaction,
			Highlights:   payload.Highlights,
			Concerns:     payload.Concerns,
			Suggestions:  payload.Suggestions,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, checkin)
	}
}
