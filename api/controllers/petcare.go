package controllers

import (
	"net/http"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/api/validators"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// PetCareToday returns today's completed pet-care entries.
func PetCareToday(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		entries, err := svc.PetCareToday(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if entries == nil {
			entries = []models.PetCareEntry{}
		}
		responses.WriteSuccess(w, entries)
	}
}

type completePetCareRequest struct {
	Task        string `json:"task" validate:"required,oneof=morning-feeding midday-walk evening-feeding"`
	CompletedBy string `json:"completedBy,omitempty" validate:"omitempty,max=100"`
}

// CompletePetCareTask records one pet-care task as done for today. A repeat
// completion for the same day is a conflict.
func CompletePetCareTask(svc household.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "household service unavailable"))
			return
		}

		var payload completePetCareRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.CompletePetCareTask(r.Context(), enums.PetCareTask(payload.Task), payload.CompletedBy)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}
