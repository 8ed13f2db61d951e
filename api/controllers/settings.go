package controllers

import (
	"net/http"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/api/validators"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// GetSettings returns the resolved notification settings.
func GetSettings(mgr *settings.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mgr == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings manager unavailable"))
			return
		}
		responses.WriteSuccess(w, mgr.Load(r.Context()))
	}
}

type updateSettingsRequest struct {
	DesktopNotifications *bool                    `json:"desktopNotifications,omitempty"`
	EmailNotifications   *bool                    `json:"emailNotifications,omitempty"`
	ChoreReminders       *bool                    `json:"choreReminders,omitempty"`
	ExpenseAlerts        *bool                    `json:"expenseAlerts,omitempty"`
	PetCareAlerts        *bool                    `json:"petCareAlerts,omitempty"`
	MeetingReminders     *bool                    `json:"meetingReminders,omitempty"`
	QuietHours           *updateQuietHoursRequest `json:"quietHours,omitempty"`
}

type updateQuietHoursRequest struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Start   *string `json:"start,omitempty" validate:"omitempty,len=5"`
	End     *string `json:"end,omitempty" validate:"omitempty,len=5"`
}

func (r updateSettingsRequest) toPatch() settings.Patch {
	patch := settings.Patch{
		DesktopNotifications: r.DesktopNotifications,
		EmailNotifications:   r.EmailNotifications,
		ChoreReminders:       r.ChoreReminders,
		ExpenseAlerts:        r.ExpenseAlerts,
		PetCareAlerts:        r.PetCareAlerts,
		MeetingReminders:     r.MeetingReminders,
	}
	if r.QuietHours != nil {
		patch.QuietHours = &settings.QuietHoursPatch{
			Enabled: r.QuietHours.Enabled,
			Start:   r.QuietHours.Start,
			End:     r.QuietHours.End,
		}
	}
	return patch
}

// UpdateSettings merges a partial settings payload and returns the full
// resulting settings.
func UpdateSettings(mgr *settings.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mgr == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings manager unavailable"))
			return
		}

		var payload updateSettingsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, mgr.Update(r.Context(), payload.toPatch()))
	}
}
