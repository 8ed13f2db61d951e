package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/api/responses"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	pkgerrors "github.com/landon-studio/Rm8-dash-sub001/pkg/errors"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// ListNotifications returns the notification log newest-first. With
// ?unread=true only unread records are returned.
func ListNotifications(store *notifications.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification store unavailable"))
			return
		}

		var records []notifications.Record
		if r.URL.Query().Get("unread") == "true" {
			records = store.ListUnread(r.Context())
		} else {
			records = store.List(r.Context())
		}
		if records == nil {
			records = []notifications.Record{}
		}
		responses.WriteSuccess(w, records)
	}
}

// MarkNotificationRead flips one record's read flag. Unknown ids succeed
// without effect so clients can retry safely.
func MarkNotificationRead(store *notifications.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification store unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid notification id"))
			return
		}

		store.MarkRead(r.Context(), id)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// MarkAllNotificationsRead marks the whole log read.
func MarkAllNotificationsRead(store *notifications.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification store unavailable"))
			return
		}

		store.MarkAllRead(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// DeleteNotification removes one record from the log.
func DeleteNotification(store *notifications.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification store unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid notification id"))
			return
		}

		store.Delete(r.Context(), id)
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// ClearNotifications empties the log. Dedup state is untouched, so cleared
// reminders do not immediately re-fire.
func ClearNotifications(store *notifications.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification store unavailable"))
			return
		}

		store.ClearAll(r.Context())
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}
