package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/landon-studio/Rm8-dash-sub001/api/controllers"
	"github.com/landon-studio/Rm8-dash-sub001/api/middleware"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/config"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// RouterParams collect everything the HTTP surface depends on.
type RouterParams struct {
	Config        *config.Config
	Logger        *logger.Logger
	DB            *db.Client
	Household     household.Service
	Notifications *notifications.Store
	Settings      *settings.Manager
}

// NewRouter builds the dashboard API router.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(p.Config.Service.CORSOrigins...),
	)

	r.Get("/healthz", controllers.HealthLive(p.Config))
	r.Get("/readyz", controllers.HealthReady(p.Config, p.DB, p.Logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.HealthLive(p.Config))

		r.Route("/chores", func(r chi.Router) {
			r.Get("/", controllers.ListChores(p.Household, p.Logger))
			r.Post("/", controllers.CreateChore(p.Household, p.Logger))
			r.Post("/{id}/complete", controllers.CompleteChore(p.Household, p.Logger))
			r.Delete("/{id}", controllers.DeleteChore(p.Household, p.Logger))
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", controllers.ListExpenses(p.Household, p.Logger))
			r.Post("/", controllers.CreateExpense(p.Household, p.Logger))
			r.Post("/{id}/settle", controllers.SettleExpense(p.Household, p.Logger))
		})

		r.Route("/petcare", func(r chi.Router) {
			r.Get("/today", controllers.PetCareToday(p.Household, p.Logger))
			r.Post("/complete", controllers.CompletePetCareTask(p.Household, p.Logger))
		})

		r.Route("/calendar/events", func(r chi.Router) {
			r.Get("/", controllers.ListEvents(p.Household, p.Logger))
			r.Post("/", controllers.CreateEvent(p.Household, p.Logger))
			r.Delete("/{id}", controllers.DeleteEvent(p.Household, p.Logger))
		})

		r.Route("/checkins", func(r chi.Router) {
			r.Get("/", controllers.ListCheckins(p.Household, p.Logger))
			r.Post("/", controllers.CreateCheckin(p.Household, p.Logger))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(p.Notifications, p.Logger))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(p.Notifications, p.Logger))
			r.Post("/{id}/read", controllers.MarkNotificationRead(p.Notifications, p.Logger))
			r.Delete("/clear", controllers.ClearNotifications(p.Notifications, p.Logger))
			r.Delete("/{id}", controllers.DeleteNotification(p.Notifications, p.Logger))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(p.Settings, p.Logger))
			r.Put("/", controllers.UpdateSettings(p.Settings, p.Logger))
		})
	})

	return r
}
