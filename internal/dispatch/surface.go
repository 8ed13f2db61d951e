package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// Surface is the OS-level notification collaborator. Implementations may be
// no-ops on platforms without a notification surface.
type Surface interface {
	Show(ctx context.Context, title, body string, id uuid.UUID) (Handle, error)
}

// Handle controls one shown notification.
type Handle interface {
	// OnInteract registers the callback invoked when the user interacts
	// with the shown notification.
	OnInteract(fn func())
	// Close dismisses the shown notification. Closing twice is harmless.
	Close()
}

// LogSurface writes would-be desktop notifications to the log. It stands in
// for a real surface in headless deployments.
type LogSurface struct {
	Logger *logger.Logger
}

func (s LogSurface) Show(ctx context.Context, title, body string, id uuid.UUID) (Handle, error) {
	if s.Logger != nil {
		ctx = s.Logger.WithFields(ctx, map[string]any{
			"notification_id": id,
			"title":           title,
		})
		s.Logger.Info(ctx, "desktop notification")
	}
	return noopHandle{}, nil
}

type noopHandle struct{}

func (noopHandle) OnInteract(func()) {}
func (noopHandle) Close()            {}
