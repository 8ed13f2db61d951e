package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

const defaultAutoExpire = 10 * time.Second

type settingsLoader interface {
	Load(ctx context.Context) settings.Settings
}

type readMarker interface {
	MarkRead(ctx context.Context, id uuid.UUID)
}

// DispatcherParams configure the presentation dispatcher.
type DispatcherParams struct {
	Logger     *logger.Logger
	Surface    Surface
	Settings   settingsLoader
	Reader     readMarker
	Clock      clock.Clock
	AutoExpire time.Duration
}

// Dispatcher surfaces freshly created notifications. The record is already
// durable when Deliver runs, so every failure here degrades to "not shown"
// and never touches stored state.
type Dispatcher struct {
	logg       *logger.Logger
	surface    Surface
	settings   settingsLoader
	reader     readMarker
	clock      clock.Clock
	autoExpire time.Duration
}

// NewDispatcher wires the dispatcher.
func NewDispatcher(params DispatcherParams) (*Dispatcher, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Surface == nil {
		return nil, fmt.Errorf("surface required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if params.Reader == nil {
		return nil, fmt.Errorf("read marker required")
	}
	cl := params.Clock
	if cl == nil {
		cl = clock.System{}
	}
	expire := params.AutoExpire
	if expire <= 0 {
		expire = defaultAutoExpire
	}
	return &Dispatcher{
		logg:       params.Logger,
		surface:    params.Surface,
		settings:   params.Settings,
		reader:     params.Reader,
		clock:      cl,
		autoExpire: expire,
	}, nil
}

// Deliver shows the record on the desktop surface when presentation is
// enabled and outside quiet hours. Interacting marks the record read and
// closes the surface entry; un-interacted entries expire after a fixed
// interval.
func (d *Dispatcher) Deliver(ctx context.Context, rec notifications.Record) {
	cfg := d.settings.Load(ctx)
	if !cfg.DesktopNotifications {
		return
	}
	if settings.Suppressed(d.clock.Now(), cfg) {
		d.logg.Debug(d.logg.WithField(ctx, "notification_id", rec.ID), "quiet hours, presentation suppressed")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			d.logg.Error(ctx, "presentation surface panicked", err)
		}
	}()

	handle, err := d.surface.Show(ctx, rec.Title, rec.Message, rec.ID)
	if err != nil {
		d.logg.Error(ctx, "presentation surface failed", err)
		return
	}

	id := rec.ID
	handle.OnInteract(func() {
		d.reader.MarkRead(context.Background(), id)
		handle.Close()
	})
	d.clock.AfterFunc(d.autoExpire, handle.Close)
}
