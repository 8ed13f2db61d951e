package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// StorageKey is the KV document holding the notification settings.
const StorageKey = "settings"

// QuietHours is a time-of-day window during which notifications are logged
// but not surfaced.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Settings gate notification presentation per channel and category.
type Settings struct {
	DesktopNotifications bool       `json:"desktopNotifications"`
	EmailNotifications   bool       `json:"emailNotifications"`
	ChoreReminders       bool       `json:"choreReminders"`
	ExpenseAlerts        bool       `json:"expenseAlerts"`
	PetCareAlerts        bool       `json:"petCareAlerts"`
	MeetingReminders     bool       `json:"meetingReminders"`
	QuietHours           QuietHours `json:"quietHours"`
}

// Defaults returns the fixed fallback settings used whenever the persisted
// document is absent or unreadable.
func Defaults() Settings {
	return Settings{
		DesktopNotifications: true,
		EmailNotifications:   false,
		ChoreReminders:       true,
		ExpenseAlerts:        true,
		PetCareAlerts:        true,
		MeetingReminders:     true,
		QuietHours: QuietHours{
			Enabled: false,
			Start:   "22:00",
			End:     "08:00",
		},
	}
}

// Patch updates a subset of settings. Nil fields keep their current value.
// QuietHours merges its sub-fields independently.
type Patch struct {
	DesktopNotifications *bool            `json:"desktopNotifications,omitempty"`
	EmailNotifications   *bool            `json:"emailNotifications,omitempty"`
	ChoreReminders       *bool            `json:"choreReminders,omitempty"`
	ExpenseAlerts        *bool            `json:"expenseAlerts,omitempty"`
	PetCareAlerts        *bool            `json:"petCareAlerts,omitempty"`
	MeetingReminders     *bool            `json:"meetingReminders,omitempty"`
	QuietHours           *QuietHoursPatch `json:"quietHours,omitempty"`
}

// QuietHoursPatch updates a subset of the quiet-hours window.
type QuietHoursPatch struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Start   *string `json:"start,omitempty"`
	End     *string `json:"end,omitempty"`
}

// ManagerParams configure the settings manager.
type ManagerParams struct {
	Logger *logger.Logger
	KV     kvstore.Store
}

// Manager resolves and persists settings. Load never fails the caller: it
// re-reads the persisted document on every call so updates made by another
// process take effect, and degrades to the last resolved copy (or the
// defaults) when the document is missing or unreadable. Update persists
// before returning, so a subsequent Load observes the new values.
type Manager struct {
	logg *logger.Logger
	kv   kvstore.Store

	mu      sync.Mutex
	current *Settings
}

// NewManager wires the settings manager.
func NewManager(params ManagerParams) (*Manager, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.KV == nil {
		return nil, fmt.Errorf("kv store required")
	}
	return &Manager{logg: params.Logger, kv: params.KV}, nil
}

// Load returns the current settings, re-reading the store on every call.
func (m *Manager) Load(ctx context.Context) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(ctx)
}

func (m *Manager) loadLocked(ctx context.Context) Settings {
	var stored Patch
	found, err := m.kv.Get(ctx, StorageKey, &stored)
	if err == nil && found {
		resolved := apply(Defaults(), stored)
		m.current = &resolved
		return resolved
	}

	if m.current != nil {
		if err != nil {
			m.logg.Warn(ctx, "settings unreadable, keeping cached copy")
		}
		return *m.current
	}

	if err != nil {
		m.logg.Error(ctx, "settings unreadable, using defaults", err)
	}
	resolved := Defaults()
	m.current = &resolved
	return resolved
}

// Update shallow-merges the patch onto the current settings, persists, and
// returns the full new settings.
func (m *Manager) Update(ctx context.Context, patch Patch) Settings {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged := apply(m.loadLocked(ctx), patch)
	m.current = &merged
	if err := m.kv.Set(ctx, StorageKey, merged); err != nil {
		m.logg.Error(ctx, "failed to persist settings", err)
	}
	return merged
}

func apply(base Settings, patch Patch) Settings {
	out := base
	if patch.DesktopNotifications != nil {
		out.DesktopNotifications = *patch.DesktopNotifications
	}
	if patch.EmailNotifications != nil {
		out.EmailNotifications = *patch.EmailNotifications
	}
	if patch.ChoreReminders != nil {
		out.ChoreReminders = *patch.ChoreReminders
	}
	if patch.ExpenseAlerts != nil {
		out.ExpenseAlerts = *patch.ExpenseAlerts
	}
	if patch.PetCareAlerts != nil {
		out.PetCareAlerts = *patch.PetCareAlerts
	}
	if patch.MeetingReminders != nil {
		out.MeetingReminders = *patch.MeetingReminders
	}
	if patch.QuietHours != nil {
		if patch.QuietHours.Enabled != nil {
			out.QuietHours.Enabled = *patch.QuietHours.Enabled
		}
		if patch.QuietHours.Start != nil {
			out.QuietHours.Start = *patch.QuietHours.Start
		}
		if patch.QuietHours.End != nil {
			out.QuietHours.End = *patch.QuietHours.End
		}
	}
	return out
}
