package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/dispatch"
	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

type unreadLister interface {
	ListUnread(ctx context.Context) []notifications.Record
}

// DigestJobParams configure the weekly email digest.
type DigestJobParams struct {
	Logger   *logger.Logger
	Settings settingsLoader
	Store    unreadLister
	Sender   dispatch.EmailSender
	Dedup    dedupState
	Clock    clock.Clock
	Weekday  time.Weekday
	From     string
	To       string
}

// DigestJob emails a summary of unread notifications once per ISO week, on
// the configured weekday, when email notifications are enabled. This is the
// only path that reaches the email collaborator. A failed send is not
// marked fired, so the next sweep retries within the same week.
type DigestJob struct {
	logg     *logger.Logger
	settings settingsLoader
	store    unreadLister
	sender   dispatch.EmailSender
	dedup    dedupState
	clock    clock.Clock
	weekday  time.Weekday
	from     string
	to       string
}

// NewDigestJob wires the weekly digest job.
func NewDigestJob(params DigestJobParams) (*DigestJob, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("notification store required")
	}
	if params.Sender == nil {
		return nil, fmt.Errorf("email sender required")
	}
	if params.Dedup == nil {
		return nil, fmt.Errorf("dedup state required")
	}
	cl := params.Clock
	if cl == nil {
		cl = clock.System{}
	}
	return &DigestJob{
		logg:     params.Logger,
		settings: params.Settings,
		store:    params.Store,
		sender:   params.Sender,
		dedup:    params.Dedup,
		clock:    cl,
		weekday:  params.Weekday,
		from:     params.From,
		to:       params.To,
	}, nil
}

func (j *DigestJob) Name() string { return "weekly-email-digest" }

func (j *DigestJob) Run(ctx context.Context) error {
	now := j.clock.Now()
	if now.Weekday() != j.weekday {
		return nil
	}
	if !j.settings.Load(ctx).EmailNotifications {
		return nil
	}
	if j.to == "" {
		j.logg.Warn(ctx, "email digest enabled but no recipient configured")
		return nil
	}

	key := fmt.Sprintf("email-summary:%s", household.WeekOf(now))
	if j.dedup.HasFired(key) {
		return nil
	}

	unread := j.store.ListUnread(ctx)
	if len(unread) == 0 {
		j.dedup.MarkFired(ctx, key)
		return nil
	}

	subject := fmt.Sprintf("Household digest: %d unread notifications", len(unread))
	body := composeDigest(unread)
	metadata := map[string]string{
		"from":    j.from,
		"week_of": household.WeekOf(now),
		"unread":  fmt.Sprintf("%d", len(unread)),
	}

	if err := j.sender.Send(ctx, j.to, subject, body, metadata); err != nil {
		j.logg.Error(ctx, "email digest send failed", err)
		return fmt.Errorf("send digest: %w", err)
	}

	j.dedup.MarkFired(ctx, key)
	logCtx := j.logg.WithFields(ctx, map[string]any{"to": j.to, "unread": len(unread)})
	j.logg.Info(logCtx, "email digest sent")
	return nil
}

func composeDigest(unread []notifications.Record) string {
	var b strings.Builder
	b.WriteString("Unread household notifications:\n\n")
	for _, rec := range unread {
		fmt.Fprintf(&b, "- [%s] %s: %s (%s)\n", rec.Category, rec.Title, rec.Message, rec.CreatedAt.Format("Jan 2 15:04"))
	}
	return b.String()
}
