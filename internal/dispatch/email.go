package dispatch

import (
	"context"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// EmailSender is the email collaborator. The engine calls it only from the
// weekly-summary flow, never per-notification.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string, metadata map[string]string) error
}

// LogEmailSender logs outgoing mail instead of delivering it. Real delivery
// is provider configuration, not this core's concern.
type LogEmailSender struct {
	Logger *logger.Logger
}

func (s LogEmailSender) Send(ctx context.Context, to, subject, body string, metadata map[string]string) error {
	if s.Logger != nil {
		ctx = s.Logger.WithFields(ctx, map[string]any{
			"to":      to,
			"subject": subject,
			"bytes":   len(body),
		})
		s.Logger.Info(ctx, "email dispatched")
	}
	return nil
}
