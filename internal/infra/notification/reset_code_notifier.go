// Package notification delivers account notifications to users.
package notification

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bookshop/config"
	"bookshop/internal/domain/service"
)

// logNotifier records reset codes in the service log. Email transport is not
// part of this service; in debug mode the code itself is logged so that local
// clients can complete the reset flow.
type logNotifier struct {
	logger *slog.Logger
	debug  bool
}

// NewResetCodeNotifier creates the log-backed ResetCodeNotifier
func NewResetCodeNotifier(cfg *config.Config, logger *slog.Logger) service.ResetCodeNotifier {
	return &logNotifier{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (n *logNotifier) SendResetCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	attrs := []any{
		slog.String("email", maskEmail(email)),
		slog.Time("expires_at", expiresAt),
	}
	if n.debug {
		attrs = append(attrs, slog.String("code", code))
	}

	n.logger.InfoContext(ctx, "Password reset code issued", attrs...)

	return nil
}

// maskEmail keeps the first character of the local part and the domain.
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}

	return email[:1] + "***" + email[at:]
}
