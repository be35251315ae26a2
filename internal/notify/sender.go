package notify

import (
	"context"

	"go.uber.org/zap"
)

// CodeSender delivers a one-time code to a phone number. Delivery is
// best-effort: callers log a failure and carry on, the pending verification
// state is already persisted.
type CodeSender interface {
	Send(ctx context.Context, phone, code string) error
}

// LogSender writes codes to the log instead of dispatching them. It stands in
// for Twilio in development and in environments without SMS credentials.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.With(zap.String("sender", "log"))}
}

func (s *LogSender) Send(ctx context.Context, phone, code string) error {
	s.log.Info("One-time code issued (log delivery)",
		zap.String("phone", phone),
		zap.String("code", code),
	)
	return nil
}
