package notifications

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
)

// LogAcknowledgmentSender implements ports.AcknowledgmentSender by logging
// the letter instead of delivering it. Stands in for a real mail gateway;
// always reports Sent.
type LogAcknowledgmentSender struct {
	logger *slog.Logger
}

// NewLogAcknowledgmentSender creates the logging sender.
func NewLogAcknowledgmentSender(logger *slog.Logger) LogAcknowledgmentSender {
	return LogAcknowledgmentSender{
		logger: logger.With("component", "acknowledgment_sender"),
	}
}

// Send logs the acknowledgment and reports Sent.
func (s LogAcknowledgmentSender) Send(ack order.Acknowledgment) order.SendResult {
	s.logger.InfoContext(context.Background(), "Acknowledgment sent",
		"email", ack.Email().Value(),
		"letterBytes", len(ack.Letter()),
	)
	return order.Sent
}
