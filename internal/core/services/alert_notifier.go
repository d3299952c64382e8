package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/platform/notifier"
)

// amqpAlertNotifier adapts the AMQP client to the AlertNotifier port.
type amqpAlertNotifier struct {
	client *notifier.Client
}

// NewAMQPAlertNotifier wraps an AMQP client as an AlertNotifier.
func NewAMQPAlertNotifier(client *notifier.Client) portssvc.AlertNotifier {
	return &amqpAlertNotifier{client: client}
}

func (n *amqpAlertNotifier) PublishBudgetAlert(ctx context.Context, notification *domain.AlertNotification) error {
	return n.client.PublishBudgetAlert(ctx, &notifier.BudgetAlertMessage{
		NotificationID: notification.NotificationID,
		BudgetID:       notification.BudgetID,
		CategoryName:   notification.CategoryName,
		Severity:       string(notification.Severity),
		PercentUsed:    notification.PercentUsed,
		Message:        notification.Message,
		Timestamp:      notification.CreatedAt,
	})
}
