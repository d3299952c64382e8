package notifier

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetAlertMessage is the wire form of a budget alert published to the
// alert queue. Consumers fetch nothing extra: the message carries everything
// needed to render a notification.
type BudgetAlertMessage struct {
	NotificationID string          `json:"notificationId"`
	BudgetID       string          `json:"budgetId"`
	CategoryName   string          `json:"categoryName,omitempty"`
	Severity       string          `json:"severity"`
	PercentUsed    decimal.Decimal `json:"percentUsed"`
	Message        string          `json:"message"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *BudgetAlertMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetAlertMessageFromJSON creates a message from JSON bytes
func BudgetAlertMessageFromJSON(data []byte) (*BudgetAlertMessage, error) {
	var msg BudgetAlertMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
