package notify

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/Mercurial-spe/shop/models"
)

// Notifier is invoked after a checkout commits. Delivery is best-effort:
// callers log failures and never roll back the order.
type Notifier interface {
	OrderShipped(order *models.Order) error
}

// EmailNotifier sends an order confirmation over SMTP.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifier(host string, port int, username, password, from string) *EmailNotifier {
	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *EmailNotifier) OrderShipped(order *models.Order) error {
	if order.User.Email == nil || *order.User.Email == "" {
		return fmt.Errorf("user %d has no email address", order.UserID)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", *order.User.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your order #%d has shipped", order.ID))
	m.SetBody("text/plain", fmt.Sprintf(
		"Your order #%d has shipped.\nReply to this email to confirm receipt.\nThank you for your purchase.",
		order.ID,
	))

	return n.dialer.DialAndSend(m)
}

// LogNotifier is used when SMTP is not configured.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OrderShipped(order *models.Order) error {
	n.logger.Info().
		Uint("order_id", order.ID).
		Uint("user_id", order.UserID).
		Int("items", len(order.Items)).
		Msg("order shipped")
	return nil
}
