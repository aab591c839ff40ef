package mail

import (
	"fmt"
	"net/smtp"

	cfgpkg "github.com/nyumbani/rentals/pkg/config"
)

// Client sends plain-text mail over SMTP. Leaving the host unset disables
// sending entirely; callers check Enabled before wiring it in.
type Client struct {
	cfg cfgpkg.MailConfig
}

func NewClient(cfg *cfgpkg.Config) *Client {
	return &Client{cfg: cfg.Mail}
}

func (c *Client) Enabled() bool {
	return c.cfg.Host != "" && c.cfg.Port != ""
}

func (c *Client) Send(to, subject, body string) error {
	if !c.Enabled() {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Password, c.cfg.Host)
	message := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, subject, body))
	addr := fmt.Sprintf("%s:%s", c.cfg.Host, c.cfg.Port)

	if err := smtp.SendMail(addr, auth, c.cfg.From, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendBookingConfirmation tells the tenant their booking is paid for.
func (c *Client) SendBookingConfirmation(to, propertyName, bookingDate string) error {
	body := fmt.Sprintf(
		"Dear customer,\n\nYour booking for %s has been confirmed for %s.\n\nThank you for choosing us!",
		propertyName, bookingDate,
	)
	return c.Send(to, "Booking Confirmation", body)
}
