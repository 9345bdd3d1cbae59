package smtp

import (
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Client is the outgoing mail client.
type Client struct {
	dialer *gomail.Dialer
}

func NewClient(dialer *gomail.Dialer) *Client {
	return &Client{dialer: dialer}
}

// SendWelcomeEmail sends the post-signup welcome mail. Delivery is best
// effort: failures are logged, never propagated to the signup flow.
func (c *Client) SendWelcomeEmail(to string, name string) {
	msg := gomail.NewMessage()

	domain := viper.GetString("service.smtp.domain")
	messageID := generateMessageID(domain)

	msg.SetHeader("Message-ID", messageID)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", viper.GetString("service.smtp.email"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to ClubHub")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s, your ClubHub account is ready.", name))
	if err := c.dialer.DialAndSend(msg); err != nil {
		logger.Log.Errorf("failed to send welcome email to %s: %v", to, err)
		return
	}

	logger.Log.Infof("welcome email sent to %s", to)
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
