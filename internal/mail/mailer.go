package mail

import (
	"fmt"

	"skillsynclab/backend/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. The only message this backend sends
// is the signup verification code.
type Sender interface {
	SendVerificationCode(to, code string) error
}

// smtpSender implements Sender over SMTP.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a Sender backed by the configured SMTP server.
func NewSMTPSender(cfg config.MailConfig) Sender {
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendVerificationCode sends the code in a plain-text message.
func (s *smtpSender) SendVerificationCode(to, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Verification Code")
	m.SetBody("text/plain", fmt.Sprintf("Your verification code is: %s", code))

	return s.dialer.DialAndSend(m)
}
