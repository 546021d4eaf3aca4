package service

import (
	"fmt"
	"io"
	"strings"

	"rx-prescription-api/config"

	"gopkg.in/gomail.v2"
)

// MailerService sends transactional mail through the configured SMTP relay
type MailerService struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailerService(cfg config.SMTPConfig) *MailerService {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &MailerService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   from,
	}
}

// SendPasswordReset mails the reset link; the link expires server-side
func (s *MailerService) SendPasswordReset(to, resetLink string) error {
	body := fmt.Sprintf(`<h2>Password Reset Request</h2>
<p>Click the link below to reset your password:</p>
<a href="%s">Reset Password</a>
<p>This link will expire in 1 hour.</p>`, resetLink)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset Request")
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

// SendDocument mails free-form content, optionally attaching a rendered PDF
func (s *MailerService) SendDocument(to, subject, content, attachmentName string, attachment []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", content)
	m.AddAlternative("text/html", "<div>"+strings.ReplaceAll(content, "\n", "<br>")+"</div>")

	if len(attachment) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	return s.dialer.DialAndSend(m)
}
