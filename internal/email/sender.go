package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"gopkg.in/gomail.v2"
)

// DialAndSend has no context support, so sends run on their own
// goroutine and the caller's wait is bounded by sendTimeout.
const sendTimeout = 10 * time.Second

type Sender struct {
	dialer       *gomail.Dialer
	from         string
	templatesDir string
}

func NewEmailSender(host string, port int, username, password, from, templatesDir string) *Sender {
	return &Sender{
		dialer:       gomail.NewDialer(host, port, username, password),
		from:         from,
		templatesDir: templatesDir,
	}
}

func (s *Sender) SendPasswordResetEmail(ctx context.Context, to, fullName, resetURL string) error {
	subject := "JobMeet - Password Reset Request"
	body, err := s.parseTemplate("password_reset_email.html", map[string]string{
		"FullName": fullName,
		"ResetURL": resetURL,
	})
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}
	return s.sendEmail(ctx, to, subject, body)
}

func (s *Sender) sendEmail(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("email send timed out: %w", ctx.Err())
	}
}

func (s *Sender) parseTemplate(templateFileName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateFileName)
	t, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateFileName, err)
	}
	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateFileName, err)
	}
	return buf.String(), nil
}
