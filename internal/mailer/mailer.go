// Package mailer delivers transactional e-mail for the auth flows.
package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/AnthoniusHendriyanto/account-service/internal/mailer Mailer

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	gomail "github.com/wneessen/go-mail"
)

type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, username, verifyURL string) error
}

var verificationTemplate = template.Must(template.New("verification").Parse(
	`Hi {{.Username}},

Welcome! Please verify your email address by opening the link below:

{{.VerifyURL}}

The link expires soon. If you did not create an account, you can ignore this message.
`))

type SMTPMailer struct {
	client *gomail.Client
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) (*SMTPMailer, error) {
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(username),
		gomail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &SMTPMailer{client: client, sender: sender}, nil
}

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, username, verifyURL string) error {
	var body bytes.Buffer
	err := verificationTemplate.Execute(&body, struct {
		Username  string
		VerifyURL string
	}{Username: username, VerifyURL: verifyURL})
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Please verify your email")
	msg.SetBodyString(gomail.TypeTextPlain, body.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}
