package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional emails.
type EmailService interface {
	SendCertificationIssued(ctx context.Context, toEmail, subject string, score int) error
	SendCredentialsReviewed(ctx context.Context, toEmail string, approved bool) error
}

// NoopEmailService is used when email notifications are disabled.
type NoopEmailService struct{}

func (s *NoopEmailService) SendCertificationIssued(ctx context.Context, toEmail, subject string, score int) error {
	log.Printf("[EmailService] noop send certification issued to=%s subject=%s", toEmail, subject)
	return nil
}

func (s *NoopEmailService) SendCredentialsReviewed(ctx context.Context, toEmail string, approved bool) error {
	log.Printf("[EmailService] noop send credentials reviewed to=%s approved=%t", toEmail, approved)
	return nil
}

// ResendEmailService sends emails via Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailService) SendCertificationIssued(ctx context.Context, toEmail, subject string, score int) error {
	if toEmail == "" || subject == "" {
		return fmt.Errorf("toEmail and subject are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("You are now certified in %s", subject),
		Text: fmt.Sprintf("Congratulations! You passed the %s certification test with a score of %d%%. "+
			"Your certification is valid for one year.", subject, score),
		Html: fmt.Sprintf("<p>Congratulations! You passed the <strong>%s</strong> certification test "+
			"with a score of <strong>%d%%</strong>.</p><p>Your certification is valid for one year.</p>", subject, score),
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

func (s *ResendEmailService) SendCredentialsReviewed(ctx context.Context, toEmail string, approved bool) error {
	if toEmail == "" {
		return fmt.Errorf("toEmail is required")
	}

	decision := "rejected"
	if approved {
		decision = "approved"
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Your teacher credentials have been %s", decision),
		Text:    fmt.Sprintf("An administrator has reviewed your teacher credentials: %s.", decision),
		Html:    fmt.Sprintf("<p>An administrator has reviewed your teacher credentials: <strong>%s</strong>.</p>", decision),
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
