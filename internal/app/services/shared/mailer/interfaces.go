package mailer

import (
	"context"
)

// EmailPayload is what lands in the mailer queue; an out-of-process
// consumer turns it into an actual email.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type MailerService interface {
	SendEmail(ctx context.Context, payload *EmailPayload) error
}
