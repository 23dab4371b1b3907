package messaging

import (
	"context"
	"fmt"

	"medtrack/config"
	"medtrack/internal/domain/entity"

	"github.com/go-gomail/gomail"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// MailPublisher emails registration events to a fixed recipient
type MailPublisher struct {
	sender mailSender
	from   string
	to     string
}

func NewMailPublisher(cfg config.NotifyConfig) *MailPublisher {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUsername
	}
	return &MailPublisher{
		sender: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   from,
		to:     cfg.EmailTo,
	}
}

func (p *MailPublisher) Name() string {
	return "mail:" + p.to
}

// Publish returns when the send finishes or ctx is done. gomail has no cancellation
// hook, so a send abandoned on ctx finishes (or times out) in the background.
func (p *MailPublisher) Publish(ctx context.Context, event *entity.RegistrationEvent) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", p.to)
	m.SetHeader("Subject", event.Subject)
	m.SetBody("text/plain", event.Message)

	done := make(chan error, 1)
	go func() {
		done <- p.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("error sending email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("error sending email: %w", ctx.Err())
	}
}
