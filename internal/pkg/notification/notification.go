package notification

import (
	"context"

	"reservation-service/config"
	"reservation-service/internal/pkg/log"

	"github.com/wneessen/go-mail"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

type mailer struct {
	cfg *config.MailConfig
	log log.Logger
}

func NewMailer(cfg *config.MailConfig, log log.Logger) Notifier {
	return &mailer{cfg: cfg, log: log}
}

func (m *mailer) client() (*mail.Client, error) {
	opts := []mail.Option{mail.WithPort(m.cfg.Port)}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	return mail.NewClient(m.cfg.Host, opts...)
}

func (m *mailer) Send(ctx context.Context, msg Message) error {
	c, err := m.client()
	if err != nil {
		m.log.Error(ctx, "error init smtp client", err)
		return err
	}

	mm := mail.NewMsg()
	if err := mm.FromFormat(m.cfg.FromName, m.cfg.From); err != nil {
		return err
	}
	if err := mm.To(msg.To); err != nil {
		return err
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := c.DialAndSendWithContext(ctx, mm); err != nil {
		m.log.Error(ctx, "error send email", err)
		return err
	}
	return nil
}
