package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/catalog-web/internal/application/contact"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/pkg/config"
)

var _ contact.Mailer = (*SMTPMailer)(nil)

// sender abstrae gomail.Dialer para poder sustituirlo en tests.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envía correos por SMTP. Con el puerto 587 gomail negocia STARTTLS.
type SMTPMailer struct {
	dialer sender
}

// NewSMTPMailer construye el mailer a partir de la configuración.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)}
}

// Send abre una conexión, envía el mensaje y la cierra. Sin reintentos.
func (m *SMTPMailer) Send(ctx context.Context, email entity.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(buildMessage(email)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMessage convierte el correo de dominio en un mensaje gomail de texto plano (8bit, sin quoted-printable).
func buildMessage(email entity.Email) *gomail.Message {
	msg := gomail.NewMessage(gomail.SetEncoding(gomail.Unencoded))
	msg.SetHeader("From", email.From)
	msg.SetHeader("To", email.To...)
	if email.ReplyTo != "" {
		msg.SetHeader("Reply-To", email.ReplyTo)
	}
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)
	return msg
}
