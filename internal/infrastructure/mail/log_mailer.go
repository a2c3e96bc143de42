package mail

import (
	"context"

	"github.com/jhoicas/catalog-web/internal/application/contact"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
	"github.com/jhoicas/catalog-web/pkg/logger"
)

var _ contact.Mailer = (*LogMailer)(nil)

// LogMailer registra el correo en el log en lugar de enviarlo. Se usa en desarrollo (sin MAIL_HOST).
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

// Send nunca falla.
func (m *LogMailer) Send(_ context.Context, email entity.Email) error {
	m.log.Info().
		Str("from", email.From).
		Str("reply_to", email.ReplyTo).
		Strs("to", email.To).
		Str("subject", email.Subject).
		Str("body", email.Body).
		Msg("correo no enviado (MAIL_HOST vacío)")
	return nil
}
