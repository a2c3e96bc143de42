package contact

import (
	"context"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// Mailer envía un correo ya compuesto. No reintenta.
type Mailer interface {
	Send(ctx context.Context, email entity.Email) error
}

// Config destinatario fijo de las consultas y remitente por defecto.
type Config struct {
	Recipient string
	Sender    string // se usa como From cuando el formulario no trae email
}
