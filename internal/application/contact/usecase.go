package contact

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-web/internal/application/dto"
	"github.com/jhoicas/catalog-web/internal/domain"
	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

// UseCase reenvía el formulario de contacto por correo al destinatario configurado.
// No valida los campos: se envía lo que llegue.
type UseCase struct {
	mailer Mailer
	cfg    Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(mailer Mailer, cfg Config) *UseCase {
	return &UseCase{mailer: mailer, cfg: cfg}
}

// Submit compone y envía el correo. Un fallo del Mailer se devuelve envuelto en domain.ErrDelivery.
func (uc *UseCase) Submit(ctx context.Context, in dto.ContactRequest) error {
	email := uc.Compose(in)
	if err := uc.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}
	return nil
}

// Compose arma el correo de consulta sin enviarlo.
func (uc *UseCase) Compose(in dto.ContactRequest) entity.Email {
	s := entity.ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Message:     in.Message,
		ProductName: in.ProductName,
	}
	from := s.Email
	if from == "" {
		from = uc.cfg.Sender
	}
	return entity.Email{
		From:    from,
		ReplyTo: s.Email,
		To:      []string{uc.cfg.Recipient},
		Subject: s.Subject(),
		Body:    s.Body(),
	}
}
