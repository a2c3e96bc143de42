package entity

import "fmt"

// ContactSubmission datos enviados desde el formulario de contacto, tal cual llegan.
type ContactSubmission struct {
	Name        string
	Email       string
	Message     string
	ProductName string
}

// Email mensaje de texto plano listo para el remitente de correo.
type Email struct {
	From    string
	ReplyTo string
	To      []string
	Subject string
	Body    string
}

// Subject asunto del correo de consulta.
func (s ContactSubmission) Subject() string {
	return "New Inquiry from " + s.Name
}

// Body cuerpo del correo con los cuatro campos sin modificar.
func (s ContactSubmission) Body() string {
	return fmt.Sprintf(
		"You've received a new contact form submission:\n\nName: %s\nEmail: %s\nProduct: %s\nMessage: %s\n",
		s.Name, s.Email, s.ProductName, s.Message,
	)
}
