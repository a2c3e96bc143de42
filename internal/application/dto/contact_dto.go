package dto

// ContactRequest campos del formulario de contacto. Todos opcionales: ausente equivale a "".
type ContactRequest struct {
	Name        string `form:"name"`
	Email       string `form:"email"`
	Message     string `form:"message"`
	ProductName string `form:"product_name"`
}
