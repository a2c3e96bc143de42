package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalog-web/internal/domain/entity"
)

func separators() *entity.Category {
	return &entity.Category{
		ID: 1,
		Translations: entity.Translations[entity.CategoryTranslation]{
			"en": {Lang: "en", Name: "Separators"},
			"pl": {Lang: "pl", Name: "Separatory"},
		},
	}
}

func TestCategoryDisplayName_ConTraduccion(t *testing.T) {
	c := separators()

	assert.Equal(t, "Separators", c.DisplayName("en"))
	assert.Equal(t, "Separatory", c.DisplayName("pl"))
	assert.True(t, c.HasTranslation("pl"))
}

func TestCategoryDisplayName_SinTraduccionDevuelveUnknown(t *testing.T) {
	c := separators()

	assert.Equal(t, entity.UnknownName, c.DisplayName("de"))
	assert.Equal(t, "Unknown", (&entity.Category{ID: 2}).DisplayName("en"), "mapa nil también es total")
	assert.False(t, c.HasTranslation("de"))
}

func TestProductLocalized_Parcial(t *testing.T) {
	p := &entity.Product{
		ID:    1,
		Image: "images/cable-separator.jpg",
		Translations: entity.Translations[entity.ProductTranslation]{
			"en": {Lang: "en", Name: "Cable Separator", Description: "d", Specs: "s"},
		},
	}

	tr, ok := p.Localized("en")
	assert.True(t, ok)
	assert.Equal(t, "Cable Separator", tr.Name)

	_, ok = p.Localized("pl")
	assert.False(t, ok)
}

func TestContactSubmission_Body(t *testing.T) {
	s := entity.ContactSubmission{Name: "A", Email: "a@b.com", Message: "hi", ProductName: "Widget"}

	assert.Equal(t, "New Inquiry from A", s.Subject())
	body := s.Body()
	assert.Contains(t, body, "Name: A\n")
	assert.Contains(t, body, "Email: a@b.com\n")
	assert.Contains(t, body, "Product: Widget\n")
	assert.Contains(t, body, "Message: hi\n")
}
