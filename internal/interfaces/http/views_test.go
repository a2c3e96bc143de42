package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageOptions(t *testing.T) {
	opts := languageOptions("/pl/products/1", "pl", []string{"en", "pl"})
	assert.Equal(t, []LanguageOption{
		{Code: "en", URL: "/en/products/1"},
		{Code: "pl", URL: "/pl/products/1", Active: true},
	}, opts)

	opts = languageOptions("/en", "en", []string{"en", "pl"})
	assert.Equal(t, "/pl/", opts[1].URL)
}

func TestSpecLines(t *testing.T) {
	assert.Equal(t, []string{"Speed: 100kg/h", "Voltage: 230V"}, specLines("Speed: 100kg/h\n\n  Voltage: 230V \n"))
	assert.Nil(t, specLines(""))
}
