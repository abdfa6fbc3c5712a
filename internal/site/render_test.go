package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderDefaultPage(t *testing.T) {
	page, err := Render(Default())
	require.NoError(t, err)

	html := string(page)
	for _, want := range []string{
		`id="home"`, `id="services"`, `id="about"`, `id="location"`, `id="contact"`,
		"Consultas Médicas", "Cardiologia",
		"(11) 4642-0000", "contato@clinicaprovida.com.br",
		`id="advice-form"`, `id="image-form"`, `id="booking-form"`,
		"/api/health-advice", "/api/image-edit", "/api/booking",
	} {
		require.Contains(t, html, want)
	}
}

func TestRenderEscapesContent(t *testing.T) {
	c := Default()
	c.HeroTitle = `<script>alert(1)</script>`
	page, err := Render(c)
	require.NoError(t, err)
	require.False(t, strings.Contains(string(page), "<script>alert(1)</script>"))
}
