package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Welcome(t *testing.T) {
	data := WelcomeData{Name: "Ana", Email: "ana@example.com", AppName: "LightBnB"}.ToMap()

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to LightBnB, Ana", subject)
	assert.Contains(t, text, "ana@example.com")
	assert.Contains(t, html, "<strong>ana@example.com</strong>")
}

func TestRender_EscapesHTML(t *testing.T) {
	_, _, html, err := Render(Welcome, map[string]any{"Name": "<script>", "Email": "x@y.z"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRender_Defaults(t *testing.T) {
	_, text, _, err := Render(Welcome, map[string]any{"Email": "x@y.z"})
	require.NoError(t, err)
	assert.Contains(t, text, "Hi there,")
	assert.Contains(t, text, "The LightBnB team")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
