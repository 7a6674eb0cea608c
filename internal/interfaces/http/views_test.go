package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/teerex-store/internal/application/dto"
)

func TestNewViews_PlantillasEmbebidas(t *testing.T) {
	v, err := NewViews("TeeRex Store")
	require.NoError(t, err)
	for _, name := range []string{"catalogue", "cart", "head", "notices", "qty"} {
		assert.NotNil(t, v.tmpl.Lookup(name), name)
	}
}

func TestCatalogueReturn(t *testing.T) {
	assert.Equal(t, "/", catalogueReturn(dto.CatalogueQuery{}))
	assert.Equal(t, "/", catalogueReturn(dto.CatalogueQuery{Search: "  "}))
	assert.Equal(t, "/?color=Red&price=0-250", catalogueReturn(dto.CatalogueQuery{Color: "Red", Price: "0-250"}))
	assert.Equal(t, "/?search=blue+polo", catalogueReturn(dto.CatalogueQuery{Search: "blue polo"}))
}

func TestSafeReturn(t *testing.T) {
	cases := map[string]string{
		"":                     "/",
		"/cart":                "/cart",
		"/?color=Red":          "/?color=Red",
		"//evil.example":       "/",
		"https://evil.example": "/",
		"/\\evil.example":      "/",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeReturn(in, "/"), in)
	}
}
