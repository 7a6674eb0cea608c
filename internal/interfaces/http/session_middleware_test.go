package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/teerex-store/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/teerex-store/pkg/jwt"
)

const testSessionID = "00000000-0000-0000-0000-000000000001"

func sessionConfig() apphttp.SessionConfig {
	return apphttp.SessionConfig{
		Secret:     testSecret,
		CookieName: testCookie,
		Issuer:     "teerex-test",
		TTL:        time.Hour,
	}
}

// buildSessionApp aplicación mínima con SessionMiddleware y un handler que devuelve el id de sesión.
func buildSessionApp(cfg apphttp.SessionConfig) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.SessionMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"session_id": apphttp.GetSessionID(c)})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, cookie string) (string, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	var issued *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == testCookie {
			issued = c
		}
	}
	return body["session_id"], issued
}

func TestSessionMiddleware_SinCookie_AbreSesion(t *testing.T) {
	app := buildSessionApp(sessionConfig())

	sid, issued := whoami(t, app, "")

	assert.NotEmpty(t, sid)
	require.NotNil(t, issued, "debe emitirse la cookie de sesión")
	assert.True(t, issued.HttpOnly)
	assert.True(t, issued.Expires.IsZero(), "cookie de sesión del navegador, sin Expires")

	parsed, err := pkgjwt.Parse(testSecret, issued.Value)
	require.NoError(t, err)
	assert.Equal(t, sid, parsed)
}

func TestSessionMiddleware_CookieValida_ConservaSesion(t *testing.T) {
	app := buildSessionApp(sessionConfig())
	tok, err := pkgjwt.Generate(testSecret, testSessionID, "teerex-test", time.Hour)
	require.NoError(t, err)

	sid, issued := whoami(t, app, tok)

	assert.Equal(t, testSessionID, sid)
	require.NotNil(t, issued, "el token se re-emite en cada request")
}

func TestSessionMiddleware_TokenExpirado_SesionNueva(t *testing.T) {
	app := buildSessionApp(sessionConfig())
	tok, err := pkgjwt.Generate(testSecret, testSessionID, "teerex-test", -time.Minute)
	require.NoError(t, err)

	sid, _ := whoami(t, app, tok)

	assert.NotEqual(t, testSessionID, sid)
}

func TestSessionMiddleware_SecretIncorrecto_SesionNueva(t *testing.T) {
	app := buildSessionApp(sessionConfig())
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testSessionID, "teerex-test", time.Hour)
	require.NoError(t, err)

	sid, _ := whoami(t, app, tok)

	assert.NotEqual(t, testSessionID, sid)
}

func TestSessionMiddleware_TokenMalformado_SesionNueva(t *testing.T) {
	app := buildSessionApp(sessionConfig())

	sid, issued := whoami(t, app, "token.invalido.aqui")

	assert.NotEmpty(t, sid)
	require.NotNil(t, issued)
}

func TestSessionMiddleware_SinSecret_500(t *testing.T) {
	cfg := sessionConfig()
	cfg.Secret = ""
	app := buildSessionApp(cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
