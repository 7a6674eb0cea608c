package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/teerex-store/internal/application/dto"
	"github.com/jhoicas/teerex-store/pkg/jwt"
)

// LocalSessionID key en c.Locals para el id de la sesión de carrito.
const LocalSessionID = "session_id"

// SessionConfig cookie de sesión firmada.
type SessionConfig struct {
	Secret     string
	CookieName string
	Issuer     string
	TTL        time.Duration
	Secure     bool
}

// SessionMiddleware asegura que cada request tenga una sesión de carrito.
// Lee la cookie firmada; si falta, expiró o fue alterada, abre una sesión nueva.
// El token se re-emite en cada request para que la expiración sea por inactividad.
// La cookie no lleva Expires: el navegador la descarta al cerrar la sesión.
func SessionMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := ""
		if raw := c.Cookies(cfg.CookieName); raw != "" {
			if sid, err := jwt.Parse(cfg.Secret, raw); err == nil {
				sessionID = sid
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		token, err := jwt.Generate(cfg.Secret, sessionID, cfg.Issuer, cfg.TTL)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION", Message: "no se pudo firmar la sesión"})
		}
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(LocalSessionID, sessionID)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión del contexto (después de SessionMiddleware).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
