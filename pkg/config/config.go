package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultCatalogueURL catálogo estático original de la tienda.
const DefaultCatalogueURL = "https://geektrust.s3.ap-southeast-1.amazonaws.com/coding-problems/shopping-cart/catalogue.json"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Catalogue CatalogueConfig
	Session   SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogueConfig origen del catálogo de productos.
type CatalogueConfig struct {
	URL            string
	TimeoutSeconds int // 0 = sin timeout
}

// Timeout devuelve el timeout del cliente HTTP del catálogo.
func (c CatalogueConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig cookie firmada que identifica el carrito de cada navegador.
type SessionConfig struct {
	Secret     string
	CookieName string
	TTLMinutes int
	Issuer     string
}

// TTL duración de inactividad tras la cual se descarta la sesión.
func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CATALOGUE_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "teerex-store"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalogue: CatalogueConfig{
			URL:            getString(v, "CATALOGUE_URL", DefaultCatalogueURL),
			TimeoutSeconds: getInt(v, "CATALOGUE_TIMEOUT_SECONDS", 30),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", ""),
			CookieName: getString(v, "SESSION_COOKIE", "teerex_session"),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 120),
			Issuer:     getString(v, "SESSION_ISSUER", "teerex-store"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Catalogue.URL == "" {
		return fmt.Errorf("config: CATALOGUE_URL vacío")
	}
	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("config: SESSION_TTL_MINUTES debe ser mayor que 0")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("config: SESSION_COOKIE vacío")
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
