package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/jhoicas/teerex-store/docs"
	appcatalogue "github.com/jhoicas/teerex-store/internal/application/catalogue"
	"github.com/jhoicas/teerex-store/internal/application/usecase"
	"github.com/jhoicas/teerex-store/internal/domain/cart"
	"github.com/jhoicas/teerex-store/internal/infrastructure/httpcatalogue"
	"github.com/jhoicas/teerex-store/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/teerex-store/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/teerex-store/internal/interfaces/http"
	"github.com/jhoicas/teerex-store/pkg/config"
	"github.com/jhoicas/teerex-store/pkg/logger"
)

const storeName = "TeeRex Store"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sin secreto configurado las sesiones no sobreviven un reinicio, igual que los carritos en memoria.
	secret := cfg.Session.Secret
	if secret == "" {
		secret = uuid.NewString()
		log.Warn().Msg("SESSION_SECRET vacío, usando un secreto efímero")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Catálogo: un único fetch en segundo plano; las vistas muestran "loading" mientras tanto.
	source := httpcatalogue.NewClient(cfg.Catalogue.URL, cfg.Catalogue.Timeout())
	loader := appcatalogue.NewLoader(source, log.Named("catalogue"))
	loader.Start(ctx)

	cartLog := log.Named("cart")
	sessions := memory.NewCartSessionRepository(cfg.Session.TTL(),
		memory.WithNotifier(cart.NotifierFunc(func(n cart.Notice) {
			cartLog.Debug().
				Str("kind", string(n.Kind)).
				Int("product_id", n.ProductID).
				Int("stock", n.Stock).
				Msg("aviso de carrito")
		})),
	)

	catalogueUC := usecase.NewCatalogueUseCase(loader, sessions)
	cartUC := usecase.NewCartUseCase(loader, sessions, infrapdf.NewMarotoPDFGenerator(), storeName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       storeName + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		st := loader.State()
		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   cfg.App.Name,
			"catalogue": st.Status,
			"products":  len(st.Products),
			"sessions":  sessions.Len(),
		})
	})

	if err := httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogueUC: catalogueUC,
		CartUC:      cartUC,
		Session: httpRouter.SessionConfig{
			Secret:     secret,
			CookieName: cfg.Session.CookieName,
			Issuer:     cfg.Session.Issuer,
			TTL:        cfg.Session.TTL(),
			Secure:     cfg.App.Env == "production",
		},
		StoreName: storeName,
		Logger:    log.Named("http"),
	}); err != nil {
		log.Fatal().Err(err).Msg("registrar rutas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
