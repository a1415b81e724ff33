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

	"github.com/jhoicas/despensa-api/internal/application/notification"
	"github.com/jhoicas/despensa-api/internal/application/session"
	"github.com/jhoicas/despensa-api/internal/domain/catalog"
	infrabackend "github.com/jhoicas/despensa-api/internal/infrastructure/backend"
	"github.com/jhoicas/despensa-api/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/despensa-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/despensa-api/internal/interfaces/http"
	"github.com/jhoicas/despensa-api/pkg/config"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.App.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abriendo el almacén local")
	}
	defer store.Close()

	backend := infrabackend.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
	)

	state := session.New(session.Deps{
		Backend:   backend,
		Persister: store,
		FavCache:  store,
		PDF:       infrapdf.NewMarotoListGenerator(),
		Namer:     catalog.NewNamer(cfg.App.Locale),
		Notifier:  notification.NewCenter(),
		Log:       log,
	})

	// Carga inicial desde el backend. Los fallos no son fatales: quedan en
	// toasts con reintento y la sesión arranca con lo hidratado en local.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	if err := state.ReloadDomain(startCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del dominio")
	}
	if err := state.ReloadProducts(startCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de productos")
	}
	if err := state.ReloadRecipes(startCtx); err != nil {
		log.Warn().Err(err).Msg("carga inicial de recetas")
	}
	cancelStart()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Despensa API local",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{State: state})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
