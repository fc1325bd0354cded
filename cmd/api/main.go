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
	"github.com/redis/go-redis/v9"
	"github.com/soporteti/inventario/internal/application/auth"
	"github.com/soporteti/inventario/internal/application/historial"
	"github.com/soporteti/inventario/internal/application/ledger"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/infrastructure/postgres"
	"github.com/soporteti/inventario/internal/infrastructure/redisflash"
	httpRouter "github.com/soporteti/inventario/internal/interfaces/http"
	"github.com/soporteti/inventario/pkg/config"
	"github.com/soporteti/inventario/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	flashStore := redisflash.NewStore(redisClient, time.Duration(cfg.Redis.FlashTTL)*time.Second)

	insumoRepo := postgres.NewInsumoRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	equipoRepo := postgres.NewEquipoRepository(pool)
	historialEquipoRepo := postgres.NewHistorialEquipoRepository(pool)
	impresoraRepo := postgres.NewImpresoraRepository(pool)
	areaRepo := postgres.NewAreaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := historial.NewRecorder(historialEquipoRepo, log)

	ledgerUC := ledger.NewUseCase(txRunner, insumoRepo, areaRepo, movimientoRepo)
	insumoUC := usecase.NewInsumoUseCase(insumoRepo)
	equipoUC := usecase.NewEquipoUseCase(equipoRepo, historialEquipoRepo, recorder)
	impresoraUC := usecase.NewImpresoraUseCase(impresoraRepo)
	areaUC := usecase.NewAreaUseCase(areaRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Inventario Soporte TI",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InsumoUC:    insumoUC,
		LedgerUC:    ledgerUC,
		EquipoUC:    equipoUC,
		ImpresoraUC: impresoraUC,
		AreaUC:      areaUC,
		CategoriaUC: categoriaUC,
		UsuarioUC:   usuarioUC,
		Flash:       flashStore,
		JWTSecret:   cfg.JWT.Secret,
	})

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
