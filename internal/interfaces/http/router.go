package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soporteti/inventario/internal/application/auth"
	"github.com/soporteti/inventario/internal/application/ledger"
	"github.com/soporteti/inventario/internal/application/usecase"
	"github.com/soporteti/inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	InsumoUC    *usecase.InsumoUseCase
	LedgerUC    *ledger.UseCase
	EquipoUC    *usecase.EquipoUseCase
	ImpresoraUC *usecase.ImpresoraUseCase
	AreaUC      *usecase.AreaUseCase
	CategoriaUC *usecase.CategoriaUseCase
	UsuarioUC   *usecase.UsuarioUseCase
	Flash       FlashStore
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Mensajes flash (protegido)
	flashHandler := NewFlashHandler(deps.Flash)
	protected.Get("/flash", flashHandler.Take)

	// Insumos y libro de movimientos (protegido)
	insumos := protected.Group("/insumos")
	insumoHandler := NewInsumoHandler(deps.InsumoUC)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Flash)
	insumos.Post("/", insumoHandler.Create)
	insumos.Get("/", insumoHandler.List)
	insumos.Get("/bajo-stock", insumoHandler.ListBajoMinimo)
	insumos.Get("/:id", insumoHandler.GetByID)
	insumos.Put("/:id", RequireRole(entity.RolAdmin), insumoHandler.Update)
	insumos.Delete("/:id", RequireRole(entity.RolAdmin), insumoHandler.Delete)
	insumos.Post("/:id/entradas", ledgerHandler.RegisterEntrada)
	insumos.Post("/:id/salidas", ledgerHandler.RegisterSalida)
	insumos.Get("/:id/movimientos", ledgerHandler.ListMovimientos)

	// Equipos informáticos e historial (protegido)
	equipos := protected.Group("/equipos")
	equipoHandler := NewEquipoHandler(deps.EquipoUC, deps.Flash)
	equipos.Post("/", equipoHandler.Create)
	equipos.Get("/", equipoHandler.List)
	equipos.Get("/:id", equipoHandler.GetByID)
	equipos.Put("/:id", equipoHandler.Update)
	equipos.Delete("/:id", RequireRole(entity.RolAdmin), equipoHandler.Delete)
	equipos.Get("/:id/historial", equipoHandler.ListHistorial)

	// Impresoras y bitácora (protegido)
	impresoras := protected.Group("/impresoras")
	impresoraHandler := NewImpresoraHandler(deps.ImpresoraUC)
	impresoras.Post("/", impresoraHandler.Create)
	impresoras.Get("/", impresoraHandler.List)
	impresoras.Get("/:id", impresoraHandler.GetByID)
	impresoras.Put("/:id", impresoraHandler.Update)
	impresoras.Delete("/:id", RequireRole(entity.RolAdmin), impresoraHandler.Delete)
	impresoras.Post("/:id/historial", impresoraHandler.AddHistorial)
	impresoras.Get("/:id/historial", impresoraHandler.ListHistorial)

	// Catálogos y usuarios (solo admin)
	admin := protected.Group("/", RequireRole(entity.RolAdmin))

	areas := admin.Group("/areas")
	areaHandler := NewAreaHandler(deps.AreaUC)
	areas.Post("/", areaHandler.Create)
	areas.Get("/", areaHandler.List)
	areas.Put("/:id", areaHandler.Update)
	areas.Delete("/:id", areaHandler.Delete)

	categorias := admin.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	usuarios := admin.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)
}
