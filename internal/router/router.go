package router

import (
	"time"

	"gestionpos/internal/config"
	"gestionpos/internal/handler"
	"gestionpos/internal/infra"
	"gestionpos/internal/middleware"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"
	"gestionpos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; the login limiter then keeps its counters in process.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, mailBreaker *infra.CircuitBreaker) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.APIRateLimit, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTTL(), cfg.RefreshTTL())
	var mailer service.Mailer
	if m := infra.NewMailer(cfg, mailBreaker); m != nil {
		mailer = m
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	rolRepo := repository.NewRolRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	alquilerRepo := repository.NewAlquilerRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, tokens)
	empleadoSvc := service.NewEmpleadoService(usuarioRepo, rolRepo, empleadoRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	documentosSvc := service.NewFacturaDocumentosService(facturaRepo, infra.NewPDFRenderer("Gestión Alquileres"), mailer)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	facturasH := handler.NewFacturasHandler(documentosSvc)

	categoriasH := handler.NewResourceHandler(service.NewCategoriaService(categoriaRepo))
	productosH := handler.NewResourceHandler(service.NewProductoService(productoRepo, categoriaRepo))
	clientesH := handler.NewResourceHandler(service.NewClienteService(repository.NewClienteRepository(db)))
	pedidosH := handler.NewResourceHandler(service.NewPedidoService(repository.NewPedidoRepository(db)))
	facturasCRUD := handler.NewResourceHandler(service.NewFacturaService(facturaRepo))
	entregasH := handler.NewResourceHandler(service.NewEntregaService(repository.NewEntregaRepository(db)))
	pagosH := handler.NewResourceHandler(service.NewPagoService(repository.NewPagoRepository(db)))
	incidentesH := handler.NewResourceHandler(service.NewIncidenteService(repository.NewIncidenteRepository(db)))
	cajaH := handler.NewResourceHandler(service.NewCajaService(repository.NewCajaRepository(db)))
	alquileresH := handler.NewResourceHandler(service.NewAlquilerService(alquilerRepo, productoRepo))

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, mailBreaker))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Auth (public)
	api.POST("/login", middleware.LoginRateLimiter(rdb, cfg.LoginRateLimit), authH.Login)
	api.POST("/token/refresh", authH.Refresh)

	// Protected routes
	protected := api.Group("", middleware.JWTAuth(tokens, authSvc))
	{
		protected.GET("/me", authH.Me)
		protected.GET("/dashboard/summary", dashboardH.Resumen)

		admin := protected.Group("", middleware.RequireRole(model.RolAdmin))
		{
			admin.GET("/roles", authH.Roles)
			admin.POST("/users/create/admin", empleadosH.CrearAdmin)
			admin.POST("/users/create/employee", empleadosH.CrearEmpleado)

			admin.GET("/employees", empleadosH.Listar)
			admin.POST("/employees", empleadosH.CrearNoPermitido)
			admin.GET("/employees/:id", empleadosH.Obtener)
			admin.PUT("/employees/:id", empleadosH.Actualizar)
			admin.PATCH("/employees/:id", empleadosH.Actualizar)
			admin.DELETE("/employees/:id", empleadosH.Eliminar)
		}

		detalle := protected.Group("/empleados-detail")
		{
			detalle.GET("/:id", empleadosH.Detalle)
			detalle.PUT("/:id", empleadosH.ActualizarDetalle)
			detalle.PATCH("/:id", empleadosH.ActualizarDetalle)
			detalle.PATCH("/:id/inactivar", empleadosH.Inactivar)
		}

		registerCRUD(protected, "/categorias", categoriasH)
		registerCRUD(protected, "/productos", productosH)
		registerCRUD(protected, "/clientes", clientesH)
		registerCRUD(protected, "/pedidos", pedidosH)
		registerCRUD(protected, "/facturas", facturasCRUD)
		registerCRUD(protected, "/entregas", entregasH)
		registerCRUD(protected, "/pagos", pagosH)
		registerCRUD(protected, "/incidentes", incidentesH)
		registerCRUD(protected, "/caja", cajaH)
		registerCRUD(protected, "/alquileres", alquileresH)

		protected.POST("/incidentes/create", incidentesH.Create)
		protected.GET("/facturas/:id/pdf", facturasH.PDF)
		protected.POST("/facturas/:id/enviar", facturasH.Enviar)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// registerCRUD mounts list/create/retrieve/update/delete for one resource.
func registerCRUD(g *gin.RouterGroup, path string, h handler.CRUD) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.PATCH(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
