package router

import (
	"time"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/config"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/handler"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/middleware"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/repository"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/service"
	"github.com/logisticalym2023-spec/cuadre-planilla/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(600, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	personalRepo := repository.NewPersonalRepository(db)
	planillaRepo := repository.NewPlanillaRepository(db)
	denomRepo := repository.NewDenominacionRepository(db)
	oficialRepo := repository.NewPlanillaOficialRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	sesionSvc := service.NewSesionService(personalRepo, cfg)
	planillaSvc := service.NewPlanillaService(planillaRepo)
	conteoSvc := service.NewConteoService(planillaRepo, denomRepo)
	cuadreSvc := service.NewCuadreService(planillaRepo, denomRepo, dispatcher)
	exportSvc := service.NewExportService(planillaRepo, denomRepo, oficialRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	sesionH := handler.NewSesionHandler(sesionSvc)
	planillasH := handler.NewPlanillaHandler(planillaSvc)
	conteoH := handler.NewConteoHandler(conteoSvc)
	cuadreH := handler.NewCuadreHandler(cuadreSvc)
	exportH := handler.NewExportHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	sesion := r.Group("/v1/sesion")
	{
		sesion.POST("/ingresar", middleware.LoginRateLimiter(rdb), sesionH.Ingresar)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		planillas := v1.Group("/planillas")
		{
			planillas.POST("", planillasH.Crear)
			planillas.GET("", planillasH.Listar)
			planillas.GET("/estadisticas", planillasH.Estadisticas)
			planillas.GET("/:id", planillasH.Obtener)
			planillas.PUT("/:id/novedades", planillasH.GuardarNovedades)
			planillas.POST("/:id/conteo/:tipo", conteoH.Registrar)
			planillas.GET("/:id/conteo/:tipo", conteoH.Listar)
			planillas.GET("/:id/resumen", cuadreH.Resumen)
			planillas.POST("/:id/cerrar", cuadreH.Cerrar)
			planillas.GET("/:id/comprobante.pdf", cuadreH.Comprobante)
			planillas.GET("/:id/export", exportH.ExportarPlanilla)
		}

		v1.GET("/export/planillas", middleware.RequireRol(model.RolAdmin), exportH.ExportarCerradas)

		admin := v1.Group("/admin", middleware.RequireRol(model.RolAdmin))
		{
			admin.POST("/planillas-oficiales/import", exportH.ImportarOficiales)
			admin.GET("/planillas-oficiales", exportH.ListarOficiales)
		}
	}

	// Swagger UI, disabled in production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
