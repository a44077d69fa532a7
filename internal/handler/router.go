package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"authentithief/internal/handler/api"
	"authentithief/internal/handler/middleware"
	"authentithief/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the api handlers for fx injection.
type Handlers struct {
	Products *api.ProductHandler
	Verify   *api.VerifyHandler
	Scans    *api.ScanHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	limit := middleware.BodyLimit(cfg.Scanner.MaxUploadBytes)

	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Products.Register},
			{Method: http.MethodGet, Path: "", Handler: h.Products.List},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/verify", Handler: h.Verify.Verify, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodPost, Path: "/scan/upload", Handler: h.Verify.Upload, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodGet, Path: "/scans/:key", Handler: h.Scans.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
