package routes

import (
	"fmt"
	"net/http"
	"strings"

	"property-manager-backend/internal/api/handlers"
	"property-manager-backend/internal/api/middleware"
	"property-manager-backend/internal/auth"
	"property-manager-backend/internal/config"
	"property-manager-backend/internal/logger"
	"property-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// knownMethods are answered with 405 on paths that do not support them
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

type endpoint struct {
	method  string
	handler gin.HandlerFunc
}

func on(method string, handler gin.HandlerFunc) endpoint {
	return endpoint{method: method, handler: handler}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()
	// 405s are produced per path below, with the path's own method list
	router.HandleMethodNotAllowed = false

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.BodyLimit(cfg.RequestBodyLimit))

	services := service.NewServices(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	metaHandler := handlers.NewMetaHandler()
	propertyHandler := handlers.NewPropertyHandler(services.Properties)
	tenantHandler := handlers.NewTenantHandler(services.Tenants)
	expenseHandler := handlers.NewExpenseHandler(services.Expenses)
	paymentHandler := handlers.NewPaymentHandler(services.Payments)
	financialHandler := handlers.NewFinancialHandler(services.Financials)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	if cfg.AuthEnabled() {
		authService, err := auth.NewAuthService(cfg.AuthJWTSecret, cfg.AuthIssuer)
		if err != nil {
			// unreachable with a non-empty secret
			logger.New().WithError(err).Fatal("failed to initialize auth")
		}
		api.Use(auth.NewAuthMiddleware(authService).RequireAuth())
	} else {
		logger.New().Warn("AUTH_JWT_SECRET is empty; API routes are unauthenticated")
	}

	handle(api, "/properties",
		on(http.MethodGet, propertyHandler.ListProperties),
		on(http.MethodPost, propertyHandler.CreateProperty))
	handle(api, "/properties/:id",
		on(http.MethodGet, propertyHandler.GetProperty),
		on(http.MethodPut, propertyHandler.UpdateProperty),
		on(http.MethodPost, propertyHandler.CreatePropertyWithID))
	handle(api, "/properties/:id/status",
		on(http.MethodPatch, propertyHandler.UpdatePropertyStatus))

	handle(api, "/tenants",
		on(http.MethodGet, tenantHandler.ListTenants),
		on(http.MethodPost, tenantHandler.CreateTenant))
	handle(api, "/tenants/:id",
		on(http.MethodGet, tenantHandler.GetTenant),
		on(http.MethodPut, tenantHandler.UpdateTenant))
	handle(api, "/tenants/:id/status",
		on(http.MethodPatch, tenantHandler.UpdateTenantStatus))

	handle(api, "/expenses",
		on(http.MethodGet, expenseHandler.ListExpenses),
		on(http.MethodPost, expenseHandler.CreateExpense))
	handle(api, "/expenses/:id", on(http.MethodGet, expenseHandler.GetExpense))

	handle(api, "/payments",
		on(http.MethodGet, paymentHandler.ListPayments),
		on(http.MethodPost, paymentHandler.CreatePayment))
	handle(api, "/payments/:id", on(http.MethodGet, paymentHandler.GetPayment))

	handle(api, "/financials",
		on(http.MethodGet, financialHandler.ListFinancials),
		on(http.MethodPost, financialHandler.CreateFinancial))
	handle(api, "/financials/:id", on(http.MethodGet, financialHandler.GetFinancial))

	handle(api, "/meta/statuses", on(http.MethodGet, metaHandler.Statuses))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Route not found"})
	})

	return router
}

// handle registers the endpoints of one path and answers every other known
// method with 405 and an Allow header listing the supported ones.
func handle(g *gin.RouterGroup, path string, endpoints ...endpoint) {
	allowed := make([]string, 0, len(endpoints))
	registered := make(map[string]bool, len(endpoints))
	for _, e := range endpoints {
		g.Handle(e.method, path, e.handler)
		allowed = append(allowed, e.method)
		registered[e.method] = true
	}

	notAllowed := methodNotAllowed(allowed)
	for _, m := range knownMethods {
		if !registered[m] {
			g.Handle(m, path, notAllowed)
		}
	}
}

func methodNotAllowed(allowed []string) gin.HandlerFunc {
	list := strings.Join(allowed, ", ")
	return func(c *gin.Context) {
		c.Header("Allow", list)
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, handlers.ErrorResponse{
			Error: fmt.Sprintf("Method %s is not allowed. Supported methods: %s", c.Request.Method, list),
		})
	}
}
