package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/cart"
	"wellnest-be/internal/config"
	"wellnest-be/internal/logger"
	"wellnest-be/internal/middleware"
	"wellnest-be/internal/order"
	"wellnest-be/internal/payment"
	"wellnest-be/internal/prescription"
	"wellnest-be/internal/product"
	"wellnest-be/internal/user"
)

// Deps carries every collaborator the HTTP layer needs.
type Deps struct {
	Config        *config.Config
	Tokens        *auth.TokenManager
	UserRepo      user.Repository
	Users         user.Service
	Products      product.Service
	Carts         cart.Service
	Orders        order.Service
	Prescriptions prescription.Service
	Payments      payment.Gateway
}

type Server struct {
	engine        *gin.Engine
	users         user.Service
	products      product.Service
	carts         cart.Service
	orders        order.Service
	prescriptions prescription.Service
	payments      payment.Gateway
}

func New(deps Deps) *Server {
	if deps.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.CORS(deps.Config.CORSOrigins),
		middleware.RateLimit(),
		middleware.RequestLogger(),
	)

	s := &Server{
		engine:        engine,
		users:         deps.Users,
		products:      deps.Products,
		carts:         deps.Carts,
		orders:        deps.Orders,
		prescriptions: deps.Prescriptions,
		payments:      deps.Payments,
	}
	s.registerRoutes(deps)
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes(deps Deps) {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authn := middleware.Authenticate(deps.Tokens, deps.UserRepo)

	api := s.engine.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)
		api.GET("/auth/me", authn, s.me)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/categories", s.listCategories)

		authed := api.Group("/", authn)
		{
			authed.GET("/cart", s.getCart)
			authed.POST("/cart", s.updateCart)
			authed.DELETE("/cart", s.clearCart)

			authed.GET("/orders", s.listMyOrders)
			authed.POST("/orders", s.createOrder)
			authed.GET("/orders/:id", s.getOrder)

			authed.POST("/prescriptions", s.uploadPrescription)
			authed.GET("/prescriptions", s.listMyPrescriptions)
			authed.GET("/prescriptions/:id", s.getPrescription)

			authed.POST("/payment/create-intent", s.createPaymentIntent)
		}

		admin := api.Group("/admin", authn, middleware.RequireAdmin())
		{
			admin.GET("/users", s.listUsers)
			admin.POST("/products", s.createProduct)
			admin.PUT("/products/:id", s.updateProduct)
			admin.DELETE("/products/:id", s.deleteProduct)
			admin.GET("/orders", s.listAllOrders)
			admin.PUT("/orders/:id", s.updateOrderStatus)
		}

		pharmacist := api.Group("/pharmacist", authn, middleware.RequirePharmacist())
		{
			pharmacist.GET("/prescriptions", s.listAllPrescriptions)
			pharmacist.PUT("/prescriptions/:id", s.updatePrescription)
		}
	}
}

// fail maps domain errors onto the response taxonomy. Anything unrecognized
// becomes a generic 500 so internals never leak.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, prescription.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, prescription.ErrInvalidStatus),
		errors.Is(err, prescription.ErrEmptyFile),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		var providerErr *payment.ProviderError
		if errors.As(err, &providerErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": providerErr.Message})
			return
		}
		logger.L().Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
