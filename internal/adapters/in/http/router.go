package http

import (
	"log/slog"
	"net/http"

	"storefront/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	JWTSecret      []byte
	OpenAPI        *openapi3.T
	CheckoutLimits middleware.RateLimiterStore
	Logger         *slog.Logger
}

// NewRouter builds the echo instance with middleware and every route mounted.
func NewRouter(s *Server, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.WARN)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(cfg.Logger))

	if cfg.OpenAPI != nil {
		validate, err := OpenAPIValidator(cfg.OpenAPI)
		if err != nil {
			return nil, err
		}
		e.Use(validate)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.Spec)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	v1 := e.Group("/api/v1")

	carts := v1.Group("/carts/:sessionId")
	carts.GET("", s.GetCart)
	carts.DELETE("", s.ClearCart)
	carts.POST("/items", s.AddCartItem)
	carts.PUT("/items/:productId", s.SetCartItemQuantity)
	carts.DELETE("/items/:productId", s.RemoveCartItem)

	checkout := []echo.MiddlewareFunc{}
	if cfg.CheckoutLimits != nil {
		checkout = append(checkout, RateLimit(cfg.CheckoutLimits))
	}
	v1.POST("/checkout", s.Checkout, checkout...)

	admin := v1.Group("/admin", JWTAuth(cfg.JWTSecret))
	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/:orderId", s.GetOrder)
	admin.POST("/orders/:orderId/advance", s.AdvanceOrderStatus)
	admin.PUT("/orders/:orderId/status", s.SetOrderStatus)
	admin.POST("/orders/:orderId/notes", s.AddOrderNote)
	admin.POST("/orders/:orderId/invoices", s.GenerateInvoices)
	admin.GET("/invoices", s.ListInvoices)
	admin.POST("/invoices/:invoiceId/settle", s.SettleInvoice)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
