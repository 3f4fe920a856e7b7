package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/satriahrh/paxos/utils/log"
	"go.uber.org/zap"
)

type RouterConfig struct {
	// BodyLimit caps request bodies, e.g. "1M". Empty means no limit.
	BodyLimit string
}

// NewRouter builds the echo instance serving the message API.
func NewRouter(h *MessageHandler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(log.ContextWithRequestID(req.Context(), id)))
		},
	}))
	e.Use(requestLogger())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))
	if cfg.BodyLimit != "" {
		e.Use(middleware.BodyLimit(cfg.BodyLimit))
	}

	e.GET("/health", h.HealthCheck)

	e.POST("/messages", h.SubmitMessage)
	// An empty digest segment reaches the handler so it can report the missing digest.
	e.GET("/messages/", h.RetrieveMessage)
	e.GET("/messages/:digest", h.RetrieveMessage)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := log.WithCtx(c.Request().Context())
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			if v.Status >= 500 {
				logger.Error("request", fields...)
			} else {
				logger.Info("request", fields...)
			}
			return nil
		},
	})
}
