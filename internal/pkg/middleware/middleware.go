package middleware

import (
	"fmt"
	"time"

	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Middleware struct {
	Log *otelzap.Logger
}

// RequestLogger records method, path, status and latency of every request.
// Server errors log at error level.
func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()

	status := ctx.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
	}

	fields := []zap.Field{
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if status >= fiber.StatusInternalServerError {
		m.Log.Ctx(ctx.UserContext()).Error("request failed", fields...)
	} else {
		m.Log.Ctx(ctx.UserContext()).Info("request", fields...)
	}

	return err
}

// NotFound answers unknown routes in the service's error envelope.
func (m *Middleware) NotFound(ctx *fiber.Ctx) error {
	return helpers.RespError(ctx, m.Log, errors.NotFound(fmt.Sprintf("route %s %s not found", ctx.Method(), ctx.Path())))
}
