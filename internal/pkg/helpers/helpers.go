package helpers

import (
	"fmt"

	"reservation-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, fiber.StatusOK, data, message)
}

func RespCreated(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return respond(ctx, log, fiber.StatusCreated, data, message)
}

func respond(ctx *fiber.Ctx, log *otelzap.Logger, status int, data interface{}, message string) error {
	log.Ctx(ctx.UserContext()).Debug(message)
	return ctx.Status(status).JSON(Response{
		Message: message,
		Data:    data,
	})
}

// RespError writes err with the status carried by a CustomError, 500 otherwise.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce, ok := errors.As(err)
	if !ok {
		log.Ctx(ctx.UserContext()).Error(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: "internal server error",
			Code:    errors.KindInternal,
		})
	}

	return ctx.Status(ce.Code).JSON(ErrorResponse{
		Message: ce.Message,
		Code:    ce.Kind,
		Details: ce.Details,
	})
}

// ParseUUID parses an id taken from a path or query parameter.
func ParseUUID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.BadRequest(fmt.Sprintf("invalid %s", field))
	}
	return id, nil
}
