package http

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
)

// paramName extrae y desescapa el parámetro :name de la ruta.
func paramName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || strings.TrimSpace(name) == "" {
		return "", domain.ErrInvalidInput
	}
	return name, nil
}

// mapDomainError traduce errores de dominio a códigos HTTP; cualquier otro
// error (red, backend caído) es un 502: el problema no está en esta app.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msg})
}
