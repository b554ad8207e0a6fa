package http

import (
	"errors"
	"fmt"

	"github.com/cloudonetech/console-api/internal/application/backup"
	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// BackupHandler expone la exportación de datos. Todo el grupo va detrás de
// RequireRole(ADMIN) en el router.
type BackupHandler struct {
	uc *backup.ExportUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.ExportUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// ExportCSV GET /api/backup/csv/:collection
func (h *BackupHandler) ExportCSV(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportCSV(c.UserContext(), c.Params("collection"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "colección desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportJSON GET /api/backup/json
func (h *BackupHandler) ExportJSON(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportJSON(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
