package http

import (
	"errors"
	"fmt"

	appbilling "github.com/cloudonetech/console-api/internal/application/billing"
	"github.com/cloudonetech/console-api/internal/application/dto"
	"github.com/cloudonetech/console-api/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// QuotationHandler maneja las peticiones HTTP de cotizaciones, incluida la
// conversión a factura y la exportación PDF.
type QuotationHandler struct {
	uc        *appbilling.QuotationUseCase
	convertUC *appbilling.ConvertQuoteUseCase
	pdfUC     *appbilling.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *appbilling.QuotationUseCase, convertUC *appbilling.ConvertQuoteUseCase, pdfUC *appbilling.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, convertUC: convertUC, pdfUC: pdfUC}
}

// Create POST /api/quotations
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// GetByID GET /api/quotations/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(quote)
}

// List GET /api/quotations
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(pageFromQuery(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpdateStatus PATCH /api/quotations/:id/status
func (h *QuotationHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	quote, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return billingError(c, err)
	}
	return c.JSON(quote)
}

// Convert godoc
// @Summary      Convertir cotización en factura
// @Tags         quotations
// @Produce      json
// @Param        id  path  string  true  "ID de la cotización"
// @Success      201  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/convert [post]
func (h *QuotationHandler) Convert(c *fiber.Ctx) error {
	invoice, err := h.convertUC.Convert(c.UserContext(), c.Params("id"))
	if err != nil {
		return billingError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// DownloadPDF GET /api/quotations/:id/pdf
func (h *QuotationHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadQuotationPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return billingError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// billingError mapea errores de dominio del ciclo de documentos a HTTP.
// Usa errors.Is porque algunos casos de uso envuelven el sentinel con contexto.
func billingError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos del documento inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documento no encontrado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el documento ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
