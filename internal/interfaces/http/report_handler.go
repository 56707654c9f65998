package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventory-api/internal/application/dto"
	"github.com/techstore/inventory-api/internal/application/reporting"
)

// ReportHandler reportes derivados del catálogo y del libro de movimientos (protegido).
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// RecentMovements godoc
// @Summary      Últimos movimientos del libro
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) RecentMovements(c *fiber.Ctx) error {
	limit := clampLimit(c.QueryInt("limit", 20))
	out, err := h.uc.RecentMovements(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProductHistory godoc
// @Summary      Historial de movimientos de un producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id     path   int  true   "ID del producto"
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/reports/movements/{id} [get]
func (h *ReportHandler) ProductHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico es requerido"})
	}
	limit := clampLimit(c.QueryInt("limit", 20))
	out, err := h.uc.ProductHistory(c.Context(), int64(id), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BestSellers godoc
// @Summary      Ranking de productos más vendidos
// @Description  Suma las unidades vendidas de todo el libro agrupadas por producto.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.BestSellerDTO
// @Router       /api/reports/best-sellers [get]
func (h *ReportHandler) BestSellers(c *fiber.Ctx) error {
	limit := clampLimit(c.QueryInt("limit", 10))
	out, err := h.uc.BestSellers(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock bajo el umbral
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 0)
	products, err := h.uc.LowStockAlert(c.Context(), threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponse{
			ID: p.ID, SKU: p.SKU, Name: p.Name, Description: p.Description,
			Price: p.Price, CostPrice: p.CostPrice, Stock: p.Stock,
			CategoryID: p.CategoryID, ProviderID: p.ProviderID,
			Active: p.Active, CreatedAt: p.CreatedAt,
		})
	}
	return c.JSON(dto.ProductListResponse{Items: items, Total: len(items)})
}

// ExportCSV godoc
// @Summary      Exportar el catálogo completo como CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/export.csv [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.csv"`)
	if err := h.uc.ExportInventoryCSV(c.Context(), c.Response().BodyWriter()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return nil
}

// ExportLowStockPDF godoc
// @Summary      Exportar la alerta de stock bajo como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        threshold  query  int  false  "Umbral (por defecto el configurado)"
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) ExportLowStockPDF(c *fiber.Ctx) error {
	threshold := c.QueryInt("threshold", 0)
	pdfBytes, err := h.uc.ExportLowStockPDF(c.Context(), threshold)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock_bajo.pdf"`)
	return c.Send(pdfBytes)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}
