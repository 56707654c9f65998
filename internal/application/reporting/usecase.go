package reporting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/techstore/inventory-api/internal/application/dto"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

// csvSeparator separador histórico de los exports de la tienda.
const csvSeparator = ';'

var csvHeader = []string{"id", "sku", "name", "description", "price", "cost_price", "stock", "category_id", "provider_id", "active"}

// ReportUseCase reportes derivados del catálogo y del libro de movimientos.
// Todos los rankings se recalculan contra la DB en cada llamada; no hay caché.
type ReportUseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	pdf       PDFGenerator
	threshold int
}

// NewReportUseCase construye el caso de uso. threshold es el umbral por defecto
// para alertas de stock bajo (configurable vía REPORT_LOW_STOCK_THRESHOLD).
func NewReportUseCase(products repository.ProductRepository, movements repository.MovementRepository, pdf PDFGenerator, threshold int) *ReportUseCase {
	return &ReportUseCase{products: products, movements: movements, pdf: pdf, threshold: threshold}
}

// DefaultThreshold umbral configurado para stock bajo.
func (uc *ReportUseCase) DefaultThreshold() int { return uc.threshold }

// RecentMovements últimos asientos del libro, del más reciente al más antiguo.
func (uc *ReportUseCase) RecentMovements(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	movements, err := uc.movements.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// ProductHistory historial de movimientos de un producto.
func (uc *ReportUseCase) ProductHistory(ctx context.Context, productID int64, limit int) ([]dto.MovementResponse, error) {
	movements, err := uc.movements.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// BestSellers ranking de productos más vendidos por unidades. Suma las ventas
// de todo el libro agrupadas por nombre de producto, en orden descendente.
func (uc *ReportUseCase) BestSellers(ctx context.Context, limit int) ([]dto.BestSellerDTO, error) {
	sales, err := uc.movements.TopByQuantity(ctx, entity.MovementTypeSale, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BestSellerDTO, 0, len(sales))
	for i, s := range sales {
		out = append(out, dto.BestSellerDTO{Rank: i + 1, ProductName: s.ProductName, TotalSold: s.Total})
	}
	return out, nil
}

// LowStockAlert productos con stock estrictamente menor al umbral.
// threshold <= 0 usa el umbral configurado.
func (uc *ReportUseCase) LowStockAlert(ctx context.Context, threshold int) ([]*entity.Product, error) {
	if threshold <= 0 {
		threshold = uc.threshold
	}
	return uc.products.ListBelowStock(ctx, threshold)
}

// ExportInventoryCSV escribe el catálogo completo como CSV separado por ';'.
// encoding/csv se encarga del escapado de comillas, separadores y saltos de línea.
func (uc *ReportUseCase) ExportInventoryCSV(ctx context.Context, w io.Writer) error {
	products, err := uc.products.ListAll(ctx)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range products {
		if err := cw.Write(productRecord(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportLowStockPDF genera el PDF de alerta de stock bajo.
func (uc *ReportUseCase) ExportLowStockPDF(ctx context.Context, threshold int) ([]byte, error) {
	if threshold <= 0 {
		threshold = uc.threshold
	}
	products, err := uc.products.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return uc.pdf.LowStockReport(products, threshold)
}

func productRecord(p *entity.Product) []string {
	providerID := ""
	if p.ProviderID != nil {
		providerID = fmt.Sprintf("%d", *p.ProviderID)
	}
	active := "0"
	if p.Active {
		active = "1"
	}
	return []string{
		fmt.Sprintf("%d", p.ID),
		p.SKU,
		p.Name,
		p.Description,
		p.Price.String(),
		p.CostPrice.String(),
		fmt.Sprintf("%d", p.Stock),
		fmt.Sprintf("%d", p.CategoryID),
		providerID,
		active,
	}
}

func toMovementResponses(movements []*entity.StockMovement) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			OperationID: m.OperationID,
			ProductID:   m.ProductID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Date:        m.Date,
			Notes:       m.Notes,
		})
	}
	return out
}
