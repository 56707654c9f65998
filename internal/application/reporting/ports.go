package reporting

import "github.com/techstore/inventory-api/internal/domain/entity"

// PDFGenerator puerto de generación de documentos PDF (adapter en infrastructure/pdf).
type PDFGenerator interface {
	// LowStockReport genera el PDF de alerta de stock bajo y devuelve sus bytes.
	LowStockReport(products []*entity.Product, threshold int) ([]byte, error)
}
