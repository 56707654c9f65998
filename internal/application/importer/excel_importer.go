package importer

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/techstore/inventory-api/internal/domain"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// Columnas esperadas en la primera hoja, en este orden.
// name | description | sku | price | cost | stock | category_id | provider_id
const expectedColumns = 8

// Result resumen de una importación.
type Result struct {
	Imported int
	Skipped  int
}

// ExcelImporter carga masiva de productos desde .xlsx. Escribe directo al
// catálogo: la carga inicial no pasa por el motor ni genera asientos en el libro.
type ExcelImporter struct {
	products repository.ProductRepository
}

// NewExcelImporter construye el importador.
func NewExcelImporter(products repository.ProductRepository) *ExcelImporter {
	return &ExcelImporter{products: products}
}

// Import lee la primera hoja del libro, salta la fila de cabecera y crea un
// producto por fila. Una fila inválida (celda mal formada, SKU duplicado) se
// salta y se registra; la importación continúa con la siguiente.
func (im *ExcelImporter) Import(ctx context.Context, r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}

	result := &Result{}
	for i, row := range rows {
		if i == 0 {
			continue // cabecera
		}
		product, err := parseRow(row)
		if err == nil {
			err = im.products.Create(ctx, product)
		}
		if err != nil {
			result.Skipped++
			log.Warn().Int("fila", i+1).Err(err).Msg("fila saltada en importación")
			continue
		}
		result.Imported++
	}
	return result, nil
}

func parseRow(row []string) (*entity.Product, error) {
	if len(row) < expectedColumns-1 { // provider_id puede venir vacío u omitido
		return nil, fmt.Errorf("fila incompleta: %d columnas", len(row))
	}
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	name := cell(0)
	sku := cell(2)
	if name == "" || sku == "" {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(cell(3))
	if err != nil {
		return nil, fmt.Errorf("precio inválido %q: %w", cell(3), err)
	}
	cost, err := decimal.NewFromString(cell(4))
	if err != nil {
		return nil, fmt.Errorf("costo inválido %q: %w", cell(4), err)
	}
	stock, err := strconv.Atoi(cell(5))
	if err != nil || stock < 0 {
		return nil, fmt.Errorf("stock inválido %q", cell(5))
	}
	categoryID, err := strconv.ParseInt(cell(6), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("category_id inválido %q", cell(6))
	}
	var providerID *int64
	if raw := cell(7); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("provider_id inválido %q", raw)
		}
		providerID = &id
	}

	return &entity.Product{
		SKU:         sku,
		Name:        name,
		Description: cell(1),
		Price:       price,
		CostPrice:   cost,
		Stock:       stock,
		CategoryID:  categoryID,
		ProviderID:  providerID,
		Active:      true,
	}, nil
}
