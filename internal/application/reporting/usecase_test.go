package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstore/inventory-api/internal/application/dto"
	"github.com/techstore/inventory-api/internal/domain"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

// fakeProductRepo catálogo en memoria, solo lectura para los reportes.
type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) GetStock(ctx context.Context, id int64) (int, error) {
	p, _ := r.GetByID(ctx, id)
	if p == nil {
		return 0, domain.ErrProductNotFound
	}
	return p.Stock, nil
}
func (r *fakeProductRepo) GetStockForUpdate(ctx context.Context, id int64) (int, error) {
	return r.GetStock(ctx, id)
}
func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) ListBelowStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.Stock < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) ApplyStockDelta(ctx context.Context, id int64, delta int) error {
	return nil
}
func (r *fakeProductRepo) SetActive(ctx context.Context, id int64, active bool) error { return nil }

// fakeMovementRepo libro en memoria; TopByQuantity replica el contrato del
// adapter SQL: suma por nombre, orden descendente, empates por primera aparición.
type fakeMovementRepo struct {
	movements []*entity.StockMovement
	names     map[int64]string
}

func (r *fakeMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	m.ID = int64(len(r.movements) + 1)
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) Recent(ctx context.Context, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.movements[i])
	}
	return out, nil
}
func (r *fakeMovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := len(r.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if r.movements[i].ProductID == productID {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}
func (r *fakeMovementRepo) TopByQuantity(ctx context.Context, movementType string, limit int) ([]repository.ProductSales, error) {
	totals := map[string]int{}
	firstSeen := map[string]int64{}
	var order []string
	for _, m := range r.movements {
		if m.Type != movementType {
			continue
		}
		name := r.names[m.ProductID]
		if _, ok := totals[name]; !ok {
			firstSeen[name] = m.ID
			order = append(order, name)
		}
		totals[name] += m.Quantity
	}
	// inserción ordenada: total descendente, empate por primer asiento
	var ranked []string
	for _, name := range order {
		pos := len(ranked)
		for i, other := range ranked {
			if totals[name] > totals[other] ||
				(totals[name] == totals[other] && firstSeen[name] < firstSeen[other]) {
				pos = i
				break
			}
		}
		ranked = append(ranked[:pos], append([]string{name}, ranked[pos:]...)...)
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]repository.ProductSales, 0, len(ranked))
	for _, name := range ranked {
		out = append(out, repository.ProductSales{ProductName: name, Total: totals[name]})
	}
	return out, nil
}

type fakePDF struct {
	called    bool
	threshold int
	count     int
}

func (g *fakePDF) LowStockReport(products []*entity.Product, threshold int) ([]byte, error) {
	g.called = true
	g.threshold = threshold
	g.count = len(products)
	return []byte("%PDF-1.4"), nil
}

func ptrInt64(v int64) *int64 { return &v }

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, SKU: "LAP-001", Name: "Laptop Pro 15", Description: "16GB RAM; SSD 512GB", Price: decimal.RequireFromString("1299.99"), CostPrice: decimal.RequireFromString("980.50"), Stock: 2, CategoryID: 1, ProviderID: ptrInt64(7), Active: true},
		{ID: 2, SKU: "MOU-034", Name: `Mouse "Gamer"`, Description: "Línea 1\nLínea 2", Price: decimal.RequireFromString("49.90"), CostPrice: decimal.RequireFromString("21.00"), Stock: 30, CategoryID: 2, Active: true},
		{ID: 3, SKU: "CAB-777", Name: "Cable HDMI", Description: "", Price: decimal.RequireFromString("9.99"), CostPrice: decimal.RequireFromString("3.10"), Stock: 0, CategoryID: 2, Active: false},
	}
}

func TestExportInventoryCSV_FormatoYEscapado(t *testing.T) {
	uc := NewReportUseCase(&fakeProductRepo{products: sampleProducts()}, &fakeMovementRepo{}, &fakePDF{}, 5)

	var buf bytes.Buffer
	err := uc.ExportInventoryCSV(context.Background(), &buf)
	require.NoError(t, err)

	// el round-trip por encoding/csv valida que separadores, comillas y
	// saltos de línea dentro de los campos quedaron bien escapados
	cr := csv.NewReader(&buf)
	cr.Comma = ';'
	rows, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"id", "sku", "name", "description", "price", "cost_price", "stock", "category_id", "provider_id", "active"}, rows[0])
	assert.Equal(t, []string{"1", "LAP-001", "Laptop Pro 15", "16GB RAM; SSD 512GB", "1299.99", "980.5", "2", "1", "7", "1"}, rows[1])
	assert.Equal(t, `Mouse "Gamer"`, rows[2][2])
	assert.Equal(t, "Línea 1\nLínea 2", rows[2][3])
	assert.Equal(t, "", rows[2][8]) // proveedor opcional ausente
	assert.Equal(t, "0", rows[3][9])
}

func TestExportInventoryCSV_CatalogoVacio(t *testing.T) {
	uc := NewReportUseCase(&fakeProductRepo{}, &fakeMovementRepo{}, &fakePDF{}, 5)

	var buf bytes.Buffer
	require.NoError(t, uc.ExportInventoryCSV(context.Background(), &buf))

	cr := csv.NewReader(&buf)
	cr.Comma = ';'
	rows, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo cabecera
}

func TestBestSellers_OrdenYEmpates(t *testing.T) {
	movements := &fakeMovementRepo{names: map[int64]string{1: "A", 2: "B", 3: "C", 4: "D"}}
	seed := []struct {
		productID int64
		movType   string
		qty       int
	}{
		{1, entity.MovementTypeSale, 2},
		{2, entity.MovementTypeSale, 12},
		{3, entity.MovementTypeSale, 3},
		{1, entity.MovementTypeSale, 3},
		{4, entity.MovementTypeSale, 12},
		{2, entity.MovementTypeRestock, 100}, // los restock no cuentan en el ranking
	}
	for _, s := range seed {
		require.NoError(t, movements.Create(context.Background(), &entity.StockMovement{
			ProductID: s.productID, Type: s.movType, Quantity: s.qty,
		}))
	}
	uc := NewReportUseCase(&fakeProductRepo{}, movements, &fakePDF{}, 5)

	top, err := uc.BestSellers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 4)

	// A:5, B:12, C:3, D:12 — el empate B/D lo gana B por aparecer antes en el libro
	assert.Equal(t, dto1(1, "B", 12), top[0])
	assert.Equal(t, dto1(2, "D", 12), top[1])
	assert.Equal(t, dto1(3, "A", 5), top[2])
	assert.Equal(t, dto1(4, "C", 3), top[3])
}

func TestBestSellers_RespetaLimite(t *testing.T) {
	movements := &fakeMovementRepo{names: map[int64]string{1: "A", 2: "B", 3: "C"}}
	for id := int64(1); id <= 3; id++ {
		require.NoError(t, movements.Create(context.Background(), &entity.StockMovement{
			ProductID: id, Type: entity.MovementTypeSale, Quantity: int(10 - id),
		}))
	}
	uc := NewReportUseCase(&fakeProductRepo{}, movements, &fakePDF{}, 5)

	top, err := uc.BestSellers(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].ProductName)
	assert.Equal(t, "B", top[1].ProductName)
}

func TestBestSellers_LibroVacio(t *testing.T) {
	uc := NewReportUseCase(&fakeProductRepo{}, &fakeMovementRepo{}, &fakePDF{}, 5)

	top, err := uc.BestSellers(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestLowStockAlert_UmbralPorDefecto(t *testing.T) {
	uc := NewReportUseCase(&fakeProductRepo{products: sampleProducts()}, &fakeMovementRepo{}, &fakePDF{}, 5)

	alert, err := uc.LowStockAlert(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, alert, 2) // stock 2 y stock 0, ambos < 5
	assert.Equal(t, "LAP-001", alert[0].SKU)
	assert.Equal(t, "CAB-777", alert[1].SKU)
}

func TestLowStockAlert_UmbralExplicito(t *testing.T) {
	uc := NewReportUseCase(&fakeProductRepo{products: sampleProducts()}, &fakeMovementRepo{}, &fakePDF{}, 5)

	alert, err := uc.LowStockAlert(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, alert, 1)
	assert.Equal(t, "CAB-777", alert[0].SKU)
}

func TestExportLowStockPDF_DelegaAlGenerador(t *testing.T) {
	pdf := &fakePDF{}
	uc := NewReportUseCase(&fakeProductRepo{products: sampleProducts()}, &fakeMovementRepo{}, pdf, 5)

	out, err := uc.ExportLowStockPDF(context.Background(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.True(t, pdf.called)
	assert.Equal(t, 5, pdf.threshold)
	assert.Equal(t, 2, pdf.count)
}

func TestRecentMovements_MasRecientePrimero(t *testing.T) {
	movements := &fakeMovementRepo{names: map[int64]string{1: "A"}}
	for i := 0; i < 3; i++ {
		require.NoError(t, movements.Create(context.Background(), &entity.StockMovement{
			ProductID: 1, Type: entity.MovementTypeSale, Quantity: i + 1,
		}))
	}
	uc := NewReportUseCase(&fakeProductRepo{}, movements, &fakePDF{}, 5)

	recent, err := uc.RecentMovements(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Quantity)
	assert.Equal(t, 2, recent[1].Quantity)
}

func dto1(rank int, name string, total int) dto.BestSellerDTO {
	return dto.BestSellerDTO{Rank: rank, ProductName: name, TotalSold: total}
}
