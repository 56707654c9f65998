package usecase

import (
	"context"

	"github.com/techstore/inventory-api/internal/application/dto"
	"github.com/techstore/inventory-api/internal/domain"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

// ProductUseCase administración del catálogo. El stock de un producto existente
// solo lo muta el motor de inventario; aquí solo se fija el stock inicial al crear.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un nuevo producto. Devuelve ErrDuplicate si el SKU ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(ctx, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	product := &entity.Product{
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CostPrice:   in.CostPrice,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		ProviderID:  in.ProviderID,
		Active:      true,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetStock consulta puntual del stock actual; distingue ausencia de stock cero.
func (uc *ProductUseCase) GetStock(ctx context.Context, id int64) (int, error) {
	return uc.repo.GetStock(ctx, id)
}

// List devuelve el catálogo completo en orden estable por ID.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductList(products), nil
}

// ListLowStock devuelve los productos con stock por debajo del umbral.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, threshold int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return toProductList(products), nil
}

// Deactivate marca la baja lógica de un producto (nunca se borra físicamente).
func (uc *ProductUseCase) Deactivate(ctx context.Context, id int64) error {
	return uc.repo.SetActive(ctx, id, false)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		CategoryID:  p.CategoryID,
		ProviderID:  p.ProviderID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
	}
}

func toProductList(products []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
