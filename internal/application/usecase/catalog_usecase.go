package usecase

import (
	"context"

	"github.com/techstore/inventory-api/internal/application/dto"
	"github.com/techstore/inventory-api/internal/domain"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

// CatalogUseCase administración de categorías y proveedores.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	providers  repository.ProviderRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, providers repository.ProviderRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, providers: providers}
}

// CreateCategory registra una categoría nueva.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: in.Name, Description: in.Description, Active: true}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// CreateProvider registra un proveedor nuevo.
func (uc *CatalogUseCase) CreateProvider(ctx context.Context, in dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	provider := &entity.Provider{Name: in.Name, Email: in.Email, Phone: in.Phone, Active: true}
	if err := uc.providers.Create(ctx, provider); err != nil {
		return nil, err
	}
	return toProviderResponse(provider), nil
}

// ListProviders lista todos los proveedores.
func (uc *CatalogUseCase) ListProviders(ctx context.Context) ([]dto.ProviderResponse, error) {
	providers, err := uc.providers.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, *toProviderResponse(p))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, Active: c.Active}
}

func toProviderResponse(p *entity.Provider) *dto.ProviderResponse {
	return &dto.ProviderResponse{ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone, Active: p.Active}
}
