package dto

// BestSellerDTO una posición del ranking de más vendidos.
type BestSellerDTO struct {
	Rank        int    `json:"rank"`
	ProductName string `json:"product_name"`
	TotalSold   int    `json:"total_sold"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
}

// ProviderResponse salida de un proveedor.
type ProviderResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// CreateProviderRequest entrada para crear un proveedor.
type CreateProviderRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=150"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
