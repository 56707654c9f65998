package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/techstore/inventory-api/internal/domain/entity"
	"github.com/techstore/inventory-api/internal/domain/repository"
)

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository sobre PostgreSQL.
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador de proveedores.
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un proveedor.
func (r *ProviderRepo) Create(ctx context.Context, provider *entity.Provider) error {
	query := `
		INSERT INTO providers (name, email, phone, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, provider.Name, provider.Email, provider.Phone, provider.Active).
		Scan(&provider.ID, &provider.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil si no existe.
func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*entity.Provider, error) {
	var p entity.Provider
	err := r.q.QueryRow(ctx,
		`SELECT id, name, email, phone, active, created_at FROM providers WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// ListAll lista todos los proveedores ordenados por ID.
func (r *ProviderRepo) ListAll(ctx context.Context) ([]*entity.Provider, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, email, phone, active, created_at FROM providers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
