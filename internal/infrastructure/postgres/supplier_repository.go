package postgres

import (
	"context"
	"fmt"

	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL
// (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, supplier.Email, supplier.Phone,
	).Scan(&supplier.ID, &supplier.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// List lista proveedores, más recientes primero.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, email, phone, created_at
		FROM suppliers ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza name, email y phone. Devuelve filas afectadas.
func (r *SupplierRepo) Update(supplier *entity.Supplier) (int64, error) {
	query := `
		UPDATE suppliers SET name = $2, email = $3, phone = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone,
	)
	if err != nil {
		return 0, fmt.Errorf("update supplier: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un proveedor por ID. Devuelve filas afectadas.
func (r *SupplierRepo) Delete(id int64) (int64, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected(), nil
}
