package repository

import "github.com/bdu/inventory-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Update y Delete devuelven filas afectadas: 0 significa "no encontrado".
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) (int64, error)
	Delete(id int64) (int64, error)
}
