package repository

import "github.com/bdu/inventory-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
// Update y Delete devuelven filas afectadas: 0 significa "no encontrado".
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetForUpdate lee el producto adquiriendo el bloqueo exclusivo de fila.
	// Lectura y bloqueo son una sola operación: el valor de stock devuelto es
	// el autoritativo mientras dure la transacción.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) (int64, error)
	UpdateStock(id int64, stock int64) error
	List() ([]*entity.Product, error)
	Delete(id int64) (int64, error)
}
