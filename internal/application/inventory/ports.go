package inventory

import (
	"context"

	"github.com/bdu/inventory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento,
// pasando repositorios atados a esa tx. Garantiza atomicidad para el motor:
// mutación de stock y asiento del libro se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		moveRepo repository.StockMoveRepository,
	) error) error
}
