package repository

import "github.com/bdu/inventory-api/internal/domain/entity"

// StockMoveRepository define el puerto de persistencia para el libro de
// movimientos. Solo inserción y lectura: los movimientos son inmutables.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	List() ([]*entity.StockMove, error)
	ListByProduct(productID int64) ([]*entity.StockMove, error)
}
