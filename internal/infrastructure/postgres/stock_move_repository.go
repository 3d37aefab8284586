package postgres

import (
	"context"
	"fmt"

	"github.com/bdu/inventory-api/internal/domain/entity"
	"github.com/bdu/inventory-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación de StockMoveRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: no hay update ni delete.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

// Create persiste un asiento del libro. El id y created_at los genera el
// almacenamiento; el orden de inserción refleja el orden de serialización
// del bloqueo de fila, no el de llegada de los requests.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (product_id, quantity, move_type, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		move.ProductID, move.Quantity, move.MoveType, move.Note,
	).Scan(&move.ID, &move.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// List lista movimientos, más recientes primero.
func (r *StockMoveRepo) List() ([]*entity.StockMove, error) {
	query := `
		SELECT id, product_id, quantity, move_type, note, created_at
		FROM stock_moves ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.MoveType, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListByProduct lista los movimientos de un producto, más recientes primero.
func (r *StockMoveRepo) ListByProduct(productID int64) ([]*entity.StockMove, error) {
	query := `
		SELECT id, product_id, quantity, move_type, note, created_at
		FROM stock_moves WHERE product_id = $1 ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock moves by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Quantity, &m.MoveType, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
