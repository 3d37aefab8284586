package dto

import "time"

// CreateStockMoveRequest body para POST /api/stock_moves.
// product_id, quantity y move_type los valida el motor con motivos tipados
// (no llevan tags validate: el motivo de rechazo debe ser el específico).
type CreateStockMoveRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	MoveType  string  `json:"move_type"`
	Note      *string `json:"note"`
}

// StockMoveResponse salida de un asiento del libro de movimientos.
type StockMoveResponse struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	MoveType  string    `json:"move_type"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
