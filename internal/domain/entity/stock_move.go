package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MoveTypeIN  = "IN"  // entrada
	MoveTypeOUT = "OUT" // salida
)

// StockMove representa un asiento del libro de movimientos: un cambio de
// cantidad aplicado a un producto. Es inmutable una vez creado (append-only);
// un rechazo del motor no genera fila.
type StockMove struct {
	ID        int64
	ProductID int64
	Quantity  int64 // magnitud del cambio, siempre > 0
	MoveType  string
	Note      *string
	CreatedAt time.Time
}

// SignedQuantity devuelve la cantidad con signo: positiva para IN, negativa
// para OUT. La suma de cantidades con signo de un producto reconstruye su stock.
func (m *StockMove) SignedQuantity() int64 {
	if m.MoveType == MoveTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}
