package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
// Stock solo se modifica a través del motor de movimientos (nunca por el CRUD);
// el invariante central es Stock >= 0 en todo momento.
type Product struct {
	ID        int64
	SKU       string // código único de negocio
	Name      string
	UnitPrice decimal.Decimal // precio unitario; sin validación de rango
	Stock     int64
	CreatedAt time.Time
}
