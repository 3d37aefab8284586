package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicia en 0 y
// solo cambia vía movimientos. unit_price no se valida (puede ser 0 o negativo).
type CreateProductRequest struct {
	SKU       string          `json:"sku" validate:"required,min=1,max=64"`
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest entrada para reemplazar los campos de un producto
// (sku, name, unit_price). No permite tocar Stock: se maneja vía movimientos.
type UpdateProductRequest struct {
	SKU       string          `json:"sku" validate:"required,min=1,max=64"`
	Name      string          `json:"name" validate:"required,min=1,max=255"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64           `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int64           `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}
