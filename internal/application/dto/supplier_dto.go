package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateSupplierRequest entrada para reemplazar los campos de un proveedor.
type UpdateSupplierRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
