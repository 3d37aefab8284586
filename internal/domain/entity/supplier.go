package entity

import "time"

// Supplier representa un proveedor. Ciclo de vida independiente, CRUD puro.
type Supplier struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	CreatedAt time.Time
}
