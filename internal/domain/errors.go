package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los cuatro primeros son los motivos de rechazo del motor de movimientos:
// para los casos esperados el motor nunca propaga fallas genéricas,
// devuelve uno de estos sentinelas.
var (
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidMoveType   = errors.New("tipo de movimiento inválido")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")

	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)
