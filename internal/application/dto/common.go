package dto

// ErrorResponse cuerpo de error HTTP. Code es estable y legible por máquina;
// Message es informativo y nunca expone texto interno del almacenamiento.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdatedResponse respuesta de un update por id (filas afectadas).
type UpdatedResponse struct {
	Updated int64 `json:"updated"`
}

// DeletedResponse respuesta de un delete por id (filas afectadas).
type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
