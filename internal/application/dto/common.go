package dto

// ErrorResponse cuerpo de error HTTP. Error lleva el detalle del error
// subyacente cuando aplica (fallos de persistencia/transacción).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse cuerpo simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
