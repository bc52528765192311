package middleware

import (
	"encoding/json"
	"net/http"
)

// Tipos de error que entiende el cliente del endpoint.
const (
	ErrTypeEndpoint     = "EndpointException"
	ErrTypeValidation   = "EndpointValidationException"
	ErrTypeAccessDenied = "EndpointAccessDeniedException"
)

// ErrorBody es el cuerpo JSON de toda respuesta de error de un endpoint.
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, status int, typ, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorBody{Type: typ, Message: msg})
}
