package dto

import "github.com/jhoicas/despensa-api/internal/application/ocrimport"

// ErrorResponse es el cuerpo estándar de error de la API local.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddItemRequest añade un producto a la lista de la compra.
type AddItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"` // <1 o ausente se corrige a 1
}

// CartRequest marca o desmarca una entrada como cogida.
type CartRequest struct {
	InCart bool `json:"inCart"`
}

// QuantityRequest fija la cantidad de una entrada.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AcceptSuggestionRequest acepta una sugerencia con la cantidad ajustada.
type AcceptSuggestionRequest struct {
	Quantity int `json:"quantity"`
}

// ReceiptSubmitRequest envía las líneas crudas de un ticket reconocido.
type ReceiptSubmitRequest struct {
	Lines []string `json:"lines"`
}

// ReceiptConfirmRequest confirma qué candidatos importar a la lista.
type ReceiptConfirmRequest struct {
	Selections []ocrimport.Selection `json:"selections"`
}
