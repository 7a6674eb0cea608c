package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoticeResponse aviso para el usuario (p. ej. stock agotado).
type NoticeResponse struct {
	Kind      string `json:"kind"`
	ProductID int    `json:"product_id"`
	Product   string `json:"product"`
	Stock     int    `json:"stock"`
	Message   string `json:"message"`
}
