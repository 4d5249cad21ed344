package httpresp

import "github.com/gin-gonic/gin"

// Envelope de sucesso no formato que o front já consome: dado + mensagem.
type Envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type ListResponse[T any] struct {
	Data    []T    `json:"data"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

func OK(c *gin.Context, data any, message string) {
	c.JSON(200, Envelope{
		Data:    data,
		Message: message,
	})
}

func Created(c *gin.Context, data any, message string) {
	c.JSON(201, Envelope{
		Data:    data,
		Message: message,
	})
}

func List[T any](c *gin.Context, data []T, message string) {
	c.JSON(200, ListResponse[T]{
		Data:    data,
		Total:   len(data),
		Message: message,
	})
}
