package handlers

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
}

func respondSuccess(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Message:    message,
		Status:     "success",
		StatusCode: code,
		Data:       data,
	})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Message:    message,
		Status:     "error",
		StatusCode: code,
		Data:       nil,
	})
}
