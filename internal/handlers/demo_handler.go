package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// logoPNG is a 1x1 transparent PNG, the smallest payload that exercises
// the binary response path end to end.
var logoPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// EchoRequest is the payload accepted by the echo endpoint
type EchoRequest struct {
	Message string `json:"message" binding:"required"`
}

// Hello responds with a plain-text greeting
func Hello(c *gin.Context) {
	name := c.DefaultQuery("name", "world")
	c.String(http.StatusOK, "hello %s", name)
}

// Echo responds with the JSON message it was sent
func Echo(c *gin.Context) {
	var req EchoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": req.Message})
}

// Logo responds with a binary PNG body
func Logo(c *gin.Context) {
	c.Data(http.StatusOK, "image/png", logoPNG)
}
