// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	CreateChatSession gin.HandlerFunc
	PostChatMessage   gin.HandlerFunc
	GetChatSession    gin.HandlerFunc
	DeleteChatSession gin.HandlerFunc
}
