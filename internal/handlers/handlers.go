// Package handlers contains the HTTP layer. Every handler validates its
// input first, performs at most one logical write, and answers with the
// uniform {success, message?, ...} envelope.
package handlers

import (
	"github.com/gin-gonic/gin"

	"skinquiz/internal/store"
)

// Handler carries the storage handle. Handlers are methods so tests can
// build isolated instances against independent stores.
type Handler struct {
	store *store.Store
}

// New returns a Handler backed by s.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
