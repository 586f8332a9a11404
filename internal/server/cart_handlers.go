package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellnest-be/internal/cart"
	"wellnest-be/internal/middleware"
)

func (s *Server) getCart(c *gin.Context) {
	u := middleware.CurrentUser(c)

	crt, err := s.carts.Get(c.Request.Context(), u.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// updateCart replaces the whole item list. The body is the bare item array,
// with client-supplied price/name/image snapshots taken as-is.
func (s *Server) updateCart(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var items []cart.Item
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	crt, err := s.carts.Replace(c.Request.Context(), u.ID, items)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

func (s *Server) clearCart(c *gin.Context) {
	u := middleware.CurrentUser(c)

	if err := s.carts.Clear(c.Request.Context(), u.ID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
