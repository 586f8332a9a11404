package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellnest-be/internal/middleware"
)

type createIntentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func (s *Server) createPaymentIntent(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	intent, err := s.payments.CreateIntent(c.Request.Context(), u.ID, req.Amount)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}
