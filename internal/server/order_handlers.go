package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellnest-be/internal/cart"
	"wellnest-be/internal/middleware"
	"wellnest-be/internal/order"
)

type createOrderRequest struct {
	Items          []cart.Item   `json:"items" binding:"required"`
	Total          float64       `json:"total"`
	Address        order.Address `json:"address" binding:"required"`
	PrescriptionID *string       `json:"prescriptionId"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) createOrder(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := s.orders.Create(c.Request.Context(), u.ID, order.CreateParams{
		Items:          req.Items,
		Total:          req.Total,
		Address:        req.Address,
		PrescriptionID: req.PrescriptionID,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) listMyOrders(c *gin.Context) {
	u := middleware.CurrentUser(c)

	orders, err := s.orders.ListMine(c.Request.Context(), u.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	u := middleware.CurrentUser(c)

	o, err := s.orders.Get(c.Request.Context(), c.Param("id"), u.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) listAllOrders(c *gin.Context) {
	orders, err := s.orders.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.orders.SetStatus(c.Request.Context(), c.Param("id"), order.Status(req.Status)); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
