package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var categories = []category{
	{ID: "rx-medicines", Name: "Rx Medicines", Icon: "pill"},
	{ID: "wellness", Name: "Wellness", Icon: "heart"},
	{ID: "devices", Name: "Medical Devices", Icon: "stethoscope"},
	{ID: "baby-care", Name: "Baby Care", Icon: "baby"},
}

func (s *Server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, categories)
}
