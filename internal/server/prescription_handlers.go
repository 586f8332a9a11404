package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellnest-be/internal/middleware"
	"wellnest-be/internal/prescription"
)

type updatePrescriptionRequest struct {
	Status          string  `json:"status" binding:"required"`
	PharmacistNotes *string `json:"pharmacistNotes"`
}

// uploadPrescription accepts multipart form data: patientName plus the file.
func (s *Server) uploadPrescription(c *gin.Context) {
	u := middleware.CurrentUser(c)

	patientName := c.PostForm("patientName")
	if patientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "patientName is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prescription file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.fail(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		s.fail(c, err)
		return
	}

	p, err := s.prescriptions.Upload(c.Request.Context(), u.ID, patientName, fileHeader.Filename, data)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listMyPrescriptions(c *gin.Context) {
	u := middleware.CurrentUser(c)

	summaries, err := s.prescriptions.ListMine(c.Request.Context(), u.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) getPrescription(c *gin.Context) {
	u := middleware.CurrentUser(c)

	p, err := s.prescriptions.Get(c.Request.Context(), c.Param("id"), u.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) listAllPrescriptions(c *gin.Context) {
	summaries, err := s.prescriptions.ListAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (s *Server) updatePrescription(c *gin.Context) {
	u := middleware.CurrentUser(c)

	var req updatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := s.prescriptions.Review(c.Request.Context(), c.Param("id"), prescription.ReviewParams{
		Status:          prescription.Status(req.Status),
		PharmacistNotes: req.PharmacistNotes,
		ReviewedBy:      u.ID,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription updated"})
}
