package handler

import (
	"net/http"

	"eaglehub/internal/service"
	"eaglehub/internal/wheel"

	"github.com/gin-gonic/gin"
)

type SpinHandler struct {
	spinSvc *service.SpinService
}

func NewSpinHandler(spinSvc *service.SpinService) *SpinHandler {
	return &SpinHandler{spinSvc: spinSvc}
}

// Segments exposes the wheel layout so the frontend renders the same
// slots the backend draws from.
func (h *SpinHandler) Segments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"segments": wheel.Segments()})
}

// Spin performs one wheel spin for a phone.
func (h *SpinHandler) Spin(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone required"})
		return
	}
	outcome, err := h.spinSvc.SpinForUser(req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "spin failed"})
		return
	}
	c.JSON(http.StatusOK, outcome)
}
