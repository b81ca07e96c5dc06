package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
)

type ApplicationHandler struct {
	appRepo *repository.ApplicationRepository
}

func NewApplicationHandler(appRepo *repository.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{appRepo: appRepo}
}

// SubmitInfluencer validates and files an influencer application. The
// follower threshold is checked inline; failing it creates no record.
func (h *ApplicationHandler) SubmitInfluencer(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Phone      string `json:"phone" binding:"required"`
		Email      string `json:"email" binding:"required"`
		Profession string `json:"profession" binding:"required"`
		Followers  int    `json:"followers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, phone, email and profession are required"})
		return
	}
	if req.Followers < domain.MinInfluencerFollowers {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Signal Low: Minimum %d reach required for enrollment.", domain.MinInfluencerFollowers),
		})
		return
	}
	app := &models.InfluencerApplication{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Profession: req.Profession,
		Followers:  req.Followers,
		Status:     domain.StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := h.appRepo.CreateInfluencer(app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submit failed"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// SubmitSeller validates and files a seller application.
func (h *ApplicationHandler) SubmitSeller(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Address     string   `json:"address" binding:"required"`
		Phone       string   `json:"phone" binding:"required"`
		ProductType string   `json:"product_type" binding:"required"`
		ImageURLs   []string `json:"image_urls" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, address, phone, product_type and image_urls are required"})
		return
	}
	app := &models.SellerApplication{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		ProductType: req.ProductType,
		ImageURLs:   req.ImageURLs,
		Status:      domain.StatusPending,
		CreatedAt:   time.Now(),
	}
	if err := h.appRepo.CreateSeller(app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submit failed"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// ListInfluencer returns all influencer applications for the console.
func (h *ApplicationHandler) ListInfluencer(c *gin.Context) {
	list, err := h.appRepo.ListInfluencer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

// ListSeller returns all seller applications for the console.
func (h *ApplicationHandler) ListSeller(c *gin.Context) {
	list, err := h.appRepo.ListSeller()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": list})
}

// UpdateStatus approves or rejects a pending application. Unknown ids are
// a silent no-op; transitions out of a terminal status are refused.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	kind := c.Param("type")
	if kind != domain.ApplicationInfluencer && kind != domain.ApplicationSeller {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application type"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}
	if req.Status != domain.StatusApproved && req.Status != domain.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}
	err := h.appRepo.UpdateStatus(kind, c.Param("id"), req.Status)
	switch {
	case err == gorm.ErrRecordNotFound:
		// unknown id: keep the console's fire-and-forget semantics
		c.JSON(http.StatusOK, gin.H{"updated": false})
	case err == repository.ErrTerminalStatus:
		c.JSON(http.StatusConflict, gin.H{"error": "application already decided"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"updated": true})
	}
}
