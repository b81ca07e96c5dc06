package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepository
	spinRepo *repository.SpinRepository
	appRepo  *repository.ApplicationRepository
}

func NewUserHandler(userRepo *repository.UserRepository, spinRepo *repository.SpinRepository, appRepo *repository.ApplicationRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo, spinRepo: spinRepo, appRepo: appRepo}
}

// SignIn is an idempotent upsert by phone: first sight of a phone creates
// the user, any later sign-in returns the stored record untouched. There
// is no profile-update path.
func (h *UserHandler) SignIn(c *gin.Context) {
	var req struct {
		Phone    string `json:"phone" binding:"required"`
		Username string `json:"username" binding:"required"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and username are required"})
		return
	}
	if existing, err := h.userRepo.GetByPhone(req.Phone); err == nil {
		c.JSON(http.StatusOK, existing)
		return
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	role := req.Role
	if !domain.ValidUserRole(role) {
		role = domain.RoleCustomer
	}
	u := &models.User{
		Phone:     req.Phone,
		Username:  req.Username,
		Email:     req.Email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := h.userRepo.Create(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// Profile returns the user, their recent spins and their applications.
func (h *UserHandler) Profile(c *gin.Context) {
	phone := c.Param("phone")
	user, err := h.userRepo.GetByPhone(phone)
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	spins, _ := h.spinRepo.LastNByPhone(phone, domain.ProfileSpinHistory)
	infApps, _ := h.appRepo.ListInfluencerByPhone(phone)
	selApps, _ := h.appRepo.ListSellerByPhone(phone)
	c.JSON(http.StatusOK, gin.H{
		"user":                    user,
		"spins":                   spins,
		"influencer_applications": infApps,
		"seller_applications":     selApps,
	})
}

// List returns every registered user for the console.
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.userRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": list})
}

// ToggleCard flips one tier flag for a phone and persists the full set.
// Unknown phones are a silent no-op.
func (h *UserHandler) ToggleCard(c *gin.Context) {
	var req struct {
		Phone string `json:"phone" binding:"required"`
		Card  string `json:"card" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and card are required"})
		return
	}
	switch req.Card {
	case domain.CardPremium, domain.CardPlatinum, domain.CardGold:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card"})
		return
	}
	user, err := h.userRepo.GetByPhone(req.Phone)
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	user.Cards.Set(req.Card, !user.Cards.Has(req.Card))
	if err := h.userRepo.UpdateCards(req.Phone, user.Cards); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true, "cards": user.Cards})
}
