package handler

import (
	"net/http"

	"eaglehub/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	branding *service.BrandingService
}

func NewSettingsHandler(branding *service.BrandingService) *SettingsHandler {
	return &SettingsHandler{branding: branding}
}

// Get returns the current branding settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.branding.Get())
}

// UploadLogo replaces the site logo. Upload failures fall back to the
// placeholder URL, so this never 500s on a blob-store outage.
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	settings, err := h.branding.UpdateLogo(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, settings)
}
