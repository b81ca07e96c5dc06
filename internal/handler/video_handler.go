package handler

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
	"eaglehub/pkg/cloudinary"
)

type VideoHandler struct {
	videoRepo *repository.VideoRepository
	cloud     cloudinary.Client // nil when blob storage is unconfigured
}

func NewVideoHandler(videoRepo *repository.VideoRepository, cloud cloudinary.Client) *VideoHandler {
	return &VideoHandler{videoRepo: videoRepo, cloud: cloud}
}

// ForRole returns videos visible to the role, newest first.
func (h *VideoHandler) ForRole(c *gin.Context) {
	role := c.Param("role")
	if !domain.ValidUserRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}
	list, err := h.videoRepo.ListVisibleToRole(role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": list})
}

// LatestForPage returns the page's featured video, or null when none.
func (h *VideoHandler) LatestForPage(c *gin.Context) {
	page := c.Param("page")
	if !domain.ValidPage(page) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
		return
	}
	v, err := h.videoRepo.LatestForPage(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"video": v})
}

// List returns the full catalog for the admin console.
func (h *VideoHandler) List(c *gin.Context) {
	list, err := h.videoRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"videos": list})
}

// Upsert creates or updates a video. Multipart form: an id targeting an
// existing record merges fields in place, otherwise a new record is made.
// A file part is uploaded to blob storage; any failure there substitutes
// the fixed placeholder URL so the stored link outlives the session.
func (h *VideoHandler) Upsert(c *gin.Context) {
	id := c.PostForm("id")
	title := c.PostForm("title")
	url := c.PostForm("url")
	source := c.PostForm("source")
	visibility := c.PostForm("role_visibility")
	page := c.PostForm("target_page")

	fileName := ""
	if file, err := c.FormFile("file"); err == nil {
		url, fileName = h.uploadOrPlaceholder(c, file)
		source = domain.VideoSourceUpload
	}
	if source == "" {
		source = domain.VideoSourceURL
	}

	if id != "" {
		existing, err := h.videoRepo.GetByID(id)
		if err == nil {
			if title != "" {
				existing.Title = title
			}
			if visibility != "" {
				existing.RoleVisibility = visibility
			}
			if page != "" {
				existing.TargetPage = page
			}
			if url != "" {
				existing.URL = url
			}
			existing.Source = source
			if fileName != "" {
				existing.FileName = fileName
			}
			if err := h.videoRepo.Update(existing); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
				return
			}
			c.JSON(http.StatusOK, existing)
			return
		}
	}

	if title == "" {
		title = "Untitled"
	}
	if visibility == "" {
		visibility = domain.RoleAll
	}
	if page == "" {
		page = domain.PageHome
	}
	v := &models.Video{
		ID:             uuid.NewString(),
		Title:          title,
		URL:            url,
		Source:         source,
		FileName:       fileName,
		RoleVisibility: visibility,
		TargetPage:     page,
		CreatedAt:      time.Now(),
	}
	if err := h.videoRepo.Create(v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VideoHandler) uploadOrPlaceholder(c *gin.Context, file *multipart.FileHeader) (url, fileName string) {
	fileName = file.Filename
	if h.cloud == nil {
		return domain.PlaceholderVideoURL, fileName
	}
	f, err := file.Open()
	if err != nil {
		return domain.PlaceholderVideoURL, fileName
	}
	defer f.Close()
	publicID := fmt.Sprintf("v_%d_%s", time.Now().UnixMilli(), strings.ReplaceAll(fileName, " ", "_"))
	uploaded, err := h.cloud.UploadVideo(c.Request.Context(), f, "eagle/videos", publicID)
	if err != nil {
		log.Printf("[video] upload failed, using placeholder: %v", err)
		return domain.PlaceholderVideoURL, fileName
	}
	return uploaded, fileName
}

// Delete removes a video by id.
func (h *VideoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.videoRepo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
