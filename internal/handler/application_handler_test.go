package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
)

func newApplicationRouter(t *testing.T) (*gin.Engine, *repository.ApplicationRepository) {
	t.Helper()
	db := newTestDB(t)
	appRepo := repository.NewApplicationRepository(db)
	h := NewApplicationHandler(appRepo)

	r := gin.New()
	r.POST("/applications/influencer", h.SubmitInfluencer)
	r.POST("/applications/seller", h.SubmitSeller)
	r.GET("/applications/influencer", h.ListInfluencer)
	r.GET("/applications/seller", h.ListSeller)
	r.PUT("/applications/:type/:id/status", h.UpdateStatus)
	return r, appRepo
}

func patchStatus(t *testing.T, r *gin.Engine, kind, id, status string) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPut, "/applications/"+kind+"/"+id+"/status", gin.H{"status": status})
}

func TestSubmitInfluencerBelowThreshold(t *testing.T) {
	r, appRepo := newApplicationRouter(t)

	w := postJSON(t, r, "/applications/influencer", gin.H{
		"name":       "Asha",
		"phone":      "0711000001",
		"email":      "asha@example.com",
		"profession": "content creator",
		"followers":  150,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	decode(t, w, &resp)
	if resp["error"] != "Signal Low: Minimum 200 reach required for enrollment." {
		t.Fatalf("error = %q", resp["error"])
	}

	// a refused submission must leave no row behind
	list, err := appRepo.ListInfluencer()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("applications stored = %d, want 0", len(list))
	}
}

func TestSubmitInfluencerAcceptedIsPending(t *testing.T) {
	r, _ := newApplicationRouter(t)

	w := postJSON(t, r, "/applications/influencer", gin.H{
		"name":       "Moses",
		"phone":      "0711000002",
		"email":      "moses@example.com",
		"profession": "photographer",
		"followers":  250,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var created models.InfluencerApplication
	decode(t, w, &created)
	if created.ID == "" {
		t.Fatal("created application has no id")
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status = %q, want %q", created.Status, domain.StatusPending)
	}

	lw := getJSON(t, r, "/applications/influencer")
	var listing struct {
		Applications []models.InfluencerApplication `json:"applications"`
	}
	decode(t, lw, &listing)
	if len(listing.Applications) != 1 || listing.Applications[0].ID != created.ID {
		t.Fatalf("listing = %+v, want the one created application", listing.Applications)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	r, appRepo := newApplicationRouter(t)

	w := postJSON(t, r, "/applications/seller", gin.H{
		"name":         "Janet",
		"address":      "Moi Avenue",
		"phone":        "0711000003",
		"product_type": "jewelry",
		"image_urls":   []string{"https://example.com/ring.jpg"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: status = %d, body %s", w.Code, w.Body.String())
	}
	var created models.SellerApplication
	decode(t, w, &created)

	uw := patchStatus(t, r, domain.ApplicationSeller, created.ID, domain.StatusApproved)
	if uw.Code != http.StatusOK {
		t.Fatalf("approve: status = %d, body %s", uw.Code, uw.Body.String())
	}
	var resp struct {
		Updated bool `json:"updated"`
	}
	decode(t, uw, &resp)
	if !resp.Updated {
		t.Fatal("approve reported updated=false")
	}

	// a second decision must be refused and leave the first one in place
	cw := patchStatus(t, r, domain.ApplicationSeller, created.ID, domain.StatusRejected)
	if cw.Code != http.StatusConflict {
		t.Fatalf("re-decide: status = %d, want 409", cw.Code)
	}
	list, err := appRepo.ListSeller()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Status != domain.StatusApproved {
		t.Fatalf("stored status = %q, want approved", list[0].Status)
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	r, _ := newApplicationRouter(t)

	w := patchStatus(t, r, domain.ApplicationInfluencer, "no-such-id", domain.StatusApproved)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Updated bool `json:"updated"`
	}
	decode(t, w, &resp)
	if resp.Updated {
		t.Fatal("unknown id reported updated=true")
	}
}

func TestUpdateStatusRejectsBadInput(t *testing.T) {
	r, _ := newApplicationRouter(t)

	if w := patchStatus(t, r, "vendor", "x", domain.StatusApproved); w.Code != http.StatusBadRequest {
		t.Fatalf("bad type: status = %d, want 400", w.Code)
	}
	if w := patchStatus(t, r, domain.ApplicationSeller, "x", "pending"); w.Code != http.StatusBadRequest {
		t.Fatalf("bad status: status = %d, want 400", w.Code)
	}
}
