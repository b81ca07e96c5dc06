package domain

const (
	RoleCustomer   = "customer"
	RoleInfluencer = "influencer"
	RoleSeller     = "seller"
	// RoleAll is only valid as a video visibility, never as a user role.
	RoleAll = "all"
)

const (
	PageHome       = "home"
	PageCustomer   = "customer"
	PageInfluencer = "influencer"
	PageSeller     = "seller"
)

// Pages returns the four fixed site sections that scope chat rooms and
// featured videos.
func Pages() []string {
	return []string{PageHome, PageCustomer, PageInfluencer, PageSeller}
}

func ValidPage(p string) bool {
	switch p {
	case PageHome, PageCustomer, PageInfluencer, PageSeller:
		return true
	}
	return false
}

func ValidUserRole(r string) bool {
	switch r {
	case RoleCustomer, RoleInfluencer, RoleSeller:
		return true
	}
	return false
}

const (
	UserTypeUser  = "user"
	UserTypeAdmin = "admin"
)

const (
	CardPremium  = "premium"
	CardPlatinum = "platinum"
	CardGold     = "gold"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	VideoSourceUpload = "upload"
	VideoSourceURL    = "url"
)

const (
	ApplicationInfluencer = "influencer"
	ApplicationSeller     = "seller"
)

// Minimum follower count for influencer enrollment.
const MinInfluencerFollowers = 200

// AdminDisplayName is the author shown on admin chat replies.
const AdminDisplayName = "Eagle Admin"

// Fallback URLs used when blob storage is unconfigured or an upload fails.
// A stable placeholder beats a session-scoped URL that 404s later.
const (
	DefaultLogoURL      = "https://images.unsplash.com/photo-1559136555-9303baea8ebd?auto=format&fit=crop&q=80&w=200"
	PlaceholderLogoURL  = "https://via.placeholder.com/320x180?text=Logo"
	PlaceholderVideoURL = "https://via.placeholder.com/320x180?text=Video"
)

// ProfileSpinHistory is how many recent spins the profile view surfaces.
const ProfileSpinHistory = 5
