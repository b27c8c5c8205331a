package entities

type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// PlatformOrder is the detection priority used when a message names several platforms.
var PlatformOrder = []Platform{PlatformLinkedIn, PlatformInstagram, PlatformFacebook}

type SocialPost struct {
	Platform Platform `json:"platform"`
	Format   string   `json:"format"`
	Content  string   `json:"content"`
}
