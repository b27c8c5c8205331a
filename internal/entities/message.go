package entities

type Message struct {
	ID           string
	From         string
	Content      string
	Platform     string // e.g., "web", "telegram", "cli"
	BusinessIdea string
	BusinessName string
}

// ResponseType tells the client how to render Response.Data
type ResponseType string

const (
	TypeText        ResponseType = "text"
	TypeSteps       ResponseType = "steps"
	TypeNames       ResponseType = "names"
	TypeLogoPrompt  ResponseType = "logo_prompt"
	TypeSocialMedia ResponseType = "social_media"
	TypeIdeas       ResponseType = "ideas"
)

// Response is the envelope returned for every chat request.
// Data is nil for TypeText, []string for steps/names/ideas,
// string for logo_prompt and SocialPost for social_media.
type Response struct {
	Message string       `json:"message"`
	Type    ResponseType `json:"type"`
	Data    any          `json:"data"`
}

func TextResponse(message string) Response {
	return Response{Message: message, Type: TypeText}
}
